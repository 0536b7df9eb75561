package interview

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	_ "embed"

	"go.uber.org/zap"

	"github.com/mpatkar/interviewgen/internal/config"
	"github.com/mpatkar/interviewgen/internal/llm"
	"github.com/mpatkar/interviewgen/internal/logger"
	"github.com/mpatkar/interviewgen/internal/resume"
)

//go:embed prompts/questions.md
var questionsPrompt string

// defaultDifficulty is used when no configured band contains the candidate's
// experience.
const defaultDifficulty = "mid"

const responsePreviewLen = 300

// Generator produces interview questions for a candidate profile. A failed
// model invocation degrades to a fixed fallback set instead of failing the
// run; this is the only stage with graceful degradation.
type Generator struct {
	generator llm.Generator
	cfg       *config.Interview
	logger    *zap.Logger
}

func NewGenerator(gen llm.Generator, cfg *config.Interview, log *zap.Logger) *Generator {
	return &Generator{generator: gen, cfg: cfg, logger: log}
}

// Generate builds the question prompt for the profile, invokes the model and
// parses its response. A requested count of zero means "as many as allowed";
// any requested count is clamped into the configured bounds.
func (g *Generator) Generate(ctx context.Context, profile *resume.Profile, role string, requested int) ([]Question, error) {
	if profile == nil {
		return nil, errors.New("candidate profile is required")
	}

	count := g.effectiveCount(requested)
	difficulty := g.difficultyFor(profile.ExperienceYears())

	g.logger.Info("generating questions",
		zap.String("role", role),
		zap.Int("count", count),
		zap.String("difficulty", difficulty),
	)

	prompt := g.buildPrompt(profile, role, difficulty, count)

	raw, err := g.generator.GenerateContent(ctx, prompt)
	if err != nil {
		g.logger.Warn("question generation failed, using fallback questions",
			zap.String("role", role),
			zap.Error(err),
		)
		return FallbackQuestions(role, count), nil
	}

	g.logger.Debug("question generation response",
		zap.String("response_preview", logger.Truncate(raw, responsePreviewLen)),
	)

	questions := ParseQuestions(raw)

	g.logger.Info("questions generated", zap.Int("count", len(questions)))

	return questions, nil
}

// effectiveCount clamps the requested count into [min, max]; zero or negative
// requests default to the maximum.
func (g *Generator) effectiveCount(requested int) int {
	if requested <= 0 {
		requested = g.cfg.MaxQuestions
	}
	if requested < g.cfg.MinQuestions {
		return g.cfg.MinQuestions
	}
	if requested > g.cfg.MaxQuestions {
		return g.cfg.MaxQuestions
	}
	return requested
}

// difficultyFor selects the configured band whose [min, max) range contains
// the experience, defaulting to mid when none matches. Labels are visited in
// sorted order so overlapping bands resolve deterministically.
func (g *Generator) difficultyFor(experienceYears int) string {
	labels := make([]string, 0, len(g.cfg.DifficultyLevels))
	for label := range g.cfg.DifficultyLevels {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		if g.cfg.DifficultyLevels[label].Contains(float64(experienceYears)) {
			return label
		}
	}
	return defaultDifficulty
}

func (g *Generator) buildPrompt(profile *resume.Profile, role, difficulty string, count int) string {
	replacer := strings.NewReplacer(
		"{{ROLE}}", role,
		"{{EXPERIENCE}}", strconv.Itoa(profile.ExperienceYears()),
		"{{SKILLS}}", strings.Join(profile.Skills, ", "),
		"{{EDUCATION}}", strings.Join(profile.Education, ", "),
		"{{DIFFICULTY}}", difficulty,
		"{{QUESTION_TYPES}}", strings.Join(g.cfg.QuestionTypes, ", "),
		"{{COUNT}}", strconv.Itoa(count),
	)

	return replacer.Replace(questionsPrompt)
}

// FallbackQuestions returns the fixed question set used when model-backed
// generation fails, truncated to count by position (not balanced by type).
func FallbackQuestions(role string, count int) []Question {
	fallback := []Question{
		{
			Type:       "experience_based",
			Question:   fmt.Sprintf("Tell me about your experience relevant to the %s position.", role),
			Evaluating: "Relevant experience and communication skills",
		},
		{
			Type:       "technical",
			Question:   "What technical skills do you consider your strongest, and can you provide an example of how you've used them?",
			Evaluating: "Technical competency and practical application",
		},
		{
			Type:       "behavioral",
			Question:   "Describe a challenging project you worked on. What was your role and how did you overcome obstacles?",
			Evaluating: "Problem-solving and resilience",
		},
		{
			Type:       "situational",
			Question:   "How would you approach learning a new technology or framework required for this role?",
			Evaluating: "Learning ability and adaptability",
		},
		{
			Type:       "behavioral",
			Question:   "Tell me about a time when you had to work with a difficult team member. How did you handle it?",
			Evaluating: "Interpersonal skills and conflict resolution",
		},
	}

	if count > len(fallback) {
		count = len(fallback)
	}
	if count < 0 {
		count = 0
	}

	return fallback[:count]
}
