package resume

import (
	"context"
	"fmt"
	"strings"

	_ "embed"

	"go.uber.org/zap"

	"github.com/mpatkar/interviewgen/internal/llm"
	"github.com/mpatkar/interviewgen/internal/logger"
)

//go:embed prompts/job_role.md
var jobRolePrompt string

//go:embed prompts/skills.md
var skillsPrompt string

// roleSummaryLimit bounds how much of the document is sent for role
// inference. The opening section is enough to identify the primary role.
const roleSummaryLimit = 1500

const defaultPreviewLen = 200

// Inferencer asks the model for the candidate's job role and skill set.
// Invocation errors propagate; there is no fallback at this stage.
type Inferencer struct {
	generator llm.Generator
	logger    *zap.Logger
}

func NewInferencer(generator llm.Generator, log *zap.Logger) *Inferencer {
	return &Inferencer{generator: generator, logger: log}
}

// JobRole infers the candidate's primary job role from the opening of the
// document. The model's trimmed response is used verbatim: job roles are open
// strings, not an enum.
func (i *Inferencer) JobRole(ctx context.Context, text string) (string, error) {
	summary := text
	if runes := []rune(summary); len(runes) > roleSummaryLimit {
		summary = string(runes[:roleSummaryLimit])
	}

	prompt := strings.ReplaceAll(jobRolePrompt, "{{SUMMARY}}", summary)

	i.logger.Debug("job role inference request",
		zap.String("prompt_preview", logger.Truncate(prompt, defaultPreviewLen)),
	)

	raw, err := i.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("inferring job role: %w", err)
	}

	role := strings.TrimSpace(raw)

	i.logger.Debug("job role inference response", zap.String("job_role", role))

	return role, nil
}

// Skills extracts a deduplicated skill list for the given role. The model is
// instructed to answer with a flat comma-separated list; tokens are trimmed,
// empties dropped, and duplicates removed preserving first-seen order.
func (i *Inferencer) Skills(ctx context.Context, text, role string) ([]string, error) {
	prompt := strings.ReplaceAll(skillsPrompt, "{{JOB_ROLE}}", role)
	prompt = strings.ReplaceAll(prompt, "{{TEXT}}", text)

	i.logger.Debug("skill extraction request",
		zap.String("job_role", role),
		zap.String("prompt_preview", logger.Truncate(prompt, defaultPreviewLen)),
	)

	raw, err := i.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("extracting skills: %w", err)
	}

	skills := dedupeSkills(strings.Split(raw, ","))

	i.logger.Debug("skill extraction response", zap.Int("count", len(skills)))

	return skills, nil
}

func dedupeSkills(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	skills := make([]string, 0, len(tokens))

	for _, token := range tokens {
		skill := strings.TrimSpace(token)
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		skills = append(skills, skill)
	}

	return skills
}
