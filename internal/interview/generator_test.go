package interview

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/mpatkar/interviewgen/internal/config"
	"github.com/mpatkar/interviewgen/internal/resume"
)

type stubModel struct {
	response string
	err      error
	prompts  []string
}

func (s *stubModel) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testInterviewConfig() *config.Interview {
	return &config.Interview{
		QuestionTypes: []string{"technical", "behavioral"},
		MinQuestions:  5,
		MaxQuestions:  15,
		DifficultyLevels: map[string]config.Range{
			"entry":  {Min: 0, Max: 2},
			"mid":    {Min: 2, Max: 5},
			"senior": {Min: 5, Max: 50},
		},
	}
}

func TestGenerateParsesModelResponse(t *testing.T) {
	stub := &stubModel{response: "1. [Technical]\nQuestion: Explain CAP theorem\nEvaluating: distributed systems knowledge\n"}
	gen := NewGenerator(stub, testInterviewConfig(), zap.NewNop())

	got, err := gen.Generate(context.Background(), &resume.Profile{}, "Backend Engineer", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 question, got %d", len(got))
	}
	if got[0].Type != "technical" || got[0].Question != "Explain CAP theorem" {
		t.Fatalf("unexpected question: %+v", got[0])
	}
}

func TestGenerateNilProfile(t *testing.T) {
	gen := NewGenerator(&stubModel{}, testInterviewConfig(), zap.NewNop())

	if _, err := gen.Generate(context.Background(), nil, "Backend Engineer", 5); err == nil {
		t.Fatal("expected error for nil profile")
	}
}

func TestGenerateCountClamping(t *testing.T) {
	cases := []struct {
		name      string
		requested int
		want      string
	}{
		{"below minimum", 2, "Generate EXACTLY 5 questions"},
		{"above maximum", 100, "Generate EXACTLY 15 questions"},
		{"zero defaults to maximum", 0, "Generate EXACTLY 15 questions"},
		{"within bounds", 7, "Generate EXACTLY 7 questions"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubModel{response: "1. [Technical]\nQuestion: Anything at all here\n"}
			gen := NewGenerator(stub, testInterviewConfig(), zap.NewNop())

			if _, err := gen.Generate(context.Background(), &resume.Profile{}, "SRE", tc.requested); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(stub.prompts) != 1 {
				t.Fatalf("expected 1 model call, got %d", len(stub.prompts))
			}
			if !strings.Contains(stub.prompts[0], tc.want) {
				t.Fatalf("prompt does not contain %q", tc.want)
			}
		})
	}
}

func TestGenerateDifficultyBanding(t *testing.T) {
	cases := []struct {
		name   string
		months int
		want   string
	}{
		{"no experience", 0, "entry"},
		{"one year", 12, "entry"},
		{"two years hits mid band", 24, "mid"},
		{"four years", 48, "mid"},
		{"five years hits senior band", 60, "senior"},
		{"beyond all bands falls back to mid", 80 * 12, "mid"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubModel{response: "1. [Technical]\nQuestion: Anything at all here\n"}
			gen := NewGenerator(stub, testInterviewConfig(), zap.NewNop())

			profile := &resume.Profile{ExperienceMonths: tc.months}
			if _, err := gen.Generate(context.Background(), profile, "SRE", 5); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(stub.prompts[0], "Difficulty Level: "+tc.want) {
				t.Fatalf("prompt does not contain difficulty %q", tc.want)
			}
		})
	}
}

func TestGeneratePromptInterpolation(t *testing.T) {
	stub := &stubModel{response: "1. [Technical]\nQuestion: Anything at all here\n"}
	gen := NewGenerator(stub, testInterviewConfig(), zap.NewNop())

	profile := &resume.Profile{
		Skills:           []string{"Go", "Kubernetes"},
		Education:        []string{"BSc Computer Science"},
		ExperienceMonths: 36,
	}
	if _, err := gen.Generate(context.Background(), profile, "Platform Engineer", 6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := stub.prompts[0]
	for _, want := range []string{
		"Platform Engineer",
		"Go, Kubernetes",
		"BSc Computer Science",
		"technical, behavioral",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt does not contain %q", want)
		}
	}
	if strings.Contains(prompt, "{{") {
		t.Fatalf("prompt has unreplaced placeholders:\n%s", prompt)
	}
}

func TestGenerateFallbackOnModelError(t *testing.T) {
	stub := &stubModel{err: errors.New("rate limited")}
	cfg := testInterviewConfig()
	cfg.MinQuestions = 1
	gen := NewGenerator(stub, cfg, zap.NewNop())

	got, err := gen.Generate(context.Background(), &resume.Profile{}, "Data Engineer", 3)
	if err != nil {
		t.Fatalf("expected graceful fallback, got error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 fallback questions, got %d", len(got))
	}
	if got[0].Type != "experience_based" {
		t.Fatalf("unexpected first fallback type: %q", got[0].Type)
	}
	if !strings.Contains(got[0].Question, "Data Engineer") {
		t.Fatalf("fallback question not role-specific: %q", got[0].Question)
	}
	if got[1].Type != "technical" || got[2].Type != "behavioral" {
		t.Fatalf("fallback order changed: %+v", got)
	}
}

func TestFallbackQuestionsBounds(t *testing.T) {
	if got := FallbackQuestions("SRE", 100); len(got) != 5 {
		t.Fatalf("expected the full set of 5, got %d", len(got))
	}
	if got := FallbackQuestions("SRE", -1); len(got) != 0 {
		t.Fatalf("expected empty set for negative count, got %d", len(got))
	}
}
