package resume

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"
)

type stubGenerator struct {
	responses []string
	err       error
	prompts   []string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	idx := len(s.prompts) - 1
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	return s.responses[idx], nil
}

func TestJobRoleTrimsResponse(t *testing.T) {
	stub := &stubGenerator{responses: []string{"  Backend Engineer \n"}}
	inf := NewInferencer(stub, zap.NewNop())

	role, err := inf.JobRole(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != "Backend Engineer" {
		t.Fatalf("unexpected role: %q", role)
	}
	if len(stub.prompts) != 1 || !strings.Contains(stub.prompts[0], "resume text") {
		t.Fatalf("expected resume text embedded in prompt")
	}
}

func TestJobRoleLimitsSummary(t *testing.T) {
	stub := &stubGenerator{responses: []string{"Engineer"}}
	inf := NewInferencer(stub, zap.NewNop())

	long := strings.Repeat("a", 2000) + "TAIL"
	if _, err := inf.JobRole(context.Background(), long); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(stub.prompts[0], "TAIL") {
		t.Fatal("expected prompt to carry only the opening of the document")
	}
}

func TestJobRolePropagatesError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("quota exceeded")}
	inf := NewInferencer(stub, zap.NewNop())

	if _, err := inf.JobRole(context.Background(), "text"); err == nil {
		t.Fatal("expected error to propagate")
	}
}

func TestSkillsDeduplicatesPreservingOrder(t *testing.T) {
	stub := &stubGenerator{responses: []string{"Python, Python, SQL"}}
	inf := NewInferencer(stub, zap.NewNop())

	skills, err := inf.Skills(context.Background(), "text", "Data Engineer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(skills, []string{"Python", "SQL"}) {
		t.Fatalf("unexpected skills: %v", skills)
	}
}

func TestSkillsDropsEmptyTokens(t *testing.T) {
	stub := &stubGenerator{responses: []string{" Go ,, Kubernetes ,  "}}
	inf := NewInferencer(stub, zap.NewNop())

	skills, err := inf.Skills(context.Background(), "text", "Platform Engineer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(skills, []string{"Go", "Kubernetes"}) {
		t.Fatalf("unexpected skills: %v", skills)
	}
}

func TestSkillsPromptCarriesRoleAndText(t *testing.T) {
	stub := &stubGenerator{responses: []string{"Go"}}
	inf := NewInferencer(stub, zap.NewNop())

	if _, err := inf.Skills(context.Background(), "full resume body", "SRE"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := stub.prompts[0]
	if !strings.Contains(prompt, "SRE") || !strings.Contains(prompt, "full resume body") {
		t.Fatalf("expected role and text in prompt, got: %s", prompt)
	}
}
