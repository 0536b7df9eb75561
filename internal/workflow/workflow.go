// Package workflow sequences the two pipeline stages: resume parsing and
// question generation. It is a linear two-node state machine; failed is
// terminal and absorbing, nothing is retried, and every node returns a new
// state value instead of mutating a shared record.
package workflow

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mpatkar/interviewgen/internal/interview"
	"github.com/mpatkar/interviewgen/internal/resume"
)

// Status is the workflow state tag.
type Status string

const (
	StatusInitialized  Status = "initialized"
	StatusResumeParsed Status = "resume_parsed"
	StatusCompleted    Status = "completed"
	StatusFailed       Status = "failed"
)

// defaultRole is used for question generation when role inference produced an
// empty title.
const defaultRole = "General Candidate"

// State is the result record of one run. It marshals to the JSON shape the
// presentation layer consumes.
type State struct {
	RunID         string               `json:"run_id"`
	ResumePath    string               `json:"resume_path"`
	CandidateInfo *resume.Profile      `json:"candidate_info"`
	Questions     []interview.Question `json:"questions"`
	Status        Status               `json:"status"`
	Error         string               `json:"error,omitempty"`
}

// ResumeParser is the profile extraction stage.
type ResumeParser interface {
	Parse(ctx context.Context, path string) (*resume.Profile, error)
}

// QuestionGenerator is the question generation stage.
type QuestionGenerator interface {
	Generate(ctx context.Context, profile *resume.Profile, role string, requested int) ([]interview.Question, error)
}

// Workflow owns the state transitions. Only it assigns Status.
type Workflow struct {
	parser    ResumeParser
	generator QuestionGenerator
	logger    *zap.Logger
}

func New(parser ResumeParser, generator QuestionGenerator, log *zap.Logger) *Workflow {
	return &Workflow{parser: parser, generator: generator, logger: log}
}

// Run executes one linear traversal: initialized -> resume_parsed ->
// completed, or -> failed from either node. It always returns a well-formed
// state; callers distinguish success from failure via Status, never via a
// returned error.
func (w *Workflow) Run(ctx context.Context, resumePath string, requestedQuestions int) State {
	state := State{
		RunID:      uuid.NewString(),
		ResumePath: resumePath,
		Questions:  []interview.Question{},
		Status:     StatusInitialized,
	}

	log := w.logger.With(zap.String("run_id", state.RunID))
	log.Info("starting run", zap.String("resume_path", resumePath))

	state = w.parseResume(ctx, log, state)
	if state.Status == StatusFailed {
		return state
	}

	state = w.generateQuestions(ctx, log, state, requestedQuestions)

	return state
}

// parseResume is node 1: initialized -> resume_parsed. Extraction and
// inference errors become the terminal failed status; ErrEmptyDocument is the
// hard stop raised before any model call.
func (w *Workflow) parseResume(ctx context.Context, log *zap.Logger, state State) State {
	log.Info("node: parse_resume")

	profile, err := w.parser.Parse(ctx, state.ResumePath)
	if err != nil {
		log.Error("resume parsing failed", zap.Error(err))
		state.Status = StatusFailed
		state.Error = err.Error()
		return state
	}

	state.CandidateInfo = profile
	state.Status = StatusResumeParsed

	log.Info("node complete",
		zap.String("node", "parse_resume"),
		zap.String("status", string(state.Status)),
		zap.String("job_role", profile.JobRole),
	)

	return state
}

// generateQuestions is node 2: resume_parsed -> completed.
func (w *Workflow) generateQuestions(ctx context.Context, log *zap.Logger, state State, requested int) State {
	log.Info("node: generate_questions")

	role := state.CandidateInfo.JobRole
	if role == "" {
		role = defaultRole
	}

	questions, err := w.generator.Generate(ctx, state.CandidateInfo, role, requested)
	if err != nil {
		log.Error("question generation failed", zap.Error(err))
		state.Status = StatusFailed
		state.Error = err.Error()
		return state
	}

	state.Questions = questions
	state.Status = StatusCompleted

	log.Info("node complete",
		zap.String("node", "generate_questions"),
		zap.String("status", string(state.Status)),
		zap.Int("questions", len(questions)),
	)

	return state
}
