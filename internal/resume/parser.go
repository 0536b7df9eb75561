package resume

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Parser assembles a candidate profile from a resume file: raw text
// extraction, regex field extraction, the experience estimate and the
// LLM-backed role/skill inference.
type Parser struct {
	extractor  *Extractor
	inferencer *Inferencer
	logger     *zap.Logger
}

func NewParser(extractor *Extractor, inferencer *Inferencer, log *zap.Logger) *Parser {
	return &Parser{extractor: extractor, inferencer: inferencer, logger: log}
}

// Parse builds the profile for the document at path. When no text can be
// recovered it returns ErrEmptyDocument before any model call is made, so a
// blank scan never spends LLM quota.
func (p *Parser) Parse(ctx context.Context, path string) (*Profile, error) {
	p.logger.Info("parsing resume", zap.String("path", path))

	text, err := p.extractor.Extract(path)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyDocument
	}

	role, err := p.inferencer.JobRole(ctx, text)
	if err != nil {
		return nil, err
	}

	skills, err := p.inferencer.Skills(ctx, text, role)
	if err != nil {
		return nil, err
	}

	months := EstimateExperience(text)

	profile := &Profile{
		RawText:          text,
		Name:             Name(text),
		Email:            Email(text),
		Phone:            Phone(text),
		LinkedinURL:      LinkedIn(text),
		GithubURL:        GitHub(text),
		PortfolioURL:     Portfolio(text),
		JobRole:          role,
		Skills:           skills,
		Experience:       FormatExperience(months),
		ExperienceMonths: months,
		Education:        Education(text),
	}

	p.logger.Info("resume parsed",
		zap.String("job_role", profile.JobRole),
		zap.Int("skills", len(profile.Skills)),
		zap.String("experience", profile.Experience),
	)

	return profile, nil
}
