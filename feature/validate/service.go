package validate

import (
	"fmt"

	"hvac-matcher/core/schema"
	"hvac-matcher/core/unit"
	corevalidate "hvac-matcher/core/validate"

	"go.uber.org/zap"
)

// Service checks specifications against the master schema's family
// constraints.
type Service struct {
	master *schema.Master
	logger *zap.Logger
}

// NewService creates a validation service.
func NewService(master *schema.Master, logger *zap.Logger) *Service {
	return &Service{master: master, logger: logger}
}

// Report is the outcome of a validation call. Valid means no error-level
// diagnostics; warnings alone do not fail a unit.
type Report struct {
	Valid       bool              `json:"valid"`
	Family      string            `json:"family"`
	Spec        *unit.Spec        `json:"spec,omitempty"`
	Diagnostics []unit.Diagnostic `json:"diagnostics"`
}

// CheckModel parses a model number and validates the decoded
// specification against its family's constraints.
func (s *Service) CheckModel(model string) (*Report, error) {
	spec, err := s.master.ParseModel(model)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model %q: %w", model, err)
	}
	return s.CheckSpec(spec, spec.Family), nil
}

// CheckSpec validates an already-decoded specification against a family.
func (s *Service) CheckSpec(spec *unit.Spec, family string) *Report {
	diags := corevalidate.Check(spec, family, s.master)
	if diags == nil {
		diags = []unit.Diagnostic{}
	}

	report := &Report{
		Valid:       !unit.HasErrors(diags),
		Family:      family,
		Spec:        spec,
		Diagnostics: diags,
	}

	if !report.Valid {
		s.logger.Debug("Specification failed validation",
			zap.String("family", family),
			zap.Int("diagnostics", len(diags)))
	}
	return report
}
