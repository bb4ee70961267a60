package build

import (
	"hvac-matcher/core/schema"
	"hvac-matcher/core/unit"

	"go.uber.org/zap"
)

// Service handles build operations.
type Service struct {
	builder *Builder
	master  *schema.Master
	logger  *zap.Logger
}

// NewService creates a new build service over the shared master schema.
func NewService(master *schema.Master, logger *zap.Logger) *Service {
	return &Service{
		builder: NewBuilder(master),
		master:  master,
		logger:  logger,
	}
}

// Build assembles a model number for the request.
func (s *Service) Build(req Request) (*Result, error) {
	result, err := s.builder.Build(req)
	if err != nil {
		if unit.IsSchemaViolation(err) {
			s.logger.Warn("Build rejected", zap.String("family", req.Family), zap.Error(err))
		} else {
			s.logger.Error("Build failed", zap.String("family", req.Family), zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("Built model number",
		zap.String("family", result.Family),
		zap.String("model", result.Model),
		zap.String("capacity_match", string(result.CapacityMatch)))
	return result, nil
}

// FamilySummary describes one buildable family for discovery endpoints.
type FamilySummary struct {
	Code       string          `json:"code"`
	Label      string          `json:"label"`
	SystemType unit.SystemType `json:"system_type"`
	Positions  []string        `json:"positions"`
}

// Families lists the buildable families in stable order.
func (s *Service) Families() []FamilySummary {
	codes := s.master.FamilyCodes()
	out := make([]FamilySummary, 0, len(codes))
	for _, code := range codes {
		fam, _ := s.master.Family(code)
		names := make([]string, len(fam.Positions))
		for i, fp := range fam.Positions {
			names[i] = fp.Name
		}
		out = append(out, FamilySummary{
			Code:       code,
			Label:      fam.Label,
			SystemType: fam.SystemType,
			Positions:  names,
		})
	}
	return out
}
