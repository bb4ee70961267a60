package decode

import (
	"hvac-matcher/core/schema"

	"go.uber.org/zap"
)

// Service handles decode operations.
type Service struct {
	decoder *Decoder
	logger  *zap.Logger
}

// NewService creates a new decode service over the shared master schema.
func NewService(master *schema.Master, logger *zap.Logger) *Service {
	return &Service{
		decoder: NewDecoder(master),
		logger:  logger,
	}
}

// Decode normalizes and decodes plate text reported by the OCR collaborator.
func (s *Service) Decode(text string, confidence float64) Result {
	result := s.decoder.Decode(text, confidence)
	if !result.Success {
		s.logger.Warn("Decode rejected low quality input",
			zap.Float64("confidence", result.Confidence),
			zap.Int("text_length", len(text)))
		return result
	}

	s.logger.Info("Decoded plate text",
		zap.Float64("confidence", result.Confidence),
		zap.String("model", result.Spec.Model),
		zap.String("family", result.Spec.Family),
		zap.Int("warnings", len(result.Diagnostics)))
	return result
}
