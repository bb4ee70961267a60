package validate

import (
	"hvac-matcher/core/schema"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the validation service into the feature loader.
type Feature struct {
	handler *Handler
}

// NewFeature creates the validate feature.
func NewFeature(master *schema.Master, logger *zap.Logger) *Feature {
	service := NewService(master, logger)
	return &Feature{handler: NewHandler(service)}
}

// Name returns the feature name.
func (f *Feature) Name() string { return "validate" }

// IsEnabled reports whether the feature is active. Validation only needs
// the schema, so it is always on.
func (f *Feature) IsEnabled() bool { return true }

// Load registers the feature routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
