package build

import (
	"hvac-matcher/core/schema"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the build service into the feature loader.
type Feature struct {
	handler *Handler
}

// NewFeature creates the build feature.
func NewFeature(master *schema.Master, logger *zap.Logger) *Feature {
	service := NewService(master, logger)
	return &Feature{handler: NewHandler(service)}
}

// Name returns the feature name.
func (f *Feature) Name() string { return "build" }

// IsEnabled reports whether the feature is active.
func (f *Feature) IsEnabled() bool { return true }

// Load registers the feature routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
