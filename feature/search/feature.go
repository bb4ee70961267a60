package search

import (
	"hvac-matcher/core/schema"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the search service into the feature loader.
type Feature struct {
	handler *Handler
	enabled bool
}

// NewFeature creates the search feature. catalog may be database- or
// storage-backed; a nil catalog disables the feature (no catalog source
// configured).
func NewFeature(catalog Catalog, master *schema.Master, logger *zap.Logger, tonsTolerance float64) *Feature {
	if catalog == nil {
		return &Feature{enabled: false}
	}
	service := NewService(catalog, master, logger, tonsTolerance)
	return &Feature{handler: NewHandler(service), enabled: true}
}

// Name returns the feature name.
func (f *Feature) Name() string { return "search" }

// IsEnabled reports whether a catalog source is configured.
func (f *Feature) IsEnabled() bool { return f.enabled }

// Load registers the feature routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
