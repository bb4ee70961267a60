package build

import (
	"hvac-matcher/core/logger"
	"hvac-matcher/core/unit"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for model-number assembly.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the build routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/build")
	group.Post("/", h.HandleBuild)
	group.Get("/families", h.HandleFamilies)
}

// HandleBuild assembles a model number from a build request.
// @Summary Build Model Number
// @Description Resolves every schema position of the target family to a code (exact or nearest-ladder fallback) and assembles the vendor model string.
// @Tags build
// @Accept json
// @Produce json
// @Param request body Request true "Build Request"
// @Success 200 {object} Result "Build Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Unresolvable Schema Position"
// @Router /build [post]
func (h *Handler) HandleBuild(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req Request
	if err := c.BodyParser(&req); err != nil {
		l.Warn("Malformed build request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.service.Build(req)
	if err != nil {
		if unit.IsSchemaViolation(err) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(result)
}

// HandleFamilies lists the buildable families.
// @Summary List Families
// @Description Returns every family in the master schema with its position layout.
// @Tags build
// @Produce json
// @Success 200 {array} FamilySummary "Families"
// @Router /build/families [get]
func (h *Handler) HandleFamilies(c *fiber.Ctx) error {
	return c.JSON(h.service.Families())
}
