package validate

import (
	"hvac-matcher/core/logger"
	"hvac-matcher/core/unit"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for validation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the validation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/validate", h.HandleValidate)
}

// Request is the validation request body. Either a model number to parse
// and check, or an explicit specification with its family.
type Request struct {
	Model  string     `json:"model,omitempty"`
	Family string     `json:"family,omitempty"`
	Spec   *unit.Spec `json:"spec,omitempty"`
}

// HandleValidate checks a model number or specification against the
// schema's family constraints.
// @Summary Validate Unit
// @Description Checks a model number (or an explicit specification plus family) against the family's capacity, heating and accessory constraints. Warnings do not fail the unit; errors do.
// @Tags validate
// @Accept json
// @Produce json
// @Param request body Request true "Model number or specification"
// @Success 200 {object} Report "Validation report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /validate [post]
func (h *Handler) HandleValidate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req Request
	if err := c.BodyParser(&req); err != nil {
		l.Warn("Malformed validate request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.Model != "" {
		report, err := h.service.CheckModel(req.Model)
		if err != nil {
			l.Warn("Model parse failed", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(report)
	}

	if req.Spec == nil || req.Family == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "either model or spec and family are required",
		})
	}

	return c.JSON(h.service.CheckSpec(req.Spec, req.Family))
}
