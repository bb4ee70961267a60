package decode

import (
	"hvac-matcher/core/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for plate decoding.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the decode routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/decode", h.HandleDecode)
}

// Request is the decode request body: the OCR collaborator's output.
type Request struct {
	// Text is the plate text extracted by the OCR engine.
	Text string `json:"text"`
	// Confidence is the OCR engine's reported confidence in [0,1].
	Confidence float64 `json:"confidence"`
}

// HandleDecode decodes plate text into a canonical specification.
// @Summary Decode Plate Text
// @Description Turns OCR-extracted data-plate text into a canonical equipment specification with per-field provenance and diagnostics.
// @Tags decode
// @Accept json
// @Produce json
// @Param request body Request true "Plate text and OCR confidence"
// @Success 200 {object} Result "Decode Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /decode [post]
func (h *Handler) HandleDecode(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req Request
	if err := c.BodyParser(&req); err != nil {
		l.Warn("Malformed decode request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result := h.service.Decode(req.Text, req.Confidence)
	return c.JSON(result)
}
