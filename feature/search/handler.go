package search

import (
	"hvac-matcher/core/logger"
	"hvac-matcher/core/match"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for replacement search.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the search routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/search", h.HandleSearch)
	app.Post("/replacements/suggest", h.HandleSuggest)
}

// SearchResponse is the ranked search report.
type SearchResponse struct {
	Count      int               `json:"count"`
	Candidates []match.Candidate `json:"candidates"`
}

// HandleSearch runs a replacement search with explicit criteria.
// @Summary Search Replacements
// @Description Ranks catalog units against the given criteria. An empty candidate list means nothing in the catalog fits; it is not an error.
// @Tags search
// @Accept json
// @Produce json
// @Param criteria body match.Criteria true "Search criteria"
// @Success 200 {object} SearchResponse "Ranked candidates"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /search [post]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var criteria match.Criteria
	if err := c.BodyParser(&criteria); err != nil {
		l.Warn("Malformed search request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	candidates, err := h.service.Search(c.Context(), criteria)
	if err != nil {
		l.Error("Replacement search failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(SearchResponse{Count: len(candidates), Candidates: candidates})
}

// SuggestRequest is the decode-then-search request body.
type SuggestRequest struct {
	// Text is the plate text extracted by the OCR engine.
	Text string `json:"text"`
	// Confidence is the OCR engine's reported confidence in [0,1].
	Confidence float64 `json:"confidence"`
}

// HandleSuggest decodes a data plate and searches for replacements.
// @Summary Suggest Replacements
// @Description Decodes OCR-extracted data-plate text and ranks catalog units against the decoded specification in one call.
// @Tags search
// @Accept json
// @Produce json
// @Param request body SuggestRequest true "Plate text and OCR confidence"
// @Success 200 {object} SuggestResult "Decode result and ranked candidates"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /replacements/suggest [post]
func (h *Handler) HandleSuggest(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req SuggestRequest
	if err := c.BodyParser(&req); err != nil {
		l.Warn("Malformed suggest request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.service.Suggest(c.Context(), req.Text, req.Confidence)
	if err != nil {
		l.Error("Replacement suggestion failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(result)
}
