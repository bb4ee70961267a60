package search

import (
	"context"

	"hvac-matcher/core/match"
	"hvac-matcher/core/schema"
	"hvac-matcher/core/unit"
	"hvac-matcher/feature/decode"

	"go.uber.org/zap"
)

// Catalog is any source of matcher entries. The database repository and
// the storage-backed document catalog both satisfy it.
type Catalog interface {
	Entries(ctx context.Context) ([]match.Entry, error)
}

// Service runs replacement searches over the configured catalog source.
type Service struct {
	catalog       Catalog
	decoder       *decode.Decoder
	logger        *zap.Logger
	tonsTolerance float64
}

// NewService creates a search service. tonsTolerance <= 0 falls back to
// the engine default.
func NewService(catalog Catalog, master *schema.Master, logger *zap.Logger, tonsTolerance float64) *Service {
	return &Service{
		catalog:       catalog,
		decoder:       decode.NewDecoder(master),
		logger:        logger,
		tonsTolerance: tonsTolerance,
	}
}

// Search runs the matcher over the current catalog. An empty result is not
// an error; only a catalog access failure is.
func (s *Service) Search(ctx context.Context, criteria match.Criteria) ([]match.Candidate, error) {
	if criteria.TonsTolerance <= 0 {
		criteria.TonsTolerance = s.tonsTolerance
	}

	entries, err := s.catalog.Entries(ctx)
	if err != nil {
		return nil, err
	}

	candidates := match.Search(criteria, entries)
	s.logger.Debug("Replacement search completed",
		zap.Int("catalog_size", len(entries)),
		zap.Int("candidates", len(candidates)))
	return candidates, nil
}

// SuggestResult is the outcome of the decode-then-search pipeline.
type SuggestResult struct {
	Decode     decode.Result     `json:"decode"`
	Criteria   match.Criteria    `json:"criteria"`
	Candidates []match.Candidate `json:"candidates"`
}

// Suggest decodes a data-plate text and searches the catalog for
// replacements matching the decoded specification. When decoding refuses
// the input, the result carries the decode diagnostics and no candidates.
func (s *Service) Suggest(ctx context.Context, text string, confidence float64) (*SuggestResult, error) {
	result := s.decoder.Decode(text, confidence)
	if !result.Success {
		return &SuggestResult{Decode: result, Candidates: []match.Candidate{}}, nil
	}

	criteria := CriteriaFromSpec(result.Spec)
	candidates, err := s.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}

	return &SuggestResult{
		Decode:     result,
		Criteria:   criteria,
		Candidates: candidates,
	}, nil
}

// CriteriaFromSpec maps a decoded specification onto search criteria.
// The decoded family and refrigerant are deliberately not filters: the
// unit being replaced is usually a competitor's, often on a phased-out
// refrigerant, and a replacement may come from any family with the right
// electrical and capacity profile.
func CriteriaFromSpec(spec *unit.Spec) match.Criteria {
	return match.Criteria{
		SystemType: spec.SystemType,
		Phase:      spec.Phase,
		Voltage:    spec.Voltage,
		Tons:       spec.EffectiveTons(),
		HeatingBTU: spec.HeatingBTU,
	}
}
