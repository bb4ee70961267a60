package match

import "hvac-matcher/core/unit"

// DefaultTonsTolerance is the band around the requested tonnage inside
// which a catalog unit is considered a capacity match.
const DefaultTonsTolerance = 0.5

// Criteria is the replacement search request. Zero-valued fields do not
// filter. SystemType, Phase and Family are hard filters; Voltage matches by
// band membership; Tons by tolerance band; HeatingBTU by nearest-available
// fallback.
type Criteria struct {
	SystemType unit.SystemType `json:"system_type,omitempty"`
	Phase      int             `json:"phase,omitempty"`
	Family     string          `json:"family,omitempty"`
	Voltage    string          `json:"voltage,omitempty"`

	Tons float64 `json:"tons,omitempty"`
	// TonsTolerance overrides DefaultTonsTolerance when positive.
	TonsTolerance float64 `json:"tons_tolerance,omitempty"`

	HeatingBTU int `json:"heating_btu,omitempty"`

	Refrigerant string `json:"refrigerant,omitempty"`

	// Limit caps the number of candidates returned. Zero means no cap.
	Limit int `json:"limit,omitempty"`
}

// Entry is one catalog unit offered to the engine. Order of entries is the
// catalog insertion order and is the final tie-break for ranking.
type Entry struct {
	Model  string    `json:"model"`
	Family string    `json:"family"`
	Spec   unit.Spec `json:"spec"`
}

// Candidate is a ranked search result.
type Candidate struct {
	Model  string    `json:"model"`
	Family string    `json:"family"`
	Spec   unit.Spec `json:"spec"`

	// CapacityDelta is |candidate tons - requested tons| (0 when tonnage
	// was not part of the criteria).
	CapacityDelta float64 `json:"capacity_delta"`
	// HeatingDelta is |candidate BTU - requested BTU|.
	HeatingDelta int `json:"heating_delta"`
	// HeatingFallback is true when the candidate was kept through the
	// nearest-available heating fallback rather than an exact match.
	HeatingFallback bool `json:"heating_fallback,omitempty"`
}
