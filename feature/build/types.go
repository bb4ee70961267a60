package build

import (
	"hvac-matcher/core/schema"
	"hvac-matcher/core/unit"
)

// MergeMode controls how requested accessories combine with the family's
// default options tail.
type MergeMode string

const (
	// MergeAdditive composes position-by-position: a requested accessory
	// wins its position, everything else keeps the family default.
	MergeAdditive MergeMode = "additive"
	// MergeReplace overwrites the default tail: positions without a
	// requested accessory fall back to their neutral (none) code, or to
	// the family default when the position has no neutral code.
	MergeReplace MergeMode = "replace"
)

// Request describes one build. Exact codes win over numeric values at the
// same position; numeric values resolve through the ladders.
type Request struct {
	// Family is the target family code, e.g. "DHG".
	Family string `json:"family"`

	// Codes supplies exact codes per position name.
	Codes map[string]string `json:"codes,omitempty"`

	// Tons requests a cooling capacity by value (fallback path).
	Tons float64 `json:"tons,omitempty"`
	// GasBTU requests a gas heating input by value (fallback path).
	GasBTU int `json:"gas_btu,omitempty"`
	// ElectricHeatKW requests an electric heat strip by value.
	ElectricHeatKW float64 `json:"electric_heat_kw,omitempty"`

	// Accessories maps option position names to codes.
	Accessories map[string]string `json:"accessories,omitempty"`
	// MergeMode defaults to additive.
	MergeMode MergeMode `json:"merge_mode,omitempty"`
}

// ResolvedCode reports the code chosen for one position and the semantic
// value behind it, so a 9.0-ton request that resolved to the 8.5-ton code
// is visible to the caller.
type ResolvedCode struct {
	Code  string           `json:"code"`
	Value schema.CodeValue `json:"value"`
	// Source tells whether the code was supplied, resolved from a numeric
	// value, or defaulted from the family definition.
	Source unit.Provenance `json:"source"`
}

// Result is a successful build.
type Result struct {
	// Model is the assembled model-number string.
	Model string `json:"model"`
	// Family is the family the model was built in.
	Family string `json:"family"`
	// Resolved maps each position name to the code actually used.
	Resolved map[string]ResolvedCode `json:"resolved"`

	// CapacityMatch and HeatingMatch record how numeric fallback related
	// to the request (exact when the exact-code path was used).
	CapacityMatch unit.MatchKind `json:"capacity_match,omitempty"`
	HeatingMatch  unit.MatchKind `json:"heating_match,omitempty"`
	ElectricMatch unit.MatchKind `json:"electric_match,omitempty"`

	// Spec is the canonical specification of the built unit.
	Spec *unit.Spec `json:"spec"`

	// Diagnostics carries non-fatal warnings (e.g. clamped fallbacks).
	Diagnostics []unit.Diagnostic `json:"diagnostics,omitempty"`
}
