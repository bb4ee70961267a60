package schema

import (
	"sort"

	"hvac-matcher/core/unit"
)

// CodeValue is the semantic value behind one code of a position.
// Exactly the fields relevant to the position's dimension are set.
type CodeValue struct {
	// Label is a human-readable description (family names, series letters).
	Label string `json:"label,omitempty"`
	// Tons is the cooling capacity for capacity-position codes.
	Tons float64 `json:"tons,omitempty"`
	// BTU is the heating input in BTU/h for gas-heat codes.
	BTU int `json:"btu,omitempty"`
	// KW is the electric heat strip size for electric-heat codes.
	KW float64 `json:"kw,omitempty"`
	// Voltage and Phase describe electrical codes ("208-230", 3).
	Voltage string `json:"voltage,omitempty"`
	Phase   int    `json:"phase,omitempty"`
}

// Position is one fixed character slice of the model string, encoding a
// single semantic attribute through its code table.
type Position struct {
	Name string `json:"name"`
	// Start and End are the character offsets of the slice, half-open.
	Start int `json:"start"`
	End   int `json:"end"`
	// Codes maps a code string to its semantic value. Codes are unique per
	// position by construction (JSON object keys).
	Codes map[string]CodeValue `json:"codes"`
}

// Width returns the number of characters the position occupies.
func (p *Position) Width() int { return p.End - p.Start }

// CodeForTons returns the code whose value is exactly t tons.
func (p *Position) CodeForTons(t float64) (string, bool) {
	for code, v := range p.Codes {
		if v.Tons == t && t > 0 {
			return code, true
		}
	}
	return "", false
}

// CodeForBTU returns the code whose value is exactly b BTU/h.
func (p *Position) CodeForBTU(b int) (string, bool) {
	for code, v := range p.Codes {
		if v.BTU == b && b > 0 {
			return code, true
		}
	}
	return "", false
}

// CodeForKW returns the code whose value is exactly kw.
func (p *Position) CodeForKW(kw float64) (string, bool) {
	for code, v := range p.Codes {
		if v.KW == kw && kw > 0 {
			return code, true
		}
	}
	return "", false
}

// FamilyPosition is one entry of a family's ordered position list.
type FamilyPosition struct {
	Name string `json:"name"`
	// Required positions must resolve to a code or the build fails.
	Required bool `json:"required,omitempty"`
	// Option marks accessory positions that take part in merge modes.
	Option bool `json:"option,omitempty"`
	// Default is the code used when the request supplies nothing.
	Default string `json:"default,omitempty"`
}

// CodeRef names a specific code at a specific position, used in
// required-together accessory constraints.
type CodeRef struct {
	Position string `json:"position"`
	Code     string `json:"code"`
}

// Family is a vendor product line: the subset of positions it uses, in
// assembly order, plus its constraints.
type Family struct {
	Code       string          `json:"-"`
	Label      string          `json:"label"`
	SystemType unit.SystemType `json:"system_type"`
	Positions  []FamilyPosition `json:"positions"`

	// AllowedCapacity restricts the capacity codes available to the family.
	// Empty means every code of the capacity position is allowed.
	AllowedCapacity []string `json:"allowed_capacity,omitempty"`

	// RequiredTogether lists accessory code groups that must be selected
	// together or not at all.
	RequiredTogether [][]CodeRef `json:"required_together,omitempty"`
}

// HasPosition reports whether the family uses the named position.
func (f *Family) HasPosition(name string) bool {
	for _, fp := range f.Positions {
		if fp.Name == name {
			return true
		}
	}
	return false
}

// CapacityAllowed reports whether the capacity code is permitted for the
// family.
func (f *Family) CapacityAllowed(code string) bool {
	if len(f.AllowedCapacity) == 0 {
		return true
	}
	for _, c := range f.AllowedCapacity {
		if c == code {
			return true
		}
	}
	return false
}

// Master is the immutable master schema shared by all features.
type Master struct {
	Positions []Position         `json:"positions"`
	Families  map[string]*Family `json:"families"`
	Ladders   map[string]*Ladder `json:"ladders"`

	byName map[string]*Position
}

// Position returns the named position.
func (m *Master) Position(name string) (*Position, bool) {
	p, ok := m.byName[name]
	return p, ok
}

// Family returns the family for a family code.
func (m *Master) Family(code string) (*Family, bool) {
	f, ok := m.Families[code]
	return f, ok
}

// Ladder returns the named ladder.
func (m *Master) Ladder(name string) (*Ladder, bool) {
	l, ok := m.Ladders[name]
	return l, ok
}

// FamilyCodes returns all family codes in stable (sorted) order.
func (m *Master) FamilyCodes() []string {
	codes := make([]string, 0, len(m.Families))
	for c := range m.Families {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Ladder dimension names used by the build and search paths.
const (
	LadderTons   = "tons"
	LadderGasBTU = "gas_btu"
	LadderKW     = "electric_kw"
)

// Position names with engine-level meaning. The remaining positions are
// plain option positions known only to the schema document.
const (
	PosFamily       = "family"
	PosCapacity     = "capacity"
	PosVoltage      = "voltage"
	PosGasHeat      = "gas_heat"
	PosElectricHeat = "electric_heat"
	PosRefrigerant  = "refrigerant_system"
)
