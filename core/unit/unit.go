package unit

// SystemType identifies the broad product category of a unit.
type SystemType string

const (
	SystemHeatPump    SystemType = "heat_pump"
	SystemGasElectric SystemType = "gas_electric"
	SystemStraightAC  SystemType = "straight_ac"
)

// IsValid reports whether the system type is one of the known categories.
func (s SystemType) IsValid() bool {
	switch s {
	case SystemHeatPump, SystemGasElectric, SystemStraightAC:
		return true
	default:
		return false
	}
}

// Provenance records where a field value came from.
type Provenance string

const (
	// ProvenanceDecoded marks values extracted from data-plate text.
	ProvenanceDecoded Provenance = "decoded"
	// ProvenanceSupplied marks values provided directly by the caller.
	ProvenanceSupplied Provenance = "supplied"
	// ProvenanceDefaulted marks values filled from schema defaults.
	ProvenanceDefaulted Provenance = "defaulted"
)

// MatchKind classifies how a ladder-resolved value relates to the requested value.
type MatchKind string

const (
	MatchExact       MatchKind = "exact"
	MatchRoundedUp   MatchKind = "rounded_up"
	MatchRoundedDown MatchKind = "rounded_down"
	MatchClamped     MatchKind = "clamped"
)

// Field names used in diagnostics and provenance maps.
const (
	FieldManufacturer = "manufacturer"
	FieldModel        = "model"
	FieldSerial       = "serial"
	FieldCapacity     = "capacity"
	FieldHeatingBTU   = "heating_btu"
	FieldVoltage      = "voltage"
	FieldPhase        = "phase"
	FieldSystemType   = "system_type"
	FieldRefrigerant  = "refrigerant"
	FieldCompressor   = "compressor"
)

// Spec is the canonical specification of an HVAC unit.
// All fields are optional; zero values mean "unknown".
type Spec struct {
	Manufacturer string `json:"manufacturer,omitempty"`
	Model        string `json:"model,omitempty"`
	Serial       string `json:"serial,omitempty"`
	Family       string `json:"family,omitempty"`

	// Tons is the cooling capacity in tons of refrigeration.
	Tons float64 `json:"tons,omitempty"`
	// CoolingBTU is the cooling capacity in BTU/h when the plate lists BTU
	// rather than tonnage. 12000 BTU/h corresponds to one ton.
	CoolingBTU int `json:"cooling_btu,omitempty"`
	// HeatingBTU is the gas heating input in BTU/h (gas/electric units).
	HeatingBTU int `json:"heating_btu,omitempty"`
	// ElectricHeatKW is the electric heat strip size (heat pump / straight AC).
	ElectricHeatKW float64 `json:"electric_heat_kw,omitempty"`

	Voltage string `json:"voltage,omitempty"`
	Phase   int    `json:"phase,omitempty"`

	SystemType  SystemType `json:"system_type,omitempty"`
	Refrigerant string     `json:"refrigerant,omitempty"`
	Compressor  string     `json:"compressor,omitempty"`

	SEER  float64 `json:"seer,omitempty"`
	SEER2 float64 `json:"seer2,omitempty"`
	EER   float64 `json:"eer,omitempty"`
	HSPF  float64 `json:"hspf,omitempty"`

	// ManufactureDate is the plate date in YYYY-MM form when decodable.
	ManufactureDate string `json:"manufacture_date,omitempty"`

	// Accessories maps an option position name to the selected code.
	Accessories map[string]string `json:"accessories,omitempty"`

	// Provenance maps a field name to how its value was obtained.
	Provenance map[string]Provenance `json:"provenance,omitempty"`
}

// EffectiveTons returns the capacity in tons, deriving it from CoolingBTU
// when only BTU is known. Returns 0 when capacity is unknown.
func (s *Spec) EffectiveTons() float64 {
	if s.Tons > 0 {
		return s.Tons
	}
	if s.CoolingBTU > 0 {
		return float64(s.CoolingBTU) / 12000.0
	}
	return 0
}

// Tag records provenance for a named field, allocating the map on first use.
func (s *Spec) Tag(field string, p Provenance) {
	if s.Provenance == nil {
		s.Provenance = make(map[string]Provenance)
	}
	s.Provenance[field] = p
}

// IsEmpty reports whether no semantic field is populated.
func (s *Spec) IsEmpty() bool {
	return s.Manufacturer == "" && s.Model == "" && s.Serial == "" &&
		s.Family == "" && s.Tons == 0 && s.CoolingBTU == 0 &&
		s.HeatingBTU == 0 && s.ElectricHeatKW == 0 && s.Voltage == "" &&
		s.Phase == 0 && s.SystemType == "" && s.Refrigerant == "" &&
		s.Compressor == "" && s.SEER == 0 && s.SEER2 == 0 && s.EER == 0 &&
		s.HSPF == 0 && s.ManufactureDate == "" && len(s.Accessories) == 0
}
