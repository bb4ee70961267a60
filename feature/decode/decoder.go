package decode

import (
	"hvac-matcher/core/schema"
	"hvac-matcher/core/unit"
)

// Quality floors for OCR input. Below ConfidenceFloor (or MinTextLength)
// decoding fails outright; below LowQualityThreshold it proceeds with a
// warning attached.
const (
	ConfidenceFloor     = 0.2
	LowQualityThreshold = 0.7
	MinTextLength       = 5
)

// Result is the outcome of a decode call. On failure Spec is nil and
// Success is false; no partially-guessed specification is ever returned.
type Result struct {
	Success     bool              `json:"success"`
	Spec        *unit.Spec        `json:"spec,omitempty"`
	Confidence  float64           `json:"confidence"`
	Diagnostics []unit.Diagnostic `json:"diagnostics,omitempty"`
}

// Decoder extracts canonical specifications from normalized plate text.
// It reads the master schema to enrich a recognized vendor model number
// with family and position semantics; it never mutates the schema.
type Decoder struct {
	master *schema.Master
}

// NewDecoder creates a decoder over the shared master schema.
func NewDecoder(master *schema.Master) *Decoder {
	return &Decoder{master: master}
}

// Decode runs the ordered extraction tables over the text. confidence is
// the OCR engine's reported score, clamped to [0,1].
func (d *Decoder) Decode(text string, confidence float64) Result {
	confidence = clamp01(confidence)
	cleaned := Normalize(text)

	if confidence < ConfidenceFloor || len(cleaned) < MinTextLength {
		return Result{
			Success:    false,
			Confidence: confidence,
			Diagnostics: []unit.Diagnostic{{
				Severity:   unit.SeverityError,
				Field:      "input",
				Message:    "input below quality floor, refusing to guess",
				Suggestion: "retake the photo with better lighting and focus",
			}},
		}
	}

	spec := &unit.Spec{}
	for _, fr := range extractionTable {
		d.applyField(fr, cleaned, spec)
	}

	// A model number in our own numbering carries more structure than the
	// loose plate text; let the schema fill what the plate left out.
	if spec.Model != "" {
		if parsed, err := d.master.ParseModel(spec.Model); err == nil {
			mergeParsed(spec, parsed)
		}
	}

	diags := expectationWarnings(spec)
	if confidence < LowQualityThreshold {
		diags = append(diags, unit.Diagnostic{
			Severity:   unit.SeverityWarning,
			Field:      "input",
			Message:    "low OCR confidence, extracted values may be unreliable",
			Suggestion: "retake the photo if key fields are missing",
		})
	}

	return Result{
		Success:     true,
		Spec:        spec,
		Confidence:  confidence,
		Diagnostics: diags,
	}
}

// applyField runs one field's ordered rules; the first rule that both
// matches and extracts a usable value wins.
func (d *Decoder) applyField(fr fieldRules, text string, spec *unit.Spec) {
	for _, r := range fr.rules {
		for _, m := range r.pattern.FindAllStringSubmatch(text, -1) {
			if r.extract(m, spec) {
				spec.Tag(fr.field, unit.ProvenanceDecoded)
				return
			}
		}
	}
}

// mergeParsed fills gaps in spec with schema-derived values. Values read
// off the plate win over values decoded from the model number.
func mergeParsed(spec, parsed *unit.Spec) {
	spec.Family = parsed.Family
	spec.Tag("family", unit.ProvenanceDecoded)
	if spec.SystemType == "" {
		spec.SystemType = parsed.SystemType
		spec.Tag(unit.FieldSystemType, unit.ProvenanceDecoded)
	}
	if spec.Tons == 0 && spec.CoolingBTU == 0 && parsed.Tons > 0 {
		spec.Tons = parsed.Tons
		spec.Tag(unit.FieldCapacity, unit.ProvenanceDecoded)
	}
	if spec.HeatingBTU == 0 && parsed.HeatingBTU > 0 {
		spec.HeatingBTU = parsed.HeatingBTU
		spec.Tag(unit.FieldHeatingBTU, unit.ProvenanceDecoded)
	}
	if spec.Voltage == "" && parsed.Voltage != "" {
		spec.Voltage = parsed.Voltage
		spec.Phase = parsed.Phase
		spec.Tag(unit.FieldVoltage, unit.ProvenanceDecoded)
	}
	if spec.Refrigerant == "" && parsed.Refrigerant != "" {
		spec.Refrigerant = parsed.Refrigerant
		spec.Tag(unit.FieldRefrigerant, unit.ProvenanceDecoded)
	}
	if spec.ElectricHeatKW == 0 && parsed.ElectricHeatKW > 0 {
		spec.ElectricHeatKW = parsed.ElectricHeatKW
	}
}

// expectationWarnings reports the plate fields a technician expects to see
// but the decoder could not find.
func expectationWarnings(spec *unit.Spec) []unit.Diagnostic {
	var diags []unit.Diagnostic
	if spec.Model == "" {
		diags = append(diags, unit.Warn(unit.FieldModel, "no model number found on plate"))
	}
	if spec.Manufacturer == "" {
		diags = append(diags, unit.Warn(unit.FieldManufacturer, "no manufacturer found on plate"))
	}
	if spec.Tons == 0 && spec.CoolingBTU == 0 {
		diags = append(diags, unit.Warn(unit.FieldCapacity, "no cooling capacity found on plate"))
	}
	if spec.Voltage == "" {
		diags = append(diags, unit.Warn(unit.FieldVoltage, "no voltage rating found on plate"))
	}
	return diags
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
