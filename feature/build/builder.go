package build

import (
	"fmt"
	"sort"
	"strings"

	"hvac-matcher/core/schema"
	"hvac-matcher/core/unit"
	"hvac-matcher/core/validate"
)

// neutralCodes are the "none selected" codes an option position may carry.
var neutralCodes = []string{"X", "000"}

// Builder resolves build requests against the shared master schema.
type Builder struct {
	master *schema.Master
}

// NewBuilder creates a builder over the shared master schema.
func NewBuilder(master *schema.Master) *Builder {
	return &Builder{master: master}
}

// Build assembles a model number for the request. It fails with a
// *unit.SchemaViolationError when a required position cannot be resolved;
// in that case no model string is produced.
func (b *Builder) Build(req Request) (*Result, error) {
	fam, ok := b.master.Family(req.Family)
	if !ok {
		return nil, &unit.SchemaViolationError{
			Family: req.Family, Position: schema.PosFamily, Reason: "unknown family",
		}
	}

	mode := req.MergeMode
	if mode == "" {
		mode = MergeAdditive
	}
	if mode != MergeAdditive && mode != MergeReplace {
		return nil, fmt.Errorf("unknown merge mode %q", mode)
	}

	result := &Result{
		Family:   fam.Code,
		Resolved: make(map[string]ResolvedCode, len(fam.Positions)),
	}

	var sb strings.Builder
	for _, fp := range fam.Positions {
		pos, _ := b.master.Position(fp.Name)

		rc, err := b.resolvePosition(req, fam, fp, pos, mode, result)
		if err != nil {
			return nil, err
		}
		if rc == nil {
			// Optional position with nothing to encode; legal only past
			// the end of the string.
			break
		}

		result.Resolved[fp.Name] = *rc
		sb.WriteString(rc.Code)
	}

	result.Model = sb.String()

	spec, err := b.master.ParseModel(result.Model)
	if err != nil {
		// A build that assembled codes the schema cannot read back is a
		// schema inconsistency, not a caller error.
		return nil, fmt.Errorf("built model %q failed schema readback: %w", result.Model, err)
	}
	for f := range spec.Provenance {
		spec.Provenance[f] = unit.ProvenanceSupplied
	}
	result.Spec = spec

	if diags := validate.Check(spec, fam.Code, b.master); len(diags) > 0 {
		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	return result, nil
}

// resolvePosition picks the code for one family position. Resolution order:
// exact supplied code, numeric ladder fallback, accessory merge, family
// default. A nil ResolvedCode with nil error means the optional position is
// omitted.
func (b *Builder) resolvePosition(req Request, fam *schema.Family, fp schema.FamilyPosition, pos *schema.Position, mode MergeMode, result *Result) (*ResolvedCode, error) {
	if fp.Name == schema.PosFamily {
		return &ResolvedCode{Code: fam.Code, Value: pos.Codes[fam.Code], Source: unit.ProvenanceSupplied}, nil
	}

	if exact, ok := req.Codes[fp.Name]; ok && exact != "" {
		val, known := pos.Codes[exact]
		if !known {
			return nil, &unit.SchemaViolationError{
				Family: fam.Code, Position: fp.Name,
				Reason: fmt.Sprintf("code %q not in position table", exact),
			}
		}
		if fp.Name == schema.PosCapacity && !fam.CapacityAllowed(exact) {
			return nil, &unit.SchemaViolationError{
				Family: fam.Code, Position: fp.Name,
				Reason: fmt.Sprintf("capacity code %q not offered in this family", exact),
			}
		}
		recordExactKind(fp.Name, result)
		return &ResolvedCode{Code: exact, Value: val, Source: unit.ProvenanceSupplied}, nil
	}

	if rc, handled, err := b.resolveNumeric(req, fam, fp, pos, result); handled {
		return rc, err
	}

	if fp.Option {
		return b.resolveAccessory(req, fam, fp, pos, mode)
	}

	if fp.Default != "" {
		return &ResolvedCode{Code: fp.Default, Value: pos.Codes[fp.Default], Source: unit.ProvenanceDefaulted}, nil
	}

	if fp.Required {
		return nil, &unit.SchemaViolationError{
			Family: fam.Code, Position: fp.Name, Reason: "no code supplied and no default",
		}
	}
	return nil, nil
}

// resolveNumeric handles the ladder fallback path for the laddered
// dimensions. handled is false when the position is not laddered or the
// request carries no value for it.
func (b *Builder) resolveNumeric(req Request, fam *schema.Family, fp schema.FamilyPosition, pos *schema.Position, result *Result) (*ResolvedCode, bool, error) {
	switch fp.Name {
	case schema.PosCapacity:
		if req.Tons <= 0 {
			return nil, false, nil
		}
		ladder := b.capacityLadder(fam, pos)
		resolved, kind := ladder.Resolve(req.Tons)
		code, ok := pos.CodeForTons(resolved)
		if !ok {
			return nil, true, &unit.SchemaViolationError{
				Family: fam.Code, Position: fp.Name,
				Reason: fmt.Sprintf("no capacity code for %.1f tons", resolved),
			}
		}
		result.CapacityMatch = kind
		b.warnIfClamped(result, unit.FieldCapacity, kind, req.Tons, resolved)
		return &ResolvedCode{Code: code, Value: pos.Codes[code], Source: unit.ProvenanceSupplied}, true, nil

	case schema.PosGasHeat:
		if req.GasBTU <= 0 {
			return nil, false, nil
		}
		ladder := b.valueLadder(schema.LadderGasBTU, pos, func(v schema.CodeValue) float64 { return float64(v.BTU) })
		resolved, kind := ladder.Resolve(float64(req.GasBTU))
		code, ok := pos.CodeForBTU(int(resolved))
		if !ok {
			return nil, true, &unit.SchemaViolationError{
				Family: fam.Code, Position: fp.Name,
				Reason: fmt.Sprintf("no heating code for %d BTU", int(resolved)),
			}
		}
		result.HeatingMatch = kind
		b.warnIfClamped(result, unit.FieldHeatingBTU, kind, float64(req.GasBTU), resolved)
		return &ResolvedCode{Code: code, Value: pos.Codes[code], Source: unit.ProvenanceSupplied}, true, nil

	case schema.PosElectricHeat:
		if req.ElectricHeatKW <= 0 {
			return nil, false, nil
		}
		ladder := b.valueLadder(schema.LadderKW, pos, func(v schema.CodeValue) float64 { return v.KW })
		resolved, kind := ladder.Resolve(req.ElectricHeatKW)
		code, ok := pos.CodeForKW(resolved)
		if !ok {
			return nil, true, &unit.SchemaViolationError{
				Family: fam.Code, Position: fp.Name,
				Reason: fmt.Sprintf("no electric heat code for %.1f kW", resolved),
			}
		}
		result.ElectricMatch = kind
		b.warnIfClamped(result, "electric_heat_kw", kind, req.ElectricHeatKW, resolved)
		return &ResolvedCode{Code: code, Value: pos.Codes[code], Source: unit.ProvenanceSupplied}, true, nil
	}
	return nil, false, nil
}

// capacityLadder restricts the tonnage ladder to the sizes the family
// actually offers, so fallback resolution can never land on a code the
// validator would reject.
func (b *Builder) capacityLadder(fam *schema.Family, pos *schema.Position) *schema.Ladder {
	base, ok := b.master.Ladder(schema.LadderTons)
	if !ok {
		return b.valueLadder("", pos, func(v schema.CodeValue) float64 { return v.Tons })
	}

	values := make([]float64, 0, len(base.Values))
	for _, v := range base.Values {
		code, ok := pos.CodeForTons(v)
		if !ok || !fam.CapacityAllowed(code) {
			continue
		}
		values = append(values, v)
	}
	return &schema.Ladder{Dimension: base.Dimension, Values: values}
}

// valueLadder prefers the master ladder and falls back to the values
// present in the position's code table.
func (b *Builder) valueLadder(name string, pos *schema.Position, value func(schema.CodeValue) float64) *schema.Ladder {
	if name != "" {
		if l, ok := b.master.Ladder(name); ok {
			return l
		}
	}
	var values []float64
	for _, v := range pos.Codes {
		if f := value(v); f > 0 {
			values = append(values, f)
		}
	}
	sort.Float64s(values)
	return &schema.Ladder{Values: values}
}

// resolveAccessory merges one option position according to the merge mode.
func (b *Builder) resolveAccessory(req Request, fam *schema.Family, fp schema.FamilyPosition, pos *schema.Position, mode MergeMode) (*ResolvedCode, error) {
	if code, ok := req.Accessories[fp.Name]; ok && code != "" {
		val, known := pos.Codes[code]
		if !known {
			return nil, &unit.SchemaViolationError{
				Family: fam.Code, Position: fp.Name,
				Reason: fmt.Sprintf("accessory code %q not in position table", code),
			}
		}
		return &ResolvedCode{Code: code, Value: val, Source: unit.ProvenanceSupplied}, nil
	}

	if mode == MergeReplace {
		for _, n := range neutralCodes {
			if val, ok := pos.Codes[n]; ok {
				return &ResolvedCode{Code: n, Value: val, Source: unit.ProvenanceDefaulted}, nil
			}
		}
	}

	if fp.Default != "" {
		return &ResolvedCode{Code: fp.Default, Value: pos.Codes[fp.Default], Source: unit.ProvenanceDefaulted}, nil
	}
	return nil, nil
}

func recordExactKind(position string, result *Result) {
	switch position {
	case schema.PosCapacity:
		result.CapacityMatch = unit.MatchExact
	case schema.PosGasHeat:
		result.HeatingMatch = unit.MatchExact
	case schema.PosElectricHeat:
		result.ElectricMatch = unit.MatchExact
	}
}

func (b *Builder) warnIfClamped(result *Result, field string, kind unit.MatchKind, requested, resolved float64) {
	if kind != unit.MatchClamped {
		return
	}
	result.Diagnostics = append(result.Diagnostics, unit.Diagnostic{
		Severity:   unit.SeverityWarning,
		Field:      field,
		Message:    fmt.Sprintf("requested %.1f is outside the supported range, clamped to %.1f", requested, resolved),
		Suggestion: "consider a different family or a multi-unit arrangement",
	})
}
