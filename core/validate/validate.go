package validate

import (
	"fmt"

	"hvac-matcher/core/schema"
	"hvac-matcher/core/unit"
)

// Check validates a canonical specification against the constraints of the
// named family. It returns one diagnostic per issue found and an empty list
// when the specification is fully consistent.
func Check(spec *unit.Spec, familyCode string, master *schema.Master) []unit.Diagnostic {
	var diags []unit.Diagnostic

	fam, ok := master.Family(familyCode)
	if !ok {
		return []unit.Diagnostic{unit.Err("family", "unknown family %q", familyCode)}
	}

	if spec.SystemType != "" && spec.SystemType != fam.SystemType {
		diags = append(diags, unit.Err(unit.FieldSystemType,
			"specification is %s but family %s is %s", spec.SystemType, fam.Code, fam.SystemType))
	}

	diags = append(diags, checkCapacity(spec, fam, master)...)
	diags = append(diags, checkHeating(spec, fam)...)
	diags = append(diags, checkAccessories(spec, fam)...)

	return diags
}

// checkCapacity verifies the capacity is encodable for the family: the tons
// value must map to a capacity code inside the family's allowed set.
func checkCapacity(spec *unit.Spec, fam *schema.Family, master *schema.Master) []unit.Diagnostic {
	tons := spec.EffectiveTons()
	if tons <= 0 {
		return nil
	}

	capPos, ok := master.Position(schema.PosCapacity)
	if !ok {
		return nil
	}

	code, ok := capPos.CodeForTons(tons)
	if !ok {
		return []unit.Diagnostic{{
			Severity:   unit.SeverityError,
			Field:      unit.FieldCapacity,
			Message:    fmt.Sprintf("no capacity code for %.1f tons", tons),
			Suggestion: "request a build with numeric fallback to use the nearest supported size",
		}}
	}
	if !fam.CapacityAllowed(code) {
		return []unit.Diagnostic{unit.Err(unit.FieldCapacity,
			"capacity code %s (%.1f tons) is not offered in family %s", code, tons, fam.Code)}
	}
	return nil
}

// checkHeating verifies the heating fields match the family's system type:
// gas heat belongs to gas/electric units and nothing else; electric heat
// strips never appear on a gas/electric chassis.
func checkHeating(spec *unit.Spec, fam *schema.Family) []unit.Diagnostic {
	var diags []unit.Diagnostic

	if fam.SystemType == unit.SystemGasElectric {
		if spec.HeatingBTU <= 0 {
			diags = append(diags, unit.Diagnostic{
				Severity:   unit.SeverityError,
				Field:      unit.FieldHeatingBTU,
				Message:    fmt.Sprintf("family %s is gas/electric but no gas heating input is set", fam.Code),
				Suggestion: "supply a gas heating BTU value",
			})
		}
		if spec.ElectricHeatKW > 0 {
			diags = append(diags, unit.Err("electric_heat_kw",
				"electric heat strip set on gas/electric family %s", fam.Code))
		}
		return diags
	}

	if spec.HeatingBTU > 0 {
		diags = append(diags, unit.Err(unit.FieldHeatingBTU,
			"gas heating input set but family %s is %s", fam.Code, fam.SystemType))
	}
	return diags
}

// checkAccessories enforces required-together accessory groups: every code
// of a group must be selected, or none of them.
func checkAccessories(spec *unit.Spec, fam *schema.Family) []unit.Diagnostic {
	var diags []unit.Diagnostic

	for _, group := range fam.RequiredTogether {
		selected := 0
		for _, ref := range group {
			if spec.Accessories[ref.Position] == ref.Code {
				selected++
			}
		}
		if selected != 0 && selected != len(group) {
			diags = append(diags, unit.Err("accessories",
				"accessory group %s must be selected together or not at all", describeGroup(group)))
		}
	}
	return diags
}

func describeGroup(group []schema.CodeRef) string {
	s := ""
	for i, ref := range group {
		if i > 0 {
			s += "+"
		}
		s += ref.Position + "=" + ref.Code
	}
	return s
}
