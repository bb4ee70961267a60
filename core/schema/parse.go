package schema

import (
	"fmt"
	"strings"

	"hvac-matcher/core/unit"
)

// ParseModel decodes a model string assembled against this schema back into
// a canonical specification. It is the inverse of the build path for exact
// codes: capacity, system type and family survive the round trip unchanged.
func (m *Master) ParseModel(model string) (*unit.Spec, error) {
	model = strings.ToUpper(strings.TrimSpace(model))
	if model == "" {
		return nil, fmt.Errorf("empty model string")
	}

	famPos, ok := m.byName[PosFamily]
	if !ok {
		return nil, fmt.Errorf("schema has no family position")
	}
	if len(model) < famPos.End {
		return nil, fmt.Errorf("model %q shorter than family prefix", model)
	}

	famCode := model[famPos.Start:famPos.End]
	fam, ok := m.Families[famCode]
	if !ok {
		return nil, fmt.Errorf("model %q: unknown family prefix %q", model, famCode)
	}

	spec := &unit.Spec{
		Model:      model,
		Family:     famCode,
		SystemType: fam.SystemType,
	}

	for _, fp := range fam.Positions {
		pos := m.byName[fp.Name]
		if len(model) < pos.End {
			if fp.Required {
				return nil, fmt.Errorf("model %q truncated before position %q", model, fp.Name)
			}
			continue
		}
		code := model[pos.Start:pos.End]
		val, known := pos.Codes[code]
		if !known {
			if fp.Required {
				return nil, fmt.Errorf("model %q: code %q not valid at position %q", model, code, fp.Name)
			}
			continue
		}

		switch fp.Name {
		case PosFamily:
			// Already handled via the prefix.
		case PosCapacity:
			spec.Tons = val.Tons
		case PosVoltage:
			spec.Voltage = val.Voltage
			spec.Phase = val.Phase
		case PosGasHeat:
			spec.HeatingBTU = val.BTU
		case PosElectricHeat:
			spec.ElectricHeatKW = val.KW
		case PosRefrigerant:
			spec.Refrigerant = val.Label
		default:
			if spec.Accessories == nil {
				spec.Accessories = make(map[string]string)
			}
			spec.Accessories[fp.Name] = code
		}
		spec.Tag(fp.Name, unit.ProvenanceDecoded)
	}

	return spec, nil
}
