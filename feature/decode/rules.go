package decode

import (
	"regexp"
	"strconv"
	"strings"

	"hvac-matcher/core/unit"
)

// tonThreshold separates tonnage readings from BTU readings: a bare number
// below it next to a TON token is tons, anything larger belongs to BTU
// extraction.
const tonThreshold = 50

// rule is one entry of an ordered extraction table. The first rule whose
// pattern matches wins the field; later rules never run. Extract returns
// false when the match turned out to be unusable (e.g. value out of range)
// so the next rule gets its turn.
type rule struct {
	name    string
	pattern *regexp.Regexp
	extract func(m []string, spec *unit.Spec) bool
}

// fieldRules groups the ordered rules for one semantic field. Order inside
// the table is the precedence policy: more specific patterns come first.
type fieldRules struct {
	field string
	rules []rule
}

var knownManufacturers = `DAIKIN|TRANE|CARRIER|LENNOX|YORK|GOODMAN|AMANA|RHEEM|RUUD|BRYANT|PAYNE|AMERICAN STANDARD`

// extractionTable is the complete, ordered rule set of the decoder. Keeping
// it as data makes the precedence auditable and testable in isolation.
var extractionTable = []fieldRules{
	{
		field: unit.FieldManufacturer,
		rules: []rule{
			{
				name:    "labeled manufacturer",
				pattern: regexp.MustCompile(`(?:MANUFACTURER|MANUFACTURED BY|MFG|MFR)[.:\s]+(` + knownManufacturers + `)`),
				extract: func(m []string, s *unit.Spec) bool { s.Manufacturer = title(m[1]); return true },
			},
			{
				name:    "bare brand name",
				pattern: regexp.MustCompile(`\b(` + knownManufacturers + `)\b`),
				extract: func(m []string, s *unit.Spec) bool { s.Manufacturer = title(m[1]); return true },
			},
		},
	},
	{
		field: unit.FieldModel,
		rules: []rule{
			{
				name:    "labeled model number",
				pattern: regexp.MustCompile(`(?:MODEL(?:\s*(?:NO|NUMBER))?|M/N|MDL)[.:#\s]+([A-Z0-9][A-Z0-9\-/]{4,})`),
				extract: func(m []string, s *unit.Spec) bool { s.Model = m[1]; return true },
			},
			{
				name:    "packaged unit shape",
				pattern: regexp.MustCompile(`\b(D[HS][GCH]\d{3}[0-9][A-Z]\d{3}[A-Z]{1,4})\b`),
				extract: func(m []string, s *unit.Spec) bool { s.Model = m[1]; return true },
			},
			{
				name:    "generic model shape",
				pattern: regexp.MustCompile(`\b([A-Z]{2,4}\d{3}[A-Z0-9\-]{3,})\b`),
				extract: func(m []string, s *unit.Spec) bool { s.Model = m[1]; return true },
			},
		},
	},
	{
		field: unit.FieldSerial,
		rules: []rule{
			{
				name:    "labeled serial number",
				pattern: regexp.MustCompile(`(?:SERIAL(?:\s*(?:NO|NUMBER))?|S/N|SER)[.:#\s]+([A-Z0-9\-]{5,})`),
				extract: func(m []string, s *unit.Spec) bool { s.Serial = m[1]; return true },
			},
		},
	},
	{
		field: unit.FieldHeatingBTU,
		rules: []rule{
			{
				name:    "labeled heating input",
				pattern: regexp.MustCompile(`(?:HEATING|HEAT|GAS)(?:\s*INPUT|\s*CAPACITY)?[.:\s]+(\d{4,7})\s*BTU`),
				extract: func(m []string, s *unit.Spec) bool {
					v, err := strconv.Atoi(m[1])
					if err != nil || v <= 0 {
						return false
					}
					s.HeatingBTU = v
					return true
				},
			},
		},
	},
	{
		field: unit.FieldCapacity,
		rules: []rule{
			{
				name:    "tonnage",
				pattern: regexp.MustCompile(`(\d{1,2}(?:\.\d+)?)[\s-]*TONS?\b`),
				extract: func(m []string, s *unit.Spec) bool {
					v, err := strconv.ParseFloat(m[1], 64)
					if err != nil || v <= 0 || v >= tonThreshold {
						return false
					}
					s.Tons = v
					return true
				},
			},
			{
				name:    "labeled cooling BTU",
				pattern: regexp.MustCompile(`COOLING(?:\s*CAPACITY)?[.:\s]+(\d{4,7})\s*BTU`),
				extract: func(m []string, s *unit.Spec) bool { return setCoolingBTU(m[1], s) },
			},
			{
				name:    "bare cooling BTU",
				pattern: regexp.MustCompile(`(\d{4,7})\s*BTU`),
				extract: func(m []string, s *unit.Spec) bool { return setCoolingBTU(m[1], s) },
			},
		},
	},
	{
		field: unit.FieldVoltage,
		rules: []rule{
			{
				name:    "slash notation",
				pattern: regexp.MustCompile(`(\d{3}(?:-\d{3})?)/([13])/(\d{2})`),
				extract: func(m []string, s *unit.Spec) bool {
					s.Voltage = m[1]
					s.Phase, _ = strconv.Atoi(m[2])
					return true
				},
			},
			{
				name:    "volt token",
				pattern: regexp.MustCompile(`(\d{3}(?:-\d{3})?)\s*V(?:OLTS?)?\b`),
				extract: func(m []string, s *unit.Spec) bool { s.Voltage = m[1]; return true },
			},
		},
	},
	{
		field: unit.FieldPhase,
		rules: []rule{
			{
				name:    "phase token",
				pattern: regexp.MustCompile(`([13])[\s-]*PH(?:ASE)?\b`),
				extract: func(m []string, s *unit.Spec) bool {
					if s.Phase != 0 {
						return true // slash notation already decided it
					}
					s.Phase, _ = strconv.Atoi(m[1])
					return true
				},
			},
		},
	},
	{
		field: unit.FieldSystemType,
		rules: []rule{
			{
				name:    "heat pump token",
				pattern: regexp.MustCompile(`HEAT\s*PUMP`),
				extract: func(m []string, s *unit.Spec) bool { s.SystemType = unit.SystemHeatPump; return true },
			},
			{
				name:    "gas electric token",
				pattern: regexp.MustCompile(`GAS[\s/-]*ELEC(?:TRIC)?|GAS\s*PACK`),
				extract: func(m []string, s *unit.Spec) bool { s.SystemType = unit.SystemGasElectric; return true },
			},
			{
				name:    "straight cooling token",
				pattern: regexp.MustCompile(`STRAIGHT\s*(?:A/?C|COOL)|COOLING\s*ONLY|A/C\s*ONLY`),
				extract: func(m []string, s *unit.Spec) bool { s.SystemType = unit.SystemStraightAC; return true },
			},
		},
	},
	{
		field: unit.FieldRefrigerant,
		rules: []rule{
			{
				name:    "refrigerant designation",
				pattern: regexp.MustCompile(`R[-\s]?(410A|407C|454B|32|22)\b`),
				extract: func(m []string, s *unit.Spec) bool { s.Refrigerant = "R-" + m[1]; return true },
			},
		},
	},
	{
		field: "seer2",
		rules: []rule{
			{
				name:    "seer2 labeled",
				pattern: regexp.MustCompile(`SEER2[.:\s]+(\d{1,2}(?:\.\d+)?)`),
				extract: func(m []string, s *unit.Spec) bool { s.SEER2 = parseRating(m[1]); return s.SEER2 > 0 },
			},
			{
				name:    "seer2 trailing",
				pattern: regexp.MustCompile(`(\d{1,2}(?:\.\d+)?)\s*SEER2\b`),
				extract: func(m []string, s *unit.Spec) bool { s.SEER2 = parseRating(m[1]); return s.SEER2 > 0 },
			},
		},
	},
	{
		field: "seer",
		rules: []rule{
			{
				name:    "seer labeled",
				pattern: regexp.MustCompile(`\bSEER\b[.:\s]+(\d{1,2}(?:\.\d+)?)`),
				extract: func(m []string, s *unit.Spec) bool { s.SEER = parseRating(m[1]); return s.SEER > 0 },
			},
			{
				name:    "seer trailing",
				pattern: regexp.MustCompile(`(\d{1,2}(?:\.\d+)?)\s*SEER\b`),
				extract: func(m []string, s *unit.Spec) bool { s.SEER = parseRating(m[1]); return s.SEER > 0 },
			},
		},
	},
	{
		field: "eer",
		rules: []rule{
			{
				name:    "eer labeled",
				pattern: regexp.MustCompile(`\bEER\b[.:\s]+(\d{1,2}(?:\.\d+)?)`),
				extract: func(m []string, s *unit.Spec) bool { s.EER = parseRating(m[1]); return s.EER > 0 },
			},
		},
	},
	{
		field: "hspf",
		rules: []rule{
			{
				name:    "hspf labeled",
				pattern: regexp.MustCompile(`\bHSPF2?\b[.:\s]+(\d{1,2}(?:\.\d+)?)`),
				extract: func(m []string, s *unit.Spec) bool { s.HSPF = parseRating(m[1]); return s.HSPF > 0 },
			},
		},
	},
	{
		field: unit.FieldCompressor,
		rules: []rule{
			{
				name:    "compressor type token",
				pattern: regexp.MustCompile(`(SCROLL|RECIPROCATING|ROTARY|TWO[\s-]*STAGE|VARIABLE[\s-]*SPEED)(?:\s*COMPRESSOR)?`),
				extract: func(m []string, s *unit.Spec) bool { s.Compressor = strings.ToLower(m[1]); return true },
			},
		},
	},
	{
		field: "manufacture_date",
		rules: []rule{
			{
				name:    "labeled date year-month",
				pattern: regexp.MustCompile(`(?:MFG|MFR|MANUFACTURE)[.\s]*DATE[.:\s]+(\d{4})[-/](\d{1,2})\b`),
				extract: func(m []string, s *unit.Spec) bool { return setDate(m[1], m[2], s) },
			},
			{
				name:    "labeled date month-year",
				pattern: regexp.MustCompile(`(?:MFG|MFR|MANUFACTURE)[.\s]*DATE[.:\s]+(\d{1,2})[-/](\d{4})\b`),
				extract: func(m []string, s *unit.Spec) bool { return setDate(m[2], m[1], s) },
			},
		},
	},
}

func setCoolingBTU(raw string, s *unit.Spec) bool {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 12000 {
		return false
	}
	// The heating input also reads as "<number> BTU"; skip it so a bare
	// BTU rule cannot swallow the heating figure as cooling capacity.
	if v == s.HeatingBTU {
		return false
	}
	s.CoolingBTU = v
	return true
}

func parseRating(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 || v > 30 {
		return 0
	}
	return v
}

func setDate(year, month string, s *unit.Spec) bool {
	y, err := strconv.Atoi(year)
	if err != nil || y < 1970 || y > 2100 {
		return false
	}
	mo, err := strconv.Atoi(month)
	if err != nil || mo < 1 || mo > 12 {
		return false
	}
	s.ManufactureDate = strconv.Itoa(y) + "-" + pad2(mo)
	return true
}

func pad2(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

func title(s string) string {
	s = strings.ToLower(s)
	parts := strings.Fields(s)
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
