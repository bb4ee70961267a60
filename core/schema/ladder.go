package schema

import (
	"hvac-matcher/core/unit"
)

// Ladder is an ordered list of discrete supported values for a continuous
// dimension (tons, BTU/h). Values are strictly ascending.
type Ladder struct {
	// Dimension names what the values measure ("tons", "btu").
	Dimension string `json:"dimension"`
	// Values are the supported values, ascending.
	Values []float64 `json:"values"`
}

// Resolve maps a requested value to the nearest supported value.
//
// Values outside the ladder bounds clamp to the nearest bound; there is no
// extrapolation. Between two neighbours the closer one wins; an exact tie
// resolves to the lower neighbour (a replacement that is slightly undersized
// is preferred over overshooting, and it keeps resolution consistent with
// the 9.0-ton -> 8.5-ton catalog behaviour technicians expect).
func (l *Ladder) Resolve(v float64) (float64, unit.MatchKind) {
	if len(l.Values) == 0 {
		return 0, unit.MatchClamped
	}

	lo := l.Values[0]
	hi := l.Values[len(l.Values)-1]
	if v <= lo {
		if v == lo {
			return lo, unit.MatchExact
		}
		return lo, unit.MatchClamped
	}
	if v >= hi {
		if v == hi {
			return hi, unit.MatchExact
		}
		return hi, unit.MatchClamped
	}

	// v is strictly inside the bounds; find the bracketing neighbours.
	for i := 1; i < len(l.Values); i++ {
		upper := l.Values[i]
		if v > upper {
			continue
		}
		if v == upper {
			return upper, unit.MatchExact
		}
		lower := l.Values[i-1]
		if v-lower <= upper-v {
			return lower, unit.MatchRoundedDown
		}
		return upper, unit.MatchRoundedUp
	}

	// Unreachable given the bound checks above.
	return hi, unit.MatchClamped
}

// Contains reports whether v is an exact ladder value.
func (l *Ladder) Contains(v float64) bool {
	for _, lv := range l.Values {
		if lv == v {
			return true
		}
	}
	return false
}

// Nearest returns the supported value closest to v, ties toward the lower
// neighbour. Unlike Resolve it does not report the match kind.
func (l *Ladder) Nearest(v float64) float64 {
	resolved, _ := l.Resolve(v)
	return resolved
}
