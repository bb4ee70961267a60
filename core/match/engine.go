package match

import (
	"math"
	"sort"
)

// Search ranks the catalog against the criteria. It never fails; when no
// entry qualifies it returns an empty slice.
func Search(criteria Criteria, catalog []Entry) []Candidate {
	tolerance := criteria.TonsTolerance
	if tolerance <= 0 {
		tolerance = DefaultTonsTolerance
	}

	type scored struct {
		Candidate
		index int
	}

	var survivors []scored
	for i, e := range catalog {
		if !passesHardFilters(criteria, e) {
			continue
		}

		c := scored{index: i}
		c.Model = e.Model
		c.Family = e.Family
		c.Spec = e.Spec

		if criteria.Tons > 0 {
			delta := math.Abs(e.Spec.EffectiveTons() - criteria.Tons)
			if delta > tolerance {
				continue
			}
			c.CapacityDelta = delta
		}

		survivors = append(survivors, c)
	}

	// Heating fallback: inside each family/tonnage bracket keep only the
	// entries carrying the heating value nearest to the request. Exact
	// matches are their own nearest value, so they pass untouched.
	if criteria.HeatingBTU > 0 {
		nearest := make(map[bracket]int)
		for _, c := range survivors {
			b := bracketOf(c.Candidate)
			d := abs(c.Spec.HeatingBTU - criteria.HeatingBTU)
			best, seen := nearest[b]
			if !seen || d < abs(best-criteria.HeatingBTU) ||
				(d == abs(best-criteria.HeatingBTU) && c.Spec.HeatingBTU < best) {
				nearest[b] = c.Spec.HeatingBTU
			}
		}

		kept := survivors[:0]
		for _, c := range survivors {
			if c.Spec.HeatingBTU != nearest[bracketOf(c.Candidate)] {
				continue
			}
			c.HeatingDelta = abs(c.Spec.HeatingBTU - criteria.HeatingBTU)
			c.HeatingFallback = c.HeatingDelta != 0
			kept = append(kept, c)
		}
		survivors = kept
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		if survivors[i].CapacityDelta != survivors[j].CapacityDelta {
			return survivors[i].CapacityDelta < survivors[j].CapacityDelta
		}
		if survivors[i].HeatingDelta != survivors[j].HeatingDelta {
			return survivors[i].HeatingDelta < survivors[j].HeatingDelta
		}
		return survivors[i].index < survivors[j].index
	})

	if criteria.Limit > 0 && len(survivors) > criteria.Limit {
		survivors = survivors[:criteria.Limit]
	}

	results := make([]Candidate, len(survivors))
	for i, c := range survivors {
		results[i] = c.Candidate
	}
	return results
}

func passesHardFilters(criteria Criteria, e Entry) bool {
	if criteria.SystemType != "" && e.Spec.SystemType != criteria.SystemType {
		return false
	}
	if criteria.Phase != 0 && e.Spec.Phase != criteria.Phase {
		return false
	}
	if criteria.Family != "" && e.Family != criteria.Family {
		return false
	}
	if criteria.Refrigerant != "" && e.Spec.Refrigerant != criteria.Refrigerant {
		return false
	}
	if criteria.Voltage != "" && !VoltageCompatible(criteria.Voltage, e.Spec.Voltage) {
		return false
	}
	return true
}

// bracket groups candidates for the heating fallback: same family, same
// nominal tonnage.
type bracket struct {
	family string
	tons   float64
}

func bracketOf(c Candidate) bracket {
	return bracket{family: c.Family, tons: c.Spec.EffectiveTons()}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
