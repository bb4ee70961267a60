package match

import (
	"strconv"
	"strings"
)

// VoltageCompatible reports whether a catalog unit's voltage rating fits a
// requested rating. Ratings are nominal values ("460") or bands
// ("208-230"); a band accepts every nominal value inside it, so a 208-230
// request matches both 208 and 230 catalog entries. Unparsable ratings fall
// back to exact string comparison.
func VoltageCompatible(requested, candidate string) bool {
	reqLo, reqHi, okReq := parseBand(requested)
	candLo, candHi, okCand := parseBand(candidate)
	if !okReq || !okCand {
		return strings.EqualFold(strings.TrimSpace(requested), strings.TrimSpace(candidate))
	}

	// Bands are compatible when they overlap.
	return candLo <= reqHi && reqLo <= candHi
}

// parseBand parses "208-230" or "460" into an inclusive voltage range.
// A slash-delimited electrical rating ("208-230/3/60") is accepted; only
// the leading voltage segment is read.
func parseBand(s string) (lo, hi int, ok bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}

	parts := strings.SplitN(s, "-", 2)
	lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || lo <= 0 {
		return 0, 0, false
	}
	hi = lo
	if len(parts) == 2 {
		hi, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || hi < lo {
			return 0, 0, false
		}
	}
	return lo, hi, true
}
