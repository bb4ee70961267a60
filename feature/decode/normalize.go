package decode

import (
	"regexp"
	"strings"
)

// correction rewrites one known OCR misread to its canonical token.
// Corrections apply in table order; a later pattern may act on text a
// previous one already rewrote.
type correction struct {
	pattern     *regexp.Regexp
	replacement string
}

// corrections is the fixed misread table, collected from field reports of
// garbled data-plate photos. Patterns run against upper-cased text.
var corrections = []correction{
	{regexp.MustCompile(`\b8TU\b`), "BTU"},
	{regexp.MustCompile(`\bBTV\b`), "BTU"},
	{regexp.MustCompile(`\bBTUH\b`), "BTU"},
	{regexp.MustCompile(`\bBTU/HR?\b`), "BTU"},
	{regexp.MustCompile(`\bT0NS?\b`), "TON"},
	{regexp.MustCompile(`\bTQN\b`), "TON"},
	{regexp.MustCompile(`\bV0LTS?\b`), "VOLT"},
	{regexp.MustCompile(`\bM0DEL\b`), "MODEL"},
	{regexp.MustCompile(`\bMQDEL\b`), "MODEL"},
	{regexp.MustCompile(`\b5ERIAL\b`), "SERIAL"},
	{regexp.MustCompile(`\bSER1AL\b`), "SERIAL"},
	{regexp.MustCompile(`\bPHA5E\b`), "PHASE"},
	{regexp.MustCompile(`\bR-?41OA\b`), "R-410A"},
	{regexp.MustCompile(`\bR-?4IOA\b`), "R-410A"},
}

var (
	spaceRun     = regexp.MustCompile(`[ \t]+`)
	blankLineRun = regexp.MustCompile(`\n{2,}`)
)

// Normalize cleans raw OCR text for extraction: trims and upper-cases it,
// collapses whitespace runs to a single space, collapses blank-line runs,
// and applies the misread correction table in order. Normalize is pure,
// never fails, and is idempotent.
func Normalize(raw string) string {
	s := strings.ToUpper(raw)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
	}
	s = strings.Join(lines, "\n")
	s = blankLineRun.ReplaceAllString(s, "\n")
	s = strings.TrimSpace(s)

	for _, c := range corrections {
		s = c.pattern.ReplaceAllString(s, c.replacement)
	}
	return s
}
