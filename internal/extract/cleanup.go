package extract

import (
	"regexp"
	"strings"
)

var (
	spaceRuns      = regexp.MustCompile(`[ \t]+`)
	commaSpacing   = regexp.MustCompile(`\s*,\s*`)
	doubledCommas  = regexp.MustCompile(`(?:, ){2,}`)
	edgeSeparators = regexp.MustCompile(`^[\s,]+|[\s,]+$`)
)

// cleanup normalizes whitespace left behind after span removal: space runs
// collapse to a single space, comma spacing becomes ", ", doubled commas
// collapse, and leading/trailing separators are stripped.
func cleanup(s string) string {
	s = spaceRuns.ReplaceAllString(s, " ")
	s = commaSpacing.ReplaceAllString(s, ", ")
	s = doubledCommas.ReplaceAllString(s, ", ")
	s = edgeSeparators.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
