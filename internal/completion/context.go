package completion

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dshills/notelex/internal/pattern"
)

// patternContext is the pattern being typed at the cursor.
type patternContext struct {
	Type  pattern.Type
	Query string
	Start int // rune offset of the trigger in the full text
}

// Context matchers are anchored to the end of the line-start→cursor
// substring, so a match is always the pattern the cursor sits in. The
// zero-width quantifiers make a bare trigger character yield an
// empty-query context.
var contextMatchers = []struct {
	typ pattern.Type
	re  *regexp.Regexp
}{
	{pattern.TypeColor, regexp.MustCompile(`color:(#?\w*)$`)},
	{pattern.TypeDate, regexp.MustCompile(`@([A-Za-z0-9-]*)$`)},
	{pattern.TypePriority, regexp.MustCompile(`#(\w*)$`)},
	{pattern.TypeTag, regexp.MustCompile(`\[([^\[\]]*)$`)},
	{pattern.TypeAssignee, regexp.MustCompile(`\+([\w.-]*)$`)},
}

// detectContext finds the pattern context active at the cursor, looking
// only at the current line. Among candidates the one nearest the cursor
// wins. Returns false when the cursor is not inside any pattern.
func detectContext(text string, cursor int) (patternContext, bool) {
	runes := []rune(text)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}

	lineStart := cursor
	for lineStart > 0 && runes[lineStart-1] != '\n' {
		lineStart--
	}
	before := string(runes[lineStart:cursor])

	best := patternContext{Start: -1}
	bestByte := -1
	for _, m := range contextMatchers {
		loc := m.re.FindStringSubmatchIndex(before)
		if loc == nil {
			continue
		}
		// A # directly after "color:" belongs to the color value, not a
		// priority pattern.
		if m.typ == pattern.TypePriority && strings.HasSuffix(before[:loc[0]], "color:") {
			continue
		}
		if loc[0] > bestByte {
			bestByte = loc[0]
			best = patternContext{
				Type:  m.typ,
				Query: before[loc[2]:loc[3]],
				Start: lineStart + utf8.RuneCountInString(before[:loc[0]]),
			}
		}
	}

	return best, bestByte >= 0
}
