// Package trigger detects node-type ($word) and slash (/word) command
// triggers in free text. It is pure and has no registry dependency; command
// matching against detected triggers lives in the command package.
package trigger

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Kind identifies the trigger flavor.
type Kind uint8

const (
	// KindNone means no trigger is present.
	KindNone Kind = iota
	// KindNodeType is a $word trigger that switches the node type.
	KindNodeType
	// KindSlash is a /word in-content command trigger.
	KindSlash
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNodeType:
		return "node-type"
	case KindSlash:
		return "slash"
	default:
		return "none"
	}
}

var (
	nodeTypeRe = regexp.MustCompile(`\$(\w+)`)
	slashRe    = regexp.MustCompile(`/(\w+)`)
)

// Result describes a detected trigger.
type Result struct {
	// HasTrigger reports whether any trigger was found.
	HasTrigger bool

	// Kind is the trigger flavor.
	Kind Kind

	// Char is the trigger prefix character, '$' or '/'.
	Char byte

	// Word is the command word following the prefix character.
	Word string

	// Start is the rune offset of the prefix character in the input.
	Start int
}

// Prefix returns the full trigger string including its prefix character.
func (r Result) Prefix() string {
	if !r.HasTrigger {
		return ""
	}
	return string(r.Char) + r.Word
}

// match is an internal detection with byte offsets for span surgery.
type match struct {
	kind       Kind
	char       byte
	word       string
	start, end int // byte offsets of the full trigger
}

// detect finds the winning trigger. When both flavors are present the $
// trigger wins: node-type framing outranks in-content slash edits.
func detect(text string) (match, bool) {
	if m := nodeTypeRe.FindStringSubmatchIndex(text); m != nil {
		return match{KindNodeType, '$', text[m[2]:m[3]], m[0], m[1]}, true
	}
	if m := slashRe.FindStringSubmatchIndex(text); m != nil {
		return match{KindSlash, '/', text[m[2]:m[3]], m[0], m[1]}, true
	}
	return match{}, false
}

// Detect scans text for the first $word and first /word trigger. Returns a
// zero Result when no trigger exists.
func Detect(text string) Result {
	m, ok := detect(text)
	if !ok {
		return Result{}
	}
	return Result{
		HasTrigger: true,
		Kind:       m.kind,
		Char:       m.char,
		Word:       m.word,
		Start:      utf8.RuneCountInString(text[:m.start]),
	}
}

// Strip removes the detected trigger occurrence (and its trailing spacing)
// from text and trims the remainder. Text without a trigger is returned
// trimmed but otherwise unchanged.
func Strip(text string) string {
	m, ok := detect(text)
	if !ok {
		return strings.TrimSpace(text)
	}
	end := m.end
	for end < len(text) && (text[end] == ' ' || text[end] == '\t') {
		end++
	}
	return strings.TrimSpace(text[:m.start] + text[end:])
}
