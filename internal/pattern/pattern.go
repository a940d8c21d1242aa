// Package pattern defines the static registry of embedded micro-syntax
// patterns (@date, #priority, color:value, [tag], +assignee) together with
// their scanning regexes, validation regexes, and display formatters.
//
// The registry is read-only and safe to share across goroutines.
package pattern

import (
	"regexp"
	"strings"
)

// Type identifies an embedded pattern kind.
type Type uint8

const (
	// TypeDate is a relative or absolute date marker (@today, @2024-03-01).
	TypeDate Type = iota
	// TypePriority is a priority marker (#high, #low).
	TypePriority
	// TypeColor is a color marker (color:red, color:#ff8800).
	TypeColor
	// TypeTag is a bracketed tag ([work]).
	TypeTag
	// TypeAssignee is an assignee marker (+alice).
	TypeAssignee
)

// String returns the string representation of the pattern type.
func (t Type) String() string {
	switch t {
	case TypeDate:
		return "date"
	case TypePriority:
		return "priority"
	case TypeColor:
		return "color"
	case TypeTag:
		return "tag"
	case TypeAssignee:
		return "assignee"
	default:
		return "unknown"
	}
}

// ParseType parses a string into a Type. The second return value reports
// whether the name was recognized.
func ParseType(s string) (Type, bool) {
	switch strings.ToLower(s) {
	case "date":
		return TypeDate, true
	case "priority":
		return TypePriority, true
	case "color":
		return TypeColor, true
	case "tag":
		return TypeTag, true
	case "assignee":
		return TypeAssignee, true
	default:
		return 0, false
	}
}

// Definition describes one pattern type.
type Definition struct {
	// Type is the pattern kind this definition recognizes.
	Type Type

	// Scan locates occurrences in free text. Capture group 1 is the raw value.
	Scan *regexp.Regexp

	// Validate reports whether a typed prefix is still a plausible value.
	// Used by completion to keep candidate lists open while the user types.
	Validate *regexp.Regexp

	// Format renders a raw value for display.
	Format func(raw string) string

	// Exclude rejects a captured value that belongs to a different syntax
	// (e.g. a checkbox marker masquerading as a tag). May be nil.
	Exclude func(raw string) bool
}

var definitions = []Definition{
	{
		Type:     TypeDate,
		Scan:     regexp.MustCompile(`@([A-Za-z0-9][\w-]*)`),
		Validate: regexp.MustCompile(`^[\w-]*$`),
		Format:   FormatDate,
	},
	{
		Type:     TypePriority,
		Scan:     regexp.MustCompile(`#([A-Za-z][\w-]*)`),
		Validate: regexp.MustCompile(`^[\w-]*$`),
		Format:   FormatPriority,
	},
	{
		Type:     TypeColor,
		Scan:     regexp.MustCompile(`color:(#?[A-Za-z0-9][\w-]*)`),
		Validate: regexp.MustCompile(`^#?[\w-]*$`),
		Format:   FormatColor,
	},
	{
		Type:     TypeTag,
		Scan:     regexp.MustCompile(`\[([^\[\]]+)\]`),
		Validate: regexp.MustCompile(`^[^\[\]]*$`),
		Format:   FormatTag,
		Exclude:  isCheckboxContent,
	},
	{
		Type:     TypeAssignee,
		Scan:     regexp.MustCompile(`\+([A-Za-z][\w.-]*)`),
		Validate: regexp.MustCompile(`^[\w.-]*$`),
		Format:   FormatAssignee,
	},
}

// Definitions returns all pattern definitions in scanning order.
// The returned slice must not be modified.
func Definitions() []Definition {
	return definitions
}

// Lookup returns the definition for a pattern type.
func Lookup(t Type) (Definition, bool) {
	for _, def := range definitions {
		if def.Type == t {
			return def, true
		}
	}
	return Definition{}, false
}

// isCheckboxContent reports whether bracket content is a checkbox marker
// rather than a tag: only x/X, whitespace, or separator punctuation.
func isCheckboxContent(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return true
	}
	for _, r := range raw {
		switch r {
		case 'x', 'X', ' ', '\t', '-', '_', ',', '.', '/', '|':
			continue
		default:
			return false
		}
	}
	return true
}
