// Package extract scans free text for embedded micro-syntax patterns,
// resolves overlapping matches, and produces clean text with the matched
// spans removed.
package extract

import (
	"sort"
	"time"
	"unicode/utf8"

	"github.com/dshills/notelex/internal/pattern"
)

// Match is one accepted pattern occurrence. Offsets are rune offsets into
// the original text, half-open [Start, End).
type Match struct {
	// Type is the pattern kind.
	Type pattern.Type

	// RawValue is the captured value without its marker syntax.
	RawValue string

	// DisplayValue is the formatted value for presentation.
	DisplayValue string

	// Start is the rune offset of the first character of the match.
	Start int

	// End is the rune offset one past the last character of the match.
	End int

	// Date is the resolved calendar date for date patterns.
	// Zero unless Resolved is true.
	Date time.Time

	// Resolved reports whether a date value resolved to a calendar date.
	Resolved bool
}

// Result is the outcome of one extraction pass.
type Result struct {
	// CleanText is the input with accepted spans removed and whitespace
	// normalized.
	CleanText string

	// Patterns holds accepted matches ordered by original start offset.
	// Spans never overlap.
	Patterns []Match
}

// candidate tracks a raw match in byte offsets before overlap resolution.
type candidate struct {
	def        pattern.Definition
	raw        string
	start, end int // byte offsets
	order      int // definition index, breaks start-offset ties
}

// Extract scans text for all embedded patterns using the wall clock for
// date resolution.
func Extract(text string) Result {
	return ExtractAt(text, time.Now())
}

// ExtractAt scans text for all embedded patterns, resolving dates relative
// to now. Empty or whitespace-only input yields an empty result.
func ExtractAt(text string, now time.Time) Result {
	if isBlank(text) {
		return Result{CleanText: ""}
	}

	candidates := collect(text)

	// Earliest start wins; scanning order breaks exact ties.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].start != candidates[j].start {
			return candidates[i].start < candidates[j].start
		}
		return candidates[i].order < candidates[j].order
	})

	accepted := resolveOverlaps(candidates)

	matches := make([]Match, 0, len(accepted))
	for _, c := range accepted {
		m := Match{
			Type:         c.def.Type,
			RawValue:     c.raw,
			DisplayValue: c.def.Format(c.raw),
			Start:        utf8.RuneCountInString(text[:c.start]),
			End:          utf8.RuneCountInString(text[:c.end]),
		}
		if c.def.Type == pattern.TypeDate {
			m.DisplayValue = pattern.FormatDateAt(c.raw, now)
			if resolved, ok := pattern.ResolveDate(c.raw, now); ok {
				m.Date = resolved
				m.Resolved = true
			}
		}
		matches = append(matches, m)
	}

	return Result{
		CleanText: removeSpans(text, accepted),
		Patterns:  matches,
	}
}

// collect runs every pattern type's scanner over the full input and applies
// type-specific exclusion rules.
func collect(text string) []candidate {
	var out []candidate
	for order, def := range pattern.Definitions() {
		for _, m := range def.Scan.FindAllStringSubmatchIndex(text, -1) {
			raw := text[m[2]:m[3]]
			if def.Exclude != nil && def.Exclude(raw) {
				continue
			}
			out = append(out, candidate{
				def:   def,
				raw:   raw,
				start: m[0],
				end:   m[1],
				order: order,
			})
		}
	}
	return out
}

// resolveOverlaps walks start-sorted candidates and keeps a match only when
// its span does not overlap any previously accepted span. Rejected matches
// are dropped entirely.
func resolveOverlaps(candidates []candidate) []candidate {
	accepted := make([]candidate, 0, len(candidates))
	lastEnd := -1
	for _, c := range candidates {
		if c.start < lastEnd {
			continue
		}
		accepted = append(accepted, c)
		lastEnd = c.end
	}
	return accepted
}

// removeSpans deletes accepted spans from text in descending offset order
// and normalizes the leftover whitespace and separators.
func removeSpans(text string, accepted []candidate) string {
	for i := len(accepted) - 1; i >= 0; i-- {
		text = text[:accepted[i].start] + text[accepted[i].end:]
	}
	return cleanup(text)
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
