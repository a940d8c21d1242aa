package pattern

import (
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// maxDisplayClusters bounds tag/assignee display values. Longer values are
// truncated on a grapheme cluster boundary so multi-rune clusters survive.
const maxDisplayClusters = 24

// namedColors maps supported color names to hex values.
var namedColors = map[string]string{
	"red":     "#ef4444",
	"orange":  "#f97316",
	"amber":   "#f59e0b",
	"yellow":  "#eab308",
	"lime":    "#84cc16",
	"green":   "#22c55e",
	"teal":    "#14b8a6",
	"cyan":    "#06b6d4",
	"blue":    "#3b82f6",
	"indigo":  "#6366f1",
	"violet":  "#8b5cf6",
	"purple":  "#a855f7",
	"magenta": "#d946ef",
	"pink":    "#ec4899",
	"rose":    "#f43f5e",
	"gray":    "#6b7280",
	"grey":    "#6b7280",
	"black":   "#000000",
	"white":   "#ffffff",
}

// priorityLabels maps priority values to emoji-prefixed display labels.
var priorityLabels = map[string]string{
	"urgent":   "\U0001F6A8 Urgent",
	"critical": "\U0001F6A8 Critical",
	"high":     "\U0001F534 High",
	"medium":   "\U0001F7E1 Medium",
	"low":      "\U0001F7E2 Low",
}

// FormatPriority renders a priority value as an emoji-prefixed label.
// Unknown values are title-cased and returned without an emoji.
func FormatPriority(raw string) string {
	if label, ok := priorityLabels[strings.ToLower(raw)]; ok {
		return label
	}
	return capitalizeWords(strings.ToLower(raw))
}

// FormatColor renders a color value as a normalized lowercase hex string.
// Named colors map through the builtin table; hex values are validated and
// normalized (including #rgb shorthand expansion). Unknown values are
// returned unchanged.
func FormatColor(raw string) string {
	value := strings.ToLower(raw)
	if hex, ok := namedColors[value]; ok {
		return hex
	}
	if strings.HasPrefix(value, "#") {
		if len(value) == 4 { // #rgb shorthand
			value = "#" + strings.Repeat(string(value[1]), 2) +
				strings.Repeat(string(value[2]), 2) +
				strings.Repeat(string(value[3]), 2)
		}
		if c, err := colorful.Hex(value); err == nil {
			return strings.ToLower(c.Hex())
		}
	}
	return raw
}

// NamedColor returns the hex value for a color name.
func NamedColor(name string) (string, bool) {
	hex, ok := namedColors[strings.ToLower(name)]
	return hex, ok
}

// NamedColorList returns the supported color names in sorted order.
func NamedColorList() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatTag renders a tag value for display.
func FormatTag(raw string) string {
	return truncateClusters(strings.TrimSpace(raw), maxDisplayClusters)
}

// FormatAssignee renders an assignee value for display.
func FormatAssignee(raw string) string {
	return truncateClusters(strings.TrimSpace(raw), maxDisplayClusters)
}

// truncateClusters shortens s to at most max grapheme clusters, appending an
// ellipsis when truncation occurred.
func truncateClusters(s string, max int) string {
	if uniseg.GraphemeClusterCount(s) <= max {
		return s
	}

	var b strings.Builder
	state := -1
	rest := s
	for i := 0; i < max && len(rest) > 0; i++ {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		b.WriteString(cluster)
	}
	return b.String() + "…"
}
