package completion

import "github.com/dshills/notelex/internal/pattern"

// Item is one ranked completion candidate.
type Item struct {
	// Label is the text shown and matched against the query.
	Label string

	// Value is the text inserted on accept.
	Value string

	// Description is optional secondary text.
	Description string

	// Category groups items in the host UI.
	Category string

	// Boost is added to the match score. Static per candidate.
	Boost int
}

// Result is a ranked completion set anchored to a span of the buffer.
// Start and End are rune offsets; End is the cursor position the result
// was computed for. Replacing [Start, End) with an item's Value applies
// the completion.
type Result struct {
	Type  pattern.Type
	Query string
	Start int
	End   int
	Items []Item
}
