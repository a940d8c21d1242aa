package extract

import (
	"testing"
	"time"

	"github.com/dshills/notelex/internal/pattern"
)

// ref is a Wednesday.
var ref = time.Date(2024, 3, 13, 10, 30, 0, 0, time.UTC)

func TestExtractEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n  "} {
		got := ExtractAt(input, ref)
		if got.CleanText != "" {
			t.Errorf("ExtractAt(%q).CleanText = %q, want empty", input, got.CleanText)
		}
		if len(got.Patterns) != 0 {
			t.Errorf("ExtractAt(%q) found %d patterns, want 0", input, len(got.Patterns))
		}
	}
}

func TestExtractSingleTypes(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantClean string
		wantType  pattern.Type
		wantRaw   string
	}{
		{"date", "call mom @tomorrow", "call mom", pattern.TypeDate, "tomorrow"},
		{"priority", "fix the build #high", "fix the build", pattern.TypePriority, "high"},
		{"color", "repaint color:red the wall", "repaint the wall", pattern.TypeColor, "red"},
		{"tag", "meeting notes [work]", "meeting notes", pattern.TypeTag, "work"},
		{"assignee", "review this +alice", "review this", pattern.TypeAssignee, "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractAt(tt.input, ref)
			if got.CleanText != tt.wantClean {
				t.Errorf("CleanText = %q, want %q", got.CleanText, tt.wantClean)
			}
			if len(got.Patterns) != 1 {
				t.Fatalf("got %d patterns, want 1", len(got.Patterns))
			}
			m := got.Patterns[0]
			if m.Type != tt.wantType || m.RawValue != tt.wantRaw {
				t.Errorf("match = %v %q, want %v %q", m.Type, m.RawValue, tt.wantType, tt.wantRaw)
			}
		})
	}
}

func TestExtractMultiplePatterns(t *testing.T) {
	got := ExtractAt("Buy milk @tomorrow #high [errand] +bob", ref)

	if got.CleanText != "Buy milk" {
		t.Errorf("CleanText = %q, want %q", got.CleanText, "Buy milk")
	}
	if len(got.Patterns) != 4 {
		t.Fatalf("got %d patterns, want 4", len(got.Patterns))
	}

	wantOrder := []pattern.Type{
		pattern.TypeDate, pattern.TypePriority, pattern.TypeTag, pattern.TypeAssignee,
	}
	for i, m := range got.Patterns {
		if m.Type != wantOrder[i] {
			t.Errorf("pattern %d = %v, want %v", i, m.Type, wantOrder[i])
		}
	}
}

func TestExtractOrderedByStart(t *testing.T) {
	got := ExtractAt("+carol starts [infra] then @friday", ref)
	for i := 1; i < len(got.Patterns); i++ {
		if got.Patterns[i].Start < got.Patterns[i-1].Start {
			t.Errorf("patterns not ordered by start: %v", got.Patterns)
		}
	}
}

func TestExtractNonOverlap(t *testing.T) {
	// The priority scanner would also match #ff8800 inside the color value;
	// the earlier-starting color match must win and the overlap be dropped.
	inputs := []string{
		"paint color:#ff8800 now",
		"x [a#b] y",
		"@today#high",
		"[tag [inner] tail]",
	}

	for _, input := range inputs {
		got := ExtractAt(input, ref)
		for i := 1; i < len(got.Patterns); i++ {
			prev, cur := got.Patterns[i-1], got.Patterns[i]
			if cur.Start < prev.End {
				t.Errorf("ExtractAt(%q): overlapping spans [%d,%d) and [%d,%d)",
					input, prev.Start, prev.End, cur.Start, cur.End)
			}
		}
	}
}

func TestExtractColorBeatsEmbeddedPriority(t *testing.T) {
	got := ExtractAt("paint color:#ff8800 now", ref)
	if len(got.Patterns) != 1 {
		t.Fatalf("got %d patterns, want 1: %v", len(got.Patterns), got.Patterns)
	}
	if got.Patterns[0].Type != pattern.TypeColor {
		t.Errorf("type = %v, want color", got.Patterns[0].Type)
	}
	if got.Patterns[0].RawValue != "#ff8800" {
		t.Errorf("raw = %q", got.Patterns[0].RawValue)
	}
}

func TestExtractCheckboxNotTag(t *testing.T) {
	got := ExtractAt("[x] finish the report [work]", ref)
	if len(got.Patterns) != 1 {
		t.Fatalf("got %d patterns, want 1: %v", len(got.Patterns), got.Patterns)
	}
	if got.Patterns[0].RawValue != "work" {
		t.Errorf("raw = %q, want work", got.Patterns[0].RawValue)
	}
	if got.CleanText != "[x] finish the report" {
		t.Errorf("CleanText = %q", got.CleanText)
	}
}

func TestExtractSeparatorCleanup(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Buy milk, @today, [errand]", "Buy milk"},
		{"@today, eat lunch", "eat lunch"},
		{"a  [x1]  b", "a b"},
		{"[one], [two], keep going", "keep going"},
	}

	for _, tt := range tests {
		got := ExtractAt(tt.input, ref)
		if got.CleanText != tt.want {
			t.Errorf("ExtractAt(%q).CleanText = %q, want %q", tt.input, got.CleanText, tt.want)
		}
	}
}

func TestExtractIdempotent(t *testing.T) {
	inputs := []string{
		"Buy milk @tomorrow #high [errand] +bob",
		"paint color:red, then rest @friday",
		"nothing special here",
	}

	for _, input := range inputs {
		first := ExtractAt(input, ref)
		second := ExtractAt(first.CleanText, ref)
		if len(second.Patterns) != 0 {
			t.Errorf("re-extracting %q found %d patterns", first.CleanText, len(second.Patterns))
		}
		if second.CleanText != first.CleanText {
			t.Errorf("re-extraction changed text: %q -> %q", first.CleanText, second.CleanText)
		}
	}
}

func TestExtractRoundTrip(t *testing.T) {
	inputs := []string{
		"Buy milk @tomorrow #high [errand] +bob color:red",
		"repaint color:#f80 the wall [diy] @friday",
	}

	for _, input := range inputs {
		first := ExtractAt(input, ref)
		runes := []rune(input)

		// Re-insert each accepted span's original text after the cleaned
		// text, keeping start-offset order.
		rebuilt := first.CleanText
		for _, m := range first.Patterns {
			rebuilt += " " + string(runes[m.Start:m.End])
		}

		second := ExtractAt(rebuilt, ref)
		if second.CleanText != first.CleanText {
			t.Errorf("re-extracting %q: CleanText = %q, want %q", rebuilt, second.CleanText, first.CleanText)
		}
		if len(second.Patterns) != len(first.Patterns) {
			t.Fatalf("re-extracting %q: got %d patterns, want %d", rebuilt, len(second.Patterns), len(first.Patterns))
		}
		for i, m := range second.Patterns {
			want := first.Patterns[i]
			if m.Type != want.Type || m.RawValue != want.RawValue || m.DisplayValue != want.DisplayValue {
				t.Errorf("pattern %d = %v %q %q, want %v %q %q",
					i, m.Type, m.RawValue, m.DisplayValue, want.Type, want.RawValue, want.DisplayValue)
			}
		}
	}
}

func TestExtractDateResolution(t *testing.T) {
	got := ExtractAt("ship it @friday", ref)
	if len(got.Patterns) != 1 {
		t.Fatalf("got %d patterns", len(got.Patterns))
	}
	m := got.Patterns[0]
	if !m.Resolved {
		t.Fatal("date did not resolve")
	}
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !m.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", m.Date, want)
	}
	if m.DisplayValue != "Friday" {
		t.Errorf("DisplayValue = %q, want Friday", m.DisplayValue)
	}
}

func TestExtractUnresolvableDateKept(t *testing.T) {
	got := ExtractAt("see @someday maybe", ref)
	if len(got.Patterns) != 1 {
		t.Fatalf("got %d patterns", len(got.Patterns))
	}
	m := got.Patterns[0]
	if m.Resolved {
		t.Error("unparsable date should not resolve")
	}
	if m.DisplayValue != "someday" {
		t.Errorf("DisplayValue = %q, want raw value", m.DisplayValue)
	}
}

func TestExtractRuneOffsets(t *testing.T) {
	// Multi-byte runes before the pattern must not skew offsets.
	input := "café plan @today"
	got := ExtractAt(input, ref)
	if len(got.Patterns) != 1 {
		t.Fatalf("got %d patterns", len(got.Patterns))
	}
	m := got.Patterns[0]
	runes := []rune(input)
	if string(runes[m.Start:m.End]) != "@today" {
		t.Errorf("span [%d,%d) = %q, want @today", m.Start, m.End, string(runes[m.Start:m.End]))
	}
}
