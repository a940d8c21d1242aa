package pattern

import (
	"testing"
	"time"
)

// ref is a Wednesday.
var ref = time.Date(2024, 3, 13, 10, 30, 0, 0, time.UTC)

func TestResolveDateRelative(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{"today", time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)},
		{"Today", time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)},
		{"tomorrow", time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)},
		{"yesterday", time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, ok := ResolveDate(tt.raw, ref)
		if !ok {
			t.Fatalf("ResolveDate(%q) did not resolve", tt.raw)
		}
		if !got.Equal(tt.want) {
			t.Errorf("ResolveDate(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestResolveDateWeekday(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		// ref is Wednesday 2024-03-13.
		{"friday", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"fri", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"monday", time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)},
		// Same weekday wraps a full week, strictly in the future.
		{"wednesday", time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)},
		{"next-friday", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, ok := ResolveDate(tt.raw, ref)
		if !ok {
			t.Fatalf("ResolveDate(%q) did not resolve", tt.raw)
		}
		if !got.Equal(tt.want) {
			t.Errorf("ResolveDate(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestResolveDateLiteral(t *testing.T) {
	got, ok := ResolveDate("2024-06-01", ref)
	if !ok || got.Month() != time.June || got.Day() != 1 {
		t.Errorf("ResolveDate(2024-06-01) = %v, %v", got, ok)
	}

	// Yearless forms take the current year.
	got, ok = ResolveDate("jun-1", ref)
	if !ok || got.Year() != 2024 || got.Month() != time.June || got.Day() != 1 {
		t.Errorf("ResolveDate(jun-1) = %v, %v", got, ok)
	}
}

func TestResolveDateUnparsable(t *testing.T) {
	for _, raw := range []string{"", "   ", "gibberish", "13th-ish"} {
		if _, ok := ResolveDate(raw, ref); ok {
			t.Errorf("ResolveDate(%q) unexpectedly resolved", raw)
		}
	}
}

func TestFormatDateAt(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"today", "Today"},
		{"tomorrow", "Tomorrow"},
		{"yesterday", "Yesterday"},
		{"friday", "Friday"},     // two days out
		{"wednesday", "In 7 days"}, // wraps a full week
		{"2024-06-01", "Jun 1, 2024"},
		{"gibberish", "gibberish"}, // unresolved values pass through
	}

	for _, tt := range tests {
		if got := FormatDateAt(tt.raw, ref); got != tt.want {
			t.Errorf("FormatDateAt(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestFormatDateAtDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	tests := []struct {
		name string
		now  time.Time
		raw  string
		want string
	}{
		// 2024-03-10 springs forward: midnight to midnight is 23 hours.
		{"spring forward tomorrow", time.Date(2024, 3, 10, 12, 0, 0, 0, loc), "tomorrow", "Tomorrow"},
		{"spring forward today", time.Date(2024, 3, 10, 12, 0, 0, 0, loc), "today", "Today"},
		{"spring forward yesterday", time.Date(2024, 3, 10, 12, 0, 0, 0, loc), "yesterday", "Yesterday"},
		{"day before spring forward", time.Date(2024, 3, 9, 12, 0, 0, 0, loc), "tomorrow", "Tomorrow"},
		// 2024-11-03 falls back: midnight to midnight is 25 hours.
		{"fall back tomorrow", time.Date(2024, 11, 3, 12, 0, 0, 0, loc), "tomorrow", "Tomorrow"},
		{"weekday across transition", time.Date(2024, 3, 8, 12, 0, 0, 0, loc), "monday", "Monday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDateAt(tt.raw, tt.now); got != tt.want {
				t.Errorf("FormatDateAt(%q, %v) = %q, want %q", tt.raw, tt.now, got, tt.want)
			}
		})
	}
}
