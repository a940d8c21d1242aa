package pattern

import (
	"strconv"
	"strings"
	"time"
)

// weekdays maps full and abbreviated English weekday names.
var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"thur":      time.Thursday,
	"thurs":     time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

// dateLayouts are tried in order for literal date values.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"01-02-2006",
	"Jan 2 2006",
	"January 2 2006",
	"Jan-2-2006",
}

// yearlessLayouts are tried with the current year substituted.
var yearlessLayouts = []string{
	"Jan 2",
	"January 2",
	"01/02",
	"01-02",
}

// ResolveDate resolves a raw date value to a calendar date relative to now.
// Supported forms: today/tomorrow/yesterday, English weekday names (next
// strictly-future occurrence, wrapping a full week when today matches),
// "next-<weekday>", and literal date strings. The boolean reports whether
// the value resolved; unresolvable values are not an error.
func ResolveDate(raw string, now time.Time) (time.Time, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return time.Time{}, false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch value {
	case "today", "now":
		return today, true
	case "tomorrow":
		return today.AddDate(0, 0, 1), true
	case "yesterday":
		return today.AddDate(0, 0, -1), true
	}

	name := strings.TrimPrefix(value, "next-")
	if wd, ok := weekdays[name]; ok {
		delta := (int(wd) - int(today.Weekday()) + 7) % 7
		if delta == 0 {
			delta = 7
		}
		return today.AddDate(0, 0, delta), true
	}

	// Literal forms: raw values carry dashes where a typed date would have
	// spaces ("@mar-15" for "Mar 15"), and month names may be lowercased.
	candidates := []string{raw, capitalizeWords(strings.ReplaceAll(value, "-", " "))}

	for _, cand := range candidates {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, cand); err == nil {
				return t, true
			}
		}
		for _, layout := range yearlessLayouts {
			if t, err := time.Parse(layout, cand); err == nil {
				return time.Date(today.Year(), t.Month(), t.Day(), 0, 0, 0, 0, today.Location()), true
			}
		}
	}

	return time.Time{}, false
}

// capitalizeWords uppercases the first letter of each space-separated word.
func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// FormatDateAt renders a raw date value for display relative to now.
// Unresolvable values are returned unchanged.
func FormatDateAt(raw string, now time.Time) string {
	resolved, ok := ResolveDate(raw, now)
	if !ok {
		return raw
	}

	days := civilDays(now, resolved)

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 1 && days < 7:
		return resolved.Weekday().String()
	case days >= 7 && days < 30:
		return "In " + strconv.Itoa(days) + " days"
	default:
		return resolved.Format("Jan 2, 2006")
	}
}

// civilDays returns the calendar-day difference from a to b. Both dates
// are re-anchored to UTC midnight so DST transitions (23- or 25-hour
// days) cannot skew the count.
func civilDays(a, b time.Time) int {
	am := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bm := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bm.Sub(am) / (24 * time.Hour))
}

// FormatDate renders a raw date value for display relative to the wall clock.
func FormatDate(raw string) string {
	return FormatDateAt(raw, time.Now())
}
