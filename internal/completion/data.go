package completion

import "github.com/dshills/notelex/internal/pattern"

// Default candidate tables. Table order is the tie-break order for equal
// scores, so the common values sit first. Hosts can replace a table with
// WithCandidates.
var defaultCandidates = map[pattern.Type][]Item{
	pattern.TypeDate: {
		{Label: "today", Value: "today", Description: "Current date", Category: "relative", Boost: 30},
		{Label: "tomorrow", Value: "tomorrow", Description: "Next day", Category: "relative", Boost: 20},
		{Label: "yesterday", Value: "yesterday", Description: "Previous day", Category: "relative", Boost: 10},
		{Label: "monday", Value: "monday", Description: "Next Monday", Category: "weekday"},
		{Label: "tuesday", Value: "tuesday", Description: "Next Tuesday", Category: "weekday"},
		{Label: "wednesday", Value: "wednesday", Description: "Next Wednesday", Category: "weekday"},
		{Label: "thursday", Value: "thursday", Description: "Next Thursday", Category: "weekday"},
		{Label: "friday", Value: "friday", Description: "Next Friday", Category: "weekday"},
		{Label: "saturday", Value: "saturday", Description: "Next Saturday", Category: "weekday"},
		{Label: "sunday", Value: "sunday", Description: "Next Sunday", Category: "weekday"},
		{Label: "next-week", Value: "next-monday", Description: "Start of next week", Category: "relative"},
	},

	pattern.TypePriority: {
		{Label: "high", Value: "high", Description: "High priority", Category: "priority", Boost: 30},
		{Label: "medium", Value: "medium", Description: "Medium priority", Category: "priority", Boost: 20},
		{Label: "low", Value: "low", Description: "Low priority", Category: "priority", Boost: 10},
		{Label: "urgent", Value: "urgent", Description: "Needs attention now", Category: "priority"},
	},

	pattern.TypeTag: {
		{Label: "work", Value: "work", Category: "tag"},
		{Label: "personal", Value: "personal", Category: "tag"},
		{Label: "errand", Value: "errand", Category: "tag"},
		{Label: "idea", Value: "idea", Category: "tag"},
		{Label: "followup", Value: "followup", Category: "tag"},
		{Label: "blocked", Value: "blocked", Category: "tag"},
	},

	pattern.TypeAssignee: {
		{Label: "me", Value: "me", Description: "Assign to yourself", Category: "assignee", Boost: 20},
		{Label: "team", Value: "team", Description: "Whole team", Category: "assignee"},
		{Label: "unassigned", Value: "unassigned", Category: "assignee"},
	},

	pattern.TypeColor: colorCandidates(),
}

// Color candidates come from the shared named-color table so completions
// and formatting stay in sync.
func colorCandidates() []Item {
	names := pattern.NamedColorList()
	items := make([]Item, 0, len(names))
	for _, name := range names {
		hex, _ := pattern.NamedColor(name)
		items = append(items, Item{
			Label:       name,
			Value:       name,
			Description: hex,
			Category:    "color",
		})
	}
	return items
}
