package command

import (
	"strings"
	"time"
)

// Builtins returns the builtin command catalog. The clock feeds the
// date/time insertion commands; nil means the wall clock.
func Builtins(clock func() time.Time) []Command {
	if clock == nil {
		clock = time.Now
	}

	return []Command{
		// Node-type switches.
		{
			ID:          "node.note",
			Trigger:     "$note",
			TriggerType: TriggerNodeType,
			Category:    CategoryContent,
			Label:       "Note",
			Description: "Switch to a plain note node",
			Keywords:    []string{"text", "plain"},
			Priority:    10,
			Action:      SwitchNodeType{NodeType: "noteNode"},
		},
		{
			ID:          "node.task",
			Trigger:     "$task",
			TriggerType: TriggerNodeType,
			Category:    CategoryInteractive,
			Label:       "Task",
			Description: "Switch to a task node with a checkbox",
			Keywords:    []string{"todo", "checkbox"},
			Priority:    10,
			Action:      SwitchNodeType{NodeType: "taskNode"},
		},
		{
			ID:          "node.code",
			Trigger:     "$code",
			TriggerType: TriggerNodeType,
			Category:    CategoryContent,
			Label:       "Code",
			Description: "Switch to a code block node",
			Keywords:    []string{"snippet", "monospace"},
			Priority:    20,
			Action:      SwitchNodeType{NodeType: "codeNode"},
		},
		{
			ID:          "node.quote",
			Trigger:     "$quote",
			TriggerType: TriggerNodeType,
			Category:    CategoryContent,
			Label:       "Quote",
			Description: "Switch to a block quote node",
			Keywords:    []string{"blockquote", "citation"},
			Priority:    20,
			Action:      SwitchNodeType{NodeType: "quoteNode"},
		},
		{
			ID:          "node.heading",
			Trigger:     "$heading",
			TriggerType: TriggerNodeType,
			Category:    CategoryContent,
			Label:       "Heading",
			Description: "Switch to a heading node",
			Keywords:    []string{"title", "header", "h1"},
			Priority:    15,
			Action:      SwitchNodeType{NodeType: "headingNode"},
		},
		{
			ID:          "node.bullet",
			Trigger:     "$bullet",
			TriggerType: TriggerNodeType,
			Category:    CategoryContent,
			Label:       "Bullet",
			Description: "Switch to a bullet list item node",
			Keywords:    []string{"list", "item"},
			Priority:    20,
			Action:      SwitchNodeType{NodeType: "bulletNode"},
		},
		{
			ID:          "node.toggle",
			Trigger:     "$toggle",
			TriggerType: TriggerNodeType,
			Category:    CategoryInteractive,
			Label:       "Toggle",
			Description: "Switch to a collapsible toggle node",
			Keywords:    []string{"collapse", "fold"},
			Priority:    30,
			Action:      SwitchNodeType{NodeType: "toggleNode"},
		},
		{
			ID:          "node.image",
			Trigger:     "$image",
			TriggerType: TriggerNodeType,
			Category:    CategoryMedia,
			Label:       "Image",
			Description: "Switch to an image node",
			Keywords:    []string{"picture", "photo"},
			Priority:    30,
			Action:      SwitchNodeType{NodeType: "imageNode"},
		},
		{
			ID:          "node.divider",
			Trigger:     "$divider",
			TriggerType: TriggerNodeType,
			Category:    CategoryContent,
			Label:       "Divider",
			Description: "Switch to a horizontal divider node",
			Keywords:    []string{"rule", "separator", "hr"},
			Priority:    40,
			Action:      SwitchNodeType{NodeType: "dividerNode"},
		},

		// Slash commands: pattern insertion.
		{
			ID:          "insert.date",
			Trigger:     "/date",
			TriggerType: TriggerSlash,
			Category:    CategoryPattern,
			Label:       "Insert Date",
			Description: "Insert today's date marker",
			Keywords:    []string{"today", "calendar"},
			Priority:    10,
			Action: InsertText{Generate: func(Context) string {
				return "@today"
			}},
		},
		{
			ID:          "insert.time",
			Trigger:     "/time",
			TriggerType: TriggerSlash,
			Category:    CategoryPattern,
			Label:       "Insert Time",
			Description: "Insert the current time",
			Keywords:    []string{"clock", "now"},
			Priority:    10,
			Action: InsertText{Generate: func(Context) string {
				return clock().Format("15:04")
			}},
		},
		{
			ID:          "insert.datetime",
			Trigger:     "/now",
			TriggerType: TriggerSlash,
			Category:    CategoryPattern,
			Label:       "Insert Date and Time",
			Description: "Insert the current date and time",
			Keywords:    []string{"timestamp"},
			Priority:    20,
			Action: InsertText{Generate: func(Context) string {
				return clock().Format("2006-01-02 15:04")
			}},
		},
		{
			ID:          "insert.priority",
			Trigger:     "/priority",
			TriggerType: TriggerSlash,
			Category:    CategoryAnnotation,
			Label:       "Insert Priority",
			Description: "Insert a priority marker",
			Keywords:    []string{"high", "low", "importance"},
			Priority:    30,
			Action: InsertText{Generate: func(Context) string {
				return "#medium"
			}},
		},
		{
			ID:          "insert.color",
			Trigger:     "/color",
			TriggerType: TriggerSlash,
			Category:    CategoryAnnotation,
			Label:       "Insert Color",
			Description: "Insert a color marker",
			Keywords:    []string{"highlight", "hex"},
			Priority:    30,
			Action: InsertText{Generate: func(Context) string {
				return "color:blue"
			}},
		},

		// Slash commands: formatting.
		{
			ID:          "format.uppercase",
			Trigger:     "/upper",
			TriggerType: TriggerSlash,
			Category:    CategoryFormat,
			Label:       "Uppercase",
			Description: "Uppercase the selection",
			Keywords:    []string{"caps"},
			Priority:    50,
			Action:      Format{Apply: strings.ToUpper},
		},
		{
			ID:          "format.lowercase",
			Trigger:     "/lower",
			TriggerType: TriggerSlash,
			Category:    CategoryFormat,
			Label:       "Lowercase",
			Description: "Lowercase the selection",
			Keywords:    []string{},
			Priority:    50,
			Action:      Format{Apply: strings.ToLower},
		},

		// Slash commands: node scaffolds.
		{
			ID:          "template.table",
			Trigger:     "/table",
			TriggerType: TriggerSlash,
			Category:    CategoryTemplate,
			Label:       "Table",
			Description: "Insert a 2x2 table scaffold",
			Keywords:    []string{"grid", "rows", "columns"},
			Priority:    40,
			Action: Template{
				NodeType: "tableNode",
				Data: map[string]any{
					"rows":    2,
					"columns": 2,
				},
			},
		},
		{
			ID:          "template.divider",
			Trigger:     "/divider",
			TriggerType: TriggerSlash,
			Category:    CategoryContent,
			Label:       "Divider",
			Description: "Insert a horizontal divider",
			Keywords:    []string{"rule", "separator"},
			Priority:    40,
			Action:      SwitchNodeType{NodeType: "dividerNode"},
		},
	}
}

// RegisterBuiltins registers the builtin catalog and returns the accepted
// count.
func RegisterBuiltins(r *Registry, clock func() time.Time) int {
	return r.RegisterAll(Builtins(clock), RegisterOptions{})
}
