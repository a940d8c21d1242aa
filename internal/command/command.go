package command

import (
	"strings"
)

// TriggerType classifies how a command is invoked.
type TriggerType uint8

const (
	// TriggerUnknown is the zero value; commands must declare a real type.
	TriggerUnknown TriggerType = iota
	// TriggerNodeType is a $word trigger.
	TriggerNodeType
	// TriggerSlash is a /word trigger.
	TriggerSlash
	// TriggerShortcut is a keyboard-shortcut-bound command.
	TriggerShortcut
)

// String returns the string representation of the trigger type.
func (t TriggerType) String() string {
	switch t {
	case TriggerNodeType:
		return "node-type"
	case TriggerSlash:
		return "slash"
	case TriggerShortcut:
		return "shortcut"
	default:
		return "unknown"
	}
}

// ParseTriggerType parses a trigger type name.
func ParseTriggerType(s string) (TriggerType, bool) {
	switch strings.ToLower(s) {
	case "node-type", "nodetype":
		return TriggerNodeType, true
	case "slash":
		return TriggerSlash, true
	case "shortcut":
		return TriggerShortcut, true
	default:
		return TriggerUnknown, false
	}
}

// Category groups related commands.
type Category string

// Known command categories.
const (
	CategoryContent     Category = "content"
	CategoryMedia       Category = "media"
	CategoryInteractive Category = "interactive"
	CategoryAnnotation  Category = "annotation"
	CategoryPattern     Category = "pattern"
	CategoryFormat      Category = "format"
	CategoryTemplate    Category = "template"
)

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryContent, CategoryMedia, CategoryInteractive,
		CategoryAnnotation, CategoryPattern, CategoryFormat, CategoryTemplate:
		return true
	default:
		return false
	}
}

// Selection is an optional text selection within a context.
type Selection struct {
	// Start is the rune offset of the selection start.
	Start int
	// End is the rune offset one past the selection end.
	End int
	// Text is the selected text.
	Text string
}

// Context carries the editor state a command executes against.
// Offsets are rune offsets.
type Context struct {
	// Text is the full buffer content.
	Text string

	// Cursor is the cursor position, 0 <= Cursor <= len([]rune(Text)).
	Cursor int

	// Selection is the active selection, nil when there is none.
	Selection *Selection

	// NodeType is the current node type, empty when unknown.
	NodeType string

	// Metadata carries free-form host data.
	Metadata map[string]any
}

// Result is the outcome of executing a command. When Success is false the
// caller must ignore every field except Message.
type Result struct {
	// Success reports whether the command executed.
	Success bool

	// Replace reports whether ReplacementText and CursorPosition carry
	// meaningful values (an empty replacement is valid).
	Replace bool

	// ReplacementText is the new buffer content.
	ReplacementText string

	// CursorPosition is the new cursor position in runes.
	CursorPosition int

	// NodeType is the node type to switch to, empty for no change.
	NodeType string

	// NodeData carries structured data for the new node.
	NodeData map[string]any

	// Message is a human-readable status or error description.
	Message string

	// ClosePanel tells the host to close any open command panel.
	ClosePanel bool
}

// Command is an immutable command definition. Identity is ID.
type Command struct {
	// ID uniquely identifies the command.
	ID string

	// Trigger is the full trigger string, e.g. "$task" or "/date".
	Trigger string

	// TriggerType classifies the trigger.
	TriggerType TriggerType

	// Category groups the command.
	Category Category

	// Label is the display name.
	Label string

	// Description explains the command.
	Description string

	// Keywords are extra search terms.
	Keywords []string

	// Priority orders results; lower ranks higher.
	Priority int

	// Source records where the command came from: "builtin", "user",
	// "script". Empty registers as "builtin".
	Source string

	// Action is the command behavior.
	Action Action
}

// Validate reports whether the definition is complete enough to register.
func (c Command) Validate() error {
	switch {
	case c.ID == "":
		return ErrMissingID
	case c.Trigger == "":
		return ErrMissingTrigger
	case c.Label == "":
		return ErrMissingLabel
	case c.Action == nil:
		return ErrMissingAction
	case !c.Category.Valid():
		return ErrInvalidCategory
	case c.TriggerType == TriggerUnknown:
		return ErrInvalidTriggerType
	default:
		return nil
	}
}

// matchesQuery reports whether the command matches a lowercased query
// against trigger, label, description, or any keyword.
func (c Command) matchesQuery(query string) bool {
	if strings.Contains(strings.ToLower(c.Trigger), query) ||
		strings.Contains(strings.ToLower(c.Label), query) ||
		strings.Contains(strings.ToLower(c.Description), query) {
		return true
	}
	for _, kw := range c.Keywords {
		if strings.Contains(strings.ToLower(kw), query) {
			return true
		}
	}
	return false
}
