package command

import (
	"errors"
	"unicode/utf8"

	"github.com/dshills/notelex/internal/trigger"
)

// Action is the behavior bound to a command. Implementations must be pure
// with respect to the engine: no registry mutation, no I/O. Errors are
// contained by Registry.Execute and never propagate past it.
type Action interface {
	Run(ctx Context) (Result, error)
}

// SwitchNodeType changes the node type and strips the trigger from the
// buffer text.
type SwitchNodeType struct {
	// NodeType is the node type to switch to, e.g. "taskNode".
	NodeType string
}

// Run strips one trigger occurrence from the text, trims, and moves the
// cursor to the end of the remainder.
func (a SwitchNodeType) Run(ctx Context) (Result, error) {
	if a.NodeType == "" {
		return Result{}, errors.New("switch action has no node type")
	}

	remainder := trigger.Strip(ctx.Text)
	return Result{
		Success:         true,
		Replace:         true,
		ReplacementText: remainder,
		CursorPosition:  utf8.RuneCountInString(remainder),
		NodeType:        a.NodeType,
		ClosePanel:      true,
	}, nil
}

// InsertText replaces the trigger occurrence with generated text, leaving
// the cursor after the insertion.
type InsertText struct {
	// Generate produces the text to insert.
	Generate func(ctx Context) string
}

// Run replaces the first trigger occurrence with the generated text.
// Without a trigger in the buffer the text is inserted at the cursor.
func (a InsertText) Run(ctx Context) (Result, error) {
	if a.Generate == nil {
		return Result{}, errors.New("insert action has no generator")
	}

	insert := a.Generate(ctx)
	text, cursor := replaceTrigger(ctx.Text, ctx.Cursor, insert)

	return Result{
		Success:         true,
		Replace:         true,
		ReplacementText: text,
		CursorPosition:  cursor,
		ClosePanel:      true,
	}, nil
}

// Format transforms the selection (or the whole buffer when there is no
// selection) through Apply.
type Format struct {
	// Apply transforms the affected text.
	Apply func(text string) string
}

// Run applies the transform and keeps the cursor at the end of the
// affected region.
func (a Format) Run(ctx Context) (Result, error) {
	if a.Apply == nil {
		return Result{}, errors.New("format action has no transform")
	}

	if ctx.Selection == nil {
		formatted := a.Apply(trigger.Strip(ctx.Text))
		return Result{
			Success:         true,
			Replace:         true,
			ReplacementText: formatted,
			CursorPosition:  utf8.RuneCountInString(formatted),
			ClosePanel:      true,
		}, nil
	}

	runes := []rune(ctx.Text)
	sel := ctx.Selection
	if sel.Start < 0 || sel.End > len(runes) || sel.Start > sel.End {
		return Result{}, errors.New("selection out of range")
	}
	formatted := a.Apply(string(runes[sel.Start:sel.End]))
	text := string(runes[:sel.Start]) + formatted + string(runes[sel.End:])

	return Result{
		Success:         true,
		Replace:         true,
		ReplacementText: text,
		CursorPosition:  sel.Start + utf8.RuneCountInString(formatted),
		ClosePanel:      true,
	}, nil
}

// Template produces a node scaffold with structured node data.
type Template struct {
	// NodeType is the node type of the scaffold.
	NodeType string

	// Data is the node data template. Cloned per execution.
	Data map[string]any
}

// Run strips the trigger and returns the scaffold node type and data.
func (a Template) Run(ctx Context) (Result, error) {
	if a.NodeType == "" {
		return Result{}, errors.New("template action has no node type")
	}

	remainder := trigger.Strip(ctx.Text)
	data := make(map[string]any, len(a.Data))
	for k, v := range a.Data {
		data[k] = v
	}

	return Result{
		Success:         true,
		Replace:         true,
		ReplacementText: remainder,
		CursorPosition:  utf8.RuneCountInString(remainder),
		NodeType:        a.NodeType,
		NodeData:        data,
		ClosePanel:      true,
	}, nil
}

// replaceTrigger substitutes the first trigger occurrence with insert and
// returns the new text plus the rune offset just past the insertion. When
// no trigger is present insert is spliced at the cursor.
func replaceTrigger(text string, cursor int, insert string) (string, int) {
	det := trigger.Detect(text)
	if !det.HasTrigger {
		runes := []rune(text)
		if cursor < 0 {
			cursor = 0
		}
		if cursor > len(runes) {
			cursor = len(runes)
		}
		out := string(runes[:cursor]) + insert + string(runes[cursor:])
		return out, cursor + utf8.RuneCountInString(insert)
	}

	runes := []rune(text)
	end := det.Start + utf8.RuneCountInString(det.Prefix())
	out := string(runes[:det.Start]) + insert + string(runes[end:])
	return out, det.Start + utf8.RuneCountInString(insert)
}
