package command

import (
	"fmt"

	"github.com/dshills/notelex/internal/trigger"
)

// Processor turns a detected trigger into a command execution: the
// node-type switch path for $triggers and the slash-command path for
// /triggers.
type Processor struct {
	registry *Registry
}

// NewProcessor creates a processor bound to a registry.
func NewProcessor(registry *Registry) *Processor {
	return &Processor{registry: registry}
}

// ProcessSwitch detects the trigger in text and executes the command whose
// trigger matches it exactly. A $word with no exact command match is the
// "Unknown node type" condition; no trigger at all is a no-op failure.
// Both are reported, not fatal.
func (p *Processor) ProcessSwitch(text string, cursor int) Result {
	det := trigger.Detect(text)
	if !det.HasTrigger {
		return Result{Success: false, Message: "No trigger found"}
	}

	cmd, ok := p.exactMatch(det)
	if !ok {
		if det.Kind == trigger.KindNodeType {
			return Result{
				Success: false,
				Message: fmt.Sprintf("Unknown node type: %s", det.Word),
			}
		}
		return Result{
			Success: false,
			Message: fmt.Sprintf("Unknown command: %s", det.Prefix()),
		}
	}

	return p.registry.Execute(cmd.ID, Context{Text: text, Cursor: cursor})
}

// exactMatch finds the command whose trigger equals the detected prefix.
func (p *Processor) exactMatch(det trigger.Result) (Command, bool) {
	wantType := TriggerNodeType
	if det.Kind == trigger.KindSlash {
		wantType = TriggerSlash
	}

	for _, cmd := range p.registry.Search(SearchFilter{
		TriggerType:    wantType,
		TriggerPattern: det.Prefix(),
	}) {
		if cmd.Trigger == det.Prefix() {
			return cmd, true
		}
	}
	return Command{}, false
}
