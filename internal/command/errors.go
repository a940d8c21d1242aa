package command

import "errors"

// Command validation errors.
var (
	// ErrMissingID indicates a command without an id.
	ErrMissingID = errors.New("command: missing id")

	// ErrMissingTrigger indicates a command without a trigger.
	ErrMissingTrigger = errors.New("command: missing trigger")

	// ErrMissingLabel indicates a command without a label.
	ErrMissingLabel = errors.New("command: missing label")

	// ErrMissingAction indicates a command without an action.
	ErrMissingAction = errors.New("command: missing action")

	// ErrInvalidCategory indicates an unknown category.
	ErrInvalidCategory = errors.New("command: invalid category")

	// ErrInvalidTriggerType indicates an unknown trigger type.
	ErrInvalidTriggerType = errors.New("command: invalid trigger type")

	// ErrUnknownNodeType indicates a $trigger with no matching command.
	ErrUnknownNodeType = errors.New("command: unknown node type")
)
