// Package command implements the command registry: registration, lookup,
// search, trigger matching, and execution of editor commands.
//
// # Registry
//
// The registry is an explicitly constructed object with no package-level
// state; callers create one per editing session and pass it where needed.
// Registration enforces id uniqueness unless a replace flag is given, and
// validation failures are reported through boolean returns, never panics.
//
// # Actions
//
// Command behavior is a closed set of Action implementations:
//
//   - SwitchNodeType: turn a $trigger into a node-type change plus the
//     cleaned remainder text
//   - InsertText: generate text at the trigger position (/date, /time)
//   - Format: transform the current selection
//   - Template: produce a node scaffold with structured node data
//
// Script actions (Lua) live in the script package and satisfy the same
// Action interface.
//
// # Execution
//
// Execute never lets an action failure escape as a panic or error: panics
// are recovered and action errors are converted into a failed Result with
// a "Failed to execute command" message. Unknown ids produce a not-found
// Result with fuzzy-matched suggestions.
package command
