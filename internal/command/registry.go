package command

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"

	"github.com/dshills/notelex/internal/trigger"
)

// maxSuggestions bounds "did you mean" suggestions for unknown ids.
const maxSuggestions = 3

// RegisterOptions tunes registration behavior.
type RegisterOptions struct {
	// Replace allows overwriting an existing command with the same id.
	Replace bool

	// SkipValidation registers the command without validating it.
	SkipValidation bool
}

// SearchFilter narrows Search results. Zero-value fields are ignored and
// all set fields are ANDed.
type SearchFilter struct {
	// Query matches case-insensitively against trigger, label,
	// description, and keywords.
	Query string

	// Category restricts results to one category.
	Category Category

	// TriggerType restricts results to one trigger type.
	TriggerType TriggerType

	// TriggerPattern restricts results to triggers with this prefix.
	TriggerPattern string

	// Limit truncates results after sorting; 0 means no limit.
	Limit int
}

// TriggerResult pairs a detected trigger with the commands whose triggers
// prefix-match it.
type TriggerResult struct {
	trigger.Result

	// Matches are commands whose trigger starts with the detected prefix,
	// sorted by priority then label.
	Matches []Command
}

// Registry stores command definitions keyed by id. Construct with New; the
// registry holds the only mutable command state in the engine and is safe
// for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
	logger   *slog.Logger
}

// New creates an empty command registry.
func New() *Registry {
	return &Registry{
		commands: make(map[string]Command),
		logger:   slog.Default(),
	}
}

// SetLogger replaces the registry logger.
func (r *Registry) SetLogger(logger *slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if logger != nil {
		r.logger = logger
	}
}

// Register adds a command with default options: no replacement, with
// validation. Returns false (and leaves the registry unchanged) on id
// collision or validation failure.
func (r *Registry) Register(cmd Command) bool {
	return r.RegisterWith(cmd, RegisterOptions{})
}

// RegisterWith adds a command with explicit options.
func (r *Registry) RegisterWith(cmd Command, opts RegisterOptions) bool {
	if !opts.SkipValidation {
		if err := cmd.Validate(); err != nil {
			r.logger.Warn("rejecting invalid command",
				"id", cmd.ID,
				"error", err,
			)
			return false
		}
	}
	if cmd.Source == "" {
		cmd.Source = "builtin"
	}
	cmd.Keywords = append([]string(nil), cmd.Keywords...)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commands[cmd.ID]; exists && !opts.Replace {
		r.logger.Warn("rejecting duplicate command id", "id", cmd.ID)
		return false
	}
	r.commands[cmd.ID] = cmd
	return true
}

// RegisterAll registers commands in order and reports how many were
// accepted. Rejections do not stop later registrations.
func (r *Registry) RegisterAll(cmds []Command, opts RegisterOptions) int {
	accepted := 0
	for _, cmd := range cmds {
		if r.RegisterWith(cmd, opts) {
			accepted++
		}
	}
	return accepted
}

// Unregister removes a command by id.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commands[id]; !exists {
		return false
	}
	delete(r.commands, id)
	return true
}

// UnregisterBySource removes every command from a source and returns the
// removed count.
func (r *Registry) UnregisterBySource(source string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for id, cmd := range r.commands {
		if cmd.Source == source {
			delete(r.commands, id)
			count++
		}
	}
	return count
}

// Get retrieves a command by id.
func (r *Registry) Get(id string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[id]
	return cmd, ok
}

// Count returns the number of registered commands.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// All returns every registered command sorted by priority then label.
func (r *Registry) All() []Command {
	return r.Search(SearchFilter{})
}

// Clear removes all registered commands.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = make(map[string]Command)
}

// Search returns commands passing every set filter field, sorted by
// priority ascending with alphabetical label tiebreak.
func (r *Registry) Search(filter SearchFilter) []Command {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	r.mu.RLock()
	results := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		if filter.Category != "" && cmd.Category != filter.Category {
			continue
		}
		if filter.TriggerType != TriggerUnknown && cmd.TriggerType != filter.TriggerType {
			continue
		}
		if filter.TriggerPattern != "" && !strings.HasPrefix(cmd.Trigger, filter.TriggerPattern) {
			continue
		}
		if query != "" && !cmd.matchesQuery(query) {
			continue
		}
		results = append(results, cmd)
	}
	r.mu.RUnlock()

	sort.Slice(results, func(i, j int) bool {
		if results[i].Priority != results[j].Priority {
			return results[i].Priority < results[j].Priority
		}
		return results[i].Label < results[j].Label
	})

	if filter.Limit > 0 && len(results) > filter.Limit {
		results = results[:filter.Limit]
	}
	return results
}

// FindMatching detects a trigger in text and returns the commands whose
// triggers prefix-match it.
func (r *Registry) FindMatching(text string) TriggerResult {
	det := trigger.Detect(text)
	if !det.HasTrigger {
		return TriggerResult{Result: det}
	}

	wantType := TriggerNodeType
	if det.Kind == trigger.KindSlash {
		wantType = TriggerSlash
	}

	return TriggerResult{
		Result: det,
		Matches: r.Search(SearchFilter{
			TriggerType:    wantType,
			TriggerPattern: det.Prefix(),
		}),
	}
}

// Execute looks up a command by id and runs its action. Action panics and
// errors are contained and reported through the Result; an unknown id is a
// reported not-found condition with fuzzy suggestions, never an error.
func (r *Registry) Execute(id string, ctx Context) Result {
	cmd, ok := r.Get(id)
	if !ok {
		msg := fmt.Sprintf("Command not found: %s", id)
		if suggestions := r.suggest(id); len(suggestions) > 0 {
			msg += fmt.Sprintf(". Did you mean: %s?", strings.Join(suggestions, ", "))
		}
		r.logger.Warn("command not found", "id", id)
		return Result{Success: false, Message: msg}
	}

	result, err := r.runContained(cmd, ctx)
	if err != nil {
		r.logger.Error("command execution failed",
			"id", id,
			"error", err,
		)
		return Result{
			Success: false,
			Message: fmt.Sprintf("Failed to execute command: %v", err),
		}
	}
	return result
}

// runContained invokes the action with panic recovery.
func (r *Registry) runContained(cmd Command, ctx Context) (result Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			result = Result{}
			err = fmt.Errorf("%s panicked: %v", cmd.ID, rec)
		}
	}()
	return cmd.Action.Run(ctx)
}

// suggest finds registered ids similar to the unknown id.
func (r *Registry) suggest(id string) []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.commands))
	for cid := range r.commands {
		names = append(names, cid)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	matches := fuzzy.Find(id, names)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	suggestions := make([]string, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, names[m.Index])
	}
	return suggestions
}
