// Package app wires the engine components into a session. It loads
// configuration, sets up logging, builds the command registry and
// completion engine, and exposes the per-keystroke entry points the host
// editor calls.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dshills/notelex/internal/command"
	"github.com/dshills/notelex/internal/completion"
	"github.com/dshills/notelex/internal/config"
	"github.com/dshills/notelex/internal/extract"
	"github.com/dshills/notelex/internal/trigger"
)

// Options configures a session.
type Options struct {
	// ConfigPath is the path to the TOML config file. Empty uses
	// defaults plus environment overrides.
	ConfigPath string

	// LogOutput is where logs are written. Defaults to os.Stderr.
	LogOutput io.Writer

	// Clock is the time source. Defaults to time.Now.
	Clock func() time.Time
}

// Session is one editing session's engine state: the command registry
// and the completion cache. Everything else is stateless per call.
type Session struct {
	cfg        config.Config
	logger     *slog.Logger
	registry   *command.Registry
	processor  *command.Processor
	completion *completion.Engine
	watcher    *command.Watcher
	clock      func() time.Time
}

// New creates a session: configuration, logging, builtin commands, the
// user command file (with optional watching), and the completion engine.
func New(opts Options) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	logger := newLogger(cfg.Logging, opts.LogOutput)
	slog.SetDefault(logger)

	registry := command.New()
	registry.SetLogger(logger)
	command.RegisterBuiltins(registry, clock)

	s := &Session{
		cfg:       cfg,
		logger:    logger,
		registry:  registry,
		processor: command.NewProcessor(registry),
		completion: completion.New(
			completion.WithTTL(cfg.Completion.TTL.Std()),
			completion.WithLimit(cfg.Completion.Limit),
			completion.WithCapacity(cfg.Completion.CacheSize),
			completion.WithClock(clock),
		),
		clock: clock,
	}

	if cfg.Commands.File != "" {
		if _, err := command.LoadInto(registry, cfg.Commands.File); err != nil {
			logger.Warn("user command file not loaded", "path", cfg.Commands.File, "error", err)
		}
		if cfg.Commands.Watch {
			w, err := command.Watch(registry, cfg.Commands.File)
			if err != nil {
				return nil, fmt.Errorf("watch command file: %w", err)
			}
			s.watcher = w
		}
	}

	logger.Info("session ready",
		"commands", registry.Count(),
		"watching", s.watcher != nil,
	)
	return s, nil
}

// newLogger builds a slog logger from the logging config.
func newLogger(cfg config.Logging, out io.Writer) *slog.Logger {
	if out == nil {
		out = os.Stderr
	}

	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	ho := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(out, ho))
	}
	return slog.New(slog.NewTextHandler(out, ho))
}

// Registry exposes the command registry for host-side registration.
func (s *Session) Registry() *command.Registry {
	return s.registry
}

// Extract scans text for embedded patterns and returns the cleaned text
// with the ordered pattern list.
func (s *Session) Extract(text string) extract.Result {
	return extract.ExtractAt(text, s.clock())
}

// Detect finds the trigger in text and the commands matching it.
func (s *Session) Detect(text string) command.TriggerResult {
	return s.registry.FindMatching(text)
}

// Complete returns ranked completions for the pattern at cursor, or nil.
func (s *Session) Complete(text string, cursor int) *completion.Result {
	return s.completion.Complete(text, cursor)
}

// Execute runs a registered command against the given context.
func (s *Session) Execute(id string, ctx command.Context) command.Result {
	return s.registry.Execute(id, ctx)
}

// ProcessSwitch turns a node-type or slash trigger in text into a
// command execution.
func (s *Session) ProcessSwitch(text string, cursor int) command.Result {
	return s.processor.ProcessSwitch(text, cursor)
}

// Strip removes the detected trigger from text.
func (s *Session) Strip(text string) string {
	return trigger.Strip(text)
}

// Close stops the command file watcher, if any.
func (s *Session) Close() error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}
