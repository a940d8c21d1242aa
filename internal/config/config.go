package config

import (
	"fmt"
	"time"
)

// Config is the full engine configuration.
type Config struct {
	Logging    Logging    `toml:"logging"`
	Completion Completion `toml:"completion"`
	Commands   Commands   `toml:"commands"`
}

// Logging configures the slog handler.
type Logging struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`

	// Format is text or json.
	Format string `toml:"format"`
}

// Completion configures the completion engine.
type Completion struct {
	// TTL is how long cached completion results stay valid.
	TTL Duration `toml:"ttl"`

	// Limit caps the number of items per result.
	Limit int `toml:"limit"`

	// CacheSize caps the number of cached results.
	CacheSize int `toml:"cache_size"`
}

// Commands configures command registration.
type Commands struct {
	// File is the path to the user command file. Empty disables it.
	File string `toml:"file"`

	// Watch reloads the user command file on change.
	Watch bool `toml:"watch"`
}

// Duration unmarshals from TOML strings like "5s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the configuration defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
		Completion: Completion{
			TTL:       Duration(5 * time.Second),
			Limit:     15,
			CacheSize: 64,
		},
		Commands: Commands{
			Watch: false,
		},
	}
}

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var logFormats = map[string]bool{
	"text": true,
	"json": true,
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if !logLevels[c.Logging.Level] {
		return fmt.Errorf("config: invalid log level %q", c.Logging.Level)
	}
	if !logFormats[c.Logging.Format] {
		return fmt.Errorf("config: invalid log format %q", c.Logging.Format)
	}
	if c.Completion.TTL <= 0 {
		return fmt.Errorf("config: completion ttl must be positive, got %s", c.Completion.TTL.Std())
	}
	if c.Completion.Limit <= 0 {
		return fmt.Errorf("config: completion limit must be positive, got %d", c.Completion.Limit)
	}
	if c.Completion.CacheSize <= 0 {
		return fmt.Errorf("config: completion cache size must be positive, got %d", c.Completion.CacheSize)
	}
	return nil
}
