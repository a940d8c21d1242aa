package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for override environment variables.
const EnvPrefix = "NOTELEX_"

// Load builds a configuration from defaults, the TOML file at path, and
// environment overrides, then validates it. An empty path or a missing
// file skips the file layer.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays NOTELEX_ environment variables on cfg. Unset
// variables leave the current value alone; empty values count as set.
func applyEnv(cfg *Config) error {
	overrides := []struct {
		name  string
		apply func(string) error
	}{
		{"LOG_LEVEL", func(v string) error {
			cfg.Logging.Level = v
			return nil
		}},
		{"LOG_FORMAT", func(v string) error {
			cfg.Logging.Format = v
			return nil
		}},
		{"COMPLETION_TTL", func(v string) error {
			d, err := time.ParseDuration(v)
			if err != nil {
				return err
			}
			cfg.Completion.TTL = Duration(d)
			return nil
		}},
		{"COMPLETION_LIMIT", func(v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			cfg.Completion.Limit = n
			return nil
		}},
		{"COMPLETION_CACHE_SIZE", func(v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			cfg.Completion.CacheSize = n
			return nil
		}},
		{"COMMANDS_FILE", func(v string) error {
			cfg.Commands.File = v
			return nil
		}},
		{"COMMANDS_WATCH", func(v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return err
			}
			cfg.Commands.Watch = b
			return nil
		}},
	}

	for _, o := range overrides {
		env := EnvPrefix + o.name
		val, ok := os.LookupEnv(env)
		if !ok {
			continue
		}
		if err := o.apply(val); err != nil {
			return fmt.Errorf("config: %s: %w", env, err)
		}
	}
	return nil
}
