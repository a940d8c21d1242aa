// Package config defines engine configuration with TOML file loading and
// environment variable overrides.
//
// Resolution order, later wins: defaults, then the TOML file, then
// NOTELEX_-prefixed environment variables. A missing config file is not
// an error; the defaults apply.
package config
