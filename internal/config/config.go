// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Config is the top-level configuration container for the confmerge tool.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//
// All environment lookups additionally carry the tool-wide CONFMERGE_
// prefix applied by parseEnv.
type Config struct {
	// Fetch holds settings for retrieving remote base documents over HTTP.
	Fetch Fetch `envPrefix:"FETCH_"`

	// Output holds settings for rendering the merged document.
	Output Output `envPrefix:"OUTPUT_"`

	// Watch holds settings for the re-merge-on-interval mode.
	Watch Watch `envPrefix:"WATCH_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via the CONFMERGE_CONFIG environment variable or the
	// -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Fetch holds settings for retrieving remote base documents.
type Fetch struct {
	// Timeout bounds a single HTTP fetch of a remote base document
	// (e.g. "10s", "1m").
	// Env: CONFMERGE_FETCH_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Output holds settings for rendering the merged document.
type Output struct {
	// Format selects the output encoding, "json" or "toml". When empty,
	// the format is inferred from the output file extension and falls
	// back to JSON.
	// Env: CONFMERGE_OUTPUT_FORMAT
	Format string `env:"FORMAT"`

	// Indent is the number of spaces per indentation level in rendered
	// JSON output, between 1 and 8.
	// Env: CONFMERGE_OUTPUT_INDENT
	Indent int `env:"INDENT"`
}

// Watch holds settings for watch mode.
type Watch struct {
	// Interval is the delay between merge passes in watch mode
	// (e.g. "2s", "1m").
	// Env: CONFMERGE_WATCH_INTERVAL
	Interval time.Duration `env:"INTERVAL"`
}

// Log holds logging settings.
type Log struct {
	// Level is the zerolog level name applied at startup
	// ("debug", "info", "warn", "error").
	// Env: CONFMERGE_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetConfig loads, merges, and validates the tool configuration from all
// available sources. Earlier sources win for fields they set:
//  1. Environment variables
//  2. Command-line flags (the flags layer is assembled by the command
//     wiring and passed in)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *Config or an error if any source fails to
// load or the final config fails validation.
func GetConfig(flags *Config) (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withJSON().
		withDefaults().
		build()
}
