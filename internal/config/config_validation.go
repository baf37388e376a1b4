// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [Config] satisfies all tool
// invariants before it is used at startup. Defaults have already been
// applied, so every field is expected to hold a usable value.
//
// Returns nil if the configuration is valid, or a sentinel error
// otherwise.
func (cfg *Config) validate() error {
	switch cfg.Output.Format {
	case "json", "toml":
	default:
		return ErrInvalidOutputConfigs
	}

	if cfg.Output.Indent < 1 || cfg.Output.Indent > 8 {
		return ErrInvalidOutputConfigs
	}

	if cfg.Watch.Interval <= 0 {
		return ErrInvalidWatchConfigs
	}

	if cfg.Fetch.Timeout <= 0 {
		return ErrInvalidFetchConfigs
	}

	return nil
}
