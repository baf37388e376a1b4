package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidOutputConfigs indicates invalid output settings
	// (for example, an unknown format or an indent out of range).
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrInvalidWatchConfigs indicates invalid watch settings
	// (for example, a non-positive interval).
	ErrInvalidWatchConfigs = errors.New("invalid watch configuration")
	// ErrInvalidFetchConfigs indicates invalid fetch settings
	// (for example, a non-positive timeout).
	ErrInvalidFetchConfigs = errors.New("invalid fetch configuration")
)
