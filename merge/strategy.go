// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merge

// Strategy selects how the override value at a single path combines
// with the base value at the same path.
type Strategy string

const (
	// StrategyMerge is an explicit alias for the default behavior:
	// composites merge recursively, everything else replaces. The tag
	// exists so a strategy table can state the default on purpose; it
	// adds no branch of its own.
	StrategyMerge Strategy = "merge"

	// StrategyReplace substitutes the override value wholesale,
	// bypassing the recursive merge.
	StrategyReplace Strategy = "replace"

	// StrategySafe keeps the base value when the override value at the
	// path is nil.
	StrategySafe Strategy = "safe"
)

// Valid reports whether s is one of the three recognized strategy tags.
// Unrecognized tags behave as "no entry" during a merge.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyMerge, StrategyReplace, StrategySafe:
		return true
	default:
		return false
	}
}

// StrategyTable maps dot-joined paths (e.g. "theme.colors.primary") to
// merge strategies. A path with no entry uses the default behavior, and
// an entry never applies to the path's descendants: each path must
// carry its own entry.
type StrategyTable map[string]Strategy

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
