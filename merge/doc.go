// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package merge combines two JSON-shaped document trees into a new tree
// without mutating either input.
//
// A document tree is built from map[string]any composites, slice
// sequences and primitive leaves. [Merge] deep-merges an override tree
// into a deep clone of a base tree; [MergeWith] additionally accepts a
// [StrategyTable] that pins individual dot-joined paths to one of three
// strategies:
//
//   - [StrategyMerge]   — the default recursive behavior, spelled out;
//   - [StrategyReplace] — wholesale substitution at the path;
//   - [StrategySafe]    — keep the base value when the override is nil.
//
// Sequences are always replaced as a unit, never merged element-wise.
// The result shares no mutable container with either input, so callers
// may freely modify all three trees afterwards.
package merge
