// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merge

import "github.com/MKhiriev/go-utils/guard"

// Merge deep-merges override into a deep clone of base using default
// behavior for every path. Equivalent to MergeWith(base, override, nil).
func Merge(base, override map[string]any) map[string]any {
	return MergeWith(base, override, nil)
}

// MergeWith deep-merges override into a deep clone of base, consulting
// strategies for per-path overrides of the default behavior.
//
// Neither input is modified, and the returned tree shares no mutable
// container with either of them. A nil base is treated as an empty
// composite; a nil override leaves the clone of base untouched. The
// call never fails: type mismatches between base and override at a key
// resolve by replacement, and unrecognized strategy tags behave as if
// the path had no entry.
//
// Per key of the override, the first matching rule wins:
//
//  1. safe strategy and nil override value       — keep the base value;
//  2. no recognized strategy, nil override value — keep the base value;
//  3. replace strategy, or a sequence value      — replace wholesale;
//  4. composite override over composite base     — merge recursively;
//  5. anything else                              — replace wholesale.
//
// Sequences are never merged element-wise, regardless of strategy.
func MergeWith(base, override map[string]any, strategies StrategyTable) map[string]any {
	result := make(map[string]any, len(base))
	for k, v := range base {
		result[k] = Clone(v)
	}

	mergeInto(result, override, "", strategies)
	return result
}

// mergeInto walks the keys of src and applies them onto dst, which is
// always a privately owned subtree of the final result. prefix is the
// dot-joined path of dst within the root.
func mergeInto(dst, src map[string]any, prefix string, strategies StrategyTable) {
	for k, v := range src {
		path := joinPath(prefix, k)
		strategy := strategies[path]

		switch {
		case strategy == StrategySafe && guard.IsNil(v):
			// keep dst[k]
		case !strategy.Valid() && guard.IsNil(v):
			// nil stands for an absent override value; without an
			// explicit strategy it never clears the base value
		case strategy == StrategyReplace || guard.IsSequence(v):
			dst[k] = Clone(v)
		case guard.IsComposite(v) && guard.IsComposite(dst[k]):
			mergeInto(dst[k].(map[string]any), v.(map[string]any), path, strategies)
		default:
			dst[k] = Clone(v)
		}
	}
}
