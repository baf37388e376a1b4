// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merge

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// ── default behavior ──────────────────────────────────────────────────────────

// TestMerge_DefaultDeepMerge verifies that nested composites without a
// strategy entry merge recursively.
func TestMerge_DefaultDeepMerge(t *testing.T) {
	base := map[string]any{"a": 1, "b": map[string]any{"c": 2, "d": 3}}
	override := map[string]any{"b": map[string]any{"c": 10}}

	result := Merge(base, override)

	assert.Equal(t, map[string]any{"a": 1, "b": map[string]any{"c": 10, "d": 3}}, result)
}

// TestMerge_EmptyOverride verifies that an empty override returns a value
// deep-equal to base but with distinct instances at every nested composite.
func TestMerge_EmptyOverride(t *testing.T) {
	base := map[string]any{"a": 1, "b": map[string]any{"c": map[string]any{"d": 2}}}

	result := Merge(base, map[string]any{})

	require.Equal(t, base, result)
	assert.NotEqual(t,
		reflect.ValueOf(base).Pointer(),
		reflect.ValueOf(result).Pointer(),
	)
	assert.NotEqual(t,
		reflect.ValueOf(base["b"]).Pointer(),
		reflect.ValueOf(result["b"]).Pointer(),
	)
	assert.NotEqual(t,
		reflect.ValueOf(base["b"].(map[string]any)["c"]).Pointer(),
		reflect.ValueOf(result["b"].(map[string]any)["c"]).Pointer(),
	)
}

// TestMerge_NilOverride verifies that a nil override map is a no-op.
func TestMerge_NilOverride(t *testing.T) {
	base := map[string]any{"a": 1}
	assert.Equal(t, base, Merge(base, nil))
}

// TestMerge_NilBase verifies that a nil base behaves as an empty composite.
func TestMerge_NilBase(t *testing.T) {
	result := Merge(nil, map[string]any{"a": 1})
	assert.Equal(t, map[string]any{"a": 1}, result)
}

// TestMerge_PrimitiveOverridesReplace verifies that primitive override
// values replace base values of any shape.
func TestMerge_PrimitiveOverridesReplace(t *testing.T) {
	base := map[string]any{"a": map[string]any{"x": 1}, "b": 2, "c": []any{1}}
	override := map[string]any{"a": "flat", "b": true, "c": 7}

	result := Merge(base, override)

	assert.Equal(t, map[string]any{"a": "flat", "b": true, "c": 7}, result)
}

// TestMerge_NilBaseValue_NeverRecursed verifies that a nil base value with
// a composite override replaces wholesale instead of recursing into nil.
func TestMerge_NilBaseValue_NeverRecursed(t *testing.T) {
	base := map[string]any{"a": nil}
	override := map[string]any{"a": map[string]any{"x": 1}}

	result := Merge(base, override)

	assert.Equal(t, map[string]any{"a": map[string]any{"x": 1}}, result)
}

// TestMerge_NilOverrideValue_SkippedByDefault verifies that without a
// strategy a nil override value keeps the base value.
func TestMerge_NilOverrideValue_SkippedByDefault(t *testing.T) {
	base := map[string]any{"a": 1, "b": 2}
	override := map[string]any{"a": nil}

	result := Merge(base, override)

	assert.Equal(t, map[string]any{"a": 1, "b": 2}, result)
}

// TestMerge_NewKeysAdded verifies that keys present only in the override
// appear in the result.
func TestMerge_NewKeysAdded(t *testing.T) {
	base := map[string]any{"a": 1}
	override := map[string]any{"b": map[string]any{"c": 2}}

	result := Merge(base, override)

	assert.Equal(t, map[string]any{"a": 1, "b": map[string]any{"c": 2}}, result)
}

// ── sequences ─────────────────────────────────────────────────────────────────

// TestMerge_ArrayAlwaysReplace verifies that sequences replace wholesale
// under any strategy table and never alias the override.
func TestMerge_ArrayAlwaysReplace(t *testing.T) {
	tables := []StrategyTable{
		nil,
		{"arr": StrategyMerge},
		{"arr": StrategyReplace},
		{"arr": StrategySafe},
		{"arr": "bogus"},
	}

	for _, table := range tables {
		base := map[string]any{"arr": []any{1, 2, 3}}
		override := map[string]any{"arr": []any{4, 5}}

		result := MergeWith(base, override, table)

		require.Equal(t, []any{4, 5}, result["arr"])
		assert.NotEqual(t,
			reflect.ValueOf(override["arr"]).Pointer(),
			reflect.ValueOf(result["arr"]).Pointer(),
			"result sequence must be a fresh instance",
		)
	}
}

// TestMerge_NestedSequenceReplaced verifies wholesale replacement of a
// sequence found during recursion.
func TestMerge_NestedSequenceReplaced(t *testing.T) {
	base := map[string]any{"a": map[string]any{"list": []any{1, 2, 3}, "keep": "x"}}
	override := map[string]any{"a": map[string]any{"list": []any{9}}}

	result := Merge(base, override)

	assert.Equal(t, map[string]any{"a": map[string]any{"list": []any{9}, "keep": "x"}}, result)
}

// ── strategy table ────────────────────────────────────────────────────────────

// TestMergeWith_SafeSkip verifies that safe suppresses a nil override.
func TestMergeWith_SafeSkip(t *testing.T) {
	base := map[string]any{"a": 1, "b": 2}
	override := map[string]any{"a": nil}

	result := MergeWith(base, override, StrategyTable{"a": StrategySafe})

	assert.Equal(t, map[string]any{"a": 1, "b": 2}, result)
}

// TestMergeWith_SafeDoesNotBlockValues verifies that safe only affects nil
// override values; real values still apply.
func TestMergeWith_SafeDoesNotBlockValues(t *testing.T) {
	base := map[string]any{"a": 1}
	override := map[string]any{"a": 5}

	result := MergeWith(base, override, StrategyTable{"a": StrategySafe})

	assert.Equal(t, map[string]any{"a": 5}, result)
}

// TestMergeWith_ReplaceOverride verifies that replace substitutes the whole
// subtree: sibling keys of the base subtree disappear.
func TestMergeWith_ReplaceOverride(t *testing.T) {
	base := map[string]any{"a": 1, "b": map[string]any{"c": 2, "d": 3}}
	override := map[string]any{"b": map[string]any{"c": 99}}

	result := MergeWith(base, override, StrategyTable{"b": StrategyReplace})

	assert.Equal(t, map[string]any{"a": 1, "b": map[string]any{"c": 99}}, result)
	assert.NotContains(t, result["b"], "d")
}

// TestMergeWith_ReplaceForcesNilThrough verifies that an explicit replace
// (or merge) strategy writes a nil override value instead of skipping it.
func TestMergeWith_ReplaceForcesNilThrough(t *testing.T) {
	base := map[string]any{"a": 1, "b": 2}
	override := map[string]any{"a": nil, "b": nil}

	result := MergeWith(base, override, StrategyTable{
		"a": StrategyReplace,
		"b": StrategyMerge,
	})

	require.Contains(t, result, "a")
	require.Contains(t, result, "b")
	assert.Nil(t, result["a"])
	assert.Nil(t, result["b"])
}

// TestMergeWith_PathScopedStrategy verifies that a strategy applies only at
// its exact path: sibling keys stay untouched.
func TestMergeWith_PathScopedStrategy(t *testing.T) {
	base := map[string]any{
		"theme": map[string]any{
			"colors": map[string]any{"primary": "red", "secondary": "blue"},
		},
	}
	override := map[string]any{
		"theme": map[string]any{
			"colors": map[string]any{"primary": "green"},
		},
	}

	result := MergeWith(base, override, StrategyTable{"theme.colors.primary": StrategyReplace})

	colors := result["theme"].(map[string]any)["colors"].(map[string]any)
	assert.Equal(t, "green", colors["primary"])
	assert.Equal(t, "blue", colors["secondary"])
}

// TestMergeWith_AncestorStrategyDoesNotCascade verifies that an entry for a
// parent path has no effect on its descendants.
func TestMergeWith_AncestorStrategyDoesNotCascade(t *testing.T) {
	base := map[string]any{"b": map[string]any{"c": 1, "d": 2}}
	override := map[string]any{"b": map[string]any{"c": nil}}

	// safe on "b" does not make "b.c" safe; but the default rule already
	// skips the nil, so the observable contract is: c keeps its base value
	// and no replace semantics leak down from the parent entry.
	result := MergeWith(base, override, StrategyTable{"b": StrategySafe})
	assert.Equal(t, map[string]any{"b": map[string]any{"c": 1, "d": 2}}, result)

	// replace on a sibling path must not affect "b" itself
	result = MergeWith(base, override, StrategyTable{"b.x": StrategyReplace})
	assert.Equal(t, map[string]any{"b": map[string]any{"c": 1, "d": 2}}, result)
}

// TestMergeWith_MergeTagEqualsDefault verifies that an explicit merge entry
// produces exactly the default result.
func TestMergeWith_MergeTagEqualsDefault(t *testing.T) {
	base := map[string]any{"a": map[string]any{"b": 1, "c": 2}}
	override := map[string]any{"a": map[string]any{"b": 10}}

	tagged := MergeWith(base, override, StrategyTable{"a": StrategyMerge, "a.b": StrategyMerge})
	plain := MergeWith(base, override, nil)

	assert.Equal(t, plain, tagged)
}

// TestMergeWith_UnknownStrategyTag verifies that unrecognized tags behave
// as "no entry".
func TestMergeWith_UnknownStrategyTag(t *testing.T) {
	base := map[string]any{"a": map[string]any{"b": 1, "c": 2}, "d": 5}
	override := map[string]any{"a": map[string]any{"b": 10}, "d": nil}

	result := MergeWith(base, override, StrategyTable{"a": "overwrite", "d": "keep"})

	assert.Equal(t, map[string]any{"a": map[string]any{"b": 10, "c": 2}, "d": 5}, result)
}

// ── aliasing ──────────────────────────────────────────────────────────────────

// TestMerge_ResultDoesNotAliasInputs verifies both directions of the
// non-aliasing invariant on a concrete tree.
func TestMerge_ResultDoesNotAliasInputs(t *testing.T) {
	base := map[string]any{"keep": map[string]any{"k": 1}, "list": []any{1, 2}}
	override := map[string]any{"new": map[string]any{"n": 2}, "list": []any{3}}

	result := Merge(base, override)

	// mutating the result leaves the inputs untouched
	result["keep"].(map[string]any)["k"] = 99
	result["new"].(map[string]any)["n"] = 99
	result["list"].([]any)[0] = 99
	assert.Equal(t, map[string]any{"keep": map[string]any{"k": 1}, "list": []any{1, 2}}, base)
	assert.Equal(t, map[string]any{"new": map[string]any{"n": 2}, "list": []any{3}}, override)

	// mutating the inputs leaves the result untouched
	base["keep"].(map[string]any)["k"] = -1
	override["new"].(map[string]any)["n"] = -1
	assert.Equal(t, 99, result["keep"].(map[string]any)["k"])
	assert.Equal(t, 99, result["new"].(map[string]any)["n"])
}

// ── properties ────────────────────────────────────────────────────────────────

// drawValue — генератор случайного значения документа для property-тестов.
func drawValue(t *rapid.T, depth int) any {
	kind := rapid.IntRange(0, 5).Draw(t, "kind")
	if depth <= 0 && kind >= 4 {
		kind = rapid.IntRange(0, 3).Draw(t, "leafKind")
	}

	switch kind {
	case 0:
		return rapid.IntRange(-1000, 1000).Draw(t, "int")
	case 1:
		return rapid.StringMatching(`[a-z]{0,6}`).Draw(t, "str")
	case 2:
		return rapid.Bool().Draw(t, "bool")
	case 3:
		return nil
	case 4:
		n := rapid.IntRange(0, 3).Draw(t, "seqLen")
		seq := make([]any, n)
		for i := range seq {
			seq[i] = drawValue(t, depth-1)
		}
		return seq
	default:
		return drawDocument(t, depth-1)
	}
}

func drawDocument(t *rapid.T, depth int) map[string]any {
	doc := map[string]any{}
	n := rapid.IntRange(0, 4).Draw(t, "keyCount")
	for i := 0; i < n; i++ {
		key := rapid.StringMatching(`[a-d]{1,2}`).Draw(t, "key")
		doc[key] = drawValue(t, depth)
	}
	return doc
}

func drawStrategies(t *rapid.T, doc map[string]any) StrategyTable {
	table := StrategyTable{}
	for _, path := range collectPaths(doc, "") {
		switch rapid.IntRange(0, 3).Draw(t, "strategyPick") {
		case 1:
			table[path] = StrategyMerge
		case 2:
			table[path] = StrategyReplace
		case 3:
			table[path] = StrategySafe
		}
	}
	return table
}

func collectPaths(doc map[string]any, prefix string) []string {
	var paths []string
	for k, v := range doc {
		path := joinPath(prefix, k)
		paths = append(paths, path)
		if child, ok := v.(map[string]any); ok {
			paths = append(paths, collectPaths(child, path)...)
		}
	}
	return paths
}

// mutateTree overwrites every reachable leaf and extends every composite,
// to probe for shared containers between trees.
func mutateTree(doc map[string]any) {
	for k, v := range doc {
		switch x := v.(type) {
		case map[string]any:
			mutateTree(x)
		case []any:
			for i := range x {
				x[i] = "mutated"
			}
		default:
			doc[k] = "mutated"
		}
	}
	doc["__probe"] = true
}

// TestMergeWith_Property_Idempotence checks that re-merging an empty
// override, or the same override again, changes nothing.
func TestMergeWith_Property_Idempotence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := drawDocument(t, 3)
		override := drawDocument(t, 3)
		strategies := drawStrategies(t, override)

		once := MergeWith(base, override, strategies)

		assert.Equal(t, once, MergeWith(once, map[string]any{}, nil))
		assert.Equal(t, once, MergeWith(once, override, strategies))
	})
}

// TestMergeWith_Property_NonAliasing checks that mutating the inputs after
// the call never changes the result, and vice versa.
func TestMergeWith_Property_NonAliasing(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := drawDocument(t, 3)
		override := drawDocument(t, 3)
		strategies := drawStrategies(t, override)

		result := MergeWith(base, override, strategies)
		snapshot := Clone(result).(map[string]any)

		mutateTree(base)
		mutateTree(override)
		require.Equal(t, snapshot, result, "mutating inputs must not leak into the result")

		baseSnapshot := Clone(base).(map[string]any)
		mutateTree(result)
		require.Equal(t, baseSnapshot, base, "mutating the result must not leak into base")
	})
}

// TestMergeWith_Property_BaseUntouched checks that the merge itself never
// modifies its inputs.
func TestMergeWith_Property_BaseUntouched(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := drawDocument(t, 3)
		override := drawDocument(t, 3)
		strategies := drawStrategies(t, override)

		baseSnapshot := Clone(base).(map[string]any)
		overrideSnapshot := Clone(override).(map[string]any)

		_ = MergeWith(base, override, strategies)

		assert.Equal(t, baseSnapshot, base)
		assert.Equal(t, overrideSnapshot, override)
	})
}

// ── benchmarks ────────────────────────────────────────────────────────────────

func BenchmarkMergeWith(b *testing.B) {
	base := map[string]any{
		"server": map[string]any{"host": "localhost", "port": 8080},
		"theme": map[string]any{
			"colors":   map[string]any{"primary": "red", "secondary": "blue"},
			"fontSize": 14,
		},
		"plugins": []any{"a", "b", "c"},
	}
	override := map[string]any{
		"server": map[string]any{"port": 9090},
		"theme":  map[string]any{"colors": map[string]any{"primary": "green"}},
		"plugins": []any{"d"},
	}
	strategies := StrategyTable{
		"theme.colors.primary": StrategyReplace,
		"server.host":          StrategySafe,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = MergeWith(base, override, strategies)
	}
}
