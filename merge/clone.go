// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merge

import (
	"reflect"
	"time"
)

// Clone returns a structurally independent copy of v.
//
// Composites (map[string]any) and sequences are copied recursively;
// primitives and time.Time values are returned as they are (both copy
// by value). Values of types outside the document shape are opaque
// leaves and pass through unchanged.
//
// Clone never fails and accepts any value, including nil.
func Clone(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return x
	case time.Time:
		return x
	case map[string]any:
		if x == nil {
			return x
		}
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = Clone(val)
		}
		return out
	case map[any]any:
		// Entries are copied one level deep: the new map is a fresh
		// instance, but entry values keep pointing at the source
		// containers. Note the asymmetry with map[string]any, whose
		// values are cloned recursively; callers rely on it.
		if x == nil {
			return x
		}
		out := make(map[any]any, len(x))
		for k, val := range x {
			out[k] = val
		}
		return out
	case map[string]struct{}:
		if x == nil {
			return x
		}
		out := make(map[string]struct{}, len(x))
		for member := range x {
			out[member] = struct{}{}
		}
		return out
	case []any:
		if x == nil {
			return x
		}
		out := make([]any, len(x))
		for i, el := range x {
			out[i] = Clone(el)
		}
		return out
	case []byte:
		if x == nil {
			return x
		}
		out := make([]byte, len(x))
		copy(out, x)
		return out
	default:
		return cloneReflect(v)
	}
}

// cloneReflect copies slice kinds that did not match an explicit case
// above ([]string, []int, []map[string]any, ...). Anything else is
// returned as-is.
func cloneReflect(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return v
	}
	if rv.IsNil() {
		return v
	}

	out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	for i := 0; i < rv.Len(); i++ {
		el := Clone(rv.Index(i).Interface())
		if el == nil {
			continue
		}
		out.Index(i).Set(reflect.ValueOf(el))
	}
	return out.Interface()
}
