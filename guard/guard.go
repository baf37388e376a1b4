// Package guard provides type-guard predicates for values held in
// JSON-shaped trees (map[string]any composites, slice sequences and
// primitive leaves).
//
// The predicates are used by the merge package to drive its per-key
// decision rules and are exported for callers that build or inspect
// document trees themselves.
package guard

import "reflect"

// IsNil reports whether v is nil, including typed nils such as a nil
// *T, map, slice, channel or function stored in a non-nil interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// IsComposite reports whether v is a non-nil map[string]any.
// Only string-keyed maps of any count as composites; maps with other
// key types are treated as atomic values by the clone and merge logic.
func IsComposite(v any) bool {
	m, ok := v.(map[string]any)
	return ok && m != nil
}

// IsSequence reports whether v is a slice or array.
// []byte is excluded: a byte slice in a document tree is an opaque
// blob, not a sequence of elements.
func IsSequence(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.([]byte); ok {
		return false
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// IsNumber reports whether v holds a value of any integer, unsigned
// integer or floating point kind.
func IsNumber(v any) bool {
	if v == nil {
		return false
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// IsPrimitive reports whether v is a leaf value: nil, a string, a bool
// or a number.
func IsPrimitive(v any) bool {
	if v == nil {
		return true
	}
	if _, ok := v.(string); ok {
		return true
	}
	if _, ok := v.(bool); ok {
		return true
	}
	return IsNumber(v)
}

// IsEmpty reports whether v is nil or has zero length. Strings, slices,
// arrays and maps are measured with len; everything else is non-empty.
func IsEmpty(v any) bool {
	if IsNil(v) {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	default:
		return false
	}
}
