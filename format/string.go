// Package format contains small string and number formatting helpers
// shared by tools built on this module.
package format

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Slugify converts an arbitrary string into a URL-safe slug.
//
// Behavior:
//   - Unicode letters and digits are lowercased and kept
//   - every other run of characters collapses into a single '-'
//   - leading and trailing dashes are trimmed
//
// Example usage:
//
//	format.Slugify("Hello, World!") // "hello-world"
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	dash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		dash = true
	}

	return b.String()
}

// Capitalize upper-cases the first rune of s and leaves the rest unchanged.
func Capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Truncate shortens s to at most limit runes, appending an ellipsis when
// the string was cut. The ellipsis counts toward the limit. A limit of
// zero or less yields the empty string.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit-1]) + "…"
}

// UniqueID returns a time-ordered unique identifier, optionally prefixed
// with "prefix-". UUIDv7 is preferred; when the system entropy source
// cannot produce one, a random v4 identifier is used instead.
func UniqueID(prefix string) string {
	var id string

	v7, err := uuid.NewV7()
	if err != nil {
		id = uuid.NewString()
	} else {
		id = v7.String()
	}

	if prefix == "" {
		return id
	}

	return prefix + "-" + id
}
