// Package dates wraps the standard time package with token-style layout
// formatting, tolerant multi-layout parsing and duration helpers.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// parseLayouts are tried in order by Parse; first match wins.
var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02.01.2006 15:04",
	"02.01.2006",
}

// Format renders t using a token layout instead of the reference time.
//
// Supported tokens:
//
//	YYYY  four-digit year       YY  two-digit year
//	MM    zero-padded month     M   month
//	DD    zero-padded day       D   day
//	HH    24-hour clock hour    H   same as HH, the hour is always two digits
//	mm    zero-padded minute    m   minute
//	ss    zero-padded second    s   second
//
// Runs of token letters with no mapping, and all other characters, pass
// through unchanged.
//
// Example usage:
//
//	dates.Format(t, "YYYY-MM-DD HH:mm") // "2026-08-25 14:30"
func Format(t time.Time, layout string) string {
	return t.Format(translate(layout))
}

// Parse interprets value using the first matching layout: RFC3339, then
// "2006-01-02 15:04:05", "2006-01-02", "02.01.2006 15:04", "02.01.2006".
func Parse(value string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("parse time %q: no known layout matches", value)
}

// translate rewrites a token layout into a reference-time layout.
func translate(layout string) string {
	var b strings.Builder
	b.Grow(len(layout) + 4)

	runes := []rune(layout)
	for i := 0; i < len(runes); {
		r := runes[i]
		if !isToken(r) {
			b.WriteRune(r)
			i++
			continue
		}

		n := 1
		for i+n < len(runes) && runes[i+n] == r {
			n++
		}

		if mapped, ok := tokenLayout(r, n); ok {
			b.WriteString(mapped)
		} else {
			b.WriteString(string(runes[i : i+n]))
		}
		i += n
	}

	return b.String()
}

func isToken(r rune) bool {
	switch r {
	case 'Y', 'M', 'D', 'H', 'm', 's':
		return true
	}
	return false
}

func tokenLayout(r rune, n int) (string, bool) {
	switch {
	case r == 'Y' && n == 4:
		return "2006", true
	case r == 'Y' && n == 2:
		return "06", true
	case r == 'M' && n == 2:
		return "01", true
	case r == 'M' && n == 1:
		return "1", true
	case r == 'D' && n == 2:
		return "02", true
	case r == 'D' && n == 1:
		return "2", true
	case r == 'H' && (n == 1 || n == 2):
		return "15", true
	case r == 'm' && n == 2:
		return "04", true
	case r == 'm' && n == 1:
		return "4", true
	case r == 's' && n == 2:
		return "05", true
	case r == 's' && n == 1:
		return "5", true
	}
	return "", false
}

// HumanDuration renders d compactly using its two most significant
// non-zero units, for example "2d 4h", "1h 30m" or "45s". Durations
// under a second render as "0s"; negative values keep a leading minus.
func HumanDuration(d time.Duration) string {
	if d < 0 {
		return "-" + HumanDuration(-d)
	}

	units := []struct {
		suffix string
		value  int64
	}{
		{suffix: "d", value: int64(d / (24 * time.Hour))},
		{suffix: "h", value: int64(d / time.Hour % 24)},
		{suffix: "m", value: int64(d / time.Minute % 60)},
		{suffix: "s", value: int64(d / time.Second % 60)},
	}

	var parts []string
	for _, u := range units {
		if u.value == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d%s", u.value, u.suffix))
		if len(parts) == 2 {
			break
		}
	}

	if len(parts) == 0 {
		return "0s"
	}

	return strings.Join(parts, " ")
}
