package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseNumber parses a human-entered number. It tolerates surrounding
// whitespace, regular / no-break / thin space group separators, and a
// comma used as the decimal separator when no dot is present.
//
// Example usage:
//
//	format.ParseNumber("1 234,5") // 1234.5
func ParseNumber(s string) (float64, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.Map(func(r rune) rune {
		switch r {
		case ' ', ' ', ' ':
			return -1
		}
		return r
	}, cleaned)

	if !strings.ContainsRune(cleaned, '.') {
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", s, err)
	}

	return v, nil
}

// GroupDigits renders n with sep between each group of three digits.
//
// Example usage:
//
//	format.GroupDigits(-1234567, ' ') // "-1 234 567"
func GroupDigits(n int64, sep rune) string {
	digits := strconv.FormatInt(n, 10)

	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}

	if len(digits) <= 3 {
		return sign + digits
	}

	var b strings.Builder
	b.WriteString(sign)

	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > len(sign) {
			b.WriteRune(sep)
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

// FormatBytes renders a byte count using binary (IEC) units. Whole
// values in bytes print without a fraction, larger units keep one
// decimal place.
//
// Example usage:
//
//	format.FormatBytes(1536) // "1.5 KiB"
func FormatBytes(n int64) string {
	const unit = 1024

	if n < 0 {
		return "-" + FormatBytes(-n)
	}
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// Round rounds v half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
