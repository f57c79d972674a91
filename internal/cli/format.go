// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatCurrency formats a currency amount with comma separators and
// two decimals. e.g., 234390.665 -> "$234,390.67"
func FormatCurrency(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	cents := int64(math.Round(v * 100))
	whole := cents / 100
	frac := cents % 100

	s := fmt.Sprintf("$%s.%02d", FormatNumber(whole), frac)
	if neg {
		return "-" + s
	}
	return s
}

// FormatCompactCurrency formats a currency amount with human-readable
// suffixes for chart labels. e.g., 268783 -> "$269k"
func FormatCompactCurrency(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("$%.1fB", v/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("$%.2fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("$%.0fk", v/1_000)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

// FormatPercent formats an already-scaled percentage (32.5 -> "32.50%").
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// FormatYears formats a fractional year count, rendering +Inf as "never".
func FormatYears(v float64) string {
	if math.IsInf(v, 1) {
		return "never"
	}
	return fmt.Sprintf("%.2f years", v)
}

// FormatBreakEvenYear formats an optional break-even year.
func FormatBreakEvenYear(year *int) string {
	if year == nil {
		return "never"
	}
	return fmt.Sprintf("year %d", *year)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
