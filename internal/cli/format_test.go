package cli

import (
	"math"
	"testing"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1500, "$1,500.00"},
		{234390.665, "$234,390.67"},
		{268783.275, "$268,783.28"},
		{-40000, "-$40,000.00"},
		{999.999, "$1,000.00"},
	}
	for _, tc := range tests {
		if got := FormatCurrency(tc.in); got != tc.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatCompactCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{268783, "$269k"},
		{1500000, "$1.50M"},
		{950, "$950"},
	}
	for _, tc := range tests {
		if got := FormatCompactCurrency(tc.in); got != tc.want {
			t.Errorf("FormatCompactCurrency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatYears(t *testing.T) {
	if got := FormatYears(3.0769); got != "3.08 years" {
		t.Errorf("FormatYears(3.0769) = %q", got)
	}
	if got := FormatYears(math.Inf(1)); got != "never" {
		t.Errorf("FormatYears(+Inf) = %q, want never", got)
	}
}

func TestFormatBreakEvenYear(t *testing.T) {
	if got := FormatBreakEvenYear(nil); got != "never" {
		t.Errorf("FormatBreakEvenYear(nil) = %q, want never", got)
	}
	y := 4
	if got := FormatBreakEvenYear(&y); got != "year 4" {
		t.Errorf("FormatBreakEvenYear(4) = %q, want year 4", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-40000, "-40,000"},
	}
	for _, tc := range tests {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
