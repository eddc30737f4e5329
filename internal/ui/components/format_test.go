package components

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1, "-1"},
		{-1000, "-1,000"},
		{math.MaxInt64, "9,223,372,036,854,775,807"},
		{math.MinInt64, "-9,223,372,036,854,775,808"},
	}
	for _, tt := range tests {
		got := FormatNumber(tt.input)
		if got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "$0.00"},
		{"15", "$15.00"},
		{"4.5", "$4.50"},
		{"1234.567", "$1,234.57"},
		{"-3.1", "-$3.10"},
	}
	for _, tt := range tests {
		got := FormatMoney(decimal.RequireFromString(tt.input))
		if got != tt.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
