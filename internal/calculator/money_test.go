package calculator

import (
	"math"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{3.75, "$3.75"},
		{28.75, "$28.75"},
		{0.005, "$0.01"},
		{1.005, "$1.01"},
		{2.675, "$2.68"},
		{33.333333, "$33.33"},
		{1234.565, "$1,234.57"},
		{1000000, "$1,000,000.00"},
		{-4.5, "-$4.50"},
		{math.NaN(), "$0.00"},
		{math.Inf(1), "$0.00"},
		{math.Inf(-1), "$0.00"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{3.745, 3.75},
		{3.744, 3.74},
		{0.125, 0.13},
		{10, 10},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		if got := RoundCents(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("RoundCents(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
