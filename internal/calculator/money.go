package calculator

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// RoundCents rounds v to two decimal places, half away from zero.
// It is meant for display; Compute never rounds.
func RoundCents(v float64) float64 {
	return roundCents(v).InexactFloat64()
}

// FormatMoney renders v as en-US dollars, e.g. "$1,234.57".
// NaN and infinities render as "$0.00".
func FormatMoney(v float64) string {
	d := roundCents(v)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	cents := fixed[len(fixed)-2:]

	return sign + "$" + humanize.BigComma(d.BigInt()) + "." + cents
}

func roundCents(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	// NewFromFloat keeps the shortest decimal form, so 1.005 rounds up to
	// 1.01 instead of down via its binary approximation.
	return decimal.NewFromFloat(v).Round(2)
}
