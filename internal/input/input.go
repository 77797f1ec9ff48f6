// Package input turns raw field text into numbers for the calculator.
//
// Nothing here returns an error. Text that does not contain a usable number
// degrades to 0, which the calculator treats as "not entered yet".
package input

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// leadingNumber matches the longest decimal prefix of already-filtered text,
// so "1.2.3" reads as 1.2.
var leadingNumber = regexp.MustCompile(`^[0-9]*(\.[0-9]*)?`)

// FilterAmount drops every character except digits and '.'.
func FilterAmount(raw string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, raw)
}

// FilterCount drops every character except digits.
func FilterCount(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}

// Amount parses a money or percentage field. "$1,200.50" is 1200.5,
// "12.5x" is 12.5 and "abc" is 0.
func Amount(raw string) float64 {
	num := leadingNumber.FindString(FilterAmount(raw))
	if num == "" {
		return 0
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

// Count parses a party size field. Empty or digit-free text is 0; values
// too large for int saturate at math.MaxInt.
func Count(raw string) int {
	digits := FilterCount(raw)
	if digits == "" {
		return 0
	}

	n, err := strconv.Atoi(digits)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt
	}
	if err != nil {
		return 0
	}
	return n
}
