// Package calculator splits a bill and its tip evenly across a party.
package calculator

// Result is the per-person outcome of a split.
type Result struct {
	TipPerPerson   float64
	TotalPerPerson float64

	// Valid is false exactly when the party size is zero, in which case
	// both amounts are zero.
	Valid bool
}

// Compute splits bill plus bill*tipRate evenly across people.
// Based on: tip_per_person = bill × rate / people, total_per_person = bill × (1 + rate) / people
//
// A party of zero (or fewer) people yields the zero Result with Valid unset
// instead of dividing by zero.
func Compute(bill, tipRate float64, people int) Result {
	if people <= 0 {
		return Result{}
	}

	tipTotal := bill * tipRate
	n := float64(people)

	return Result{
		TipPerPerson:   tipTotal / n,
		TotalPerPerson: (bill + tipTotal) / n,
		Valid:          true,
	}
}

// PercentToRate converts a percentage (15) to a tip rate (0.15).
func PercentToRate(pct float64) float64 {
	return pct / 100
}
