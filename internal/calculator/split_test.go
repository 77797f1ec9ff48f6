package calculator

import (
	"math"
	"testing"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		bill      float64
		tipRate   float64
		people    int
		wantTip   float64
		wantTotal float64
		wantValid bool
	}{
		{
			name:      "four people fifteen percent",
			bill:      100,
			tipRate:   0.15,
			people:    4,
			wantTip:   3.75,
			wantTotal: 28.75,
			wantValid: true,
		},
		{
			name:      "single person no tip",
			bill:      42.5,
			tipRate:   0,
			people:    1,
			wantTip:   0,
			wantTotal: 42.5,
			wantValid: true,
		},
		{
			name:      "three people uneven split",
			bill:      100,
			tipRate:   0.1,
			people:    3,
			wantTip:   3.3333,
			wantTotal: 36.6667,
			wantValid: true,
		},
		{
			name:      "zero bill is still valid",
			bill:      0,
			tipRate:   0.25,
			people:    2,
			wantTip:   0,
			wantTotal: 0,
			wantValid: true,
		},
		{
			name:      "zero people is invalid",
			bill:      100,
			tipRate:   0.15,
			people:    0,
			wantValid: false,
		},
		{
			name:      "negative people is invalid",
			bill:      80,
			tipRate:   0.5,
			people:    -2,
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.bill, tt.tipRate, tt.people)
			if got.Valid != tt.wantValid {
				t.Fatalf("Compute() valid = %v, want %v", got.Valid, tt.wantValid)
			}
			if math.Abs(got.TipPerPerson-tt.wantTip) > 0.0001 {
				t.Errorf("TipPerPerson = %v, want %v", got.TipPerPerson, tt.wantTip)
			}
			if math.Abs(got.TotalPerPerson-tt.wantTotal) > 0.0001 {
				t.Errorf("TotalPerPerson = %v, want %v", got.TotalPerPerson, tt.wantTotal)
			}
		})
	}
}

func TestCompute_ZeroPeopleIgnoresInputs(t *testing.T) {
	for _, bill := range []float64{0, 1, 99.99, 1e9} {
		for _, rate := range []float64{0, 0.05, 0.5, 3} {
			got := Compute(bill, rate, 0)
			if got != (Result{}) {
				t.Errorf("Compute(%v, %v, 0) = %+v, want zero result", bill, rate, got)
			}
		}
	}
}

func TestCompute_TotalCoversTip(t *testing.T) {
	bills := []float64{0, 0.01, 7.5, 100, 1234.56, 1e7}
	rates := []float64{0, 0.05, 0.15, 0.5, 1, 2.5}

	for _, bill := range bills {
		for _, rate := range rates {
			for people := 1; people <= 12; people++ {
				got := Compute(bill, rate, people)
				if !got.Valid {
					t.Fatalf("Compute(%v, %v, %d) should be valid", bill, rate, people)
				}
				if got.TipPerPerson < 0 {
					t.Errorf("Compute(%v, %v, %d) tip per person %v < 0", bill, rate, people, got.TipPerPerson)
				}
				if got.TotalPerPerson < got.TipPerPerson {
					t.Errorf("Compute(%v, %v, %d) total per person %v < tip per person %v",
						bill, rate, people, got.TotalPerPerson, got.TipPerPerson)
				}
			}
		}
	}
}

func TestPresets(t *testing.T) {
	presets := Presets()
	want := []Preset{5, 10, 15, 25, 50}
	if len(presets) != len(want) {
		t.Fatalf("Presets() returned %d entries, want %d", len(presets), len(want))
	}
	for i, p := range want {
		if presets[i] != p {
			t.Errorf("Presets()[%d] = %v, want %v", i, presets[i], p)
		}
	}

	presets[0] = 99
	if DefaultPresets[0] != 5 {
		t.Error("Presets() must return a copy of the menu")
	}

	if got := Preset(15).Rate(); math.Abs(got-0.15) > 1e-12 {
		t.Errorf("Preset(15).Rate() = %v, want 0.15", got)
	}
	if got := Preset(25).String(); got != "25%" {
		t.Errorf("Preset(25).String() = %q, want %q", got, "25%")
	}
}
