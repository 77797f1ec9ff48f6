package calculator

import "strconv"

// Preset is a tip percentage offered on the menu.
type Preset int

// DefaultPresets is the built-in tip menu.
var DefaultPresets = []Preset{5, 10, 15, 25, 50}

// Presets returns a copy of the built-in menu.
func Presets() []Preset {
	out := make([]Preset, len(DefaultPresets))
	copy(out, DefaultPresets)
	return out
}

// Rate returns the preset as a fraction of the bill.
func (p Preset) Rate() float64 {
	return PercentToRate(float64(p))
}

func (p Preset) String() string {
	return strconv.Itoa(int(p)) + "%"
}
