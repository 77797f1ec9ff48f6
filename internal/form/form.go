// Package form holds the editable state of one tip calculator screen.
//
// A Form keeps the field text as typed (after keystroke filtering) and
// derives everything else on demand, so there is never a stale result to
// invalidate. It is not safe for concurrent use.
package form

import (
	"errors"
	"fmt"
	"math"

	"github.com/mmynk/tipsplit/internal/calculator"
	"github.com/mmynk/tipsplit/internal/input"
)

// PeopleErrorMessage is shown next to the party size field while it resolves to zero.
const PeopleErrorMessage = "Can't be zero"

// ErrUnknownPreset is returned when selecting a percentage that is not on the menu.
var ErrUnknownPreset = errors.New("tip preset is not on the menu")

// ParsePreset reads a menu choice such as "15" or "15%". It reports false
// unless raw holds a whole, positive percentage; it does not check the menu.
func ParsePreset(raw string) (calculator.Preset, bool) {
	if input.FilterAmount(raw) == "" {
		return 0, false
	}
	pct := input.Amount(raw)
	if pct <= 0 || pct != math.Trunc(pct) || pct > math.MaxInt32 {
		return 0, false
	}
	return calculator.Preset(pct), true
}

// Form is the state container for bill, tip and party size fields.
type Form struct {
	menu []calculator.Preset

	bill   string
	people string
	custom string

	preset    calculator.Preset
	hasPreset bool
}

// State is a read-only view of a Form, as a UI layer would render it.
type State struct {
	Bill   string
	People string
	Custom string

	Preset         calculator.Preset
	PresetSelected bool

	Rate        float64
	Result      calculator.Result
	CanReset    bool
	PeopleError string
}

// New creates an empty form offering the given tip menu.
// A nil or empty menu falls back to calculator.Presets().
func New(menu []calculator.Preset) *Form {
	if len(menu) == 0 {
		menu = calculator.Presets()
	}
	m := make([]calculator.Preset, len(menu))
	copy(m, menu)
	return &Form{menu: m}
}

// Menu returns the tip presets this form offers.
func (f *Form) Menu() []calculator.Preset {
	out := make([]calculator.Preset, len(f.menu))
	copy(out, f.menu)
	return out
}

// SetBill replaces the bill field text.
func (f *Form) SetBill(raw string) {
	f.bill = input.FilterAmount(raw)
}

// SetPeople replaces the party size field text.
func (f *Form) SetPeople(raw string) {
	f.people = input.FilterCount(raw)
}

// SetCustom replaces the custom tip percentage and drops any preset selection.
func (f *Form) SetCustom(raw string) {
	f.custom = input.FilterAmount(raw)
	f.preset = 0
	f.hasPreset = false
}

// SelectPreset highlights a menu entry and clears the custom field.
func (f *Form) SelectPreset(p calculator.Preset) error {
	if !f.onMenu(p) {
		return fmt.Errorf("%w: %s", ErrUnknownPreset, p)
	}
	f.preset = p
	f.hasPreset = true
	f.custom = ""
	return nil
}

// ClearTip removes both the preset selection and the custom value.
func (f *Form) ClearTip() {
	f.preset = 0
	f.hasPreset = false
	f.custom = ""
}

// Reset empties every field.
func (f *Form) Reset() {
	f.bill = ""
	f.people = ""
	f.ClearTip()
}

// EffectiveRate is the custom percentage when one is entered, otherwise the
// selected preset, otherwise 0.
func (f *Form) EffectiveRate() float64 {
	switch {
	case f.custom != "":
		return calculator.PercentToRate(input.Amount(f.custom))
	case f.hasPreset:
		return f.preset.Rate()
	default:
		return 0
	}
}

// Result computes the split for the current fields.
func (f *Form) Result() calculator.Result {
	return calculator.Compute(input.Amount(f.bill), f.EffectiveRate(), input.Count(f.people))
}

// CanReset reports whether any field differs from its empty default.
func (f *Form) CanReset() bool {
	return input.Amount(f.bill) > 0 ||
		input.Count(f.people) > 0 ||
		f.hasPreset ||
		f.custom != ""
}

// PeopleError returns the validation message for the party size field, or "".
func (f *Form) PeopleError() string {
	if input.Count(f.people) == 0 {
		return PeopleErrorMessage
	}
	return ""
}

// Snapshot captures the current fields and everything derived from them.
func (f *Form) Snapshot() State {
	return State{
		Bill:           f.bill,
		People:         f.people,
		Custom:         f.custom,
		Preset:         f.preset,
		PresetSelected: f.hasPreset,
		Rate:           f.EffectiveRate(),
		Result:         f.Result(),
		CanReset:       f.CanReset(),
		PeopleError:    f.PeopleError(),
	}
}

func (f *Form) onMenu(p calculator.Preset) bool {
	for _, m := range f.menu {
		if m == p {
			return true
		}
	}
	return false
}
