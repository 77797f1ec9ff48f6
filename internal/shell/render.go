package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/mmynk/tipsplit/internal/calculator"
	"github.com/mmynk/tipsplit/internal/form"
)

// Render writes one screen for st. The selected preset is bracketed in the menu.
func Render(w io.Writer, st form.State, menu []calculator.Preset) {
	fmt.Fprintf(w, "Bill:    %s\n", orDash(st.Bill))
	fmt.Fprintf(w, "Tip:     %s  custom: %s\n", renderMenu(st, menu), orDash(st.Custom))
	fmt.Fprintf(w, "People:  %s\n", orDash(st.People))
	if st.PeopleError != "" {
		fmt.Fprintf(w, "         ! %s\n", st.PeopleError)
	}
	fmt.Fprintf(w, "Tip Amount / person  %s\n", calculator.FormatMoney(st.Result.TipPerPerson))
	fmt.Fprintf(w, "Total      / person  %s\n", calculator.FormatMoney(st.Result.TotalPerPerson))
	if st.CanReset {
		fmt.Fprintln(w, "(reset available)")
	}
}

func renderMenu(st form.State, menu []calculator.Preset) string {
	parts := make([]string, len(menu))
	for i, p := range menu {
		if st.PresetSelected && p == st.Preset {
			parts[i] = "[" + p.String() + "]"
			continue
		}
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
