// Package shell runs an interactive tip calculator session over plain text.
//
// Each input line is one edit, and the screen is re-rendered after every
// edit that changes state.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/tipsplit/internal/form"
	"github.com/mmynk/tipsplit/internal/input"
	"github.com/mmynk/tipsplit/internal/metrics"
)

const helpText = `Commands:
  bill <amount>      set the bill, e.g. "bill 84.50"
  people <count>     set the party size
  tip <percent>      pick a preset from the menu, "tip" alone clears it
  custom <percent>   type a custom tip, overrides the preset
  reset              clear every field
  show               print the current split
  help               show this text
  quit               leave
`

// Session owns one form and the writer it renders to.
type Session struct {
	// Prompt is written before each line is read. Empty means no prompt.
	Prompt string

	id      string
	form    *form.Form
	metrics *metrics.Metrics
	out     io.Writer
	logger  *slog.Logger
}

// New creates a session for f. m may be nil.
func New(f *form.Form, m *metrics.Metrics, out io.Writer) *Session {
	id := uuid.New().String()
	return &Session{
		id:      id,
		form:    f,
		metrics: m,
		out:     out,
		logger:  slog.Default().With("session_id", id),
	}
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	return s.id
}

// Run reads commands from in until quit, EOF, or ctx is cancelled.
// Cancellation is noticed even while waiting for input.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.logger.Info("Session started")
	defer s.logger.Info("Session ended")

	s.render()

	lines, readErr := readLines(ctx, in)
	for {
		if ctx.Err() != nil {
			return nil
		}
		if s.Prompt != "" {
			fmt.Fprint(s.out, s.Prompt)
		}

		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}
				return nil
			}
			if s.Exec(line) {
				return nil
			}
		}
	}
}

// readLines scans in on its own goroutine. The error channel receives the
// scanner error, if any, before lines is closed. The goroutine stays blocked
// in Read until in returns, so callers own closing in.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}

// Exec applies one command line. It reports true when the session should end.
func (s *Session) Exec(line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "":
		return false
	case "quit", "exit", "q":
		return true
	case "help", "?":
		fmt.Fprint(s.out, helpText)
		return false
	case "show":
		s.render()
		return false
	case "bill":
		s.form.SetBill(arg)
	case "people":
		s.form.SetPeople(arg)
	case "custom":
		s.form.SetCustom(arg)
	case "tip":
		if !s.selectTip(arg) {
			return false
		}
	case "reset":
		if !s.form.CanReset() {
			fmt.Fprintln(s.out, "nothing to reset")
			return false
		}
		s.form.Reset()
		if s.metrics != nil {
			s.metrics.ObserveReset()
		}
		s.logger.Info("Form reset")
	default:
		fmt.Fprintf(s.out, "unknown command %q, type \"help\" for a list\n", cmd)
		return false
	}

	s.logger.Debug("Field updated", "command", strings.ToLower(cmd), "value", arg)
	s.render()
	return false
}

// selectTip handles "tip <preset>". It reports whether the form changed.
func (s *Session) selectTip(arg string) bool {
	if arg == "" || strings.EqualFold(arg, "none") {
		s.form.ClearTip()
		return true
	}

	num := input.FilterAmount(arg)
	if num == "" {
		fmt.Fprintf(s.out, "%q is not a tip percentage\n", arg)
		return false
	}

	if p, ok := form.ParsePreset(arg); ok {
		err := s.form.SelectPreset(p)
		if err == nil {
			return true
		}
		s.logger.Debug("Preset rejected", "preset", arg, "error", err)
	}
	fmt.Fprintf(s.out, "%s%% is not on the menu, use \"custom %s\" instead\n", num, num)
	return false
}

func (s *Session) render() {
	st := s.form.Snapshot()
	if s.metrics != nil {
		s.metrics.ObserveResult(st.Result, st.Rate)
	}
	Render(s.out, st, s.form.Menu())
}
