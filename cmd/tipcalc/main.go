package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/tipsplit/internal/config"
	"github.com/mmynk/tipsplit/internal/form"
	"github.com/mmynk/tipsplit/internal/metrics"
	"github.com/mmynk/tipsplit/internal/shell"
	"github.com/mmynk/tipsplit/pkg/logging"
)

const appVersion = "0.1.0"

// app carries what the persistent pre-run sets up for subcommands.
type app struct {
	configPath  string
	logLevel    string
	metricsAddr string

	cfg     *config.Config
	metrics *metrics.Metrics
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("tipcalc failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	var bill, tip, custom, people string

	cmd := &cobra.Command{
		Use:   "tipcalc",
		Short: "Split a bill and tip evenly across a party",
		Example: `  tipcalc --bill 142.80 --tip 15 --people 4
  tipcalc --bill '$1,200' --custom 18 --people 6
  tipcalc interactive`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := form.New(a.cfg.Menu())
			f.SetBill(bill)
			f.SetPeople(people)
			if tip != "" {
				p, ok := form.ParsePreset(tip)
				if !ok {
					return fmt.Errorf("--tip %s: not a whole percentage, use --custom instead", tip)
				}
				if err := f.SelectPreset(p); err != nil {
					return fmt.Errorf("--tip %s: %w (menu: %v)", tip, err, f.Menu())
				}
			}
			if custom != "" {
				f.SetCustom(custom)
			}

			st := f.Snapshot()
			a.metrics.ObserveResult(st.Result, st.Rate)
			slog.Debug("Computed split",
				"bill", st.Bill,
				"rate", st.Rate,
				"people", st.People,
				"valid", st.Result.Valid,
			)
			shell.Render(cmd.OutOrStdout(), st, f.Menu())
			return nil
		},
	}

	cmd.Version = appVersion
	cmd.SetVersionTemplate("tipcalc v{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (default: environment only)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Override the configured log level")
	cmd.PersistentFlags().StringVar(&a.metricsAddr, "metrics-addr", "", "Serve /metrics on this address (e.g. :9090)")

	cmd.Flags().StringVar(&bill, "bill", "", "Bill amount")
	cmd.Flags().StringVar(&tip, "tip", "", "Tip preset percentage from the menu")
	cmd.Flags().StringVar(&custom, "custom", "", "Custom tip percentage (overrides --tip)")
	cmd.Flags().StringVar(&people, "people", "", "Number of people")

	cmd.AddCommand(newInteractiveCmd(a))
	return cmd
}

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Edit the bill, tip and party size line by line",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			s := shell.New(form.New(a.cfg.Menu()), a.metrics, cmd.OutOrStdout())
			s.Prompt = "> "

			// A failing metrics listener cancels the session and becomes the
			// command's error; a finished session stops the listener.
			g, gctx := errgroup.WithContext(ctx)
			if addr := a.cfg.Metrics.Addr; addr != "" {
				g.Go(func() error {
					return a.metrics.Serve(gctx, addr)
				})
			}
			g.Go(func() error {
				defer cancel()
				return s.Run(gctx, cmd.InOrStdin())
			})
			return g.Wait()
		},
	}
}

// setup loads config, installs the logger and creates the metrics registry.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrEnv(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.metricsAddr != "" {
		cfg.Metrics.Addr = a.metricsAddr
	}

	logging.Setup(cfg.Logging.Level)
	slog.Debug("Config loaded",
		"path", a.configPath,
		"presets", cfg.Tips.Presets,
		"metrics_addr", cfg.Metrics.Addr,
	)

	a.cfg = cfg
	a.metrics = metrics.New()
	return nil
}
