// Package monitor implements the long-running watchlist subcommand.
package monitor

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/etfmon/alerts"
	"github.com/rustyeddy/etfmon/api"
	"github.com/rustyeddy/etfmon/fetch"
	cliconfig "github.com/rustyeddy/etfmon/internal/cli/config"
	"github.com/rustyeddy/etfmon/journal"
	mon "github.com/rustyeddy/etfmon/monitor"
)

func New(rc *cliconfig.RootConfig) *cobra.Command {
	var (
		once   bool
		listen string
	)

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Run the watchlist monitor",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rc.Load()
			if err != nil {
				return err
			}
			if len(cfg.Watchlist) == 0 {
				return fmt.Errorf("watchlist is empty, nothing to monitor")
			}
			if listen != "" {
				cfg.Monitor.Listen = listen
			}

			logger, err := rc.Logger()
			if err != nil {
				return err
			}

			jrnl, err := journal.NewSQLite(cfg.Journal.DBPath)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer jrnl.Close()

			var notifier alerts.Notifier = alerts.NewLogNotifier(logger)
			if cfg.Alerts.SMTPHost != "" {
				notifier = &alerts.SMTPNotifier{
					Host:     cfg.Alerts.SMTPHost,
					Port:     cfg.Alerts.SMTPPort,
					Username: cfg.Alerts.SMTPUsername,
					Password: cfg.Alerts.SMTPPassword,
					From:     cfg.Alerts.From,
					To:       cfg.Alerts.To,
				}
			}

			source := fetch.NewClient(cfg.Fetch.BaseURL)
			m := mon.New(cfg, source, jrnl, notifier, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if once {
				snap, err := m.RunOnce(ctx)
				if err != nil {
					return err
				}
				printSummary(snap)
				return nil
			}

			interval, err := cfg.Monitor.ParseInterval()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			errCh := make(chan error, 2)
			go func() { errCh <- m.RunEvery(ctx, interval) }()
			if cfg.Monitor.Listen != "" {
				srv := api.New(cfg.Monitor.Listen, m, logger)
				go func() { errCh <- srv.ListenAndServe(ctx) }()
			}

			err = <-errCh
			cancel()
			if err == context.Canceled {
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Run a single pass and exit")
	cmd.Flags().StringVar(&listen, "listen", "", "API listen address (overrides config)")

	return cmd
}

func printSummary(snap *mon.Snapshot) {
	fmt.Printf("run %s: %d instruments, %d errors\n", snap.RunID, len(snap.Entries), snap.Errors)
	for _, e := range snap.Entries {
		if e.Err != "" {
			fmt.Printf("  %-12s ERROR %s\n", e.Symbol, e.Err)
			continue
		}
		fmt.Printf("  %-12s %-8s strength %d  tier %d  %s\n",
			e.Symbol, e.Result.FinalSignal, e.Result.SignalStrength,
			e.Result.SuggestedLevel, e.Result.LevelReason)
	}
}
