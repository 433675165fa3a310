// Package history implements the journal query subcommand.
package history

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cliconfig "github.com/rustyeddy/etfmon/internal/cli/config"
	"github.com/rustyeddy/etfmon/journal"
)

func New(rc *cliconfig.RootConfig) *cobra.Command {
	var (
		limit   int
		csvPath string
		runID   string
	)

	cmd := &cobra.Command{
		Use:   "history [SYMBOL]",
		Short: "Show stored analysis records",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rc.Load()
			if err != nil {
				return err
			}

			jrnl, err := journal.NewSQLite(cfg.Journal.DBPath)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer jrnl.Close()

			var recs []journal.AnalysisRecord
			switch {
			case runID != "":
				recs, err = jrnl.ListRun(runID)
			case len(args) == 1:
				recs, err = jrnl.History(args[0], limit)
			default:
				latest, lerr := jrnl.LatestRunID()
				if lerr != nil {
					return lerr
				}
				if latest == "" {
					fmt.Println("journal is empty")
					return nil
				}
				recs, err = jrnl.ListRun(latest)
			}
			if err != nil {
				return err
			}

			if csvPath != "" {
				f, err := os.Create(csvPath)
				if err != nil {
					return err
				}
				defer f.Close()
				return journal.ExportCSV(f, recs)
			}

			for _, rec := range recs {
				fmt.Printf("%s  %-12s %-8s strength %d  tier %d  %.4f  %s\n",
					rec.Time.Format("2006-01-02 15:04"), rec.Symbol, rec.Signal,
					rec.Strength, rec.Level, rec.Price, rec.Result.LevelReason)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Most recent records to show per symbol")
	cmd.Flags().StringVar(&runID, "run", "", "Show one run by ID instead")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Write records as CSV to this file")

	return cmd
}
