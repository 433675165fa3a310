// Package importer implements the local-file price import subcommand.
package importer

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/etfmon/fetch"
	cliconfig "github.com/rustyeddy/etfmon/internal/cli/config"
	"github.com/rustyeddy/etfmon/journal"
)

func New(rc *cliconfig.RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import SYMBOL FILE",
		Short: "Import a daily close CSV (.csv or .csv.xz) into the journal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol, path := args[0], args[1]

			cfg, err := rc.Load()
			if err != nil {
				return err
			}

			series, err := fetch.LoadFile(path)
			if err != nil {
				return err
			}
			if series.Len() == 0 {
				return fmt.Errorf("no data in %s", path)
			}

			jrnl, err := journal.NewSQLite(cfg.Journal.DBPath)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer jrnl.Close()

			if err := jrnl.UpsertPrices(symbol, series); err != nil {
				return err
			}

			fmt.Printf("imported %d sessions for %s (%s to %s)\n",
				series.Len(), symbol,
				series[0].Date.Format("2006-01-02"),
				series[series.Len()-1].Date.Format("2006-01-02"))
			return nil
		},
	}

	return cmd
}
