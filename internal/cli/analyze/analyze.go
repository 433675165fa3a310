// Package analyze implements the one-shot analysis subcommand.
package analyze

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/etfmon/analysis"
	"github.com/rustyeddy/etfmon/fetch"
	cliconfig "github.com/rustyeddy/etfmon/internal/cli/config"
	"github.com/rustyeddy/etfmon/market"
)

func New(rc *cliconfig.RootConfig) *cobra.Command {
	var (
		file    string
		level   int
		asJSON  bool
		days    int
		baseURL string
	)

	cmd := &cobra.Command{
		Use:   "analyze SYMBOL",
		Short: "Analyze one symbol and print the signal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := args[0]

			cfg, err := rc.Load()
			if err != nil {
				return err
			}
			if days == 0 {
				days = cfg.Fetch.Days
			}
			if baseURL == "" {
				baseURL = cfg.Fetch.BaseURL
			}
			if level == 0 {
				level = cfg.LevelFor(symbol)
			}

			var series market.Series
			if file != "" {
				series, err = fetch.LoadFile(file)
				if err != nil {
					return err
				}
				series = series.Tail(days)
			} else {
				series, err = fetch.NewClient(baseURL).DailyCloses(cmd.Context(), symbol, days)
				if err != nil {
					return err
				}
			}

			result := analysis.New(cfg.Analysis).Analyze(series, level)

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			printResult(symbol, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Analyze a local CSV file instead of fetching")
	cmd.Flags().IntVar(&level, "level", 0, "Current monitoring tier (default from watchlist)")
	cmd.Flags().IntVar(&days, "days", 0, "Sessions to analyze (default from config)")
	cmd.Flags().StringVar(&baseURL, "url", "", "Quote endpoint override")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full result as JSON")

	return cmd
}

func printResult(symbol string, r analysis.Result) {
	fmt.Printf("%s: %s (strength %d/5)\n", symbol, r.FinalSignal, r.SignalStrength)
	fmt.Printf("  price %.4f", r.CurrentPrice)
	if r.PctChange1D != nil {
		fmt.Printf("  1d %+.2f%%", *r.PctChange1D)
	}
	if r.PctChange1W != nil {
		fmt.Printf("  1w %+.2f%%", *r.PctChange1W)
	}
	if r.PctChange1M != nil {
		fmt.Printf("  1m %+.2f%%", *r.PctChange1M)
	}
	fmt.Println()

	if r.DataStatus == analysis.DataInsufficient {
		fmt.Printf("  %s\n", r.LevelReason)
		return
	}

	if r.EMAFast != nil && r.SMASlow != nil {
		fmt.Printf("  ema %.4f  sma %.4f  crossover %s\n", *r.EMAFast, *r.SMASlow, r.Crossover)
	}
	if r.RSI != nil {
		fmt.Printf("  rsi %.2f\n", *r.RSI)
	}
	fmt.Printf("  buy %d/5  sell %d/3\n", r.BuyCount, r.SellCount)

	if r.PullbackActive && r.LimitOrderPrice != nil {
		fmt.Printf("  pullback: limit order at %.4f\n", *r.LimitOrderPrice)
	}
	fmt.Printf("  tier %d: %s\n", r.SuggestedLevel, r.LevelReason)
}
