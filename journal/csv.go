// journal/csv.go
package journal

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

// ExportCSV writes analysis records as CSV, header first. Indicator
// columns that were still warming up are left empty.
func ExportCSV(w io.Writer, recs []AnalysisRecord) error {
	cw := csv.NewWriter(w)

	header := []string{
		"time", "symbol", "signal", "strength", "level", "level_change",
		"price", "ema_fast", "sma_slow", "rsi", "crossover",
		"buy_count", "sell_count", "pct_change_1d", "reason",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, rec := range recs {
		r := rec.Result
		row := []string{
			rec.Time.UTC().Format(time.RFC3339),
			rec.Symbol,
			rec.Signal,
			strconv.Itoa(rec.Strength),
			strconv.Itoa(rec.Level),
			strconv.FormatBool(rec.LevelChange),
			f(rec.Price),
			opt(r.EMAFast),
			opt(r.SMASlow),
			opt(r.RSI),
			string(r.Crossover),
			strconv.Itoa(r.BuyCount),
			strconv.Itoa(r.SellCount),
			opt(r.PctChange1D),
			r.LevelReason,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func opt(x *float64) string {
	if x == nil {
		return ""
	}
	return f(*x)
}
