// Package journal persists price history and analysis records to
// SQLite and exports them as CSV.
package journal

import (
	"time"

	"github.com/rustyeddy/etfmon/analysis"
	"github.com/rustyeddy/etfmon/market"
)

// AnalysisRecord is one stored analysis pass for one symbol. The
// headline columns are denormalized for querying; the full Result
// rides along as JSON.
type AnalysisRecord struct {
	ID          string
	RunID       string
	Symbol      string
	Time        time.Time
	Signal      string
	Strength    int
	Level       int
	LevelChange bool
	Price       float64
	Result      analysis.Result
}

type Journal interface {
	RecordAnalysis(AnalysisRecord) error
	UpsertPrices(symbol string, bars market.Series) error
	Close() error
}
