// Package alerts decides which analysis results warrant a notification
// and delivers them.
package alerts

import (
	"context"
	"time"

	"github.com/rustyeddy/etfmon/analysis"
)

// Report is one alert-worthy analysis outcome for one instrument.
type Report struct {
	Symbol string
	Name   string
	Level  int
	Time   time.Time
	Result analysis.Result
}

// Notifier delivers alert reports.
type Notifier interface {
	Notify(ctx context.Context, rep Report) error
}

// ShouldAlert applies the per-tier alert policy. Held instruments
// (level 1) alert on exits, the watchlist (level 2) on strong entries
// and exits, passive instruments (level 3) only on a full-strength
// entry. PULLBACK counts as a buy-side signal.
func ShouldAlert(level int, r analysis.Result) bool {
	buySide := r.FinalSignal == analysis.SignalBuy || r.FinalSignal == analysis.SignalPullback
	sell := r.FinalSignal == analysis.SignalSell

	switch level {
	case 1:
		return sell
	case 2:
		return sell || (buySide && r.SignalStrength >= 4)
	case 3:
		return buySide && r.SignalStrength == 5
	}
	return false
}
