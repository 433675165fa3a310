package analysis

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/etfmon/trend"
)

// Monitoring tiers. Level 1 gets trade-grade attention, level 2 is the
// active watchlist, level 3 is passive.
const (
	LevelActive    = 1
	LevelWatchlist = 2
	LevelPassive   = 3
)

// suggestLevel maps the classified state onto a monitoring tier. The
// mapping is memoryless: the same inputs always yield the same level,
// and currentLevel only feeds the change flag.
func suggestLevel(cfg Config, buyCount int, pullback bool, cross trend.Crossover, rsi value, currentLevel int) (level int, change bool, reason string) {
	switch {
	case buyCount == 5:
		level = LevelActive
		if pullback {
			reason = fmt.Sprintf("BUY alert: all 5 entry conditions met, pullback pending toward EMA%d", cfg.EMAFastPeriod)
		} else {
			reason = "BUY alert: all 5 entry conditions met"
		}
	case cross == trend.GoldenCross || (rsi.ok && rsi.v > 50):
		level = LevelWatchlist
		var parts []string
		if cross == trend.GoldenCross {
			parts = append(parts, fmt.Sprintf("EMA%d > SMA%d", cfg.EMAFastPeriod, cfg.SMASlowPeriod))
		}
		if rsi.ok && rsi.v > 50 {
			parts = append(parts, fmt.Sprintf("RSI %.0f > 50", rsi.v))
		}
		reason = fmt.Sprintf("watchlist: %s (%d/5 buy conditions)", strings.Join(parts, ", "), buyCount)
	default:
		level = LevelPassive
		reason = "passive monitoring"
	}

	change = currentLevel > 0 && currentLevel != level
	return level, change, reason
}
