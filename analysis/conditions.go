package analysis

import (
	"math"

	"github.com/rustyeddy/etfmon/trend"
)

// value is an indicator reading that may still be undefined (warm-up).
type value struct {
	v  float64
	ok bool
}

func lastValue(xs []float64) value {
	if len(xs) == 0 {
		return value{}
	}
	v := xs[len(xs)-1]
	return value{v: v, ok: !math.IsNaN(v)}
}

func prevValue(xs []float64) value {
	if len(xs) < 2 {
		return value{}
	}
	v := xs[len(xs)-2]
	return value{v: v, ok: !math.IsNaN(v)}
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// ptr returns a rounded *float64 for the record, nil while undefined.
func (v value) ptr(places int) *float64 {
	if !v.ok {
		return nil
	}
	r := round(v.v, places)
	return &r
}

// snapshot gathers the latest indicator values the decision table reads.
type snapshot struct {
	price float64

	emaFast value
	smaSlow value
	rsi     value

	macdLine   value
	macdSignal value
	hist       value
	histPrev   value

	width     value
	widthPrev value
	pctB      value

	cross        trend.Crossover
	daysAboveEMA int
	daysAboveSMA int
	daysBelowEMA int
	daysBelowSMA int
}

func evalBuy(cfg Config, s snapshot) BuyConditions {
	return BuyConditions{
		PriceAboveMA3Days: s.daysAboveEMA >= cfg.DaysAboveMA && s.daysAboveSMA >= cfg.DaysAboveMA,
		GoldenCross:       s.cross == trend.GoldenCross,
		RSIOptimal:        s.rsi.ok && s.rsi.v >= cfg.RSIBuyLow && s.rsi.v <= cfg.RSIBuyHigh,
		MACDPositiveRising: s.hist.ok && s.histPrev.ok &&
			s.hist.v > 0 && s.hist.v > s.histPrev.v,
		BBWidthExpanding: s.width.ok && s.widthPrev.ok && s.width.v > s.widthPrev.v,
	}
}

func evalSell(cfg Config, s snapshot) SellConditions {
	return SellConditions{
		PriceBelowMA3Days: s.daysBelowEMA >= cfg.DaysAboveMA && s.daysBelowSMA >= cfg.DaysAboveMA,
		DeathCross:        s.cross == trend.DeathCross,
		RSIExtreme: s.rsi.ok &&
			(s.rsi.v > cfg.RSIOverbought || s.rsi.v < cfg.RSIOversold),
	}
}

// decide applies the fixed signal precedence: full BUY (subject to the
// pullback gate), then SELL on two or more exit conditions, then an
// informational partial-buy HOLD, then plain HOLD.
func decide(cfg Config, buy BuyConditions, sell SellConditions, s snapshot) (sig Signal, strength int, pullback bool, limit *float64) {
	buyCount := buy.Count()
	sellCount := sell.Count()

	switch {
	case buyCount == 5:
		sig, strength = SignalBuy, 5
		if s.emaFast.ok && s.emaFast.v != 0 {
			dist := (s.price - s.emaFast.v) / s.emaFast.v * 100.0
			if dist > cfg.PullbackMaxDistance {
				sig = SignalPullback
				pullback = true
				lp := round(s.emaFast.v*(1.0+cfg.PullbackLimitOffset/100.0), 4)
				limit = &lp
			}
		}
	case sellCount >= 2:
		sig, strength = SignalSell, sellCount
	case buyCount >= 3:
		sig, strength = SignalHold, buyCount
	default:
		sig, strength = SignalHold, 0
	}
	return sig, strength, pullback, limit
}
