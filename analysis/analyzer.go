// Package analysis classifies a daily close series into a BUY, SELL,
// HOLD or PULLBACK signal and suggests a monitoring tier. Every pass is
// a pure function of the series and the configured thresholds.
package analysis

import (
	"fmt"

	"github.com/rustyeddy/etfmon/indicators"
	"github.com/rustyeddy/etfmon/market"
	"github.com/rustyeddy/etfmon/trend"
)

// Analyzer runs the classification engine with a fixed Config.
type Analyzer struct {
	cfg Config
}

// New returns an Analyzer, filling any zero Config field with its
// default.
func New(cfg Config) *Analyzer {
	cfg.applyDefaults()
	return &Analyzer{cfg: cfg}
}

// Config returns the effective configuration after defaulting.
func (a *Analyzer) Config() Config { return a.cfg }

// Analyze classifies the series. currentLevel is the tier the caller
// currently assigns the instrument (0 when untracked); it only feeds
// the level_change flag, never the suggested level itself. A series
// shorter than Config.MinDataPoints yields a neutral insufficient-data
// record instead of an error.
func (a *Analyzer) Analyze(series market.Series, currentLevel int) Result {
	closes := series.Closes()

	if len(closes) < a.cfg.MinDataPoints() {
		return a.insufficient(closes, currentLevel)
	}

	price := closes[len(closes)-1]

	emaFast := indicators.EMA(closes, a.cfg.EMAFastPeriod)
	smaSlow := indicators.SMA(closes, a.cfg.SMASlowPeriod)
	rsi := indicators.RSI(closes, a.cfg.RSIPeriod)
	macd := indicators.MACD(closes, a.cfg.MACDFast, a.cfg.MACDSlow, a.cfg.MACDSignal)
	bb := indicators.Bollinger(closes, a.cfg.BBPeriod, a.cfg.BBStd)

	s := snapshot{
		price:      price,
		emaFast:    lastValue(emaFast),
		smaSlow:    lastValue(smaSlow),
		rsi:        lastValue(rsi),
		macdLine:   lastValue(macd.Line),
		macdSignal: lastValue(macd.Signal),
		hist:       lastValue(macd.Histogram),
		histPrev:   prevValue(macd.Histogram),
		width:      lastValue(bb.Width),
		widthPrev:  prevValue(bb.Width),
		pctB:       lastValue(bb.PctB),

		cross:        trend.Detect(emaFast, smaSlow),
		daysAboveEMA: trend.CountConsecutive(closes, emaFast, trend.Above, trend.MaxRunDays),
		daysAboveSMA: trend.CountConsecutive(closes, smaSlow, trend.Above, trend.MaxRunDays),
		daysBelowEMA: trend.CountConsecutive(closes, emaFast, trend.Below, trend.MaxRunDays),
		daysBelowSMA: trend.CountConsecutive(closes, smaSlow, trend.Below, trend.MaxRunDays),
	}

	buy := evalBuy(a.cfg, s)
	sell := evalSell(a.cfg, s)
	sig, strength, pullback, limit := decide(a.cfg, buy, sell, s)

	level, change, reason := suggestLevel(a.cfg, buy.Count(), pullback, s.cross, s.rsi, currentLevel)

	var distance *float64
	if s.emaFast.ok && s.emaFast.v != 0 {
		d := round((price-s.emaFast.v)/s.emaFast.v*100.0, 2)
		distance = &d
	}

	return Result{
		CurrentPrice: round(price, 4),

		EMAFast:           s.emaFast.ptr(4),
		SMASlow:           s.smaSlow.ptr(4),
		RSI:               s.rsi.ptr(2),
		MACDLine:          s.macdLine.ptr(4),
		MACDSignal:        s.macdSignal.ptr(4),
		MACDHistogram:     s.hist.ptr(4),
		MACDHistogramPrev: s.histPrev.ptr(4),
		BBWidth:           s.width.ptr(2),
		BBWidthPrev:       s.widthPrev.ptr(2),
		BBPctB:            s.pctB.ptr(2),

		Crossover:    s.cross,
		DaysAboveEMA: s.daysAboveEMA,
		DaysAboveSMA: s.daysAboveSMA,
		DaysBelowEMA: s.daysBelowEMA,
		DaysBelowSMA: s.daysBelowSMA,

		BuyConditions:  buy,
		BuyCount:       buy.Count(),
		SellConditions: sell,
		SellCount:      sell.Count(),

		FinalSignal:    sig,
		SignalStrength: strength,

		PullbackActive:     pullback,
		LimitOrderPrice:    limit,
		DistanceFromEMAPct: distance,

		SuggestedLevel: level,
		LevelChange:    change,
		LevelReason:    reason,

		PctChange1D: pctChange(closes, 1),
		PctChange1W: pctChange(closes, 6),
		PctChange1M: pctChange(closes, 22),

		DataStatus: DataOK,
	}
}

// insufficient builds the neutral record returned when the series is
// too short to trust any indicator.
func (a *Analyzer) insufficient(closes []float64, currentLevel int) Result {
	r := Result{
		Crossover:      trend.Neutral,
		FinalSignal:    SignalHold,
		SuggestedLevel: LevelPassive,
		DataStatus:     DataInsufficient,
		LevelReason:    fmt.Sprintf("insufficient data: %d/%d days", len(closes), a.cfg.MinDataPoints()),
	}
	if currentLevel > 0 {
		r.SuggestedLevel = currentLevel
	}
	if len(closes) > 0 {
		r.CurrentPrice = round(closes[len(closes)-1], 4)
	}
	return r
}

// pctChange returns the percentage move from `back` sessions ago to the
// latest close, nil when the series is too short or the base is zero.
func pctChange(closes []float64, back int) *float64 {
	i := len(closes) - 1 - back
	if i < 0 {
		return nil
	}
	base := closes[i]
	if base == 0 {
		return nil
	}
	p := round((closes[len(closes)-1]-base)/base*100.0, 2)
	return &p
}
