package analysis

import "github.com/rustyeddy/etfmon/trend"

// Signal is the final classification of one analysis pass.
type Signal string

const (
	SignalBuy      Signal = "BUY"
	SignalSell     Signal = "SELL"
	SignalHold     Signal = "HOLD"
	SignalPullback Signal = "PULLBACK"
)

// DataStatus reports whether the series was long enough to analyze.
type DataStatus string

const (
	DataOK           DataStatus = "ok"
	DataInsufficient DataStatus = "insufficient"
)

// BuyConditions are the five entry conditions. A full BUY requires all
// of them.
type BuyConditions struct {
	PriceAboveMA3Days  bool `json:"price_above_ma_3days"`
	GoldenCross        bool `json:"golden_cross"`
	RSIOptimal         bool `json:"rsi_optimal"`
	MACDPositiveRising bool `json:"macd_positive_rising"`
	BBWidthExpanding   bool `json:"bb_width_expanding"`
}

// Count returns how many buy conditions hold.
func (b BuyConditions) Count() int {
	n := 0
	for _, ok := range []bool{b.PriceAboveMA3Days, b.GoldenCross, b.RSIOptimal, b.MACDPositiveRising, b.BBWidthExpanding} {
		if ok {
			n++
		}
	}
	return n
}

// SellConditions are the three exit conditions. A SELL requires at
// least two of them.
type SellConditions struct {
	PriceBelowMA3Days bool `json:"price_below_ma_3days"`
	DeathCross        bool `json:"death_cross"`
	RSIExtreme        bool `json:"rsi_extreme"`
}

// Count returns how many sell conditions hold.
func (s SellConditions) Count() int {
	n := 0
	for _, ok := range []bool{s.PriceBelowMA3Days, s.DeathCross, s.RSIExtreme} {
		if ok {
			n++
		}
	}
	return n
}

// Result is the flat analysis record one Analyze call produces. Field
// names are stable: the dashboard, journal and alert plumbing key on
// them directly. Pointer fields are null while the underlying
// indicator is still warming up.
type Result struct {
	CurrentPrice float64 `json:"current_price"`

	EMAFast           *float64 `json:"ema_fast"`
	SMASlow           *float64 `json:"sma_slow"`
	RSI               *float64 `json:"rsi"`
	MACDLine          *float64 `json:"macd_line"`
	MACDSignal        *float64 `json:"macd_signal"`
	MACDHistogram     *float64 `json:"macd_histogram"`
	MACDHistogramPrev *float64 `json:"macd_histogram_prev"`
	BBWidth           *float64 `json:"bb_width"`
	BBWidthPrev       *float64 `json:"bb_width_prev"`
	BBPctB            *float64 `json:"bb_pct_b"`

	Crossover    trend.Crossover `json:"crossover"`
	DaysAboveEMA int             `json:"days_above_ema"`
	DaysAboveSMA int             `json:"days_above_sma"`
	DaysBelowEMA int             `json:"days_below_ema"`
	DaysBelowSMA int             `json:"days_below_sma"`

	BuyConditions  BuyConditions  `json:"buy_conditions"`
	BuyCount       int            `json:"buy_count"`
	SellConditions SellConditions `json:"sell_conditions"`
	SellCount      int            `json:"sell_count"`

	FinalSignal    Signal `json:"final_signal"`
	SignalStrength int    `json:"signal_strength"`

	PullbackActive     bool     `json:"pullback_active"`
	LimitOrderPrice    *float64 `json:"limit_order_price"`
	DistanceFromEMAPct *float64 `json:"distance_from_ema_pct"`

	SuggestedLevel int    `json:"suggested_level"`
	LevelChange    bool   `json:"level_change"`
	LevelReason    string `json:"level_reason"`

	PctChange1D *float64 `json:"pct_change_1d"`
	PctChange1W *float64 `json:"pct_change_1w"`
	PctChange1M *float64 `json:"pct_change_1m"`

	DataStatus DataStatus `json:"data_status"`
}
