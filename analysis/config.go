package analysis

// Config holds the tunable thresholds of the classification engine.
// The zero value of any field is replaced with its default by New, so
// callers only set what they want to override.
type Config struct {
	// Moving averages
	EMAFastPeriod int `json:"ema_fast_period" yaml:"ema_fast_period"` // 13
	SMASlowPeriod int `json:"sma_slow_period" yaml:"sma_slow_period"` // 50

	// RSI
	RSIPeriod     int     `json:"rsi_period" yaml:"rsi_period"`         // 14
	RSIBuyLow     float64 `json:"rsi_buy_low" yaml:"rsi_buy_low"`       // 55
	RSIBuyHigh    float64 `json:"rsi_buy_high" yaml:"rsi_buy_high"`     // 65
	RSIOverbought float64 `json:"rsi_overbought" yaml:"rsi_overbought"` // 75
	RSIOversold   float64 `json:"rsi_oversold" yaml:"rsi_oversold"`     // 25

	// MACD
	MACDFast   int `json:"macd_fast" yaml:"macd_fast"`     // 12
	MACDSlow   int `json:"macd_slow" yaml:"macd_slow"`     // 26
	MACDSignal int `json:"macd_signal" yaml:"macd_signal"` // 9

	// Bollinger Bands
	BBPeriod int     `json:"bb_period" yaml:"bb_period"` // 20
	BBStd    float64 `json:"bb_std" yaml:"bb_std"`       // 2

	// Confirmation days above/below both moving averages
	DaysAboveMA int `json:"days_above_ma" yaml:"days_above_ma"` // 3

	// Pullback gate
	PullbackMaxDistance float64 `json:"pullback_max_distance" yaml:"pullback_max_distance"` // 5.0 (%)
	PullbackLimitOffset float64 `json:"pullback_limit_offset" yaml:"pullback_limit_offset"` // 2.0 (%)
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		EMAFastPeriod:       13,
		SMASlowPeriod:       50,
		RSIPeriod:           14,
		RSIBuyLow:           55,
		RSIBuyHigh:          65,
		RSIOverbought:       75,
		RSIOversold:         25,
		MACDFast:            12,
		MACDSlow:            26,
		MACDSignal:          9,
		BBPeriod:            20,
		BBStd:               2,
		DaysAboveMA:         3,
		PullbackMaxDistance: 5.0,
		PullbackLimitOffset: 2.0,
	}
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.EMAFastPeriod <= 0 {
		c.EMAFastPeriod = def.EMAFastPeriod
	}
	if c.SMASlowPeriod <= 0 {
		c.SMASlowPeriod = def.SMASlowPeriod
	}
	if c.RSIPeriod <= 0 {
		c.RSIPeriod = def.RSIPeriod
	}
	if c.RSIBuyLow <= 0 {
		c.RSIBuyLow = def.RSIBuyLow
	}
	if c.RSIBuyHigh <= 0 {
		c.RSIBuyHigh = def.RSIBuyHigh
	}
	if c.RSIOverbought <= 0 {
		c.RSIOverbought = def.RSIOverbought
	}
	if c.RSIOversold <= 0 {
		c.RSIOversold = def.RSIOversold
	}
	if c.MACDFast <= 0 {
		c.MACDFast = def.MACDFast
	}
	if c.MACDSlow <= 0 {
		c.MACDSlow = def.MACDSlow
	}
	if c.MACDSignal <= 0 {
		c.MACDSignal = def.MACDSignal
	}
	if c.BBPeriod <= 0 {
		c.BBPeriod = def.BBPeriod
	}
	if c.BBStd <= 0 {
		c.BBStd = def.BBStd
	}
	if c.DaysAboveMA <= 0 {
		c.DaysAboveMA = def.DaysAboveMA
	}
	if c.PullbackMaxDistance <= 0 {
		c.PullbackMaxDistance = def.PullbackMaxDistance
	}
	if c.PullbackLimitOffset <= 0 {
		c.PullbackLimitOffset = def.PullbackLimitOffset
	}
}

// MinDataPoints is the shortest series the engine will analyze; below
// it Analyze returns an insufficient-data record.
func (c Config) MinDataPoints() int {
	return c.SMASlowPeriod + 5
}
