package indicators

import "math"

// MACDResult holds the three MACD series aligned with the input prices.
type MACDResult struct {
	Line      []float64 // EMA(fast) - EMA(slow)
	Signal    []float64 // EMA(Line, signal)
	Histogram []float64 // Line - Signal
}

// MACD calculates Moving Average Convergence Divergence with the given
// fast, slow and signal periods.
func MACD(prices []float64, fast, slow, signal int) MACDResult {
	if len(prices) == 0 || fast <= 0 || slow <= 0 || signal <= 0 {
		return MACDResult{}
	}

	fastEMA := EMA(prices, fast)
	slowEMA := EMA(prices, slow)

	line := make([]float64, len(prices))
	for i := range prices {
		line[i] = fastEMA[i] - slowEMA[i] // NaN propagates
	}

	signalLine := EMA(line, signal)

	hist := make([]float64, len(prices))
	for i := range prices {
		if math.IsNaN(line[i]) || math.IsNaN(signalLine[i]) {
			hist[i] = math.NaN()
			continue
		}
		hist[i] = line[i] - signalLine[i]
	}

	return MACDResult{Line: line, Signal: signalLine, Histogram: hist}
}
