// Package indicators computes the close-price indicators the analysis
// engine consumes: moving averages, RSI, MACD and Bollinger Bands.
//
// Every function returns a slice aligned with its input, padded with
// math.NaN() while the indicator is warming up. Callers test values
// with math.IsNaN before using them.
package indicators

import "math"

// EMA calculates the exponential moving average in its unadjusted
// recursive form: the first value seeds the average and each later
// point is blended in with alpha = 2/(period+1).
func EMA(prices []float64, period int) []float64 {
	if len(prices) == 0 || period <= 0 {
		return nil
	}

	out := make([]float64, len(prices))
	alpha := 2.0 / (float64(period) + 1.0)

	prev := math.NaN()
	for i, p := range prices {
		if math.IsNaN(p) {
			out[i] = math.NaN()
			continue
		}
		if math.IsNaN(prev) {
			prev = p
		} else {
			prev = p*alpha + prev*(1.0-alpha)
		}
		out[i] = prev
	}
	return out
}

// SMA calculates the simple moving average over a trailing window of
// exactly period points. Undefined until the window is full.
func SMA(prices []float64, period int) []float64 {
	if len(prices) == 0 || period <= 0 {
		return nil
	}

	out := make([]float64, len(prices))
	for i := range prices {
		if i < period-1 {
			out[i] = math.NaN()
			continue
		}
		sum := 0.0
		for j := i - period + 1; j <= i; j++ {
			sum += prices[j]
		}
		out[i] = sum / float64(period)
	}
	return out
}

// StdDev calculates the rolling population standard deviation over a
// trailing window of period points. Undefined until the window is full.
func StdDev(prices []float64, period int) []float64 {
	if len(prices) == 0 || period <= 0 {
		return nil
	}

	mean := SMA(prices, period)
	out := make([]float64, len(prices))
	for i := range prices {
		if i < period-1 {
			out[i] = math.NaN()
			continue
		}
		variance := 0.0
		for j := i - period + 1; j <= i; j++ {
			d := prices[j] - mean[i]
			variance += d * d
		}
		out[i] = math.Sqrt(variance / float64(period))
	}
	return out
}

// RSI calculates the Relative Strength Index. Price deltas are split
// into gains and losses, each smoothed with the weighted exponential
// mean alpha = 1/period (center of mass period-1). The value is
// undefined until period deltas have been observed, saturates at 100
// while losses vanish, and stays undefined while both sides are zero
// (a perfectly flat window) instead of dividing by zero.
func RSI(prices []float64, period int) []float64 {
	if len(prices) == 0 || period <= 0 {
		return nil
	}

	out := make([]float64, len(prices))
	for i := range out {
		out[i] = math.NaN()
	}

	decay := float64(period-1) / float64(period)

	var gainNum, lossNum, den float64
	obs := 0
	for i := 1; i < len(prices); i++ {
		delta := prices[i] - prices[i-1]
		gain, loss := 0.0, 0.0
		if delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}

		gainNum = gain + decay*gainNum
		lossNum = loss + decay*lossNum
		den = 1.0 + decay*den
		obs++
		if obs < period {
			continue
		}

		avgGain := gainNum / den
		avgLoss := lossNum / den
		if avgLoss == 0 {
			if avgGain > 0 {
				out[i] = 100.0
			}
			continue
		}
		rs := avgGain / avgLoss
		out[i] = 100.0 - 100.0/(1.0+rs)
	}
	return out
}
