package indicators

import "math"

// BollingerResult holds the Bollinger Band series aligned with the
// input prices.
type BollingerResult struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
	Width  []float64 // (upper-lower)/middle * 100, 0 when middle <= 0
	PctB   []float64 // (price-lower)/(upper-lower), 0.5 when the range is 0
}

// Bollinger calculates Bollinger Bands: SMA(period) middle band with
// upper/lower bands k population standard deviations away.
func Bollinger(prices []float64, period int, k float64) BollingerResult {
	if len(prices) == 0 || period <= 0 {
		return BollingerResult{}
	}

	middle := SMA(prices, period)
	std := StdDev(prices, period)

	n := len(prices)
	upper := make([]float64, n)
	lower := make([]float64, n)
	width := make([]float64, n)
	pctB := make([]float64, n)

	for i := 0; i < n; i++ {
		if math.IsNaN(middle[i]) || math.IsNaN(std[i]) {
			upper[i] = math.NaN()
			lower[i] = math.NaN()
			width[i] = math.NaN()
			pctB[i] = math.NaN()
			continue
		}

		upper[i] = middle[i] + k*std[i]
		lower[i] = middle[i] - k*std[i]

		if middle[i] <= 0 {
			width[i] = 0
		} else {
			width[i] = (upper[i] - lower[i]) / middle[i] * 100.0
		}

		if rng := upper[i] - lower[i]; rng == 0 {
			pctB[i] = 0.5
		} else {
			pctB[i] = (prices[i] - lower[i]) / rng
		}
	}

	return BollingerResult{Upper: upper, Middle: middle, Lower: lower, Width: width, PctB: pctB}
}
