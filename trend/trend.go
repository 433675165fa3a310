// Package trend derives run-length and crossover state from a close
// series and its moving averages.
package trend

import "math"

// Crossover is the point-in-time relation between the fast EMA and the
// slow SMA at the latest bar. It is a relational check, not an
// edge-triggered cross event.
type Crossover string

const (
	GoldenCross Crossover = "golden_cross"
	DeathCross  Crossover = "death_cross"
	Neutral     Crossover = "neutral"
)

// MaxRunDays caps the backward walk in CountConsecutive.
const MaxRunDays = 10

// Above reports the price strictly above the moving average.
func Above(price, ma float64) bool { return price > ma }

// Below reports the price strictly below the moving average.
func Below(price, ma float64) bool { return price < ma }

// CountConsecutive walks backward from the most recent point and counts
// how many sessions in a row cmp(price, ma) held. The walk stops at the
// first failure, at an undefined (NaN) average, or after maxDays
// sessions (MaxRunDays when maxDays <= 0).
func CountConsecutive(closes, ma []float64, cmp func(price, ma float64) bool, maxDays int) int {
	if len(closes) < 2 || len(ma) < 2 {
		return 0
	}
	if maxDays <= 0 {
		maxDays = MaxRunDays
	}

	steps := maxDays
	if n := len(closes) - 1; n < steps {
		steps = n
	}
	if n := len(ma) - 1; n < steps {
		steps = n
	}

	count := 0
	for i := 1; i <= steps; i++ {
		price := closes[len(closes)-i]
		avg := ma[len(ma)-i]
		if math.IsNaN(avg) || !cmp(price, avg) {
			break
		}
		count++
	}
	return count
}

// Detect classifies the latest fast/slow relation: GoldenCross when the
// fast EMA is strictly above the slow SMA, DeathCross when strictly
// below, Neutral when either is undefined or they are exactly equal.
func Detect(emaFast, smaSlow []float64) Crossover {
	if len(emaFast) < 2 || len(smaSlow) < 2 {
		return Neutral
	}

	fast := emaFast[len(emaFast)-1]
	slow := smaSlow[len(smaSlow)-1]
	if math.IsNaN(fast) || math.IsNaN(slow) {
		return Neutral
	}

	switch {
	case fast > slow:
		return GoldenCross
	case fast < slow:
		return DeathCross
	}
	return Neutral
}
