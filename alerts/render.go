package alerts

import (
	"fmt"
	"strings"
)

// Subject renders the one-line alert headline.
func Subject(rep Report) string {
	return fmt.Sprintf("[etfmon] %s %s (level %d)", rep.Result.FinalSignal, rep.Symbol, rep.Level)
}

// Body renders the plain-text alert message.
func Body(rep Report) string {
	r := rep.Result

	var b strings.Builder
	name := rep.Name
	if name == "" {
		name = rep.Symbol
	}

	fmt.Fprintf(&b, "%s (%s)\n", name, rep.Symbol)
	fmt.Fprintf(&b, "Signal: %s (strength %d/5)\n", r.FinalSignal, r.SignalStrength)
	fmt.Fprintf(&b, "Price: %.4f\n", r.CurrentPrice)

	if r.RSI != nil {
		fmt.Fprintf(&b, "RSI: %.2f\n", *r.RSI)
	}
	fmt.Fprintf(&b, "Crossover: %s\n", r.Crossover)
	fmt.Fprintf(&b, "Buy conditions: %d/5, sell conditions: %d/3\n", r.BuyCount, r.SellCount)

	if r.PullbackActive && r.LimitOrderPrice != nil {
		fmt.Fprintf(&b, "Pullback: price %.2f%% above fast EMA, limit order at %.4f\n",
			deref(r.DistanceFromEMAPct), *r.LimitOrderPrice)
	}
	if r.PctChange1D != nil {
		fmt.Fprintf(&b, "Change: 1d %.2f%%", *r.PctChange1D)
		if r.PctChange1W != nil {
			fmt.Fprintf(&b, ", 1w %.2f%%", *r.PctChange1W)
		}
		if r.PctChange1M != nil {
			fmt.Fprintf(&b, ", 1m %.2f%%", *r.PctChange1M)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Tier: %d", r.SuggestedLevel)
	if r.LevelChange {
		fmt.Fprintf(&b, " (was %d)", rep.Level)
	}
	fmt.Fprintf(&b, "\nReason: %s\n", r.LevelReason)

	return b.String()
}

func deref(x *float64) float64 {
	if x == nil {
		return 0
	}
	return *x
}
