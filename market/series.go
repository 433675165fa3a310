// Package market holds the price types shared by the fetcher, the
// journal, and the analysis engine.
package market

import (
	"fmt"
	"math"
	"time"
)

// Bar is one daily closing-price observation.
type Bar struct {
	Date  time.Time
	Close float64
}

// Series is an ordered daily close series, oldest bar first.
//
// The analysis engine assumes a validated series: strictly increasing
// dates and finite prices. Producers (fetcher, journal) call Validate
// before handing a series over.
type Series []Bar

func (s Series) Len() int { return len(s) }

// Closes returns the close prices, oldest first.
func (s Series) Closes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Close
	}
	return out
}

// Last returns the most recent bar, ok=false on an empty series.
func (s Series) Last() (Bar, bool) {
	if len(s) == 0 {
		return Bar{}, false
	}
	return s[len(s)-1], true
}

// Tail returns the most recent n bars (the whole series if shorter).
func (s Series) Tail(n int) Series {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// Validate checks the producer contract: strictly increasing dates and
// finite close prices.
func (s Series) Validate() error {
	for i, b := range s {
		if math.IsNaN(b.Close) || math.IsInf(b.Close, 0) {
			return fmt.Errorf("bar %d (%s): close is not finite", i, b.Date.Format("2006-01-02"))
		}
		if b.Date.IsZero() {
			return fmt.Errorf("bar %d: zero date", i)
		}
		if i > 0 && !s[i-1].Date.Before(b.Date) {
			return fmt.Errorf("bar %d (%s): date not after previous (%s)",
				i, b.Date.Format("2006-01-02"), s[i-1].Date.Format("2006-01-02"))
		}
	}
	return nil
}
