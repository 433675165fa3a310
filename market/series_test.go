package market

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(n int) time.Time {
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestSeriesCloses(t *testing.T) {
	s := Series{{day(0), 100}, {day(1), 101.5}, {day(2), 99}}
	assert.Equal(t, []float64{100, 101.5, 99}, s.Closes())
}

func TestSeriesLast(t *testing.T) {
	_, ok := Series{}.Last()
	assert.False(t, ok)

	b, ok := Series{{day(0), 100}, {day(1), 102}}.Last()
	assert.True(t, ok)
	assert.Equal(t, 102.0, b.Close)
}

func TestSeriesTail(t *testing.T) {
	s := Series{{day(0), 1}, {day(1), 2}, {day(2), 3}}
	assert.Len(t, s.Tail(2), 2)
	assert.Equal(t, 2.0, s.Tail(2)[0].Close)
	assert.Len(t, s.Tail(10), 3)
	assert.Len(t, s.Tail(0), 3)
}

func TestSeriesValidate(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		s := Series{{day(0), 100}, {day(3), 101}} // gaps are fine
		assert.NoError(t, s.Validate())
	})

	t.Run("non-monotonic dates", func(t *testing.T) {
		s := Series{{day(1), 100}, {day(1), 101}}
		assert.Error(t, s.Validate())
	})

	t.Run("non-finite close", func(t *testing.T) {
		s := Series{{day(0), math.NaN()}}
		assert.Error(t, s.Validate())
	})

	t.Run("zero date", func(t *testing.T) {
		s := Series{{time.Time{}, 100}}
		assert.Error(t, s.Validate())
	})
}
