package trend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountConsecutive(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		name   string
		closes []float64
		ma     []float64
		want   int
	}{
		{
			name:   "three day run",
			closes: []float64{100, 99, 101, 102, 103},
			ma:     []float64{100, 100, 100, 100, 100},
			want:   3,
		},
		{
			name:   "run broken by failure",
			closes: []float64{101, 102, 99, 103, 104},
			ma:     []float64{100, 100, 100, 100, 100},
			want:   2,
		},
		{
			name:   "run broken by undefined ma",
			closes: []float64{101, 102, 103, 104},
			ma:     []float64{100, nan, 100, 100},
			want:   2,
		},
		{
			name:   "latest point fails",
			closes: []float64{101, 102, 99},
			ma:     []float64{100, 100, 100},
			want:   0,
		},
		{
			name:   "too short",
			closes: []float64{101},
			ma:     []float64{100},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountConsecutive(tt.closes, tt.ma, Above, MaxRunDays)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("capped at maxDays", func(t *testing.T) {
		closes := make([]float64, 30)
		ma := make([]float64, 30)
		for i := range closes {
			closes[i] = 101
			ma[i] = 100
		}
		assert.Equal(t, 10, CountConsecutive(closes, ma, Above, 10))
		assert.Equal(t, 5, CountConsecutive(closes, ma, Above, 5))
	})

	t.Run("below comparator", func(t *testing.T) {
		closes := []float64{100, 99, 98, 97}
		ma := []float64{100, 100, 100, 100}
		assert.Equal(t, 3, CountConsecutive(closes, ma, Below, MaxRunDays))
	})
}

func TestDetect(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		name string
		fast []float64
		slow []float64
		want Crossover
	}{
		{"golden", []float64{1, 105}, []float64{1, 100}, GoldenCross},
		{"death", []float64{1, 95}, []float64{1, 100}, DeathCross},
		{"exactly equal is neutral", []float64{1, 100}, []float64{1, 100}, Neutral},
		{"undefined fast", []float64{1, nan}, []float64{1, 100}, Neutral},
		{"undefined slow", []float64{1, 100}, []float64{1, nan}, Neutral},
		{"short series", []float64{100}, []float64{100}, Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.fast, tt.slow))
		})
	}
}
