package monitor

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/etfmon/alerts"
	"github.com/rustyeddy/etfmon/config"
	"github.com/rustyeddy/etfmon/journal"
	"github.com/rustyeddy/etfmon/market"
)

type fakeSource struct {
	data map[string][]float64
}

func (f *fakeSource) DailyCloses(_ context.Context, symbol string, _ int) (market.Series, error) {
	closes, ok := f.data[symbol]
	if !ok {
		return nil, fmt.Errorf("no data for symbol %s", symbol)
	}

	base := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	series := make(market.Series, len(closes))
	for i, c := range closes {
		series[i] = market.Bar{Date: base.AddDate(0, 0, i), Close: c}
	}
	return series, nil
}

type fakeNotifier struct {
	mu      sync.Mutex
	reports []alerts.Report
}

func (f *fakeNotifier) Notify(_ context.Context, rep alerts.Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports = append(f.reports, rep)
	return nil
}

func (f *fakeNotifier) sent() []alerts.Report {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]alerts.Report, len(f.reports))
	copy(out, f.reports)
	return out
}

func uptrend(n int) []float64 {
	closes := make([]float64, n)
	closes[0] = 100
	for i := 1; i < n; i++ {
		closes[i] = closes[i-1] * (1.005 + 0.001*float64(i-1))
	}
	return closes
}

func downtrend(n int) []float64 {
	closes := make([]float64, n)
	closes[0] = 100
	for i := 1; i < n; i++ {
		closes[i] = closes[i-1] * 0.99
	}
	return closes
}

func newTestMonitor(t *testing.T, cfg *config.Config, source *fakeSource) (*Monitor, *journal.SQLite, *fakeNotifier) {
	t.Helper()

	jrnl, err := journal.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = jrnl.Close() })

	notifier := &fakeNotifier{}
	m := New(cfg, source, jrnl, notifier, zerolog.New(nil))
	return m, jrnl, notifier
}

func TestRunOnce(t *testing.T) {
	cfg := config.Default()
	cfg.Monitor.Workers = 2
	cfg.Watchlist = []config.Instrument{
		{Symbol: "down.de", Name: "Falling Fund", Level: 1},
		{Symbol: "up.de", Name: "Rising Fund", Level: 3},
		{Symbol: "gone.de", Level: 2},
	}

	source := &fakeSource{data: map[string][]float64{
		"up.de":   uptrend(60),
		"down.de": downtrend(60),
	}}

	m, jrnl, notifier := newTestMonitor(t, cfg, source)

	snap, err := m.RunOnce(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.NotEmpty(t, snap.RunID)

	require.Len(t, snap.Entries, 3)
	assert.Equal(t, "down.de", snap.Entries[0].Symbol)
	assert.Equal(t, "gone.de", snap.Entries[1].Symbol)
	assert.Equal(t, "up.de", snap.Entries[2].Symbol)

	assert.Equal(t, 1, snap.Errors)
	assert.Contains(t, snap.Entries[1].Err, "no data")

	assert.Equal(t, 1, snap.Summary["SELL"])
	assert.Equal(t, 1, snap.Summary["HOLD"])
	assert.Equal(t, 1, snap.Levels[3])
	assert.Equal(t, 1, snap.Levels[2])

	// down.de moves 1 -> 3, up.de moves 3 -> 2.
	require.Len(t, snap.LevelChanges, 2)
	assert.Equal(t, "down.de", snap.LevelChanges[0].Symbol)
	assert.Equal(t, "up.de", snap.LevelChanges[1].Symbol)

	// The held, falling instrument is the only alert.
	sent := notifier.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "down.de", sent[0].Symbol)
	assert.Equal(t, "SELL", string(sent[0].Result.FinalSignal))

	// Both successful analyses were journaled under the same run.
	recs, err := jrnl.ListRun(snap.RunID)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "down.de", recs[0].Symbol)
	assert.Equal(t, "SELL", recs[0].Signal)

	// Prices were stored too.
	prices, err := jrnl.Prices("up.de")
	require.NoError(t, err)
	assert.Len(t, prices, 60)

	assert.Same(t, snap, m.Snapshot())
	assert.NotEmpty(t, m.Events())
}

func TestRunOnceEmptyWatchlist(t *testing.T) {
	cfg := config.Default()
	m, _, notifier := newTestMonitor(t, cfg, &fakeSource{})

	snap, err := m.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Entries)
	assert.Empty(t, notifier.sent())
}

func TestRunEveryStopsOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Watchlist = []config.Instrument{{Symbol: "up.de", Level: 3}}
	source := &fakeSource{data: map[string][]float64{"up.de": uptrend(60)}}

	m, _, _ := newTestMonitor(t, cfg, source)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.RunEvery(ctx, time.Hour) }()

	// First run is synchronous, so a snapshot appears quickly.
	require.Eventually(t, func() bool { return m.Snapshot() != nil }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("RunEvery did not stop on cancel")
	}
}

func TestRing(t *testing.T) {
	r := NewRing(3)
	assert.Equal(t, 0, r.Len())

	for i := 1; i <= 5; i++ {
		r.Append(fmt.Sprintf("event %d", i))
	}

	events := r.Events()
	require.Len(t, events, 3)
	assert.Equal(t, "event 3", events[0].Message)
	assert.Equal(t, "event 5", events[2].Message)
}
