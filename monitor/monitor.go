// Package monitor runs the analysis pipeline over the configured
// watchlist: fetch, analyze, journal, alert.
package monitor

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/etfmon/alerts"
	"github.com/rustyeddy/etfmon/analysis"
	"github.com/rustyeddy/etfmon/config"
	"github.com/rustyeddy/etfmon/fetch"
	"github.com/rustyeddy/etfmon/journal"
	"github.com/rustyeddy/etfmon/pkg/id"
)

// Entry is the outcome for one instrument within a run.
type Entry struct {
	Symbol   string          `json:"symbol"`
	Name     string          `json:"name,omitempty"`
	Category string          `json:"category,omitempty"`
	Level    int             `json:"level"`
	Result   analysis.Result `json:"result"`
	Err      string          `json:"error,omitempty"`
}

// Snapshot is the aggregated outcome of one full run.
type Snapshot struct {
	RunID        string         `json:"run_id"`
	Time         time.Time      `json:"time"`
	Summary      map[string]int `json:"summary"` // final signal -> count
	Levels       map[int]int    `json:"levels"`  // suggested level -> count
	Entries      []Entry        `json:"entries"`
	LevelChanges []Entry        `json:"level_changes"`
	Errors       int            `json:"errors"`
}

// Monitor drives periodic analysis runs over the watchlist.
type Monitor struct {
	cfg      *config.Config
	source   fetch.Source
	journal  journal.Journal
	notifier alerts.Notifier
	analyzer *analysis.Analyzer
	logger   zerolog.Logger

	ring *Ring

	mu   sync.Mutex
	last *Snapshot
}

func New(cfg *config.Config, source fetch.Source, jrnl journal.Journal, notifier alerts.Notifier, logger zerolog.Logger) *Monitor {
	return &Monitor{
		cfg:      cfg,
		source:   source,
		journal:  jrnl,
		notifier: notifier,
		analyzer: analysis.New(cfg.Analysis),
		logger:   logger,
		ring:     NewRing(200),
	}
}

// RunOnce analyzes every watchlist instrument and returns the
// aggregated snapshot. Per-instrument failures are recorded in the
// snapshot, not returned as errors.
func (m *Monitor) RunOnce(ctx context.Context) (*Snapshot, error) {
	runID := id.New()
	start := time.Now().UTC()

	m.ring.Append(fmt.Sprintf("run %s: analyzing %d instruments", runID, len(m.cfg.Watchlist)))

	workers := m.cfg.Monitor.Workers
	if workers <= 0 {
		workers = 4
	}

	jobs := make(chan config.Instrument)
	results := make(chan Entry)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for inst := range jobs {
				results <- m.analyzeOne(ctx, runID, start, inst)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, inst := range m.cfg.Watchlist {
			select {
			case jobs <- inst:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	snap := &Snapshot{
		RunID:   runID,
		Time:    start,
		Summary: map[string]int{},
		Levels:  map[int]int{},
	}

	for entry := range results {
		snap.Entries = append(snap.Entries, entry)
		if entry.Err != "" {
			snap.Errors++
			continue
		}
		snap.Summary[string(entry.Result.FinalSignal)]++
		snap.Levels[entry.Result.SuggestedLevel]++
		if entry.Result.LevelChange {
			snap.LevelChanges = append(snap.LevelChanges, entry)
		}
	}

	sort.Slice(snap.Entries, func(i, j int) bool { return snap.Entries[i].Symbol < snap.Entries[j].Symbol })
	sort.Slice(snap.LevelChanges, func(i, j int) bool { return snap.LevelChanges[i].Symbol < snap.LevelChanges[j].Symbol })

	m.mu.Lock()
	m.last = snap
	m.mu.Unlock()

	m.ring.Append(fmt.Sprintf("run %s: done, %d analyzed, %d errors, %d level changes",
		runID, len(snap.Entries)-snap.Errors, snap.Errors, len(snap.LevelChanges)))

	if err := ctx.Err(); err != nil {
		return snap, err
	}
	return snap, nil
}

func (m *Monitor) analyzeOne(ctx context.Context, runID string, ts time.Time, inst config.Instrument) Entry {
	entry := Entry{
		Symbol:   inst.Symbol,
		Name:     inst.Name,
		Category: inst.Category,
		Level:    inst.Level,
	}

	series, err := m.source.DailyCloses(ctx, inst.Symbol, m.cfg.Fetch.Days)
	if err != nil {
		m.logger.Error().Err(err).Str("symbol", inst.Symbol).Msg("fetch failed")
		m.ring.Append(fmt.Sprintf("%s: fetch failed: %v", inst.Symbol, err))
		entry.Err = err.Error()
		return entry
	}

	if err := m.journal.UpsertPrices(inst.Symbol, series); err != nil {
		m.logger.Error().Err(err).Str("symbol", inst.Symbol).Msg("store prices failed")
	}

	result := m.analyzer.Analyze(series, inst.Level)
	entry.Result = result

	rec := journal.AnalysisRecord{
		RunID:       runID,
		Symbol:      inst.Symbol,
		Time:        ts,
		Signal:      string(result.FinalSignal),
		Strength:    result.SignalStrength,
		Level:       result.SuggestedLevel,
		LevelChange: result.LevelChange,
		Price:       result.CurrentPrice,
		Result:      result,
	}
	if err := m.journal.RecordAnalysis(rec); err != nil {
		m.logger.Error().Err(err).Str("symbol", inst.Symbol).Msg("journal failed")
	}

	m.logger.Info().
		Str("symbol", inst.Symbol).
		Str("signal", string(result.FinalSignal)).
		Int("strength", result.SignalStrength).
		Int("level", result.SuggestedLevel).
		Msg("analyzed")
	m.ring.Append(fmt.Sprintf("%s: %s (strength %d, level %d)",
		inst.Symbol, result.FinalSignal, result.SignalStrength, result.SuggestedLevel))

	if alerts.ShouldAlert(inst.Level, result) {
		rep := alerts.Report{
			Symbol: inst.Symbol,
			Name:   inst.Name,
			Level:  inst.Level,
			Time:   ts,
			Result: result,
		}
		if err := m.notifier.Notify(ctx, rep); err != nil {
			m.logger.Error().Err(err).Str("symbol", inst.Symbol).Msg("alert failed")
			m.ring.Append(fmt.Sprintf("%s: alert failed: %v", inst.Symbol, err))
		} else {
			m.ring.Append(fmt.Sprintf("%s: alert sent (%s)", inst.Symbol, result.FinalSignal))
		}
	}

	return entry
}

// RunEvery runs immediately, then on every interval tick until the
// context is cancelled.
func (m *Monitor) RunEvery(ctx context.Context, interval time.Duration) error {
	if _, err := m.RunOnce(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := m.RunOnce(ctx); err != nil {
				return err
			}
		}
	}
}

// Snapshot returns the outcome of the most recent run, nil before the
// first one completes.
func (m *Monitor) Snapshot() *Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// Events returns the monitor's activity log, oldest first.
func (m *Monitor) Events() []Event {
	return m.ring.Events()
}
