package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/etfmon/analysis"
	"github.com/rustyeddy/etfmon/market"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	return j, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	_, path := newTestSQLite(t)

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('prices','analyses')`)
	require.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		assert.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	assert.NoError(t, rows.Err())

	assert.True(t, found["prices"])
	assert.True(t, found["analyses"])
}

func TestSQLiteRecordAnalysisRoundtrip(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)

	rsi := 61.54
	rec := AnalysisRecord{
		RunID:       "run-1",
		Symbol:      "VWCE",
		Time:        time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC),
		Signal:      string(analysis.SignalBuy),
		Strength:    5,
		Level:       1,
		LevelChange: true,
		Price:       104.2312,
		Result: analysis.Result{
			CurrentPrice:   104.2312,
			RSI:            &rsi,
			Crossover:      "golden_cross",
			FinalSignal:    analysis.SignalBuy,
			SignalStrength: 5,
			SuggestedLevel: 1,
			LevelChange:    true,
			DataStatus:     analysis.DataOK,
		},
	}

	require.NoError(t, j.RecordAnalysis(rec))

	got, err := j.History("VWCE", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.NotEmpty(t, got[0].ID)
	assert.Equal(t, "run-1", got[0].RunID)
	assert.Equal(t, "VWCE", got[0].Symbol)
	assert.True(t, got[0].Time.Equal(rec.Time))
	assert.Equal(t, "BUY", got[0].Signal)
	assert.Equal(t, 5, got[0].Strength)
	assert.Equal(t, 1, got[0].Level)
	assert.True(t, got[0].LevelChange)
	assert.InDelta(t, 104.2312, got[0].Price, 1e-9)

	require.NotNil(t, got[0].Result.RSI)
	assert.InDelta(t, 61.54, *got[0].Result.RSI, 1e-9)
	assert.Nil(t, got[0].Result.EMAFast)
	assert.Equal(t, analysis.SignalBuy, got[0].Result.FinalSignal)
}

func TestSQLiteUpsertPrices(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)

	day1 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	require.NoError(t, j.UpsertPrices("VWCE", market.Series{
		{Date: day1, Close: 100.5},
		{Date: day2, Close: 101.25},
	}))

	// Overlapping fetch revises day2 and appends day3.
	day3 := day1.AddDate(0, 0, 2)
	require.NoError(t, j.UpsertPrices("VWCE", market.Series{
		{Date: day2, Close: 101.5},
		{Date: day3, Close: 102.0},
	}))

	got, err := j.Prices("VWCE")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.True(t, got[0].Date.Equal(day1))
	assert.InDelta(t, 100.5, got[0].Close, 1e-9)
	assert.InDelta(t, 101.5, got[1].Close, 1e-9)
	assert.True(t, got[2].Date.Equal(day3))
	assert.InDelta(t, 102.0, got[2].Close, 1e-9)

	other, err := j.Prices("OTHER")
	require.NoError(t, err)
	assert.Empty(t, other)
}
