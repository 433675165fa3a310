package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/etfmon/analysis"
)

func storeRecord(t *testing.T, j *SQLite, runID, symbol string, ts time.Time, signal string) {
	t.Helper()
	require.NoError(t, j.RecordAnalysis(AnalysisRecord{
		RunID:  runID,
		Symbol: symbol,
		Time:   ts,
		Signal: signal,
		Level:  3,
		Price:  100,
		Result: analysis.Result{
			FinalSignal: analysis.Signal(signal),
			Crossover:   "neutral",
			DataStatus:  analysis.DataOK,
		},
	}))
}

func TestHistoryOrderAndLimit(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)

	base := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	storeRecord(t, j, "r1", "VWCE", base, "HOLD")
	storeRecord(t, j, "r2", "VWCE", base.AddDate(0, 0, 1), "HOLD")
	storeRecord(t, j, "r3", "VWCE", base.AddDate(0, 0, 2), "BUY")
	storeRecord(t, j, "r3", "SXR8", base.AddDate(0, 0, 2), "SELL")

	got, err := j.History("VWCE", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "r3", got[0].RunID)
	assert.Equal(t, "BUY", got[0].Signal)
	assert.Equal(t, "r2", got[1].RunID)

	all, err := j.History("VWCE", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListRun(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)

	ts := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	storeRecord(t, j, "r1", "VWCE", ts, "HOLD")
	storeRecord(t, j, "r1", "SXR8", ts, "BUY")
	storeRecord(t, j, "r2", "VWCE", ts.AddDate(0, 0, 1), "HOLD")

	got, err := j.ListRun("r1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "SXR8", got[0].Symbol)
	assert.Equal(t, "VWCE", got[1].Symbol)
}

func TestLatestRunID(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)

	runID, err := j.LatestRunID()
	require.NoError(t, err)
	assert.Empty(t, runID)

	ts := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	storeRecord(t, j, "r1", "VWCE", ts, "HOLD")
	storeRecord(t, j, "r2", "VWCE", ts.AddDate(0, 0, 1), "HOLD")

	runID, err = j.LatestRunID()
	require.NoError(t, err)
	assert.Equal(t, "r2", runID)
}
