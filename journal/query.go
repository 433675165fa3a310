package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rustyeddy/etfmon/market"
)

// Prices returns the stored close series for a symbol, oldest first.
func (j *SQLite) Prices(symbol string) (market.Series, error) {
	rows, err := j.db.Query(`
		SELECT day, close
		FROM prices
		WHERE symbol = ?
		ORDER BY day ASC`, symbol)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// The driver hands DATE columns back as time.Time already.
	var out market.Series
	for rows.Next() {
		var bar market.Bar
		if err := rows.Scan(&bar.Date, &bar.Close); err != nil {
			return nil, fmt.Errorf("price row for %s: %w", symbol, err)
		}
		out = append(out, bar)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// History returns the most recent analysis records for a symbol,
// newest first, at most limit rows (all rows when limit <= 0).
func (j *SQLite) History(symbol string, limit int) ([]AnalysisRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := j.db.Query(`
		SELECT id, run_id, symbol, time, signal, strength, level, level_change, price, result
		FROM analyses
		WHERE symbol = ?
		ORDER BY time DESC, id DESC
		LIMIT ?`, symbol, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListRun returns every record of one run, ordered by symbol.
func (j *SQLite) ListRun(runID string) ([]AnalysisRecord, error) {
	rows, err := j.db.Query(`
		SELECT id, run_id, symbol, time, signal, strength, level, level_change, price, result
		FROM analyses
		WHERE run_id = ?
		ORDER BY symbol ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

// LatestRunID returns the run ID of the newest stored record, or the
// empty string when the journal has none.
func (j *SQLite) LatestRunID() (string, error) {
	var runID string
	err := j.db.QueryRow(`
		SELECT run_id FROM analyses
		ORDER BY id DESC LIMIT 1`).Scan(&runID)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return runID, nil
}

func scanRecords(rows *sql.Rows) ([]AnalysisRecord, error) {
	var out []AnalysisRecord
	for rows.Next() {
		var rec AnalysisRecord
		var blob string
		if err := rows.Scan(
			&rec.ID,
			&rec.RunID,
			&rec.Symbol,
			&rec.Time,
			&rec.Signal,
			&rec.Strength,
			&rec.Level,
			&rec.LevelChange,
			&rec.Price,
			&blob,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(blob), &rec.Result); err != nil {
			return nil, fmt.Errorf("analysis record %s: %w", rec.ID, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
