package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/etfmon/market"
	"github.com/rustyeddy/etfmon/pkg/id"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// RecordAnalysis stores one analysis pass. A missing ID is filled with
// a fresh ULID so callers can pass a zero ID.
func (j *SQLite) RecordAnalysis(rec AnalysisRecord) error {
	if rec.ID == "" {
		rec.ID = id.New()
	}

	blob, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("marshal analysis result: %w", err)
	}

	_, err = j.db.Exec(`
		INSERT INTO analyses
		(id, run_id, symbol, time, signal, strength, level, level_change, price, result)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.RunID, rec.Symbol, rec.Time, rec.Signal,
		rec.Strength, rec.Level, rec.LevelChange, rec.Price, string(blob),
	)
	return err
}

// UpsertPrices replaces the stored close for each bar's day, keeping
// the price table idempotent across overlapping fetches.
func (j *SQLite) UpsertPrices(symbol string, bars market.Series) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO prices (symbol, day, close) VALUES (?, ?, ?)
		ON CONFLICT(symbol, day) DO UPDATE SET close = excluded.close`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, bar := range bars {
		if _, err := stmt.Exec(symbol, bar.Date.Format("2006-01-02"), bar.Close); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
