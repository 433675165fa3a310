package fetch

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ulikunitz/xz"

	"github.com/rustyeddy/etfmon/market"
)

// ParseCSV reads daily history in the Stooq CSV layout: a header row
// naming at least Date and Close columns, one row per session, oldest
// first. Extra columns are ignored.
func ParseCSV(r io.Reader) (market.Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty csv")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	dateCol, closeCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			dateCol = i
		case "close":
			closeCol = i
		}
	}
	if dateCol < 0 || closeCol < 0 {
		return nil, fmt.Errorf("csv header missing Date or Close column: %v", header)
	}

	var series market.Series
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		line++

		if len(row) <= dateCol || len(row) <= closeCol {
			return nil, fmt.Errorf("row %d: too few columns", line)
		}

		date, err := time.Parse("2006-01-02", strings.TrimSpace(row[dateCol]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		close, err := strconv.ParseFloat(strings.TrimSpace(row[closeCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: parse close: %w", line, err)
		}

		series = append(series, market.Bar{Date: date, Close: close})
	}

	if err := series.Validate(); err != nil {
		return nil, err
	}
	return series, nil
}

// LoadFile reads a local history file, transparently decompressing
// .xz archives.
func LoadFile(path string) (market.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if filepath.Ext(path) == ".xz" {
		r, err = xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open xz %s: %w", path, err)
		}
	}

	series, err := ParseCSV(r)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return series, nil
}
