// Package fetch retrieves daily close series, either from a
// Stooq-compatible CSV endpoint or from local CSV files.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rustyeddy/etfmon/market"
)

// DefaultURL is the public Stooq endpoint serving daily history as CSV.
const DefaultURL = "https://stooq.com"

// Source produces the daily close series for one symbol. days limits
// the result to the most recent sessions, 0 meaning everything the
// source has.
type Source interface {
	DailyCloses(ctx context.Context, symbol string, days int) (market.Series, error)
}

// Client fetches daily candles from a Stooq-compatible endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a fetch client. An empty baseURL selects
// DefaultURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// DailyCloses downloads the symbol's daily history and returns the
// trailing days sessions (all of them when days <= 0).
func (c *Client) DailyCloses(ctx context.Context, symbol string, days int) (market.Series, error) {
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}

	params := url.Values{}
	params.Set("s", symbol)
	params.Set("i", "d")

	apiURL := fmt.Sprintf("%s/q/d/l/?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("quote error for %s (status %d): %s", symbol, resp.StatusCode, string(body))
	}

	series, err := ParseCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s history: %w", symbol, err)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("no data for symbol %s", symbol)
	}

	if days > 0 {
		series = series.Tail(days)
	}
	return series, nil
}
