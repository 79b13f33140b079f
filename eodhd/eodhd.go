// Package eodhd resolves market prices through the EODHD HTTP API
// (https://eodhd.com). It implements stockfolio.PriceSource.
//
// End-of-day queries go through a disk cache keyed by day, so repeated runs
// on the same day never hit the network twice. Live quotes are never cached.
package eodhd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"github.com/jbury/stockfolio"
)

const defaultBaseURL = "https://eodhd.com/api"

// Client queries the EODHD API.
type Client struct {
	apiKey   string
	currency string
	baseURL  string
	live     *http.Client // live quotes, no cache
	cached   *http.Client // end-of-day series, daily disk cache
}

// New creates a client. Prices are reported in the given currency; EODHD
// itself quotes each ticker in its exchange currency, so pick tickers
// accordingly.
func New(apiKey, currency string) *Client {
	return &Client{
		apiKey:   apiKey,
		currency: currency,
		baseURL:  defaultBaseURL,
		live:     &http.Client{Timeout: 30 * time.Second},
		cached:   newDailyCachingClient(),
	}
}

// CurrentPrice implements stockfolio.PriceSource using the real-time
// endpoint.
//
//	https://eodhd.com/api/real-time/AAPL.US?fmt=json&api_token=demo
//	{"code":"AAPL.US","timestamp":1756759200,"close":232.14,...}
func (c *Client) CurrentPrice(ctx context.Context, ticker string) (stockfolio.Money, error) {
	addr := fmt.Sprintf("%s/real-time/%s?fmt=json&api_token=%s", c.baseURL, ticker, c.apiKey)

	var jobj any
	if err := jwget(ctx, c.live, addr, &jobj); err != nil {
		return stockfolio.Money{}, fmt.Errorf("%w: %q: %v", stockfolio.ErrUnknownTicker, ticker, err)
	}
	// The API answers "NA" for the close of an unknown ticker instead of a
	// non-200 status, so probe the value, not the status code.
	jval, err := jsonpath.Get("$.close", jobj)
	if err != nil {
		return stockfolio.Money{}, fmt.Errorf("%w: %q: no close in quote", stockfolio.ErrUnknownTicker, ticker)
	}
	val, ok := jval.(float64)
	if !ok || val == 0 {
		return stockfolio.Money{}, fmt.Errorf("%w: %q: quote is %v", stockfolio.ErrUnknownTicker, ticker, jval)
	}
	return stockfolio.M(val, c.currency), nil
}

// YearSeries implements stockfolio.PriceSource using the end-of-day
// endpoint, asking for the trailing 365 days.
//
//	https://eodhd.com/api/eod/AAPL.US?fmt=json&api_token=demo&from=...&to=...
//	[{"date":"2024-02-13","open":675.066,...,"close":668.445,"volume":0},...]
func (c *Client) YearSeries(ctx context.Context, ticker string) ([]stockfolio.SeriesPoint, error) {
	to := stockfolio.Today()
	from := to.Add(-365)
	addr := fmt.Sprintf("%s/eod/%s?fmt=json&api_token=%s&from=%s&to=%s",
		c.baseURL, ticker, c.apiKey, from, to)

	type row struct {
		Date   stockfolio.Date `json:"date"`
		Close  decimal.Decimal `json:"close"`
		Volume int64           `json:"volume"`
	}
	content := make([]row, 0)
	if err := jwget(ctx, c.cached, addr, &content); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", stockfolio.ErrUnknownTicker, ticker, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %q: empty history", stockfolio.ErrPriceUnavailable, ticker)
	}

	series := make([]stockfolio.SeriesPoint, 0, len(content))
	for _, r := range content {
		series = append(series, stockfolio.SeriesPoint{
			Date:   r.Date,
			Close:  stockfolio.M(r.Close, c.currency),
			Volume: r.Volume,
		})
	}
	return series, nil
}
