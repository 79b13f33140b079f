package stockfolio

import (
	"context"
	"fmt"
	"sort"
)

// SeriesPoint is one day of market data for a ticker.
type SeriesPoint struct {
	Date   Date
	Close  Money
	Volume int64
}

// PriceSource resolves market prices. Implementations must return an error
// wrapping ErrUnknownTicker when the ticker cannot be resolved. Lookups may
// block on external I/O; the ledger always calls them before opening a unit
// of work.
type PriceSource interface {
	// CurrentPrice returns the latest known price per share.
	CurrentPrice(ctx context.Context, ticker string) (Money, error)
	// YearSeries returns the most recent 365 days of daily closes and
	// volumes, oldest first.
	YearSeries(ctx context.Context, ticker string) ([]SeriesPoint, error)
}

// ClosePriceOn resolves the close price of a ticker on a given day from its
// one-year series, falling back to the most recent close before that day
// (markets are shut on weekends and holidays). It returns an error wrapping
// ErrPriceUnavailable when the date precedes the whole series.
func ClosePriceOn(ctx context.Context, src PriceSource, ticker string, on Date) (Money, error) {
	series, err := src.YearSeries(ctx, ticker)
	if err != nil {
		return Money{}, err
	}
	// series is oldest first; find the last point not after 'on'.
	i := sort.Search(len(series), func(i int) bool { return series[i].Date.After(on) })
	if i == 0 {
		return Money{}, fmt.Errorf("%w: no close for %s on or before %s", ErrPriceUnavailable, ticker, on)
	}
	return series[i-1].Close, nil
}

// StaticPriceSource is a PriceSource backed by fixed in-memory data, for
// tests and offline use.
type StaticPriceSource struct {
	Prices map[string]Money         // current price by ticker
	Series map[string][]SeriesPoint // oldest first
}

// NewStaticPriceSource creates an empty static source.
func NewStaticPriceSource() *StaticPriceSource {
	return &StaticPriceSource{
		Prices: make(map[string]Money),
		Series: make(map[string][]SeriesPoint),
	}
}

// Set fixes the current price for a ticker.
func (s *StaticPriceSource) Set(ticker string, price Money) { s.Prices[ticker] = price }

// CurrentPrice implements PriceSource.
func (s *StaticPriceSource) CurrentPrice(_ context.Context, ticker string) (Money, error) {
	p, ok := s.Prices[ticker]
	if !ok {
		return Money{}, fmt.Errorf("%w: %q", ErrUnknownTicker, ticker)
	}
	return p, nil
}

// YearSeries implements PriceSource.
func (s *StaticPriceSource) YearSeries(_ context.Context, ticker string) ([]SeriesPoint, error) {
	if _, ok := s.Prices[ticker]; !ok {
		if _, ok := s.Series[ticker]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTicker, ticker)
		}
	}
	return s.Series[ticker], nil
}
