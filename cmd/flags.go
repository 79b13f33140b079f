package cmd

import (
	"fmt"

	"github.com/jbury/stockfolio"
)

// parseDateFlag parses a -d flag value; empty means "today" and yields the
// zero date, which the ledger resolves itself.
func parseDateFlag(s string) (stockfolio.Date, error) {
	if s == "" {
		return stockfolio.Date{}, nil
	}
	return stockfolio.ParseDate(s)
}

// parseAmount parses a positional decimal amount in the given currency.
func parseAmount(s, currency string) (stockfolio.Money, error) {
	m, err := stockfolio.ParseMoney(s, currency)
	if err != nil {
		return stockfolio.Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return m, nil
}

// parsePriceFlag parses a -price flag value; empty yields the zero Money,
// which tells the ledger to resolve the market price itself.
func parsePriceFlag(s, currency string) (stockfolio.Money, error) {
	if s == "" {
		return stockfolio.Money{}, nil
	}
	m, err := stockfolio.ParseMoney(s, currency)
	if err != nil {
		return stockfolio.Money{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return m, nil
}
