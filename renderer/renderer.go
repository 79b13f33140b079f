// Package renderer formats ledger state as markdown, ready for a terminal
// markdown renderer or any plain text sink.
package renderer

import (
	"fmt"
	"strings"

	"github.com/jbury/stockfolio"
)

// SummaryMarkdown renders the headline portfolio figures.
func SummaryMarkdown(s *stockfolio.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio Summary\n\n")
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total Value | %s |\n", s.TotalValue)
	fmt.Fprintf(&b, "| Cash | %s |\n", s.CashBalance)
	fmt.Fprintf(&b, "| Unrealized | %s |\n", s.Unrealized.SignedString())
	fmt.Fprintf(&b, "| Realized | %s |\n", s.Realized.SignedString())
	return b.String()
}

// HoldingsMarkdown renders the holdings with market values and deltas.
// Unpriceable positions show "n/a" in the market columns.
func HoldingsMarkdown(views []stockfolio.HoldingView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings\n\n")
	if len(views) == 0 {
		fmt.Fprintln(&b, "No holdings.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Ticker | Shares | Avg Cost | Price | Market Value | Unrealized | Realized |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")
	for _, v := range views {
		price, value, unrealized := v.CurrentPrice.String(), v.MarketValue.String(), v.Unrealized.SignedString()
		if v.PriceUnavailable {
			price, value, unrealized = "n/a", "n/a", "n/a"
		}
		if v.Quantity.IsZero() {
			price, value, unrealized = "-", "-", "-"
		}
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s | %s |\n",
			v.Ticker, v.Quantity, v.AverageCost, price, value, unrealized, v.Realized.SignedString())
	}
	return b.String()
}
