package renderer

import (
	"fmt"
	"strings"

	"github.com/jbury/stockfolio"
)

// TransactionsMarkdown renders a trade history, oldest first.
func TransactionsMarkdown(title string, trades []stockfolio.Trade) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if len(trades) == 0 {
		fmt.Fprintln(&b, "No transactions.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Date | Side | Ticker | Shares | Price | Cash Effect |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|")
	for _, t := range trades {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s | %s |\n",
			t.Date, t.Side, t.Ticker, t.Quantity, t.Price, t.CashEffect.SignedString())
	}
	return b.String()
}

// CashMovementsMarkdown renders the cash log, oldest first, with the running
// balance.
func CashMovementsMarkdown(movements []stockfolio.CashMovement) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Cash Log\n\n")
	if len(movements) == 0 {
		fmt.Fprintln(&b, "No movements.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Date | Kind | Amount | Balance |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|")
	for _, m := range movements {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			m.Date, m.Kind, m.Signed().SignedString(), m.Balance)
	}
	return b.String()
}

// RealizedGainsMarkdown renders the realized gain events, oldest first.
func RealizedGainsMarkdown(gains []stockfolio.RealizedGain) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Realized Gains\n\n")
	if len(gains) == 0 {
		fmt.Fprintln(&b, "No realized gains.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Date | Ticker | Shares | Sale Price | Avg Cost | Delta |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|")
	var total stockfolio.Money
	for _, g := range gains {
		fmt.Fprintf(&b, "| %s | %s | %d | %s | %s | %s |\n",
			g.Date, g.Ticker, g.Quantity, g.SalePrice, g.AvgCost, g.Delta.SignedString())
		total = total.Add(g.Delta)
	}
	fmt.Fprintf(&b, "| **Total** | | | | | **%s** |\n", total.SignedString())
	return b.String()
}
