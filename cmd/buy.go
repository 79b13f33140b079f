package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"github.com/jbury/stockfolio"
)

type buyCmd struct {
	date  string
	price string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy shares of a stock" }
func (*buyCmd) Usage() string {
	return `spm buy [-d <date>] [-price <price>] <ticker> <quantity>

  Buys a whole number of shares. Without -price the market price is used:
  the live quote for a trade dated today, the daily close otherwise.

Usage Examples:
$ spm buy AAPL.US 10
$ spm buy -d 2025-05-12 -price 182.50 AAPL.US 10
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the trade (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.price, "price", "", "Price per share. Defaults to the market price.")
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: buy takes a ticker and a quantity.")
		return subcommands.ExitUsageError
	}
	ticker := f.Arg(0)
	shares, err := strconv.ParseInt(f.Arg(1), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid quantity %q.\n", f.Arg(1))
		return subcommands.ExitUsageError
	}

	ledger, cfg, closer, err := openLedger()
	if err != nil {
		return fail(err)
	}
	defer closer()

	on, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}
	price, err := parsePriceFlag(c.price, cfg.Currency)
	if err != nil {
		return fail(err)
	}

	result, err := ledger.Buy(ctx, ticker, stockfolio.Q(shares), on, price)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Bought %d %s at %s. Cash balance: %s\n",
		result.Trade.Quantity, result.Trade.Ticker, result.Trade.Price, result.Movement.Balance)
	return subcommands.ExitSuccess
}
