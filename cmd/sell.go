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

type sellCmd struct {
	date  string
	price string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares of a stock" }
func (*sellCmd) Usage() string {
	return `spm sell [-d <date>] [-price <price>] <ticker> <quantity>

  Sells shares from a held position and reports the realized delta against
  the average cost. Without -price the market price is used.

Usage Examples:
$ spm sell AAPL.US 5
$ spm sell -price 195 AAPL.US 5
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the trade (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.price, "price", "", "Price per share. Defaults to the market price.")
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: sell takes a ticker and a quantity.")
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

	result, err := ledger.Sell(ctx, ticker, stockfolio.Q(shares), on, price)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Sold %d %s at %s. Realized: %s. Cash balance: %s\n",
		result.Trade.Quantity, result.Trade.Ticker, result.Trade.Price,
		result.Realized.Delta.SignedString(), result.Movement.Balance)
	return subcommands.ExitSuccess
}
