package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/jbury/stockfolio"
	"github.com/jbury/stockfolio/renderer"
)

type txCmd struct {
	ticker string
	head   int
	tail   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list trades, for the whole ledger or one ticker" }
func (*txCmd) Usage() string {
	return `spm tx [-t <ticker>] [-head <n>] [-tail <n>]

  Lists trades oldest first. With -t only the trades of one ticker are
  shown; the ticker must have been held at some point.

Usage Examples:
$ spm tx
$ spm tx -t AAPL.US -tail 10
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Only list trades of this ticker.")
	f.IntVar(&c.head, "head", 0, "Show only the first N trades.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N trades.")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _, closer, err := openLedger()
	if err != nil {
		return fail(err)
	}
	defer closer()

	var trades []stockfolio.Trade
	title := "Transactions"
	if c.ticker != "" {
		trades, err = ledger.StockTransactions(ctx, c.ticker)
		title = "Transactions for " + c.ticker
	} else {
		trades, err = ledger.Transactions(ctx)
	}
	if err != nil {
		return fail(err)
	}

	if c.head > 0 && len(trades) > c.head {
		trades = trades[:c.head]
	}
	if c.tail > 0 && len(trades) > c.tail {
		trades = trades[len(trades)-c.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(title, trades))
	return subcommands.ExitSuccess
}
