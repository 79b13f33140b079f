package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type depositCmd struct {
	date string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "add cash to the portfolio" }
func (*depositCmd) Usage() string {
	return `spm deposit [-d <date>] <amount>

  Adds cash to the portfolio and prints the new balance.

Usage Examples:
$ spm deposit 1000
$ spm deposit -d 2025-06-02 1000
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the deposit (YYYY-MM-DD). Defaults to today.")
}

func (c *depositCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: deposit takes exactly one amount argument.")
		return subcommands.ExitUsageError
	}

	ledger, cfg, closer, err := openLedger()
	if err != nil {
		return fail(err)
	}
	defer closer()

	amount, err := parseAmount(f.Arg(0), cfg.Currency)
	if err != nil {
		return fail(err)
	}
	on, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}

	balance, err := ledger.Deposit(ctx, amount, on)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Deposited %s. New balance: %s\n", amount, balance)
	return subcommands.ExitSuccess
}
