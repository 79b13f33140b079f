package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type withdrawCmd struct {
	date string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "remove cash from the portfolio" }
func (*withdrawCmd) Usage() string {
	return `spm withdraw [-d <date>] <amount>

  Removes cash from the portfolio and prints the new balance.
  Fails when the amount exceeds the current balance.

Usage Examples:
$ spm withdraw 250.50
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the withdrawal (YYYY-MM-DD). Defaults to today.")
}

func (c *withdrawCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: withdraw takes exactly one amount argument.")
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

	balance, err := ledger.Withdraw(ctx, amount, on)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Withdrew %s. New balance: %s\n", amount, balance)
	return subcommands.ExitSuccess
}
