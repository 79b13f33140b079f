package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/jbury/stockfolio/renderer"
)

type cashLogCmd struct{}

func (*cashLogCmd) Name() string     { return "cash" }
func (*cashLogCmd) Synopsis() string { return "show the cash log and current balance" }
func (*cashLogCmd) Usage() string {
	return `spm cash

  Lists every cash movement (deposits, withdrawals, trade debits and
  credits) with the running balance.
`
}

func (*cashLogCmd) SetFlags(_ *flag.FlagSet) {}

func (c *cashLogCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _, closer, err := openLedger()
	if err != nil {
		return fail(err)
	}
	defer closer()

	movements, err := ledger.Movements(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.CashMovementsMarkdown(movements))
	return subcommands.ExitSuccess
}
