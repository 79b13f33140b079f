package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/jbury/stockfolio/renderer"
)

type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "list holdings with market values and deltas" }
func (*holdingsCmd) Usage() string {
	return `spm holdings

  Lists every position ever traded with its share count, average cost,
  current price, market value and realized/unrealized deltas.
`
}

func (*holdingsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _, closer, err := openLedger()
	if err != nil {
		return fail(err)
	}
	defer closer()

	views, err := ledger.Holdings(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.HoldingsMarkdown(views))
	return subcommands.ExitSuccess
}
