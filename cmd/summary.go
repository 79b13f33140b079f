package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/jbury/stockfolio/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio performance summary" }
func (*summaryCmd) Usage() string {
	return `spm summary

  Displays the headline figures: total value, cash balance, unrealized and
  realized deltas. Positions whose ticker can no longer be priced count
  zero towards the totals.
`
}

func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _, closer, err := openLedger()
	if err != nil {
		return fail(err)
	}
	defer closer()

	summary, err := ledger.Summarize(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.SummaryMarkdown(summary))
	return subcommands.ExitSuccess
}
