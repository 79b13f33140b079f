package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/jbury/stockfolio/renderer"
)

type gainsCmd struct{}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "list realized gain events" }
func (*gainsCmd) Usage() string {
	return `spm gains

  Lists every realized gain event (one per sale) with the sale price, the
  average cost at the time of sale and the locked-in delta, plus the total.
`
}

func (*gainsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *gainsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _, closer, err := openLedger()
	if err != nil {
		return fail(err)
	}
	defer closer()

	gains, err := ledger.RealizedGains(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.RealizedGainsMarkdown(gains))
	return subcommands.ExitSuccess
}
