package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jbury/stockfolio/eodhd"
	"github.com/jbury/stockfolio/renderer"
)

type chartCmd struct {
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render a one year price and volume chart" }
func (*chartCmd) Usage() string {
	return `spm chart [-o <file>] <ticker>

  Renders the last year of daily closes and volumes for a ticker as a PNG.

Usage Examples:
$ spm chart AAPL.US
$ spm chart -o aapl.png AAPL.US
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "chart.png", "Output PNG file.")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: chart takes exactly one ticker argument.")
		return subcommands.ExitUsageError
	}
	ticker := f.Arg(0)

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return fail(err)
	}
	prices := eodhd.New(cfg.EODHDKey, cfg.Currency)

	series, err := prices.YearSeries(ctx, ticker)
	if err != nil {
		return fail(err)
	}
	png, err := renderer.YearChart(ticker, series)
	if err != nil {
		return fail(err)
	}
	if err := os.WriteFile(c.output, png, 0o644); err != nil {
		return fail(err)
	}
	fmt.Printf("Wrote %s (%d points)\n", c.output, len(series))
	return subcommands.ExitSuccess
}
