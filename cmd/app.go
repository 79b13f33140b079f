// Package cmd implements the CLI application to manage the portfolio ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/jbury/stockfolio"
	"github.com/jbury/stockfolio/eodhd"
	"github.com/jbury/stockfolio/sqlite"
)

// Register registers all subcommands on the commander.
func Register(c *subcommands.Commander) {
	c.Register(&depositCmd{}, "cash")
	c.Register(&withdrawCmd{}, "cash")
	c.Register(&cashLogCmd{}, "cash")

	c.Register(&buyCmd{}, "trades")
	c.Register(&sellCmd{}, "trades")
	c.Register(&txCmd{}, "trades")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&holdingsCmd{}, "reports")
	c.Register(&gainsCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")

	c.Register(&assistCmd{}, "assist")
}

// Names lists all subcommand names, for shell completion.
func Names() []string {
	return []string{
		"deposit", "withdraw", "cash",
		"buy", "sell", "tx",
		"summary", "holdings", "gains", "chart",
		"assist",
	}
}

// As a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.
var configFile = flag.String("config", defaultConfigPath(), "Path to the configuration file")

// openLedger builds the ledger from the configuration: sqlite store plus
// EODHD price source. The returned closer releases the store.
func openLedger() (*stockfolio.Ledger, *Config, func(), error) {
	cfg, err := loadConfig(*configFile)
	if err != nil {
		return nil, nil, nil, err
	}
	store, err := sqlite.Open(cfg.DB)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening ledger database: %w", err)
	}
	prices := eodhd.New(cfg.EODHDKey, cfg.Currency)
	ledger := stockfolio.NewLedger(store, prices, cfg.Currency)
	return ledger, cfg, func() { store.Close() }, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the terminal renderer fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// fail prints an error and picks the matching exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
