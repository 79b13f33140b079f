package cmd

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/jbury/stockfolio/agent"
	"github.com/jbury/stockfolio/renderer"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI analyst" }
func (*assistCmd) Usage() string {
	return `spm assist [question...]

  Starts an interactive chat with an AI analyst that knows the current
  portfolio state. Any arguments are sent as the first question.
  Requires the GEMINI_API_KEY environment variable.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := strings.Join(f.Args(), " ")

	ledger, cfg, closer, err := openLedger()
	if err != nil {
		return fail(err)
	}
	defer closer()

	// The analyst only sees the briefing, never the store.
	summary, err := ledger.Summarize(ctx)
	if err != nil {
		return fail(err)
	}
	views, err := ledger.Holdings(ctx)
	if err != nil {
		return fail(err)
	}
	trades, err := ledger.Transactions(ctx)
	if err != nil {
		return fail(err)
	}
	briefing := renderer.SummaryMarkdown(summary) + "\n" +
		renderer.HoldingsMarkdown(views) + "\n" +
		renderer.TransactionsMarkdown("Transactions", trades)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail(err)
	}

	a := agent.New(os.Stdout, os.Stdin)
	if cfg.Model != "" {
		a.Model = cfg.Model
	}
	if initialPrompt != "" {
		err = a.Run(ctx, client, briefing, initialPrompt)
	} else {
		err = a.Run(ctx, client, briefing)
	}
	if err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
