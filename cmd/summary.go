package cmd

import (
	"context"
	"flag"

	finance "github.com/AdryannSanntos/controle-financeiro"
	"github.com/AdryannSanntos/controle-financeiro/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	filterFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the financial summary for a window" }
func (*summaryCmd) Usage() string {
	return `cofi summary [-period <window>] [-from <date> -to <date>] [-type <t>] [-search <text>]

  Shows total income, total expenses, balance, pending expenses, support
  received and total invested. Defaults to the current month.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.register(f, "this_month")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := c.build()
	if err != nil {
		return fail(err)
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}

	s := finance.NewSummary(store.State(), filter, finance.Today())
	printMarkdown(renderer.SummaryMarkdown(s))
	return subcommands.ExitSuccess
}
