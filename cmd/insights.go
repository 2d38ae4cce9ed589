package cmd

import (
	"context"
	"flag"

	finance "github.com/AdryannSanntos/controle-financeiro"
	"github.com/AdryannSanntos/controle-financeiro/renderer"
	"github.com/google/subcommands"
)

type insightsCmd struct{}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "show advisory messages about your finances" }
func (*insightsCmd) Usage() string {
	return `cofi insights

  Checks for rent coming due, the emergency fund level, portfolio
  concentration and this month's savings rate.
`
}

func (*insightsCmd) SetFlags(f *flag.FlagSet) {}

func (c *insightsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	state := store.State()

	printMarkdown(renderer.InsightsMarkdown(
		finance.Insights(state, finance.Today()),
		finance.PortfolioScore(state.Investments),
	))
	return subcommands.ExitSuccess
}
