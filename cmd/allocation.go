package cmd

import (
	"context"
	"flag"

	finance "github.com/AdryannSanntos/controle-financeiro"
	"github.com/AdryannSanntos/controle-financeiro/renderer"
	"github.com/google/subcommands"
)

type allocationCmd struct{}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "show the portfolio split by asset class" }
func (*allocationCmd) Usage() string {
	return `cofi allocation

  Breaks the investment portfolio down by asset class, with each class's
  share of the total and the diversification score.
`
}

func (*allocationCmd) SetFlags(f *flag.FlagSet) {}

func (c *allocationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	state := store.State()

	printMarkdown(renderer.AllocationMarkdown(
		finance.Allocation(state.Investments),
		finance.PortfolioScore(state.Investments),
		state.Settings.Currency,
	))
	return subcommands.ExitSuccess
}
