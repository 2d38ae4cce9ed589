package cmd

import (
	"context"
	"flag"

	finance "github.com/AdryannSanntos/controle-financeiro"
	"github.com/AdryannSanntos/controle-financeiro/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	filterFlags
	head int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions" }
func (*txCmd) Usage() string {
	return `cofi tx [-period <window>] [-from <date> -to <date>] [-type income|expense] [-search <text>] [-min <n>] [-max <n>] [-head <n>]

  Lists transactions matching the filter, newest first.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.register(f, "all_time")
	f.IntVar(&c.head, "head", 0, "Show only the first N matches.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := c.build()
	if err != nil {
		return fail(err)
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	state := store.State()

	matches := filter.Apply(finance.Today(), state.Transactions)
	if c.head > 0 && len(matches) > c.head {
		matches = matches[:c.head]
	}

	printMarkdown(renderer.TransactionsMarkdown(matches, state.Settings.Currency))
	return subcommands.ExitSuccess
}
