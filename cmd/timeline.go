package cmd

import (
	"context"
	"flag"

	finance "github.com/AdryannSanntos/controle-financeiro"
	"github.com/AdryannSanntos/controle-financeiro/renderer"
	"github.com/google/subcommands"
)

type timelineCmd struct {
	filterFlags
}

func (*timelineCmd) Name() string     { return "timeline" }
func (*timelineCmd) Synopsis() string { return "show the unified event stream" }
func (*timelineCmd) Usage() string {
	return `cofi timeline [-period <window>] [-from <date> -to <date>] [-type <t>] [-search <text>]

  Merges transactions, investment entries, support deposits and projected
  fixed bills into one stream, newest first, grouped by month.
`
}

func (c *timelineCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.register(f, "all_time")
}

func (c *timelineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := c.build()
	if err != nil {
		return fail(err)
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	state := store.State()

	events := finance.BuildTimeline(state, filter, finance.Today())
	printMarkdown(renderer.TimelineMarkdown(events, state.Settings.Currency))
	return subcommands.ExitSuccess
}
