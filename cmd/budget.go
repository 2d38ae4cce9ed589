package cmd

import (
	"context"
	"flag"
	"fmt"

	finance "github.com/AdryannSanntos/controle-financeiro"
	"github.com/AdryannSanntos/controle-financeiro/renderer"
	"github.com/google/subcommands"
)

type budgetCmd struct {
	list     bool
	remove   string
	category string
	limit    float64
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "set, remove or review category budgets" }
func (*budgetCmd) Usage() string {
	return `cofi budget -category <name> -limit <value>
cofi budget -remove <category>
cofi budget -list

  A category holds at most one budget; setting it again replaces the limit.
  -list shows this month's spending against each budget.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "Show this month's usage per budget.")
	f.StringVar(&c.remove, "remove", "", "Remove the budget for this category.")
	f.StringVar(&c.category, "category", "", "Category to budget.")
	f.Float64Var(&c.limit, "limit", 0, "Monthly spending limit.")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}

	switch {
	case c.list:
		state := store.State()
		report := finance.BudgetReport(state, finance.Today())
		printMarkdown(renderer.BudgetMarkdown(report, state.Settings.Currency))
		return subcommands.ExitSuccess

	case c.remove != "":
		store.RemoveBudget(c.remove)
		fmt.Printf("Removed budget for %s\n", c.remove)
		return subcommands.ExitSuccess

	default:
		if c.category == "" || c.limit <= 0 {
			return usageError("setting a budget requires -category and a positive -limit")
		}
		store.SetBudget(finance.Budget{
			Category: c.category,
			Limit:    finance.M(c.limit),
			Period:   "monthly",
		})
		fmt.Printf("Budget for %s set\n", c.category)
		return subcommands.ExitSuccess
	}
}
