package cmd

import (
	"context"
	"flag"
	"fmt"

	finance "github.com/AdryannSanntos/controle-financeiro"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// fixedCmd manages recurring monthly bills: add by default, -edit and
// -delete switch the action, -list prints the current set.
type fixedCmd struct {
	list     bool
	edit     string
	del      string
	name     string
	amount   float64
	day      int
	category string
	auto     bool
}

func (*fixedCmd) Name() string     { return "fixed" }
func (*fixedCmd) Synopsis() string { return "manage fixed recurring bills" }
func (*fixedCmd) Usage() string {
	return `cofi fixed -name <name> -amount <value> -day <1..31> [-category <name>]
cofi fixed -edit <id> [-name <name>] [-amount <value>] [-day <n>]
cofi fixed -delete <id>
cofi fixed -list

  Fixed bills are projected onto the timeline on their due day each month.
  A due day of 29..31 lands on the last day of shorter months.
`
}

func (c *fixedCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "List the fixed bills.")
	f.StringVar(&c.edit, "edit", "", "Edit the bill with this id.")
	f.StringVar(&c.del, "delete", "", "Delete the bill with this id.")
	f.StringVar(&c.name, "name", "", "Bill name, e.g. Internet.")
	f.Float64Var(&c.amount, "amount", 0, "Monthly amount.")
	f.IntVar(&c.day, "day", 0, "Day of the month the bill is due, 1..31.")
	f.StringVar(&c.category, "category", "outros", "Category.")
	f.BoolVar(&c.auto, "auto", true, "Include in timeline projections.")
}

func (c *fixedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}

	switch {
	case c.list:
		state := store.State()
		currency := state.Settings.Currency
		for _, e := range state.FixedExpenses {
			fmt.Printf("%s  %-24s %10s  due day %2d  (%s)\n", e.ID, e.Name, e.Amount.Display(currency), e.DayDue, e.Category)
		}
		return subcommands.ExitSuccess

	case c.del != "":
		store.DeleteFixedExpense(c.del)
		fmt.Printf("Deleted fixed bill %s\n", c.del)
		return subcommands.ExitSuccess

	case c.edit != "":
		var patch finance.FixedExpensePatch
		if c.name != "" {
			patch.Name = &c.name
		}
		if c.amount > 0 {
			m := finance.M(c.amount)
			patch.Amount = &m
		}
		if c.day > 0 {
			if c.day > 31 {
				return usageError("-day must be between 1 and 31")
			}
			patch.DayDue = &c.day
		}
		if c.category != "outros" {
			patch.Category = &c.category
		}
		store.EditFixedExpense(c.edit, patch)
		fmt.Printf("Updated fixed bill %s\n", c.edit)
		return subcommands.ExitSuccess

	default:
		if c.name == "" || c.amount <= 0 || c.day < 1 || c.day > 31 {
			return usageError("adding a bill requires -name, a positive -amount and -day between 1 and 31")
		}
		e := finance.FixedExpense{
			ID:        uuid.NewString(),
			Name:      c.name,
			Amount:    finance.M(c.amount),
			DayDue:    c.day,
			Category:  c.category,
			AutoTrack: c.auto,
		}
		store.AddFixedExpense(e)
		fmt.Printf("Added fixed bill %s as %s\n", e.Name, e.ID)
		return subcommands.ExitSuccess
	}
}
