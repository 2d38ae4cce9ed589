package cmd

import (
	"context"
	"flag"
	"fmt"

	finance "github.com/AdryannSanntos/controle-financeiro"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type supportCmd struct {
	list   bool
	edit   string
	remove string
	amount float64
	month  string
	notes  string
}

func (*supportCmd) Name() string     { return "support" }
func (*supportCmd) Synopsis() string { return "record third-party financial support" }
func (*supportCmd) Usage() string {
	return `cofi support -amount <value> [-month <YYYY-MM>] [-notes <text>]
cofi support -edit <id> [-amount <value>] [-month <YYYY-MM>] [-notes <text>]
cofi support -remove <id>
cofi support -list

  Support deposits belong to a calendar month, not a specific day. On the
  timeline they appear on the first of their month.
`
}

func (c *supportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "List support deposits.")
	f.StringVar(&c.edit, "edit", "", "Edit the deposit with this id.")
	f.StringVar(&c.remove, "remove", "", "Remove the deposit with this id.")
	f.Float64Var(&c.amount, "amount", 0, "Amount received.")
	f.StringVar(&c.month, "month", finance.Today().Key().String(), "Month the support belongs to (YYYY-MM).")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
}

func (c *supportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}

	switch {
	case c.list:
		state := store.State()
		currency := state.Settings.Currency
		for _, s := range state.FinancialSupport {
			fmt.Printf("%s  %s  %10s  %s\n", s.ID, s.Month, s.Amount.Display(currency), s.Notes)
		}
		return subcommands.ExitSuccess

	case c.remove != "":
		store.RemoveSupport(c.remove)
		fmt.Printf("Removed support %s\n", c.remove)
		return subcommands.ExitSuccess

	case c.edit != "":
		var patch finance.SupportPatch
		if c.amount > 0 {
			m := finance.M(c.amount)
			patch.Amount = &m
		}
		if c.month != finance.Today().Key().String() {
			month, err := finance.ParseMonthKey(c.month)
			if err != nil {
				return fail(err)
			}
			patch.Month = &month
		}
		if c.notes != "" {
			patch.Notes = &c.notes
		}
		store.EditSupport(c.edit, patch)
		fmt.Printf("Updated support %s\n", c.edit)
		return subcommands.ExitSuccess

	default:
		if c.amount <= 0 {
			return usageError("recording support requires a positive -amount")
		}
		month, err := finance.ParseMonthKey(c.month)
		if err != nil {
			return fail(err)
		}
		s := finance.FinancialSupport{
			ID:     uuid.NewString(),
			Amount: finance.M(c.amount),
			Month:  month,
			Notes:  c.notes,
		}
		store.AddSupport(s)
		fmt.Printf("Recorded support for %s as %s\n", s.Month, s.ID)
		return subcommands.ExitSuccess
	}
}
