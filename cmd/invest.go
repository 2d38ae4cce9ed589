package cmd

import (
	"context"
	"flag"
	"fmt"

	finance "github.com/AdryannSanntos/controle-financeiro"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type investCmd struct {
	list   bool
	edit   string
	del    string
	name   string
	typ    string
	amount float64
	color  string
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "manage investment positions" }
func (*investCmd) Usage() string {
	return `cofi invest -name <name> -type <class> [-amount <value>]
cofi invest -edit <id> [-name <name>] [-type <class>] [-amount <value>]
cofi invest -delete <id>
cofi invest -list

  Asset classes: fixed_income, stocks, fiis, crypto, treasury, other.
  Editing -amount sets the balance directly without touching the entry
  ledger; prefer 'cofi entry' to keep both in step.
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "List investment positions.")
	f.StringVar(&c.edit, "edit", "", "Edit the investment with this id.")
	f.StringVar(&c.del, "delete", "", "Delete the investment with this id.")
	f.StringVar(&c.name, "name", "", "Position name, e.g. Tesouro Selic.")
	f.StringVar(&c.typ, "type", "", "Asset class.")
	f.Float64Var(&c.amount, "amount", 0, "Balance.")
	f.StringVar(&c.color, "color", "", "Display color for dashboards.")
}

func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}

	switch {
	case c.list:
		state := store.State()
		currency := state.Settings.Currency
		for _, inv := range state.Investments {
			fmt.Printf("%s  %-24s %-12s %12s  (%d entries)\n",
				inv.ID, inv.Name, inv.Type.Label(), inv.CurrentAmount.Display(currency), len(inv.History))
		}
		return subcommands.ExitSuccess

	case c.del != "":
		store.DeleteInvestment(c.del)
		fmt.Printf("Deleted investment %s\n", c.del)
		return subcommands.ExitSuccess

	case c.edit != "":
		var patch finance.InvestmentPatch
		if c.name != "" {
			patch.Name = &c.name
		}
		if c.typ != "" {
			t, err := finance.ParseInvestmentType(c.typ)
			if err != nil {
				return fail(err)
			}
			patch.Type = &t
		}
		if c.amount > 0 {
			m := finance.M(c.amount)
			patch.CurrentAmount = &m
		}
		if c.color != "" {
			patch.Color = &c.color
		}
		store.UpdateInvestment(c.edit, patch)
		fmt.Printf("Updated investment %s\n", c.edit)
		return subcommands.ExitSuccess

	default:
		if c.name == "" || c.typ == "" {
			return usageError("adding an investment requires -name and -type")
		}
		t, err := finance.ParseInvestmentType(c.typ)
		if err != nil {
			return fail(err)
		}
		inv := finance.Investment{
			ID:            uuid.NewString(),
			Name:          c.name,
			Type:          t,
			CurrentAmount: finance.M(c.amount),
			History:       []finance.InvestmentEntry{},
			Color:         c.color,
		}
		store.AddInvestment(inv)
		fmt.Printf("Added investment %s as %s\n", inv.Name, inv.ID)
		return subcommands.ExitSuccess
	}
}
