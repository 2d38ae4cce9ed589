package cmd

import (
	"context"
	"flag"
	"fmt"

	finance "github.com/AdryannSanntos/controle-financeiro"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type entryCmd struct {
	id       string
	amount   float64
	date     string
	withdraw bool
}

func (*entryCmd) Name() string     { return "entry" }
func (*entryCmd) Synopsis() string { return "record an investment contribution or withdrawal" }
func (*entryCmd) Usage() string {
	return `cofi entry -id <investment-id> -amount <value> [-date <YYYY-MM-DD>] [-withdraw]

  Appends to the investment's ledger and adjusts its balance in one step:
  contributions increase the balance, withdrawals decrease it.
`
}

func (c *entryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Investment to book the entry on. Required.")
	f.Float64Var(&c.amount, "amount", 0, "Entry amount. Required, positive.")
	f.StringVar(&c.date, "date", finance.Today().String(), "Date of the movement.")
	f.BoolVar(&c.withdraw, "withdraw", false, "Book a withdrawal instead of a contribution.")
}

func (c *entryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return usageError("-id is required")
	}
	if c.amount <= 0 {
		return usageError("-amount must be a positive number")
	}
	date, err := finance.ParseDate(c.date)
	if err != nil {
		return fail(fmt.Errorf("invalid -date: %w", err))
	}

	typ := finance.Contribution
	if c.withdraw {
		typ = finance.Withdrawal
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	store.AddInvestmentEntry(c.id, finance.InvestmentEntry{
		ID:     uuid.NewString(),
		Date:   date,
		Amount: finance.M(c.amount),
		Type:   typ,
	})

	fmt.Printf("Recorded %s on investment %s\n", typ, c.id)
	return subcommands.ExitSuccess
}
