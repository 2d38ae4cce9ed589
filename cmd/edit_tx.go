package cmd

import (
	"context"
	"flag"
	"fmt"

	finance "github.com/AdryannSanntos/controle-financeiro"
	"github.com/google/subcommands"
)

type editTxCmd struct {
	id       string
	amount   float64
	date     string
	category string
	desc     string
	status   string
	method   string
}

func (*editTxCmd) Name() string     { return "edit-tx" }
func (*editTxCmd) Synopsis() string { return "edit fields of an existing transaction" }
func (*editTxCmd) Usage() string {
	return `cofi edit-tx -id <id> [-amount <value>] [-date <YYYY-MM-DD>] [-category <name>] [-desc <text>] [-status paid|pending]

  Updates only the fields given as flags; everything else is left untouched.
`
}

func (c *editTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction to edit. Required.")
	f.Float64Var(&c.amount, "amount", 0, "New amount.")
	f.StringVar(&c.date, "date", "", "New date.")
	f.StringVar(&c.category, "category", "", "New category.")
	f.StringVar(&c.desc, "desc", "", "New description.")
	f.StringVar(&c.status, "status", "", "New status: paid or pending.")
	f.StringVar(&c.method, "method", "", "New payment method.")
}

func (c *editTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return usageError("-id is required")
	}

	var patch finance.TransactionPatch
	if c.amount > 0 {
		m := finance.M(c.amount)
		patch.Amount = &m
	}
	if c.date != "" {
		d, err := finance.ParseDate(c.date)
		if err != nil {
			return fail(fmt.Errorf("invalid -date: %w", err))
		}
		patch.Date = &d
	}
	if c.category != "" {
		patch.Category = &c.category
	}
	if c.desc != "" {
		patch.Description = &c.desc
	}
	if c.status != "" {
		s, err := finance.ParseTransactionStatus(c.status)
		if err != nil {
			return fail(err)
		}
		patch.Status = &s
	}
	if c.method != "" {
		m := finance.PaymentMethod(c.method)
		patch.PaymentMethod = &m
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	store.EditTransaction(c.id, patch)

	fmt.Printf("Updated transaction %s\n", c.id)
	return subcommands.ExitSuccess
}
