package cmd

import (
	"context"
	"flag"

	finance "github.com/AdryannSanntos/controle-financeiro"
	"github.com/google/subcommands"
)

type expenseCmd struct {
	txFlags
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense transaction" }
func (*expenseCmd) Usage() string {
	return `cofi expense -amount <value> -category <name> [-desc <text>] [-date <YYYY-MM-DD>] [-method pix|credit_card|debit_card|cash|transfer|boleto]

  Records money going out. The amount is stored positive; reports apply the sign.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Amount spent. Required, positive.")
	f.StringVar(&c.date, "date", finance.Today().String(), "Date of the transaction.")
	f.StringVar(&c.category, "category", "outros", "Category, e.g. alimentacao, transporte, lazer.")
	f.StringVar(&c.desc, "desc", "", "Free-form description.")
	f.StringVar(&c.status, "status", "paid", "paid or pending.")
	f.StringVar(&c.method, "method", "", "Payment method: pix, credit_card, debit_card, cash, transfer, boleto.")
	f.BoolVar(&c.support, "support", false, "Mark as covered by third-party support.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.record(finance.Expense)
}
