package cmd

import (
	"context"
	"flag"

	finance "github.com/AdryannSanntos/controle-financeiro"
	"github.com/google/subcommands"
)

type incomeCmd struct {
	txFlags
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income transaction" }
func (*incomeCmd) Usage() string {
	return `cofi income -amount <value> -category <name> [-desc <text>] [-date <YYYY-MM-DD>] [-status paid|pending]

  Records money coming in. The amount is stored positive; reports apply the sign.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Amount received. Required, positive.")
	f.StringVar(&c.date, "date", finance.Today().String(), "Date of the transaction.")
	f.StringVar(&c.category, "category", "outros", "Category, e.g. salario.")
	f.StringVar(&c.desc, "desc", "", "Free-form description.")
	f.StringVar(&c.status, "status", "paid", "paid or pending.")
	f.BoolVar(&c.support, "support", false, "Mark as covered by third-party support.")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.record(finance.Income)
}
