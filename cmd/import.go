package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	finance "github.com/AdryannSanntos/controle-financeiro"
	"github.com/google/subcommands"
)

type importCmd struct {
	in string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the state with a JSON backup" }
func (*importCmd) Usage() string {
	return `cofi import -i <file>

  Replaces the whole current state with the backup. Accepts both backups
  written by 'cofi export' and backups exported from the original web app.
  A malformed file leaves the current state untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "i", "", "Backup file to import. Required.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" {
		return usageError("-i is required")
	}

	file, err := os.Open(c.in)
	if err != nil {
		return fail(fmt.Errorf("cannot open backup file: %w", err))
	}
	defer file.Close()

	state, err := finance.Import(file)
	if err != nil {
		return fail(err)
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	store.Import(state)

	fmt.Printf("Imported %d transactions, %d fixed bills, %d investments\n",
		len(state.Transactions), len(state.FixedExpenses), len(state.Investments))
	return subcommands.ExitSuccess
}
