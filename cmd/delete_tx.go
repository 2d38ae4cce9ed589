package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type deleteTxCmd struct {
	id string
}

func (*deleteTxCmd) Name() string     { return "delete-tx" }
func (*deleteTxCmd) Synopsis() string { return "delete a transaction" }
func (*deleteTxCmd) Usage() string {
	return `cofi delete-tx -id <id>

  Removes the transaction from the ledger. Deleting an unknown id does nothing.
`
}

func (c *deleteTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction to delete. Required.")
}

func (c *deleteTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return usageError("-id is required")
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	store.DeleteTransaction(c.id)

	fmt.Printf("Deleted transaction %s\n", c.id)
	return subcommands.ExitSuccess
}
