package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	finance "github.com/AdryannSanntos/controle-financeiro"
	"github.com/google/subcommands"
)

type exportCmd struct {
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the full state as a JSON backup" }
func (*exportCmd) Usage() string {
	return `cofi export [-o <file>]

  Writes the whole state, investments included, as indented JSON. Without
  -o the backup goes to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Destination file. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}

	w := os.Stdout
	if c.out != "" {
		file, err := os.Create(c.out)
		if err != nil {
			return fail(fmt.Errorf("cannot create backup file: %w", err))
		}
		defer file.Close()
		w = file
	}

	if err := finance.Export(w, store.State()); err != nil {
		return fail(err)
	}
	if c.out != "" {
		fmt.Fprintf(os.Stderr, "Backup written to %s\n", c.out)
	}
	return subcommands.ExitSuccess
}
