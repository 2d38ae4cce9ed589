package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "restore the factory default state" }
func (*resetCmd) Usage() string {
	return `cofi reset [-f]

  Wipes everything and restores the seeded defaults. There is no undo.
  Asks for confirmation unless -f is given.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Skip the confirmation prompt.")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Print("This wipes all data and restores the defaults. Type 'yes' to continue: ")
		answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil || strings.TrimSpace(answer) != "yes" {
			fmt.Println("Aborted.")
			return subcommands.ExitFailure
		}
	}

	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	store.Reset()

	fmt.Println("State reset to factory defaults.")
	return subcommands.ExitSuccess
}
