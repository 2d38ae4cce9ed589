// Package cmd implements the CLI application to track personal finances.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	finance "github.com/AdryannSanntos/controle-financeiro"
	"github.com/AdryannSanntos/controle-financeiro/sqlitestore"
	"github.com/google/subcommands"
)

// Commands lists every subcommand. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&incomeCmd{},
	&expenseCmd{},
	&editTxCmd{},
	&deleteTxCmd{},
	&txCmd{},
	&fixedCmd{},
	&budgetCmd{},
	&supportCmd{},
	&investCmd{},
	&entryCmd{},
	&settingsCmd{},
	&summaryCmd{},
	&timelineCmd{},
	&insightsCmd{},
	&allocationCmd{},
	&exportCmd{},
	&importCmd{},
	&resetCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", defaultDataDir(), "Directory holding the finance data")
var useSQLite = flag.Bool("sqlite", false, "Keep the state in a SQLite database instead of a JSON file")

func defaultDataDir() string {
	if env := os.Getenv("COFI_DATA"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cofi"
	}
	return filepath.Join(home, ".cofi")
}

// openStore opens the store over the configured storage backend.
func openStore() (*finance.Store, error) {
	var storage finance.Storage
	if *useSQLite {
		s, err := sqlitestore.Open(filepath.Join(*dataDir, finance.StorageName+".db"))
		if err != nil {
			return nil, err
		}
		storage = s
	} else {
		storage = finance.NewFileStorage(*dataDir)
	}
	return finance.NewStore(storage)
}

// fail prints the error and maps it to a failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// usageError prints the message and maps it to a usage-error exit status.
func usageError(msg string) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", msg)
	return subcommands.ExitUsageError
}
