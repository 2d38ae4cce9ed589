package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/AdryannSanntos/controle-financeiro/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// A .env file in the working directory may carry COFI_DATA and the
	// Gemini API key. Absence is fine.
	_ = godotenv.Load()

	// Shell completion speaks the COMP_LINE protocol and exits the process
	// when invoked by the shell.
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	completion := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"data":   predict.Dirs("*"),
			"sqlite": predict.Nothing,
		},
	}
	completion.Complete("cofi")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
