package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/amaranz/budget-atlas/pkg/runtime/terminal"
	"github.com/amaranz/budget-atlas/pkg/services/compare"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cli := terminal.NewCLI(terminal.Options{
		Settings: compare.DefaultSettings(),
		Logger:   logger,
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
