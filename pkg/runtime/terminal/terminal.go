package terminal

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/amaranz/budget-atlas/pkg/runtime/terminal/commands"
	"github.com/amaranz/budget-atlas/pkg/runtime/terminal/export"
	"github.com/amaranz/budget-atlas/pkg/services/compare"
)

// CLI represents the command-line interface
type CLI struct {
	settings compare.Settings
	reporter *export.Reporter
	logger   zerolog.Logger
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Settings compare.Settings
	Logger   zerolog.Logger
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		settings: opts.Settings,
		reporter: export.NewReporter(opts.Output),
		logger:   opts.Logger,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	ctx := cli.logger.WithContext(context.Background())
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget-atlas",
		Short: "Budget comparison tool",
	}

	cmd.AddCommand(commands.NewCompareCmd(cli.settings, cli.reporter))
	cmd.AddCommand(commands.NewCompareBudgetsCmd(cli.settings, cli.reporter))

	return cmd
}
