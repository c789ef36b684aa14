package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/de-tools/journal-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/journal-atlas/pkg/runtime/terminal/export"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd(output io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal-atlas",
		Short: "Journal analytics tool",
	}
	cmd.SetOut(output)

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.reporter))
	cmd.AddCommand(commands.NewJournalsCmd())
	cmd.AddCommand(commands.NewEntriesCmd())

	return cmd
}
