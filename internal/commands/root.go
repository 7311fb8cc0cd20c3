package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewRootCmd builds the bookshelf command tree. Lifecycle hooks (logging,
// config loading) are left to the caller so the tree can also be walked by
// tooling that never runs it.
func NewRootCmd(flags *Flags, version, build string) *cli.Command {
	root := &cli.Command{
		Name:      "bookshelf",
		Usage:     "Browse a personal book catalog in the terminal",
		UsageText: "bookshelf [global options] command [command options]",
		Description: `Bookshelf shows a book catalog as rows of accordion tabs. Each row keeps
one book expanded; expanding another plays a short transition.

Run 'bookshelf' with no arguments to open the shelf.
Run 'bookshelf ls' to print the rows.`,
		Version: build,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("BOOKSHELF_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/bookshelf.log)",
				Sources:     cli.EnvVars("BOOKSHELF_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("BOOKSHELF_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("BOOKSHELF_DATA_DIR"),
				Value:       DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
	}

	tuiCmd := NewTuiCmd(flags, version)

	root = tuiCmd.Register(root)
	root = NewLsCmd(flags).Register(root)
	root = NewShowCmd(flags).Register(root)
	root = NewConfigValidateCmd(flags).Register(root)

	// Register TUI flags on root command
	root.Flags = append(root.Flags, tuiCmd.Flags()...)

	// Set TUI as default action when no subcommand is provided
	root.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'bookshelf --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	return root
}
