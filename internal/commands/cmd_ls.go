package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/JovenSoh/bookshelf/internal/core/shelf"
	"github.com/JovenSoh/bookshelf/internal/core/viewport"
	"github.com/JovenSoh/bookshelf/internal/printer"
	"github.com/JovenSoh/bookshelf/pkg/iojson"
)

type LsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
	mode       string
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List the shelf row by row",
		UsageText: "bookshelf ls [--json] [--mode auto|compact|expanded]",
		Description: `Prints the catalog grouped into rows the way the grid shows them.

The layout follows the terminal width: expanded prints one line per row,
compact prints one line per book. Output that is not a terminal uses expanded.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output rows as JSON",
				Destination: &cmd.jsonOutput,
			},
			&cli.StringFlag{
				Name:        "mode",
				Usage:       "layout (auto, compact, expanded)",
				Value:       "auto",
				Destination: &cmd.mode,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	cat, err := cmd.flags.Catalog()
	if err != nil {
		return err
	}

	rows, err := shelf.Partition(cat.Books(), cmd.flags.Config.Grid.RowWidth)
	if err != nil {
		return fmt.Errorf("partition catalog: %w", err)
	}

	mode, err := cmd.resolveMode()
	if err != nil {
		return err
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.WriteWith(out, c.Root().ErrWriter, newLsOutput(rows, mode))
	}

	if len(rows) == 0 {
		printer.Ctx(ctx).Infof("The shelf is empty")
		return nil
	}

	return writeRows(out, rows, mode)
}

// resolveMode picks the layout from --mode, falling back to the terminal
// width of stdout.
func (cmd *LsCmd) resolveMode() (viewport.Mode, error) {
	switch cmd.mode {
	case "compact":
		return viewport.Compact, nil
	case "expanded":
		return viewport.Expanded, nil
	case "auto", "":
	default:
		return 0, fmt.Errorf("unknown mode %q (want auto, compact or expanded)", cmd.mode)
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return viewport.Expanded, nil
	}
	columns, _, err := term.GetSize(fd)
	if err != nil {
		return viewport.Expanded, nil
	}

	vc := cmd.flags.Config.Viewport
	selector := viewport.NewSelector(vc.Breakpoint)
	return selector.ComputeMode(viewport.ColumnsToUnits(columns, vc.CellWidth)), nil
}

// lsOutput is the JSON output format for bookshelf ls --json.
type lsOutput struct {
	Mode string   `json:"mode"`
	Rows []lsBook `json:"rows"`
}

type lsBook struct {
	Row    int    `json:"row"`
	Tab    int    `json:"tab"`
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

func newLsOutput(rows []shelf.Row, mode viewport.Mode) lsOutput {
	out := lsOutput{Mode: mode.String(), Rows: []lsBook{}}
	for r, row := range rows {
		for t, b := range row {
			out.Rows = append(out.Rows, lsBook{
				Row:    r,
				Tab:    t,
				ID:     b.ID,
				Title:  b.DisplayTitle(),
				Author: b.Author,
			})
		}
	}
	return out
}

// writeRows prints one line per row in expanded mode and one line per book
// in compact mode.
func writeRows(out io.Writer, rows []shelf.Row, mode viewport.Mode) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	if mode == viewport.Compact {
		_, _ = fmt.Fprintln(w, "ROW\tTAB\tID\tTITLE\tAUTHOR")
		for r, row := range rows {
			for t, b := range row {
				_, _ = fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n", r+1, t+1, b.ID, b.DisplayTitle(), b.Author)
			}
		}
		return w.Flush()
	}

	_, _ = fmt.Fprintln(w, "ROW\tBOOKS")
	for r, row := range rows {
		titles := make([]string, len(row))
		for i, b := range row {
			titles[i] = b.DisplayTitle()
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\n", r+1, strings.Join(titles, " | "))
	}
	return w.Flush()
}
