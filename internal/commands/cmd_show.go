package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/JovenSoh/bookshelf/internal/core/book"
	"github.com/JovenSoh/bookshelf/internal/core/catalog"
	"github.com/JovenSoh/bookshelf/internal/core/styles"
	"github.com/JovenSoh/bookshelf/internal/printer"
	"github.com/JovenSoh/bookshelf/pkg/tmpl"
)

// showWidth is the wrap width used when stdout is not a terminal.
const showWidth = 80

type ShowCmd struct {
	flags *Flags
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags) *ShowCmd {
	return &ShowCmd{flags: flags}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Print one book's details",
		UsageText: "bookshelf show [id]",
		Description: `Prints the title, author, cover reference, synopsis and notes of a book.

Without an id, an interactive picker lists the shelf.`,
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id"},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	cat, err := cmd.flags.Catalog()
	if err != nil {
		return err
	}

	id := c.StringArg("id")
	if id == "" {
		id, err = pickBook(ctx, cat)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
	}

	b, err := cat.Lookup(id)
	if err != nil {
		return fmt.Errorf("show %q: %w", id, err)
	}

	width := showWidth
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if columns, _, err := term.GetSize(fd); err == nil {
			width = min(columns, showWidth)
		}
	}

	p := printer.Ctx(ctx)
	p.Header(b.DisplayTitle())
	if byline := b.Byline(); byline != "" {
		p.Printf("%s", styles.DetailAuthorStyle.Render(byline))
	}
	if b.CoverImage != "" {
		p.Printf("%s", styles.TextMutedStyle.Render("Cover: "+b.CoverImage))
	}
	md, err := bookMarkdown(b)
	if err != nil {
		return err
	}

	p.Printf("")
	p.Printf("%s", styles.RenderMarkdown(md, width))

	return nil
}

// pickBook asks the user to choose a book from the catalog.
func pickBook(ctx context.Context, cat *catalog.Catalog) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("book id required when stdin is not a terminal")
	}

	books := cat.Books()
	if len(books) == 0 {
		return "", fmt.Errorf("the shelf is empty")
	}

	options := make([]huh.Option[string], len(books))
	for i, b := range books {
		label := b.DisplayTitle()
		if b.Author != "" {
			label += " (" + b.Author + ")"
		}
		options[i] = huh.NewOption(label, b.ID)
	}

	var id string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pick a book").
				Options(options...).
				Height(min(len(options)+2, 12)).
				Value(&id),
		),
	).WithTheme(styles.FormTheme()).RunWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("pick book: %w", err)
	}
	return id, nil
}

// bookTemplate renders the synopsis and notes of a book as markdown sections.
const bookTemplate = `## Synopsis

{{ .Synopsis | orDefault "_No synopsis._" }}

## My Notes

{{ .Notes | orDefault "_No notes yet._" }}
`

func bookMarkdown(b book.Book) (string, error) {
	md, err := tmpl.Render(bookTemplate, b)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", b.ID, err)
	}
	return md, nil
}
