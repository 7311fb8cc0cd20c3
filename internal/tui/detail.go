package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	bubblesvp "github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JovenSoh/bookshelf/internal/core/book"
	"github.com/JovenSoh/bookshelf/internal/core/styles"
)

// DetailView shows a single book. The notes editor is seeded from the record;
// edits live only as long as the view.
type DetailView struct {
	book   book.Book
	body   bubblesvp.Model
	notes  textarea.Model
	width  int
	height int
}

// NewDetailView builds the detail view for b sized to width x height.
func NewDetailView(b book.Book, width, height int) *DetailView {
	notes := textarea.New()
	notes.ShowLineNumbers = false
	notes.Placeholder = "Write something about this book..."
	notes.SetValue(b.Notes)
	notes.Blur()

	d := &DetailView{
		book:  b,
		body:  bubblesvp.New(width, height),
		notes: notes,
	}
	d.SetSize(width, height)
	return d
}

// Book returns the book being shown.
func (d *DetailView) Book() book.Book {
	return d.book
}

// Notes returns the current, unsaved notes text.
func (d *DetailView) Notes() string {
	return d.notes.Value()
}

// NotesFocused reports whether key input goes to the notes editor.
func (d *DetailView) NotesFocused() bool {
	return d.notes.Focused()
}

// ToggleNotes moves focus between the scrolling body and the notes editor.
func (d *DetailView) ToggleNotes() tea.Cmd {
	if d.notes.Focused() {
		d.notes.Blur()
		return nil
	}
	return d.notes.Focus()
}

// SetSize resizes the view and re-renders the body for the new width.
func (d *DetailView) SetSize(width, height int) {
	d.width = max(width, minContentWidth)
	d.height = height

	contentWidth := d.contentWidth()
	d.notes.SetWidth(contentWidth - 4)
	d.notes.SetHeight(detailNotesRows)

	// heading + bordered editor
	notesHeight := 1 + detailNotesRows + 2
	d.body.Width = d.width
	d.body.Height = max(height-notesHeight, 3)
	d.body.SetContent(d.renderBody(contentWidth))
}

// Update routes input to the focused component.
func (d *DetailView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if d.notes.Focused() {
		d.notes, cmd = d.notes.Update(msg)
		return cmd
	}
	d.body, cmd = d.body.Update(msg)
	return cmd
}

// View renders the scrolling body above the notes editor.
func (d *DetailView) View() string {
	border := styles.NotesBorderStyle
	if d.notes.Focused() {
		border = border.BorderForeground(styles.CurrentPalette.Primary)
	}

	notes := lipgloss.JoinVertical(lipgloss.Left,
		styles.PanelHeadingStyle.Render("My Notes"),
		border.Render(d.notes.View()),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		d.body.View(),
		d.center(notes),
	)
}

func (d *DetailView) contentWidth() int {
	return max(min(d.width-4, 80), minContentWidth)
}

func (d *DetailView) center(s string) string {
	return lipgloss.PlaceHorizontal(d.width, lipgloss.Center, s)
}

func (d *DetailView) renderBody(width int) string {
	breadcrumb := styles.BreadcrumbActiveStyle.Render(breadcrumbRoot) +
		styles.BreadcrumbStyle.Render(" "+styles.IconSeparator+" ") +
		styles.TextForegroundBoldStyle.Render(breadcrumbLeaf)

	block := lipgloss.NewStyle().Width(width)

	return lipgloss.JoinVertical(lipgloss.Left,
		d.center(block.Render(breadcrumb)),
		"",
		d.center(block.Render(styles.DetailTitleStyle.Render(d.book.DisplayTitle()))),
		d.center(block.Render(styles.DetailAuthorStyle.Render(d.book.Byline()))),
		"",
		d.center(renderCover(d.book, coverWidth*2, coverHeight)),
		"",
		d.center(block.Render(styles.PanelHeadingStyle.Render("Synopsis"))),
		d.center(block.Render(styles.RenderMarkdown(d.book.Synopsis, width))),
	)
}
