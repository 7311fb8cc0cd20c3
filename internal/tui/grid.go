package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JovenSoh/bookshelf/internal/core/shelf"
	"github.com/JovenSoh/bookshelf/internal/core/styles"
	"github.com/JovenSoh/bookshelf/internal/core/viewport"
)

// gridFrame is everything the grid renderer needs for one frame.
type gridFrame struct {
	rows       []shelf.Row
	open       []int
	locked     bool
	focusRow   int
	focusTab   int
	mode       viewport.Mode
	width      int
	panelWidth int
	anim       *PanelAnimation
}

func (f gridFrame) tab(row, tab int) tabState {
	return tabState{
		open:    f.open[row] == tab,
		focused: f.focusRow == row && f.focusTab == tab,
		locked:  f.locked,
	}
}

// render returns the grid and the first line of every row within it.
func (f gridFrame) render() (string, []int) {
	if len(f.rows) == 0 {
		return styles.TextMutedStyle.Render("The shelf is empty."), nil
	}

	var (
		b       strings.Builder
		offsets = make([]int, len(f.rows))
		line    int
	)

	for i := range f.rows {
		var row string
		if f.mode == viewport.Compact {
			row = f.renderCompactRow(i)
		} else {
			row = f.renderExpandedRow(i)
		}

		if i > 0 {
			b.WriteString("\n\n")
			line += 2
		}
		offsets[i] = line
		b.WriteString(row)
		line += lipgloss.Height(row)
	}

	return b.String(), offsets
}

// expandedPanelWidth is the configured panel width, narrowed when the tabs
// and panel would not fit the terminal.
func (f gridFrame) expandedPanelWidth(row int) int {
	avail := f.width - len(f.rows[row])*tabWidth
	return max(min(f.panelWidth, avail), minContentWidth)
}

// renderExpandedRow lays out tabs 0..open on the left, the panel, and the
// remaining tabs on the right.
func (f gridFrame) renderExpandedRow(row int) string {
	books := f.rows[row]
	open := f.open[row]

	parts := make([]string, 0, len(books)+1)
	for i := 0; i <= open; i++ {
		parts = append(parts, renderVerticalTab(books[i].DisplayTitle(), f.tab(row, i)))
	}

	full := f.expandedPanelWidth(row)
	if panel := renderExpandedPanel(books[open], full, f.anim.Width(row, full)); panel != "" {
		parts = append(parts, panel)
	}

	for i := open + 1; i < len(books); i++ {
		parts = append(parts, renderVerticalTab(books[i].DisplayTitle(), f.tab(row, i)))
	}

	joined := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return lipgloss.PlaceHorizontal(f.width, lipgloss.Center, joined)
}

// renderCompactRow draws a horizontal strip scrolled to keep the focused tab
// (or, in other rows, the open tab) visible, with the panel underneath.
func (f gridFrame) renderCompactRow(row int) string {
	books := f.rows[row]
	open := f.open[row]

	anchor := open
	if f.focusRow == row {
		anchor = f.focusTab
	}

	// Reserve a cell on each side for scroll hints.
	first, last := stripWindow(len(books), anchor, f.width-2)

	left, right := " ", " "
	if first > 0 {
		left = styles.TextMutedStyle.Render("‹")
	}
	if last < len(books) {
		right = styles.TextMutedStyle.Render("›")
	}

	tabs := make([]string, 0, last-first+2)
	tabs = append(tabs, left)
	for i := first; i < last; i++ {
		tabs = append(tabs, renderHorizontalTab(books[i].DisplayTitle(), f.tab(row, i)))
	}
	tabs = append(tabs, right)

	full := max(f.width-2, minContentWidth)
	strip := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	panel := renderCompactPanel(books[open], full, f.anim.Width(row, full))

	return lipgloss.JoinVertical(lipgloss.Left, strip, panel)
}
