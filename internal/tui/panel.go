package tui

import (
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/JovenSoh/bookshelf/internal/core/book"
	"github.com/JovenSoh/bookshelf/internal/core/styles"
)

// renderCover draws the cover reference as a framed placeholder.
func renderCover(b book.Book, width, height int) string {
	inner := max(width-2, 1)
	ref := "no cover"
	if b.CoverImage != "" {
		ref = path.Base(b.CoverImage)
	}
	text := styles.IconBook + "\n\n" + wordwrap.String(ref, inner)
	return styles.PanelCoverStyle.
		Width(inner).
		Height(max(height-2, 1)).
		MaxHeight(height).
		Render(text)
}

// clampLines keeps at most n lines of s, marking the cut with an ellipsis.
func clampLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	lines = lines[:n]
	lines[n-1] += styles.IconMore
	return strings.Join(lines, "\n")
}

// panelText renders the synopsis and notes block wrapped to width.
func panelText(b book.Book, width, synopsisLines int) string {
	width = max(width, 1)
	synopsis := clampLines(wordwrap.String(b.Synopsis, width), synopsisLines)
	notes := clampLines(wordwrap.String(b.Notes, width), notesLines)

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.PanelHeadingStyle.Render("Synopsis"),
		styles.PanelTextStyle.Render(synopsis),
		"",
		styles.PanelHeadingStyle.Render("My Notes"),
		styles.TextMutedStyle.Render(notes),
	)
}

// renderExpandedPanel draws the panel between the left and right tabs. full
// is the settled width; visible is how much of it the grow animation shows.
func renderExpandedPanel(b book.Book, full, visible int) string {
	if visible <= 0 {
		return ""
	}

	textWidth := max(full-coverWidth-4, minContentWidth/2)
	// heading, blank, heading take three lines; the rest is shared.
	synopsisLines := max(rowHeight-notesLines-3, 1)

	body := lipgloss.JoinHorizontal(lipgloss.Center,
		" ",
		renderCover(b, coverWidth, coverHeight),
		"  ",
		panelText(b, textWidth, synopsisLines),
	)

	panel := styles.PanelStyle.
		Width(full).
		Height(rowHeight).
		MaxHeight(rowHeight).
		AlignVertical(lipgloss.Center).
		Render(body)

	if visible >= full {
		return panel
	}
	return clipWidth(panel, visible)
}

// renderCompactPanel draws the panel below a compact tab strip.
func renderCompactPanel(b book.Book, full, visible int) string {
	if visible <= 0 {
		return ""
	}

	textWidth := max(full-2, 1)
	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.PanelHeadingStyle.Render(b.DisplayTitle()),
		styles.TextMutedStyle.Render(b.Byline()),
		"",
		lipgloss.NewStyle().Width(textWidth).Render(panelText(b, textWidth, 6)),
	)

	panel := styles.PanelStyle.
		Width(full).
		Padding(1, 1).
		Render(body)

	if visible >= full {
		return panel
	}
	return clipWidth(panel, visible)
}

// clipWidth cuts every line of s to width cells, keeping escape sequences
// intact, and pads short lines so the block stays rectangular.
func clipWidth(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		line = truncate.String(line, uint(width))
		if pad := width - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
