package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/JovenSoh/bookshelf/internal/core/styles"
)

// tabState describes how a single tab is drawn.
type tabState struct {
	open    bool
	focused bool
	locked  bool
}

func (s tabState) style() lipgloss.Style {
	switch {
	case s.open:
		return styles.TabActiveStyle
	case s.locked:
		return styles.TabDisabledStyle
	case s.focused:
		return styles.TabFocusedStyle
	default:
		return styles.TabStyle
	}
}

// verticalTitle lays title out top to bottom, one rune per line, in at most
// height lines. Runes wider than width are dropped. Truncated titles end in
// an ellipsis.
func verticalTitle(title string, width, height int) []string {
	if height <= 0 {
		return nil
	}

	var runes []rune
	for _, r := range strings.TrimSpace(title) {
		if runewidth.RuneWidth(r) > width {
			continue
		}
		runes = append(runes, r)
	}

	if len(runes) > height {
		runes = append(runes[:height-1], []rune(styles.IconMore)...)
	}

	lines := make([]string, len(runes))
	for i, r := range runes {
		lines[i] = string(r)
	}
	return lines
}

// renderVerticalTab draws an expanded-mode tab. The last line carries the
// focus marker so focus stays visible while the tab is dimmed.
func renderVerticalTab(title string, state tabState) string {
	lines := verticalTitle(title, tabWidth, rowHeight-2)
	for len(lines) < rowHeight-1 {
		lines = append(lines, "")
	}

	marker := ""
	if state.focused {
		marker = styles.IconFocus
	}
	lines = append(lines, marker)

	return state.style().
		Width(tabWidth).
		Height(rowHeight).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderHorizontalTab draws a compact-mode tab.
func renderHorizontalTab(title string, state tabState) string {
	prefix := " "
	if state.focused {
		prefix = styles.IconFocus
	}
	label := runewidth.Truncate(strings.TrimSpace(title), compactTabWidth-3, styles.IconMore)
	return state.style().
		Width(compactTabWidth).
		Padding(0, 1, 0, 0).
		Render(prefix + " " + label)
}

// stripWindow returns the first and last (exclusive) indexes of the tabs that
// fit in width when the strip is scrolled so anchor is visible. Scrolling is
// minimal: the window only moves once anchor would fall off the right edge.
func stripWindow(count, anchor, width int) (int, int) {
	visible := max(width/compactTabWidth, 1)
	if count <= visible {
		return 0, count
	}
	first := 0
	if anchor >= visible {
		first = anchor - visible + 1
	}
	return first, first + visible
}
