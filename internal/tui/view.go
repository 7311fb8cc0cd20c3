package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/JovenSoh/bookshelf/internal/core/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := m.grid.View()
	if m.state == stateDetail && m.detail != nil {
		body = m.detail.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderHelp(),
	)
}

// bodyHeight is the space left between the header and the help bar.
func (m Model) bodyHeight() int {
	return max(m.height-lipgloss.Height(m.renderHeader())-lipgloss.Height(m.renderHelp()), 0)
}

func (m Model) renderHeader() string {
	title := styles.HeaderStyle.Render(headerTitle)
	if !m.ctrl.Locked() {
		return title
	}

	status := styles.StatusLockedStyle.Render(styles.IconLock + " turning page")
	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(status)-4, 1)
	return lipgloss.JoinHorizontal(lipgloss.Center, title, lipgloss.NewStyle().Width(gap).Render(""), status)
}

func (m Model) renderHelp() string {
	return lipgloss.NewStyle().Padding(0, 1).Render(m.help.View(m.keys))
}

func (m Model) renderFooter() string {
	width := max(m.width, minContentWidth)
	text := wordwrap.String(m.cfg.Footer.Tagline, min(width-4, 60))

	parts := []string{}
	if text != "" {
		parts = append(parts, styles.FooterTextStyle.Render(text))
	}
	if link := m.cfg.Footer.Link; link != "" {
		parts = append(parts, "", styles.FooterLinkStyle.Render(footerLinkText+" "+link))
	}
	if m.version != "" {
		parts = append(parts, "", styles.TextMutedStyle.Render("bookshelf "+m.version))
	}
	if len(parts) == 0 {
		return ""
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, parts...))
}
