package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JovenSoh/bookshelf/internal/core/logging"
	"github.com/JovenSoh/bookshelf/internal/core/viewport"
)

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	units := viewport.ColumnsToUnits(msg.Width, m.cfg.Viewport.CellWidth)
	if mode, changed := m.selector.Update(units); changed {
		m.log.Debug().
			Int("columns", msg.Width).
			Int("units", units).
			Stringer("mode", mode).
			Msg("layout mode changed")
	}

	if m.detail != nil {
		m.detail.SetSize(m.width, m.bodyHeight())
	}
	m.refreshGrid()
	return m, nil
}

func (m Model) handleTimer(msg timerFiredMsg) (tea.Model, tea.Cmd) {
	if !m.sched.Fire(msg.id) {
		return m, nil
	}
	if !m.ctrl.Locked() {
		m.anim.Finish()
	}
	m.refreshGrid()
	return m, nil
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Home):
		m.grid.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveFocus(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveFocus(0, 1)
	case key.Matches(msg, m.keys.Activate):
		return m.activate()
	case key.Matches(msg, m.keys.Open):
		return m.openDetail()
	}

	m.refreshGrid()
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m.quit()
	case key.Matches(msg, m.keys.Back):
		return m.closeDetail()
	case key.Matches(msg, m.keys.Notes):
		return m, m.detail.ToggleNotes()
	}

	if m.detail.NotesFocused() {
		return m, m.detail.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Home):
		return m.closeDetail()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.detail.SetSize(m.width, m.bodyHeight())
		return m, nil
	}

	return m, m.detail.Update(msg)
}

// moveFocus shifts the cursor, clamping to the grid. Moving between rows
// keeps the column where the new row is long enough.
func (m *Model) moveFocus(dRow, dTab int) {
	if len(m.rows) == 0 {
		return
	}
	m.focusRow = clamp(m.focusRow+dRow, 0, len(m.rows)-1)
	m.focusTab = clamp(m.focusTab+dTab, 0, len(m.rows[m.focusRow])-1)
}

// activate is the tab click: it asks the accordion to expand the focused tab.
func (m Model) activate() (tea.Model, tea.Cmd) {
	if len(m.rows) == 0 {
		return m, nil
	}

	row, tab := m.focusRow, m.focusTab
	ctx := logging.WithBookID(m.ctx(), m.rows[row][tab].ID)

	if !m.ctrl.RequestExpand(row, tab) {
		m.log.Debug().Ctx(ctx).Int("row", row).Int("tab", tab).Msg("tab activation ignored")
		return m, nil
	}

	m.log.Debug().Ctx(ctx).Int("row", row).Int("tab", tab).Msg("tab expanded")
	frame := m.anim.Start(row)
	m.refreshGrid()
	return m, tea.Batch(m.sched.Drain(), frame)
}

func (m Model) openDetail() (tea.Model, tea.Cmd) {
	if len(m.rows) == 0 {
		return m, nil
	}

	b := m.rows[m.focusRow][m.ctrl.Open(m.focusRow)]
	m.state = stateDetail
	m.keys.detailMode()
	m.detail = NewDetailView(b, m.width, m.bodyHeight())

	m.log.Debug().Ctx(m.ctx()).Msg("opened book details")
	return m, nil
}

// closeDetail returns to the grid. Notes edits are discarded with the view.
func (m Model) closeDetail() (tea.Model, tea.Cmd) {
	if m.detail != nil {
		m.log.Debug().Ctx(m.ctx()).Msg("closed book details")
	}
	m.state = stateGrid
	m.detail = nil
	m.keys.gridMode()
	m.refreshGrid()
	return m, nil
}

// refreshGrid re-renders the grid into its viewport and scrolls so the
// focused row is visible.
func (m *Model) refreshGrid() {
	content, offsets := m.gridFrame().render()
	content = lipgloss.JoinVertical(lipgloss.Left, content, "", m.renderFooter())

	m.grid.Width = m.width
	m.grid.Height = m.bodyHeight()
	m.grid.SetContent(content)

	if len(offsets) == 0 || m.grid.Height <= 0 {
		return
	}

	top := offsets[m.focusRow]
	bottom := m.grid.TotalLineCount()
	if m.focusRow+1 < len(offsets) {
		bottom = offsets[m.focusRow+1]
	}

	switch {
	case top < m.grid.YOffset:
		m.grid.SetYOffset(top)
	case bottom > m.grid.YOffset+m.grid.Height:
		m.grid.SetYOffset(min(top, bottom-m.grid.Height))
	}
}

func (m Model) gridFrame() gridFrame {
	return gridFrame{
		rows:       m.rows,
		open:       m.ctrl.Selection(),
		locked:     m.ctrl.Locked(),
		focusRow:   m.focusRow,
		focusTab:   m.focusTab,
		mode:       m.layout.mode,
		width:      m.width,
		panelWidth: m.cfg.Grid.PanelWidth,
		anim:       m.anim,
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
