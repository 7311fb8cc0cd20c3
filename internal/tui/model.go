// Package tui implements the Bubble Tea TUI for bookshelf.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	bubblesvp "github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/JovenSoh/bookshelf/internal/core/accordion"
	"github.com/JovenSoh/bookshelf/internal/core/catalog"
	"github.com/JovenSoh/bookshelf/internal/core/config"
	"github.com/JovenSoh/bookshelf/internal/core/logging"
	"github.com/JovenSoh/bookshelf/internal/core/shelf"
	"github.com/JovenSoh/bookshelf/internal/core/viewport"
)

// UIState is the screen currently shown.
type UIState int

const (
	stateGrid UIState = iota
	stateDetail
)

func (s UIState) String() string {
	if s == stateDetail {
		return viewDetail
	}
	return viewGrid
}

// Options configures the TUI behavior.
type Options struct {
	// IntN overrides the random source for the initial selection.
	IntN func(n int) int
	// Version is shown under the footer when set.
	Version string
}

// layoutState is shared by every copy of the Model so the viewport
// subscription can record mode changes.
type layoutState struct {
	mode viewport.Mode
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	cfg     *config.Config
	rows    []shelf.Row
	log     zerolog.Logger
	version string

	ctrl     *accordion.Controller
	sched    *tickScheduler
	anim     *PanelAnimation
	selector *viewport.Selector
	layout   *layoutState
	unsub    func()

	state    UIState
	focusRow int
	focusTab int

	width  int
	height int
	grid   bubblesvp.Model
	detail *DetailView

	keys     keyMap
	help     help.Model
	quitting bool
}

// New builds the model for cat. The accordion is initialized here, once.
func New(cfg *config.Config, cat *catalog.Catalog, opts Options) (Model, error) {
	rows, err := shelf.Partition(cat.Books(), cfg.Grid.RowWidth)
	if err != nil {
		return Model{}, fmt.Errorf("partition catalog: %w", err)
	}

	logger := logging.Component("tui")
	sched := newTickScheduler()
	ctrl := accordion.New(sched, accordion.Options{
		Duration: cfg.Grid.AnimationDuration,
		IntN:     opts.IntN,
	})
	sel := ctrl.Initialize(shelf.Lengths(rows), cfg.Grid.Randomize)

	layout := &layoutState{}
	selector := viewport.NewSelector(cfg.Viewport.Breakpoint)
	unsub := selector.Subscribe(func(prev, next viewport.Mode) {
		layout.mode = next
	})

	keys := defaultKeyMap()
	keys.gridMode()

	m := Model{
		cfg:      cfg,
		rows:     rows,
		log:      logger,
		version:  opts.Version,
		ctrl:     ctrl,
		sched:    sched,
		anim:     NewPanelAnimation(ctrl.Duration()),
		selector: selector,
		layout:   layout,
		unsub:    unsub,
		grid:     bubblesvp.New(0, 0),
		keys:     keys,
		help:     help.New(),
	}

	// Start the cursor on the first row's open book.
	if len(sel) > 0 {
		m.focusTab = sel[0]
	}

	logger.Info().
		Str("source", cat.Source()).
		Int("books", cat.Len()).
		Ints("row_lengths", shelf.Lengths(rows)).
		Msg("shelf loaded")

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case timerFiredMsg:
		return m.handleTimer(msg)
	case frameMsg:
		_, cmd := m.anim.Advance(msg)
		m.refreshGrid()
		return m, cmd
	case tea.KeyMsg:
		if m.state == stateDetail {
			return m.handleDetailKey(msg)
		}
		return m.handleGridKey(msg)
	}

	if m.state == stateDetail && m.detail != nil {
		return m, m.detail.Update(msg)
	}
	return m, nil
}

// Close stops the accordion timer and drops the viewport subscription.
func (m Model) Close() {
	m.ctrl.Close()
	if m.unsub != nil {
		m.unsub()
	}
}

// Mode returns the current layout mode.
func (m Model) Mode() viewport.Mode {
	return m.layout.mode
}

// Selection returns the open tab of every row.
func (m Model) Selection() accordion.Selection {
	return m.ctrl.Selection()
}

// Locked reports whether an expand transition is in flight.
func (m Model) Locked() bool {
	return m.ctrl.Locked()
}

// Focus returns the row and tab under the cursor.
func (m Model) Focus() (int, int) {
	return m.focusRow, m.focusTab
}

// State returns the screen currently shown.
func (m Model) State() UIState {
	return m.state
}

func (m Model) ctx() context.Context {
	ctx := logging.WithView(context.Background(), m.state.String())
	if m.state == stateDetail && m.detail != nil {
		ctx = logging.WithBookID(ctx, m.detail.Book().ID)
	}
	return ctx
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.Close()
	m.log.Debug().Ctx(m.ctx()).Msg("quitting")
	return m, tea.Quit
}
