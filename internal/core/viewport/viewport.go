// Package viewport derives the grid layout mode from the viewport width.
package viewport

import (
	"sync"

	"github.com/JovenSoh/bookshelf/internal/core/logging"
	"github.com/rs/zerolog"
)

// DefaultBreakpoint is the first width, in layout units, rendered in expanded mode.
const DefaultBreakpoint = 768

// DefaultCellWidth is the number of layout units per terminal column.
const DefaultCellWidth = 8

// Mode is the grid layout mode.
type Mode int

const (
	// Expanded renders each row as a horizontal run of vertical tabs.
	Expanded Mode = iota
	// Compact renders each row as a scrollable tab strip above the panel.
	Compact
)

func (m Mode) String() string {
	switch m {
	case Compact:
		return "compact"
	case Expanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// ComputeMode returns the mode for width using DefaultBreakpoint.
func ComputeMode(width int) Mode {
	return modeFor(width, DefaultBreakpoint)
}

func modeFor(width, breakpoint int) Mode {
	if width < breakpoint {
		return Compact
	}
	return Expanded
}

// ColumnsToUnits converts a terminal width in columns to layout units.
func ColumnsToUnits(columns, cellWidth int) int {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	return columns * cellWidth
}

// Subscriber is called with the previous and the new mode.
type Subscriber func(prev, next Mode)

// Selector tracks the current mode and notifies subscribers when it changes.
// Subscribers run synchronously inside Update.
type Selector struct {
	breakpoint int
	log        zerolog.Logger

	mu      sync.Mutex
	mode    Mode
	width   int
	started bool
	nextID  int
	subs    map[int]Subscriber
}

// NewSelector returns a selector for the given breakpoint. A non-positive
// breakpoint selects DefaultBreakpoint.
func NewSelector(breakpoint int) *Selector {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	return &Selector{
		breakpoint: breakpoint,
		log:        logging.Component("viewport"),
		subs:       make(map[int]Subscriber),
	}
}

// Breakpoint returns the configured breakpoint.
func (s *Selector) Breakpoint() int {
	return s.breakpoint
}

// ComputeMode returns the mode for width using the selector's breakpoint.
func (s *Selector) ComputeMode(width int) Mode {
	return modeFor(width, s.breakpoint)
}

// Mode returns the current mode. Before the first Update it is Expanded.
func (s *Selector) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Width returns the last width passed to Update.
func (s *Selector) Width() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width
}

// Update recomputes the mode for width. It reports whether the mode changed;
// the first call always counts as a change.
func (s *Selector) Update(width int) (Mode, bool) {
	s.mu.Lock()
	old := s.mode
	next := modeFor(width, s.breakpoint)
	changed := !s.started || next != old
	s.started = true
	s.mode = next
	s.width = width

	var subs []Subscriber
	if changed {
		subs = make([]Subscriber, 0, len(s.subs))
		for id := range s.nextID {
			if fn, ok := s.subs[id]; ok {
				subs = append(subs, fn)
			}
		}
	}
	s.mu.Unlock()

	if changed {
		s.log.Info().
			Int("width", width).
			Stringer("from", old).
			Stringer("to", next).
			Msg("viewport mode changed")
		for _, fn := range subs {
			fn(old, next)
		}
	}
	return next, changed
}

// Subscribe registers fn for mode changes, in registration order. The returned
// function removes the subscription.
func (s *Selector) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}
