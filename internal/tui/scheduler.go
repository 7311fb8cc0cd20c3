package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JovenSoh/bookshelf/internal/core/accordion"
)

// timerFiredMsg is delivered when a tickScheduler timer expires.
type timerFiredMsg struct {
	id uint64
}

// tickScheduler is an accordion.Scheduler whose callbacks run inside Update.
//
// AfterFunc records the callback and queues a tea.Tick; the model collects the
// queued commands with Drain after every Update. When the tick arrives as a
// timerFiredMsg the model calls Fire, which runs the callback unless the timer
// was stopped in the meantime.
type tickScheduler struct {
	nextID  uint64
	pending map[uint64]func()
	queued  []tea.Cmd
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{pending: make(map[uint64]func())}
}

type tickTimer struct {
	s  *tickScheduler
	id uint64
}

func (t tickTimer) Stop() bool {
	if _, ok := t.s.pending[t.id]; !ok {
		return false
	}
	delete(t.s.pending, t.id)
	return true
}

// AfterFunc implements accordion.Scheduler.
func (s *tickScheduler) AfterFunc(d time.Duration, f func()) accordion.Timer {
	s.nextID++
	id := s.nextID
	s.pending[id] = f
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
	return tickTimer{s: s, id: id}
}

// Fire runs the callback for id. It reports false for stopped or unknown timers.
func (s *tickScheduler) Fire(id uint64) bool {
	f, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	f()
	return true
}

// Drain returns the ticks queued since the last call.
func (s *tickScheduler) Drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Pending returns the number of timers that have not fired or been stopped.
func (s *tickScheduler) Pending() int {
	return len(s.pending)
}
