package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval is the delay between panel grow frames.
const frameInterval = 50 * time.Millisecond

// frameMsg advances the panel animation identified by seq.
type frameMsg struct {
	seq uint64
}

// PanelAnimation tracks the width transition of a newly expanded panel.
// Frames are counted rather than timed so the animation is deterministic
// under test; the unlock timer, not the last frame, ends the transition.
type PanelAnimation struct {
	row     int
	seq     uint64
	frame   int
	frames  int
	running bool
}

// NewPanelAnimation returns an idle animation sized to span duration.
func NewPanelAnimation(duration time.Duration) *PanelAnimation {
	frames := int((duration + frameInterval - 1) / frameInterval)
	return &PanelAnimation{
		row:    -1,
		frames: max(frames, 1),
	}
}

// Start begins growing the panel of row from zero width and returns the
// first frame tick. A running animation for any row is replaced.
func (a *PanelAnimation) Start(row int) tea.Cmd {
	a.seq++
	a.row = row
	a.frame = 0
	a.running = true
	return a.next()
}

// Advance handles a frame message. It reports whether the frame belonged to
// the running animation and returns the tick for the following frame.
func (a *PanelAnimation) Advance(msg frameMsg) (bool, tea.Cmd) {
	if !a.running || msg.seq != a.seq {
		return false, nil
	}
	a.frame++
	if a.frame >= a.frames {
		a.running = false
		return true, nil
	}
	return true, a.next()
}

// Finish jumps to the final frame.
func (a *PanelAnimation) Finish() {
	a.running = false
	a.frame = a.frames
}

// Running reports whether a panel is still growing.
func (a *PanelAnimation) Running() bool {
	return a.running
}

// Width returns the visible width of row's panel given its full width.
func (a *PanelAnimation) Width(row, full int) int {
	if !a.running || row != a.row {
		return full
	}
	return full * a.frame / a.frames
}

func (a *PanelAnimation) next() tea.Cmd {
	seq := a.seq
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{seq: seq}
	})
}
