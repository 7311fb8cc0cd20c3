// Package accordion implements the selection state machine behind the
// bookshelf grid.
//
// Each row of the grid has exactly one expanded tab. Expanding a different tab
// starts a transition that holds a single grid-wide lock for a fixed duration;
// while the lock is held every expand request, in any row, is ignored. The lock
// is released by a timer obtained from a Scheduler, and the controller keeps
// that timer's handle so the release can be cancelled on re-initialization or
// teardown.
//
// A Controller is not safe for concurrent use. It is meant to be driven from a
// single event loop, and its Scheduler must deliver callbacks on that loop.
package accordion

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/JovenSoh/bookshelf/internal/core/logging"
	"github.com/rs/zerolog"
)

// DefaultDuration is how long an expand transition holds the lock.
const DefaultDuration = 500 * time.Millisecond

// Selection holds the open tab index of every row.
type Selection []int

// Clone returns an independent copy of s.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	copy(out, s)
	return out
}

// Options configures a Controller.
type Options struct {
	// Duration is the lock hold time. Zero means DefaultDuration.
	Duration time.Duration
	// IntN returns a uniform value in [0, n). Nil means math/rand/v2.IntN.
	IntN func(n int) int
	// Logger overrides the component logger.
	Logger *zerolog.Logger
}

// Controller owns the per-row selection and the grid-wide animation lock.
type Controller struct {
	sched    Scheduler
	duration time.Duration
	intn     func(int) int
	log      zerolog.Logger

	lengths []int
	open    Selection

	locked  bool
	lastRow int
	timer   Timer
	gen     uint64
}

// New returns a controller with no rows. Call Initialize once the rows are known.
func New(sched Scheduler, opts Options) *Controller {
	c := &Controller{
		sched:    sched,
		duration: opts.Duration,
		intn:     opts.IntN,
		lastRow:  -1,
	}
	if c.duration <= 0 {
		c.duration = DefaultDuration
	}
	if c.intn == nil {
		c.intn = rand.IntN
	}
	if opts.Logger != nil {
		c.log = *opts.Logger
	} else {
		c.log = logging.Component("accordion")
	}
	return c
}

// Initialize resets the controller for a new set of rows and returns the
// initial selection. With randomize, each row opens an independently drawn
// index in [0, length); otherwise every row opens index 0. Any pending unlock
// is cancelled and the lock is released.
//
// Row lengths must be positive.
func (c *Controller) Initialize(rowLengths []int, randomize bool) Selection {
	c.cancelTimer()
	c.locked = false
	c.lastRow = -1

	c.lengths = make([]int, len(rowLengths))
	copy(c.lengths, rowLengths)

	c.open = make(Selection, len(rowLengths))
	for i, n := range rowLengths {
		if n <= 0 {
			panic(fmt.Sprintf("accordion: row %d has length %d", i, n))
		}
		if randomize {
			c.open[i] = c.intn(n)
		}
	}

	c.log.Debug().
		Int("rows", len(c.open)).
		Bool("randomize", randomize).
		Ints("selection", c.open).
		Msg("accordion initialized")

	return c.open.Clone()
}

// RequestExpand asks to open tab in row. It reports whether the request was
// accepted. Requests are ignored while the lock is held or when tab is already
// open. An accepted request opens tab immediately, takes the lock, and
// schedules its release after the configured duration.
//
// row and tab must address a tab in the current layout.
func (c *Controller) RequestExpand(row, tab int) bool {
	n := c.lengths[row]
	if tab < 0 || tab >= n {
		panic(fmt.Sprintf("accordion: tab %d out of range for row %d (length %d)", tab, row, n))
	}

	if c.locked {
		c.log.Debug().Int("row", row).Int("tab", tab).Msg("expand ignored: transition in flight")
		return false
	}
	if c.open[row] == tab {
		c.log.Debug().Int("row", row).Int("tab", tab).Msg("expand ignored: already open")
		return false
	}

	c.locked = true
	c.lastRow = row
	c.open[row] = tab

	c.cancelTimer()
	gen := c.gen
	c.timer = c.sched.AfterFunc(c.duration, func() { c.release(gen) })

	c.log.Debug().Int("row", row).Int("tab", tab).Dur("hold", c.duration).Msg("expand accepted")
	return true
}

// Close cancels any pending unlock and releases the lock. It is safe to call
// more than once.
func (c *Controller) Close() {
	c.cancelTimer()
	c.locked = false
}

// Selection returns a copy of the open index of every row.
func (c *Controller) Selection() Selection {
	return c.open.Clone()
}

// Open returns the open tab index of row.
func (c *Controller) Open(row int) int {
	return c.open[row]
}

// Rows returns the number of rows.
func (c *Controller) Rows() int {
	return len(c.open)
}

// RowLength returns the number of tabs in row.
func (c *Controller) RowLength(row int) int {
	return c.lengths[row]
}

// Locked reports whether a transition is in flight.
func (c *Controller) Locked() bool {
	return c.locked
}

// Transitioning returns the row whose transition currently holds the lock.
func (c *Controller) Transitioning() (int, bool) {
	if !c.locked {
		return -1, false
	}
	return c.lastRow, true
}

// Duration returns the lock hold time.
func (c *Controller) Duration() time.Duration {
	return c.duration
}

func (c *Controller) release(gen uint64) {
	if gen != c.gen || !c.locked {
		return
	}
	c.locked = false
	c.timer = nil
	c.log.Debug().Int("row", c.lastRow).Msg("transition complete")
}

// cancelTimer stops the outstanding timer, if any, and invalidates its
// callback in case the scheduler already queued it.
func (c *Controller) cancelTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
}
