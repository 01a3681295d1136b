// Package gesture models the pointer-driven interactions on the timeline
// as small explicit state machines. Each machine is owned by the surface
// that feeds it events and holds no ambient global state; everything runs
// synchronously on the UI event loop.
package gesture

import (
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/planner"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/timegrid"
)

// Create is the drag-to-create machine: press anchors a new block, every
// move updates the live end marker, release commits a (start, end) pair.
// The zero value is idle.
type Create struct {
	scale timegrid.Scale

	// minMinutes is the surface's minimum committed span; spans below it
	// are extended, never rejected.
	minMinutes int

	active bool
	anchor planner.Clock
	cursor *planner.Clock
}

// NewCreate builds a create machine for one surface. minMinutes of 0
// falls back to a single slot.
func NewCreate(scale timegrid.Scale, minMinutes int) *Create {
	if minMinutes <= 0 {
		minMinutes = scale.SlotMinutes
	}
	return &Create{scale: scale, minMinutes: minMinutes}
}

// Active reports whether a drag is in progress.
func (c *Create) Active() bool {
	return c.active
}

// Press starts a drag at the given timeline offset. Presses outside the
// day are ignored and the machine stays idle.
func (c *Create) Press(offsetPx float64) bool {
	t, err := c.scale.PixelToTime(offsetPx)
	if err != nil {
		return false
	}
	c.active = true
	c.anchor = t
	c.cursor = nil
	return true
}

// Move records the pointer position as the live end marker. It is the
// only state mutated per move; unmappable offsets leave the marker alone.
func (c *Create) Move(offsetPx float64) {
	if !c.active {
		return
	}
	t, err := c.scale.PixelToTime(offsetPx)
	if err != nil {
		return
	}
	c.cursor = &t
}

// Preview returns the block the gesture currently spans, for live
// rendering while the pointer moves.
func (c *Create) Preview() (start, end planner.Clock, ok bool) {
	if !c.active || c.cursor == nil {
		return planner.Clock{}, planner.Clock{}, false
	}
	return c.span()
}

// Release commits the gesture and resets to idle. A release with no
// recorded move is a degenerate click and commits nothing. Any other
// release commits: a short or inverted span is normalized to the minimum
// duration rather than rejected.
func (c *Create) Release() (start, end planner.Clock, ok bool) {
	if !c.active || c.cursor == nil {
		c.reset()
		return planner.Clock{}, planner.Clock{}, false
	}
	start, end, ok = c.span()
	c.reset()
	return start, end, ok
}

func (c *Create) reset() {
	c.active = false
	c.cursor = nil
}

// span computes [min(anchor, cursor), max(anchor, cursor) + one slot),
// extended to the surface minimum and clamped to the end of the day.
func (c *Create) span() (planner.Clock, planner.Clock, bool) {
	a, b := c.anchor.Minutes(), c.cursor.Minutes()
	if b < a {
		a, b = b, a
	}
	end := b + c.scale.SlotMinutes
	if end-a < c.minMinutes {
		end = a + c.minMinutes
	}
	if end > planner.MinutesPerDay {
		end = planner.MinutesPerDay
	}
	startClock, err := planner.ClockFromMinutes(a)
	if err != nil {
		return planner.Clock{}, planner.Clock{}, false
	}
	endClock, err := planner.ClockFromMinutes(end)
	if err != nil {
		return planner.Clock{}, planner.Clock{}, false
	}
	return startClock, endClock, true
}
