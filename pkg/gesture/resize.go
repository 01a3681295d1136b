package gesture

import (
	"math"
	"time"

	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/planner"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/timegrid"
)

// Edge selects which handle of a block a resize drags.
type Edge int

const (
	// EdgeTop adjusts the block's start time.
	EdgeTop Edge = iota
	// EdgeBottom adjusts the block's end time.
	EdgeBottom
)

// MinBlockMinutes is the floor a resize may never shrink a block below.
const MinBlockMinutes = 15

// clickSuppression is how long after a resize release a click on the same
// item is ignored, so the pointer-up finishing the resize does not also
// open the editor.
const clickSuppression = 300 * time.Millisecond

// Resize drags one edge of a single time block. Moves that would violate
// the minimum duration leave the edge where it was; the other edge is
// never touched. The zero value is idle.
type Resize struct {
	scale timegrid.Scale

	active  bool
	edge    Edge
	fixed   int // minutes of the edge not being dragged
	origin  int // minutes of the dragged edge at press
	startY  float64
	current int // last valid dragged-edge minutes

	releasedAt time.Time
}

// NewResize builds a resize machine for one surface.
func NewResize(scale timegrid.Scale) *Resize {
	return &Resize{scale: scale}
}

// Active reports whether a resize is in progress.
func (r *Resize) Active() bool {
	return r.active
}

// Press starts dragging an edge of the item. Items without both times
// cannot be resized.
func (r *Resize) Press(item planner.Item, edge Edge, y float64) bool {
	if !item.TimeBlocked() {
		return false
	}
	r.active = true
	r.edge = edge
	r.startY = y
	if edge == EdgeTop {
		r.origin = item.StartTime.Minutes()
		r.fixed = item.EndTime.Minutes()
	} else {
		r.origin = item.EndTime.Minutes()
		r.fixed = item.StartTime.Minutes()
	}
	r.current = r.origin
	return true
}

// Move applies the pointer's vertical travel to the dragged edge. The
// returned minutes are the edge's position after the move, whether or not
// it changed; only this item needs re-rendering, the day's overlap layout
// waits for the commit.
func (r *Resize) Move(y float64) (edgeMinutes int, ok bool) {
	if !r.active {
		return 0, false
	}
	delta := int(math.Round((y - r.startY) / r.scale.PxPerMinute()))
	candidate := r.origin + delta
	if candidate < 0 {
		candidate = 0
	}
	if candidate > planner.MinutesPerDay-1 {
		candidate = planner.MinutesPerDay - 1
	}
	if r.valid(candidate) {
		r.current = candidate
	}
	return r.current, true
}

func (r *Resize) valid(candidate int) bool {
	if r.edge == EdgeTop {
		return r.fixed-candidate >= MinBlockMinutes
	}
	return candidate-r.fixed >= MinBlockMinutes
}

// Release finalizes the resize, returning the block's committed times.
func (r *Resize) Release(now time.Time) (start, end planner.Clock, ok bool) {
	if !r.active {
		return planner.Clock{}, planner.Clock{}, false
	}
	r.active = false
	r.releasedAt = now

	lo, hi := r.current, r.fixed
	if r.edge == EdgeBottom {
		lo, hi = r.fixed, r.current
	}
	startClock, err := planner.ClockFromMinutes(lo)
	if err != nil {
		return planner.Clock{}, planner.Clock{}, false
	}
	endClock, err := planner.ClockFromMinutes(hi)
	if err != nil {
		return planner.Clock{}, planner.Clock{}, false
	}
	return startClock, endClock, true
}

// SuppressClick reports whether a click at now falls inside the
// post-release suppression window.
func (r *Resize) SuppressClick(now time.Time) bool {
	if r.releasedAt.IsZero() {
		return false
	}
	return now.Sub(r.releasedAt) < clickSuppression
}
