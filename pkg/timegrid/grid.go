// Package timegrid converts between vertical pixel offsets on a day's
// timeline and wall-clock times, quantized to the surface's slot size.
package timegrid

import (
	"fmt"
	"math"

	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/planner"
)

// Scale describes one calendar surface's vertical geometry.
type Scale struct {
	PxPerHour   float64
	SlotMinutes int
}

var (
	// Daily is the daily planner surface: 90px per hour, 20-minute slots.
	Daily = Scale{PxPerHour: 90, SlotMinutes: 20}

	// Weekly is the week view: 0.8px per minute with no quantization.
	Weekly = Scale{PxPerHour: 48, SlotMinutes: 1}
)

// PxPerMinute returns the vertical scale in pixels per minute.
func (s Scale) PxPerMinute() float64 {
	return s.PxPerHour / 60
}

// SlotPx returns the pixel height of one slot.
func (s Scale) SlotPx() float64 {
	return float64(s.SlotMinutes) * s.PxPerMinute()
}

// PixelToTime converts a vertical offset within the timeline to a clock
// time floored to the slot grid. Offsets outside the day are rejected,
// never wrapped.
func (s Scale) PixelToTime(offsetPx float64) (planner.Clock, error) {
	if offsetPx < 0 {
		return planner.Clock{}, fmt.Errorf("timegrid: negative offset %.1f", offsetPx)
	}
	// Multiply before dividing so slot-aligned offsets map back to whole
	// minutes instead of flooring away a rounding error.
	total := int(math.Floor(offsetPx * 60 / s.PxPerHour))
	hour := total / 60
	if hour > 23 {
		return planner.Clock{}, fmt.Errorf("timegrid: offset %.1f beyond end of day", offsetPx)
	}
	minute := (total % 60) / s.SlotMinutes * s.SlotMinutes
	return planner.Clock{Hour: hour, Minute: minute}, nil
}

// TimeToPixel is the inverse of PixelToTime for slot-aligned times.
func (s Scale) TimeToPixel(c planner.Clock) float64 {
	return float64(c.Minutes()) * s.PxPerMinute()
}

// BlockHeight returns the rendered height of a [start, end) block.
func (s Scale) BlockHeight(start, end planner.Clock) float64 {
	return float64(end.Minutes()-start.Minutes()) * s.PxPerMinute()
}

// SlotFloor snaps a clock time down to the start of its slot.
func (s Scale) SlotFloor(c planner.Clock) planner.Clock {
	return planner.Clock{Hour: c.Hour, Minute: c.Minute / s.SlotMinutes * s.SlotMinutes}
}
