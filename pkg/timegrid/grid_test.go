package timegrid

import (
	"testing"

	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/planner"
)

func TestPixelToTimeQuantizes(t *testing.T) {
	// 9:05 on the 90px/hour surface is 817.5px; the slot floor is 09:00.
	c, err := Daily.PixelToTime(817.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Hour != 9 || c.Minute != 0 {
		t.Fatalf("expected 09:00, got %s", c)
	}

	// 9:47 floors to the 09:40 slot.
	c, err = Daily.PixelToTime(Daily.TimeToPixel(planner.Clock{Hour: 9, Minute: 47}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Hour != 9 || c.Minute != 40 {
		t.Fatalf("expected 09:40, got %s", c)
	}
}

func TestPixelToTimeRejectsOutOfRange(t *testing.T) {
	if _, err := Daily.PixelToTime(-1); err == nil {
		t.Fatalf("negative offsets must be rejected, not wrapped")
	}
	if _, err := Daily.PixelToTime(24 * Daily.PxPerHour); err == nil {
		t.Fatalf("offsets beyond the day must be rejected, not wrapped")
	}
}

func TestRoundTripSlotAligned(t *testing.T) {
	// Every slot-aligned time must survive time -> pixel -> time exactly.
	for mins := 0; mins < planner.MinutesPerDay; mins += Daily.SlotMinutes {
		c, err := planner.ClockFromMinutes(mins)
		if err != nil {
			t.Fatalf("clock from %d: %v", mins, err)
		}
		back, err := Daily.PixelToTime(Daily.TimeToPixel(c))
		if err != nil {
			t.Fatalf("round trip %s: %v", c, err)
		}
		if back != c {
			t.Fatalf("round trip changed %s to %s", c, back)
		}
	}
}

func TestRoundTripWeeklyEveryMinute(t *testing.T) {
	// The weekly scale has one-minute slots, so every single minute is
	// slot-aligned and must round-trip without drifting a minute down.
	for mins := 0; mins < planner.MinutesPerDay; mins++ {
		c, err := planner.ClockFromMinutes(mins)
		if err != nil {
			t.Fatalf("clock from %d: %v", mins, err)
		}
		back, err := Weekly.PixelToTime(Weekly.TimeToPixel(c))
		if err != nil {
			t.Fatalf("round trip %s: %v", c, err)
		}
		if back != c {
			t.Fatalf("weekly round trip changed %s to %s", c, back)
		}
	}
}

func TestWeeklyScaleIsContinuous(t *testing.T) {
	if Weekly.PxPerMinute() != 0.8 {
		t.Fatalf("weekly surface is 0.8px per minute, got %v", Weekly.PxPerMinute())
	}
	c, err := Weekly.PixelToTime(Weekly.TimeToPixel(planner.Clock{Hour: 9, Minute: 47}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Hour != 9 || c.Minute != 47 {
		t.Fatalf("no quantization expected on the weekly surface, got %s", c)
	}
}

func TestBlockHeight(t *testing.T) {
	h := Daily.BlockHeight(planner.Clock{Hour: 9}, planner.Clock{Hour: 10, Minute: 30})
	if h != 135 {
		t.Fatalf("90 minutes at 1.5px/min should be 135px, got %v", h)
	}
}

func TestSlotFloor(t *testing.T) {
	c := Daily.SlotFloor(planner.Clock{Hour: 9, Minute: 47})
	if c.Minute != 40 {
		t.Fatalf("expected 09:40, got %s", c)
	}
}
