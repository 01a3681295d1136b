package gesture

import (
	"testing"
	"time"

	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/planner"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/timegrid"
)

func timedItem(startH, startM, endH, endM int) planner.Item {
	s := planner.Clock{Hour: startH, Minute: startM}
	e := planner.Clock{Hour: endH, Minute: endM}
	return planner.Item{ID: "it", StartTime: &s, EndTime: &e}
}

func TestResizeBottomEdge(t *testing.T) {
	g := NewResize(timegrid.Daily)
	if !g.Press(timedItem(9, 0, 10, 0), EdgeBottom, 100) {
		t.Fatalf("press on a time-blocked item must start the gesture")
	}

	// 45px at 1.5px/minute drags the end 30 minutes later.
	mins, ok := g.Move(145)
	if !ok || mins != 10*60+30 {
		t.Fatalf("expected end at 10:30, got %d", mins)
	}

	start, end, ok := g.Release(time.Now())
	if !ok || start.String() != "09:00" || end.String() != "10:30" {
		t.Fatalf("expected [09:00, 10:30), got [%s, %s)", start, end)
	}
}

func TestResizeTopEdge(t *testing.T) {
	g := NewResize(timegrid.Daily)
	g.Press(timedItem(9, 0, 10, 0), EdgeTop, 0)

	mins, ok := g.Move(-45) // 30 minutes earlier
	if !ok || mins != 8*60+30 {
		t.Fatalf("expected start at 08:30, got %d", mins)
	}

	start, end, ok := g.Release(time.Now())
	if !ok || start.String() != "08:30" || end.String() != "10:00" {
		t.Fatalf("expected [08:30, 10:00), got [%s, %s)", start, end)
	}
}

func TestResizeFloor(t *testing.T) {
	// Dragging the end above start+15 leaves the edge at its last valid
	// position; the start edge never moves.
	g := NewResize(timegrid.Daily)
	g.Press(timedItem(9, 0, 10, 0), EdgeBottom, 0)

	g.Move(-30) // end 09:40: fine
	mins, _ := g.Move(-80)
	if mins != 9*60+40 {
		t.Fatalf("violating move must not drag the edge, got %d", mins)
	}

	start, end, ok := g.Release(time.Now())
	if !ok {
		t.Fatalf("expected a committed resize")
	}
	if end.Minutes()-start.Minutes() < MinBlockMinutes {
		t.Fatalf("resize shrank below the %d minute floor: [%s, %s)", MinBlockMinutes, start, end)
	}
	if start.String() != "09:00" {
		t.Fatalf("the untouched edge must not move, got %s", start)
	}
}

func TestResizeClampsToDay(t *testing.T) {
	g := NewResize(timegrid.Daily)
	g.Press(timedItem(23, 0, 23, 30), EdgeBottom, 0)
	mins, _ := g.Move(1e6)
	if mins != planner.MinutesPerDay-1 {
		t.Fatalf("edge must clamp to 23:59, got %d", mins)
	}
}

func TestResizeRejectsUntimedItem(t *testing.T) {
	g := NewResize(timegrid.Daily)
	if g.Press(planner.Item{ID: "x"}, EdgeTop, 0) {
		t.Fatalf("untimed items cannot be resized")
	}
}

func TestResizeClickSuppression(t *testing.T) {
	g := NewResize(timegrid.Daily)
	g.Press(timedItem(9, 0, 10, 0), EdgeBottom, 0)
	g.Move(30)

	released := time.Now()
	if _, _, ok := g.Release(released); !ok {
		t.Fatalf("expected a committed resize")
	}
	if !g.SuppressClick(released.Add(50 * time.Millisecond)) {
		t.Fatalf("a click right after release must be suppressed")
	}
	if g.SuppressClick(released.Add(time.Second)) {
		t.Fatalf("suppression must expire")
	}
}

func TestSuppressClickIdle(t *testing.T) {
	g := NewResize(timegrid.Daily)
	if g.SuppressClick(time.Now()) {
		t.Fatalf("a machine that never resized suppresses nothing")
	}
}
