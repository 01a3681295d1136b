package dragdrop

import (
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/planner"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/store"
)

// defaultBlockMinutes is the block length given to an untimed item dropped
// onto a time slot.
const defaultBlockMinutes = 60

// Target describes where a drop landed.
type Target struct {
	// Date is the receiving day bucket, or store.Pool for the
	// unscheduled pool.
	Date string

	// Index is the insertion position indicated by the drop, or
	// store.Append.
	Index int

	// Slot is the start time when the drop landed on a specific time
	// slot; nil for untimed list or bucket drops.
	Slot *planner.Clock

	// AllowReorder reports whether this target supports same-container
	// reordering.
	AllowReorder bool
}

// EditRequest asks the dialog collaborator to confirm fields before an
// item is scheduled.
type EditRequest struct {
	Existing planner.Item
	Date     string
	Start    *planner.Clock
	End      *planner.Clock
}

// Dialog is the edit-dialog collaborator. Edit blocks until the user
// commits (returning the saved fields) or cancels (ok false).
type Dialog interface {
	Edit(req EditRequest) (planner.Item, bool)
}

// Resolver applies drop-target resolution rules against the store. Every
// container that accepts drops routes through Drop; malformed or
// self-directed drops resolve to no-ops rather than errors.
type Resolver struct {
	Store  *store.Store
	Dialog Dialog
}

// Drop resolves one drop. The returned error reports store-level
// failures only; rule rejections are silent no-ops.
func (r *Resolver) Drop(p Payload, t Target) error {
	if p.ItemID == "" {
		return nil
	}
	// An empty FromDate without the explicit pool flag is a malformed
	// origin; routing it through MoveItem would drain the pool past the
	// dialog's rollback guarantee.
	if !p.FromPool && p.FromDate == store.Pool {
		return nil
	}
	if p.FromPool {
		return r.dropFromPool(p, t)
	}
	if t.Date == store.Pool {
		return r.dropToPool(p, t)
	}
	if p.FromDate == t.Date {
		return r.dropSameDay(p, t)
	}
	return r.Store.MoveItem(p.ItemID, p.FromDate, t.Date, store.FieldOverrides{
		Start: slotStart(t),
		End:   r.slotEnd(p, t),
		Index: t.Index,
	})
}

// dropFromPool schedules a pool item onto a day. The insert is deferred
// behind the edit dialog: the item leaves the pool immediately, and a
// cancel restores it to its original position unchanged.
func (r *Resolver) dropFromPool(p Payload, t Target) error {
	if t.Date == store.Pool {
		if t.AllowReorder && p.AllowReorder {
			return r.Store.Reorder(store.Pool, p.ItemID, t.Index)
		}
		return nil
	}

	item, origin, ok := r.Store.RemovePoolItem(p.ItemID)
	if !ok {
		return nil
	}

	start := t.Slot
	var end *planner.Clock
	if start != nil {
		e := clampEnd(start.Minutes() + defaultBlockMinutes)
		end = &e
	}

	committed, ok := r.Dialog.Edit(EditRequest{
		Existing: item,
		Date:     t.Date,
		Start:    start,
		End:      end,
	})
	if !ok {
		r.Store.InsertPoolItem(item, origin)
		return nil
	}
	committed.ID = item.ID
	return r.Store.UpsertItem(t.Date, committed)
}

// dropToPool unschedules a day item: times, color, and date are stripped
// and the item lands at the drop-indicated pool position.
func (r *Resolver) dropToPool(p Payload, t Target) error {
	return r.Store.MoveItem(p.ItemID, p.FromDate, store.Pool, store.FieldOverrides{
		ClearTimes: true,
		ClearColor: true,
		Index:      t.Index,
	})
}

// dropSameDay handles drops that stay inside one day bucket: a slot drop
// retimes the item, a reorder-capable list drop reorders it, and anything
// else is a self-drop no-op.
func (r *Resolver) dropSameDay(p Payload, t Target) error {
	if t.Slot != nil {
		return r.Store.MoveItem(p.ItemID, p.FromDate, t.Date, store.FieldOverrides{
			Start: slotStart(t),
			End:   r.slotEnd(p, t),
			Index: t.Index,
		})
	}
	if t.AllowReorder && p.AllowReorder {
		return r.Store.Reorder(t.Date, p.ItemID, t.Index)
	}
	return nil
}

// slotStart returns the new start time for a slot drop, or nil to leave
// the item's times untouched.
func slotStart(t Target) *planner.Clock {
	if t.Slot == nil {
		return nil
	}
	c := *t.Slot
	return &c
}

// slotEnd recomputes the end time for a slot drop, preserving the item's
// original duration when it was time-blocked and falling back to the
// default block length otherwise.
func (r *Resolver) slotEnd(p Payload, t Target) *planner.Clock {
	if t.Slot == nil {
		return nil
	}
	dur := defaultBlockMinutes
	if item, ok := r.Store.FindItem(p.FromDate, p.ItemID); ok && item.TimeBlocked() {
		dur = item.Duration()
	}
	e := clampEnd(t.Slot.Minutes() + dur)
	return &e
}

func clampEnd(mins int) planner.Clock {
	if mins > planner.MinutesPerDay {
		mins = planner.MinutesPerDay
	}
	c, _ := planner.ClockFromMinutes(mins)
	return c
}
