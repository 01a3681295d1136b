// Package app provides the high-level planner operations shared by the
// CLI and the TUI, wrapping the store, the drop resolver, and the edit
// dialog collaborator.
package app

import (
	"errors"

	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/dragdrop"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/layout"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/planner"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/store"
)

// Service provides high-level operations for days, items, and the pool.
// It wraps the store and collaborators so UIs and CLIs can share logic.
type Service struct {
	Store  *store.Store
	Dialog dragdrop.Dialog
}

var errNoStore = errors.New("app: no store configured")

// Day returns the bucket for date together with the overlap placements
// for its time-blocked items. A date with no bucket yields an empty day.
func (s *Service) Day(date string) (planner.Day, []layout.Placement, error) {
	if s.Store == nil {
		return planner.Day{}, nil, errNoStore
	}
	d, ok := s.Store.FindDay(date)
	if !ok {
		d = planner.Day{Date: date}
	}
	planner.SortItems(d.Items)
	return d, layout.Place(d.Items), nil
}

// Pool returns the unscheduled pool in order.
func (s *Service) Pool() ([]planner.Item, error) {
	if s.Store == nil {
		return nil, errNoStore
	}
	items := s.Store.Pool()
	planner.SortItems(items)
	return items, nil
}

// AddToDay creates an item in the day's bucket, optionally time-blocked.
func (s *Service) AddToDay(date, text string, start, end *planner.Clock) (planner.Item, error) {
	if s.Store == nil {
		return planner.Item{}, errNoStore
	}
	item := planner.New(text)
	item.StartTime = start
	item.EndTime = end
	if err := s.Store.UpsertItem(date, item); err != nil {
		return planner.Item{}, err
	}
	item.Date = date
	return item, nil
}

// AddToPool creates an unscheduled item.
func (s *Service) AddToPool(text string) (planner.Item, error) {
	if s.Store == nil {
		return planner.Item{}, errNoStore
	}
	item := planner.New(text)
	s.Store.InsertPoolItem(item, store.Append)
	return item, nil
}

// ToggleComplete flips the item's completion state.
func (s *Service) ToggleComplete(date, itemID string) error {
	if s.Store == nil {
		return errNoStore
	}
	item, ok := s.Store.FindItem(date, itemID)
	if !ok {
		return store.ErrNotFound
	}
	item.IsCompleted = !item.IsCompleted
	return s.Store.UpsertItem(date, item)
}

// RequestNewItem is the commit path for a drag-to-create gesture: the
// dialog opens pre-filled with the gesture's times, and nothing is stored
// unless the user confirms.
func (s *Service) RequestNewItem(date string, start, end planner.Clock) error {
	if s.Store == nil {
		return errNoStore
	}
	if s.Dialog == nil {
		_, err := s.AddToDay(date, "", &start, &end)
		return err
	}
	committed, ok := s.Dialog.Edit(dragdrop.EditRequest{
		Date:  date,
		Start: &start,
		End:   &end,
	})
	if !ok {
		return nil
	}
	if committed.ID == "" {
		committed.ID = planner.New("").ID
	}
	return s.Store.UpsertItem(date, committed)
}

// OpenEdit runs the edit dialog for an existing item and stores the
// confirmed fields.
func (s *Service) OpenEdit(date, itemID string) error {
	if s.Store == nil {
		return errNoStore
	}
	if s.Dialog == nil {
		return nil
	}
	item, ok := s.Store.FindItem(date, itemID)
	if !ok {
		return store.ErrNotFound
	}
	committed, ok := s.Dialog.Edit(dragdrop.EditRequest{
		Existing: item,
		Date:     date,
		Start:    item.StartTime,
		End:      item.EndTime,
	})
	if !ok {
		return nil
	}
	committed.ID = item.ID
	return s.Store.UpsertItem(date, committed)
}

// CommitResize stores the times a finished resize gesture produced.
// Callers recompute the day's layout afterwards since the new duration
// may change overlap grouping.
func (s *Service) CommitResize(date, itemID string, start, end planner.Clock) error {
	if s.Store == nil {
		return errNoStore
	}
	item, ok := s.Store.FindItem(date, itemID)
	if !ok {
		return store.ErrNotFound
	}
	item.StartTime = &start
	item.EndTime = &end
	return s.Store.UpsertItem(date, item)
}

// Drop resolves a drag-and-drop release against the store.
func (s *Service) Drop(p dragdrop.Payload, t dragdrop.Target) error {
	if s.Store == nil {
		return errNoStore
	}
	r := dragdrop.Resolver{Store: s.Store, Dialog: s.Dialog}
	return r.Drop(p, t)
}

// PruneDay removes the day's bucket if it holds nothing.
func (s *Service) PruneDay(date string) bool {
	if s.Store == nil {
		return false
	}
	return s.Store.DeleteDayIfEmpty(date)
}
