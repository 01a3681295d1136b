package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/planner"
)

var (
	ErrNotFound    = errors.New("store: item not found")
	ErrDayNotFound = errors.New("store: day not found")
	ErrNoDate      = errors.New("store: date required")
)

// Pool is the container reference for the unscheduled pool. Day containers
// are referenced by their YYYY-MM-DD date string.
const Pool = ""

// NoticeKind classifies a same-process change notification.
type NoticeKind int

const (
	NoticeDayChanged NoticeKind = iota
	NoticePoolChanged
)

// Notice is delivered to Subscribe channels after a mutation commits.
// Cross-process changes arrive through Persistence.Watch instead.
type Notice struct {
	Kind NoticeKind
	Date string
}

// FieldOverrides adjusts an item while it moves between containers.
type FieldOverrides struct {
	Start      *planner.Clock
	End        *planner.Clock
	ClearTimes bool
	ClearColor bool

	// Index is the insertion position in the destination; -1 appends.
	Index int
}

// Append is the FieldOverrides.Index value that appends to the destination.
const Append = -1

// Store owns the canonical day buckets and the unscheduled pool. All
// operations are synchronous and hand out deep copies, never internal
// slices; every mutation writes through to persistence before returning.
type Store struct {
	p      Persistence
	days   map[string]planner.Day
	pool   []planner.Item
	scroll int
	subs   []chan Notice
}

// Open loads the collections from persistence. Missing keys start empty;
// unreadable values are reported and start empty rather than failing open.
func Open(p Persistence) (*Store, error) {
	if p == nil {
		return nil, errors.New("store: no persistence configured")
	}
	s := &Store{p: p, days: make(map[string]planner.Day)}

	if raw, ok := p.Get(KeyDays); ok {
		var days []planner.Day
		if err := json.Unmarshal([]byte(raw), &days); err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: %s\n", KeyDays, err)
		} else {
			for _, d := range days {
				s.days[d.Date] = d
			}
		}
	}
	if raw, ok := p.Get(KeyPool); ok {
		if err := json.Unmarshal([]byte(raw), &s.pool); err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: %s\n", KeyPool, err)
			s.pool = nil
		}
	}
	if raw, ok := p.Get(KeyScroll); ok {
		if v, err := strconv.Atoi(raw); err == nil {
			s.scroll = v
		}
	}
	return s, nil
}

// Subscribe returns a channel that receives a Notice after every committed
// mutation in this process. Slow consumers miss notices rather than block
// the mutating caller.
func (s *Store) Subscribe() <-chan Notice {
	ch := make(chan Notice, 16)
	s.subs = append(s.subs, ch)
	return ch
}

func (s *Store) notify(n Notice) {
	for _, ch := range s.subs {
		select {
		case ch <- n:
		default:
		}
	}
}

// FindDay returns a copy of the bucket for date.
func (s *Store) FindDay(date string) (planner.Day, bool) {
	d, ok := s.days[date]
	if !ok {
		return planner.Day{}, false
	}
	return d.Clone(), true
}

// Days returns copies of all buckets sorted by date.
func (s *Store) Days() []planner.Day {
	out := make([]planner.Day, 0, len(s.days))
	for _, d := range s.days {
		out = append(out, d.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Pool returns a copy of the unscheduled pool.
func (s *Store) Pool() []planner.Item {
	return planner.CloneItems(s.pool)
}

// UpsertItem inserts the item into the day's bucket, or replaces the item
// with the same id. The bucket is created on first write.
func (s *Store) UpsertItem(date string, item planner.Item) error {
	if date == Pool {
		return ErrNoDate
	}
	item.Date = date
	d, ok := s.days[date]
	if !ok {
		d = planner.Day{Date: date}
	}
	d = d.Clone()
	if i := d.IndexOf(item.ID); i >= 0 {
		d.Items[i] = item
	} else {
		d.Items = append(d.Items, item)
	}
	s.days[date] = d
	s.persistDays()
	s.notify(Notice{Kind: NoticeDayChanged, Date: date})
	return nil
}

// RemoveItem deletes the item from the day's bucket.
func (s *Store) RemoveItem(date, itemID string) error {
	d, ok := s.days[date]
	if !ok {
		return ErrDayNotFound
	}
	i := d.IndexOf(itemID)
	if i < 0 {
		return ErrNotFound
	}
	d = d.Clone()
	d.Items = append(d.Items[:i], d.Items[i+1:]...)
	s.days[date] = d
	s.persistDays()
	s.notify(Notice{Kind: NoticeDayChanged, Date: date})
	return nil
}

// MoveItem relocates an item between containers (day buckets or the pool)
// as one logical unit: no caller ever observes the item in both containers
// or in neither. Overrides apply while the item is in flight.
func (s *Store) MoveItem(itemID, from, to string, ov FieldOverrides) error {
	item, _, ok := s.peek(from, itemID)
	if !ok {
		return ErrNotFound
	}

	item = applyOverrides(item, ov)
	item.Date = to

	// Mutate copies first so a failure leaves the store untouched.
	if from == Pool {
		s.pool = spliceOut(s.pool, itemID)
	} else {
		d := s.days[from].Clone()
		i := d.IndexOf(itemID)
		d.Items = append(d.Items[:i], d.Items[i+1:]...)
		s.days[from] = d
	}

	if to == Pool {
		s.pool = spliceIn(s.pool, item, ov.Index)
	} else {
		d, ok := s.days[to]
		if !ok {
			d = planner.Day{Date: to}
		}
		d = d.Clone()
		d.Items = spliceIn(d.Items, item, ov.Index)
		s.days[to] = d
	}

	s.persistDays()
	s.persistPool()
	if from == Pool || to == Pool {
		s.notify(Notice{Kind: NoticePoolChanged})
	}
	if from != Pool {
		s.notify(Notice{Kind: NoticeDayChanged, Date: from})
	}
	if to != Pool && to != from {
		s.notify(Notice{Kind: NoticeDayChanged, Date: to})
	}
	return nil
}

// Reorder splices the item to newIndex within its container and reassigns
// contiguous Order values to the whole container so future sorts are
// stable. Reordering to the current position is a no-op that still
// normalizes Order.
func (s *Store) Reorder(container, itemID string, newIndex int) error {
	if container == Pool {
		i := indexOf(s.pool, itemID)
		if i < 0 {
			return ErrNotFound
		}
		items := planner.CloneItems(s.pool)
		items = reindex(splice(items, i, newIndex))
		s.pool = items
		s.persistPool()
		s.notify(Notice{Kind: NoticePoolChanged})
		return nil
	}

	d, ok := s.days[container]
	if !ok {
		return ErrDayNotFound
	}
	i := d.IndexOf(itemID)
	if i < 0 {
		return ErrNotFound
	}
	d = d.Clone()
	d.Items = reindex(splice(d.Items, i, newIndex))
	s.days[container] = d
	s.persistDays()
	s.notify(Notice{Kind: NoticeDayChanged, Date: container})
	return nil
}

// DeleteDayIfEmpty prunes the bucket for date when it has no items and no
// journal text. Reports whether the bucket was removed.
func (s *Store) DeleteDayIfEmpty(date string) bool {
	d, ok := s.days[date]
	if !ok || !d.Empty() {
		return false
	}
	delete(s.days, date)
	s.persistDays()
	s.notify(Notice{Kind: NoticeDayChanged, Date: date})
	return true
}

// SetJournal replaces the free-text journal fields for date, creating the
// bucket on first write.
func (s *Store) SetJournal(date, tasks, greatDay, grateful string) error {
	if date == Pool {
		return ErrNoDate
	}
	d, ok := s.days[date]
	if !ok {
		d = planner.Day{Date: date}
	}
	d = d.Clone()
	d.Tasks = tasks
	d.GreatDay = greatDay
	d.Grateful = grateful
	s.days[date] = d
	s.persistDays()
	s.notify(Notice{Kind: NoticeDayChanged, Date: date})
	return nil
}

// InsertPoolItem places the item into the pool at index (Append appends).
// Any date or times on the item are cleared: pool items are unscheduled.
func (s *Store) InsertPoolItem(item planner.Item, index int) {
	item.Date = ""
	item.StartTime = nil
	item.EndTime = nil
	s.pool = spliceIn(planner.CloneItems(s.pool), item, index)
	s.persistPool()
	s.notify(Notice{Kind: NoticePoolChanged})
}

// RemovePoolItem takes the item out of the pool, returning it along with
// the position it held so a cancelled drag can restore it.
func (s *Store) RemovePoolItem(itemID string) (planner.Item, int, bool) {
	i := indexOf(s.pool, itemID)
	if i < 0 {
		return planner.Item{}, 0, false
	}
	item := s.pool[i].Clone()
	s.pool = append(planner.CloneItems(s.pool[:i]), s.pool[i+1:]...)
	s.persistPool()
	s.notify(Notice{Kind: NoticePoolChanged})
	return item, i, true
}

// Scroll returns the last-viewed scroll offset.
func (s *Store) Scroll() int {
	return s.scroll
}

// SetScroll persists the last-viewed scroll offset.
func (s *Store) SetScroll(offset int) {
	s.scroll = offset
	if err := s.p.Set(KeyScroll, strconv.Itoa(offset)); err != nil {
		fmt.Fprintf(os.Stderr, "store: write %s: %v\n", KeyScroll, err)
	}
}

// FindItem returns a copy of the item from the given container (a date or
// Pool).
func (s *Store) FindItem(container, itemID string) (planner.Item, bool) {
	item, _, ok := s.peek(container, itemID)
	return item, ok
}

// peek fetches a copy of the item and its index from a container.
func (s *Store) peek(container, itemID string) (planner.Item, int, bool) {
	if container == Pool {
		if i := indexOf(s.pool, itemID); i >= 0 {
			return s.pool[i].Clone(), i, true
		}
		return planner.Item{}, 0, false
	}
	d, ok := s.days[container]
	if !ok {
		return planner.Item{}, 0, false
	}
	if i := d.IndexOf(itemID); i >= 0 {
		return d.Items[i].Clone(), i, true
	}
	return planner.Item{}, 0, false
}

// Write failures are fire-and-forget at this boundary: the in-memory state
// already committed, so readers stay consistent and the gap is reported.
func (s *Store) persistDays() {
	days := s.Days()
	data, err := json.Marshal(days)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: marshal %s: %v\n", KeyDays, err)
		return
	}
	if err := s.p.Set(KeyDays, string(data)); err != nil {
		fmt.Fprintf(os.Stderr, "store: write %s: %v\n", KeyDays, err)
	}
}

func (s *Store) persistPool() {
	data, err := json.Marshal(s.pool)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: marshal %s: %v\n", KeyPool, err)
		return
	}
	if err := s.p.Set(KeyPool, string(data)); err != nil {
		fmt.Fprintf(os.Stderr, "store: write %s: %v\n", KeyPool, err)
	}
}

func applyOverrides(item planner.Item, ov FieldOverrides) planner.Item {
	if ov.ClearTimes {
		item.StartTime = nil
		item.EndTime = nil
	}
	if ov.Start != nil {
		c := *ov.Start
		item.StartTime = &c
	}
	if ov.End != nil {
		c := *ov.End
		item.EndTime = &c
	}
	if ov.ClearColor {
		item.Color = ""
	}
	return item
}

func indexOf(items []planner.Item, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func spliceOut(items []planner.Item, id string) []planner.Item {
	i := indexOf(items, id)
	if i < 0 {
		return items
	}
	out := planner.CloneItems(items)
	return append(out[:i], out[i+1:]...)
}

func spliceIn(items []planner.Item, item planner.Item, index int) []planner.Item {
	if index < 0 || index >= len(items) {
		return append(items, item)
	}
	out := append(items[:index:index], item)
	return append(out, items[index:]...)
}

// splice moves the element at from to to, clamping to to the slice bounds.
func splice(items []planner.Item, from, to int) []planner.Item {
	if to < 0 {
		to = 0
	}
	if to >= len(items) {
		to = len(items) - 1
	}
	item := items[from]
	items = append(items[:from], items[from+1:]...)
	out := append(items[:to:to], item)
	return append(out, items[to:]...)
}

func reindex(items []planner.Item) []planner.Item {
	for i := range items {
		o := i
		items[i].Order = &o
	}
	return items
}
