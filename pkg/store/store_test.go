package store

import (
	"context"
	"testing"

	"github.com/matryer/is"

	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/planner"
)

type memoryPersistence struct {
	values map[string]string
	writes int
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{values: map[string]string{}}
}

func (m *memoryPersistence) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *memoryPersistence) Set(key, value string) error {
	m.writes++
	m.values[key] = value
	return nil
}

func (m *memoryPersistence) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func clock(h, m int) *planner.Clock {
	return &planner.Clock{Hour: h, Minute: m}
}

func TestUpsertAndFind(t *testing.T) {
	is := is.New(t)
	s, err := Open(newMemoryPersistence())
	is.NoErr(err)

	item := planner.New("film intro")
	is.NoErr(s.UpsertItem("2024-01-05", item))

	d, ok := s.FindDay("2024-01-05")
	is.True(ok)
	is.Equal(len(d.Items), 1)
	is.Equal(d.Items[0].Date, "2024-01-05")

	// same id replaces instead of duplicating
	item.Text = "film outro"
	is.NoErr(s.UpsertItem("2024-01-05", item))
	d, _ = s.FindDay("2024-01-05")
	is.Equal(len(d.Items), 1)
	is.Equal(d.Items[0].Text, "film outro")
}

func TestUpsertRejectsPool(t *testing.T) {
	is := is.New(t)
	s, _ := Open(newMemoryPersistence())
	is.Equal(s.UpsertItem(Pool, planner.New("x")), ErrNoDate)
}

func TestRemoveItem(t *testing.T) {
	is := is.New(t)
	s, _ := Open(newMemoryPersistence())
	item := planner.New("a")
	is.NoErr(s.UpsertItem("2024-01-05", item))
	is.NoErr(s.RemoveItem("2024-01-05", item.ID))
	is.Equal(s.RemoveItem("2024-01-05", item.ID), ErrNotFound)
	is.Equal(s.RemoveItem("2024-01-06", item.ID), ErrDayNotFound)
}

func TestMoveItemAtomicity(t *testing.T) {
	is := is.New(t)
	s, _ := Open(newMemoryPersistence())
	item := planner.New("x")
	item.StartTime = clock(9, 0)
	item.EndTime = clock(10, 0)
	is.NoErr(s.UpsertItem("2024-01-05", item))

	is.NoErr(s.MoveItem(item.ID, "2024-01-05", "2024-01-06", FieldOverrides{Index: Append}))

	// exactly one container holds the item
	src, _ := s.FindDay("2024-01-05")
	dst, ok := s.FindDay("2024-01-06")
	is.True(ok)
	is.Equal(src.IndexOf(item.ID), -1)
	is.Equal(dst.IndexOf(item.ID), 0)

	// times survive a bucket move untouched
	moved := dst.Items[0]
	is.Equal(moved.Date, "2024-01-06")
	is.Equal(moved.StartTime.String(), "09:00")
	is.Equal(moved.EndTime.String(), "10:00")
}

func TestMoveUnknownItemLeavesStoreUntouched(t *testing.T) {
	is := is.New(t)
	s, _ := Open(newMemoryPersistence())
	is.NoErr(s.UpsertItem("2024-01-05", planner.New("a")))

	is.Equal(s.MoveItem("missing", "2024-01-05", "2024-01-06", FieldOverrides{}), ErrNotFound)
	_, ok := s.FindDay("2024-01-06")
	is.True(!ok)
}

func TestMoveDayToPoolStripsSchedule(t *testing.T) {
	is := is.New(t)
	s, _ := Open(newMemoryPersistence())
	item := planner.New("x")
	item.StartTime = clock(9, 0)
	item.EndTime = clock(10, 0)
	item.Color = "teal"
	is.NoErr(s.UpsertItem("2024-01-05", item))

	is.NoErr(s.MoveItem(item.ID, "2024-01-05", Pool, FieldOverrides{
		ClearTimes: true,
		ClearColor: true,
		Index:      Append,
	}))

	pool := s.Pool()
	is.Equal(len(pool), 1)
	is.Equal(pool[0].Date, "")
	is.True(pool[0].StartTime == nil)
	is.True(pool[0].EndTime == nil)
	is.Equal(pool[0].Color, "")
}

func TestMovePoolToDayAtIndex(t *testing.T) {
	is := is.New(t)
	s, _ := Open(newMemoryPersistence())
	is.NoErr(s.UpsertItem("2024-01-05", planner.New("first")))
	pooled := planner.New("pooled")
	s.InsertPoolItem(pooled, Append)

	is.NoErr(s.MoveItem(pooled.ID, Pool, "2024-01-05", FieldOverrides{Index: 0}))

	is.Equal(len(s.Pool()), 0)
	d, _ := s.FindDay("2024-01-05")
	is.Equal(d.Items[0].ID, pooled.ID)
}

func TestReorderAssignsContiguousOrder(t *testing.T) {
	is := is.New(t)
	s, _ := Open(newMemoryPersistence())
	a, b, c := planner.New("a"), planner.New("b"), planner.New("c")
	is.NoErr(s.UpsertItem("2024-01-05", a))
	is.NoErr(s.UpsertItem("2024-01-05", b))
	is.NoErr(s.UpsertItem("2024-01-05", c))

	is.NoErr(s.Reorder("2024-01-05", c.ID, 0))

	d, _ := s.FindDay("2024-01-05")
	is.Equal(d.Items[0].ID, c.ID)
	is.Equal(d.Items[1].ID, a.ID)
	is.Equal(d.Items[2].ID, b.ID)
	for i, it := range d.Items {
		is.Equal(*it.Order, i)
	}
}

func TestReorderIdempotent(t *testing.T) {
	is := is.New(t)
	s, _ := Open(newMemoryPersistence())
	a, b := planner.New("a"), planner.New("b")
	is.NoErr(s.UpsertItem("2024-01-05", a))
	is.NoErr(s.UpsertItem("2024-01-05", b))

	is.NoErr(s.Reorder("2024-01-05", b.ID, 0))
	first, _ := s.FindDay("2024-01-05")
	is.NoErr(s.Reorder("2024-01-05", b.ID, 0))
	second, _ := s.FindDay("2024-01-05")

	for i := range first.Items {
		is.Equal(first.Items[i].ID, second.Items[i].ID)
		is.Equal(*first.Items[i].Order, *second.Items[i].Order)
	}
}

func TestReorderPool(t *testing.T) {
	is := is.New(t)
	s, _ := Open(newMemoryPersistence())
	a, b := planner.New("a"), planner.New("b")
	s.InsertPoolItem(a, Append)
	s.InsertPoolItem(b, Append)

	is.NoErr(s.Reorder(Pool, b.ID, 0))
	pool := s.Pool()
	is.Equal(pool[0].ID, b.ID)
	is.Equal(*pool[0].Order, 0)
	is.Equal(*pool[1].Order, 1)
}

func TestDeleteDayIfEmpty(t *testing.T) {
	is := is.New(t)
	s, _ := Open(newMemoryPersistence())
	item := planner.New("a")
	is.NoErr(s.UpsertItem("2024-01-05", item))

	is.True(!s.DeleteDayIfEmpty("2024-01-05"))

	is.NoErr(s.RemoveItem("2024-01-05", item.ID))
	is.True(s.DeleteDayIfEmpty("2024-01-05"))
	_, ok := s.FindDay("2024-01-05")
	is.True(!ok)

	// journal text keeps the bucket alive
	is.NoErr(s.SetJournal("2024-01-06", "", "", "thankful"))
	is.True(!s.DeleteDayIfEmpty("2024-01-06"))
}

func TestWriteThroughAndReload(t *testing.T) {
	is := is.New(t)
	p := newMemoryPersistence()
	s, _ := Open(p)

	item := planner.New("persisted")
	item.StartTime = clock(9, 0)
	item.EndTime = clock(10, 20)
	item.Description = "with notes"
	is.NoErr(s.UpsertItem("2024-01-05", item))
	s.InsertPoolItem(planner.New("backlog"), Append)
	s.SetScroll(42)

	// a second store over the same persistence sees everything
	s2, err := Open(p)
	is.NoErr(err)
	d, ok := s2.FindDay("2024-01-05")
	is.True(ok)
	is.Equal(d.Items[0].Text, "persisted")
	is.Equal(d.Items[0].StartTime.String(), "09:00")
	is.Equal(d.Items[0].EndTime.String(), "10:20")
	is.Equal(d.Items[0].Description, "with notes")
	is.True(d.Items[0].Order == nil) // absent stays absent
	is.Equal(len(s2.Pool()), 1)
	is.Equal(s2.Scroll(), 42)
}

func TestEveryMutationWritesThrough(t *testing.T) {
	is := is.New(t)
	p := newMemoryPersistence()
	s, _ := Open(p)

	before := p.writes
	is.NoErr(s.UpsertItem("2024-01-05", planner.New("a")))
	is.True(p.writes > before)

	before = p.writes
	s.InsertPoolItem(planner.New("b"), Append)
	is.True(p.writes > before)
}

func TestSubscribeDeliversNotices(t *testing.T) {
	is := is.New(t)
	s, _ := Open(newMemoryPersistence())
	ch := s.Subscribe()

	is.NoErr(s.UpsertItem("2024-01-05", planner.New("a")))

	select {
	case n := <-ch:
		is.Equal(n.Kind, NoticeDayChanged)
		is.Equal(n.Date, "2024-01-05")
	default:
		t.Fatalf("expected a buffered notice")
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	is := is.New(t)
	s, _ := Open(newMemoryPersistence())
	item := planner.New("a")
	item.StartTime = clock(9, 0)
	item.EndTime = clock(10, 0)
	is.NoErr(s.UpsertItem("2024-01-05", item))

	d, _ := s.FindDay("2024-01-05")
	d.Items[0].Text = "mutated"
	d.Items[0].StartTime.Hour = 3

	fresh, _ := s.FindDay("2024-01-05")
	is.Equal(fresh.Items[0].Text, "a")
	is.Equal(fresh.Items[0].StartTime.Hour, 9)
}
