package planner

import (
	"sort"

	"github.com/google/uuid"
)

// Section is the legacy coarse grouping for untimed items. Explicit Order
// values supersede it when every compared item carries one.
type Section string

const (
	SectionMorning   Section = "morning"
	SectionMidday    Section = "midday"
	SectionAfternoon Section = "afternoon"
	SectionEvening   Section = "evening"
)

var sectionRank = map[Section]int{
	SectionMorning:   0,
	SectionMidday:    1,
	SectionAfternoon: 2,
	SectionEvening:   3,
}

// Rank returns the sort position of the section. Unknown sections sort last.
func (s Section) Rank() int {
	if r, ok := sectionRank[s]; ok {
		return r
	}
	return len(sectionRank)
}

// Item is one task or time block. An Item with Date set belongs to that
// day's bucket; with Date empty it lives in the unscheduled pool. Both
// StartTime and EndTime set makes the item time-blocked.
type Item struct {
	ID                string  `json:"id"`
	Text              string  `json:"text"`
	Section           Section `json:"section,omitempty"`
	IsCompleted       bool    `json:"isCompleted"`
	Date              string  `json:"date,omitempty"`
	StartTime         *Clock  `json:"startTime,omitempty"`
	EndTime           *Clock  `json:"endTime,omitempty"`
	Order             *int    `json:"order,omitempty"`
	Color             string  `json:"color,omitempty"`
	Description       string  `json:"description,omitempty"`
	IsContentCalendar bool    `json:"isContentCalendar,omitempty"`
}

// New creates an item with a fresh id in the morning section.
func New(text string) Item {
	return Item{
		ID:      uuid.NewString(),
		Text:    text,
		Section: SectionMorning,
	}
}

// TimeBlocked reports whether the item has both a start and an end time.
func (i Item) TimeBlocked() bool {
	return i.StartTime != nil && i.EndTime != nil
}

// Duration returns the block length in minutes, or 0 for untimed items.
func (i Item) Duration() int {
	if !i.TimeBlocked() {
		return 0
	}
	return i.EndTime.Minutes() - i.StartTime.Minutes()
}

// Clone returns a deep copy of the item; pointer fields are not shared.
func (i Item) Clone() Item {
	out := i
	if i.StartTime != nil {
		c := *i.StartTime
		out.StartTime = &c
	}
	if i.EndTime != nil {
		c := *i.EndTime
		out.EndTime = &c
	}
	if i.Order != nil {
		o := *i.Order
		out.Order = &o
	}
	return out
}

// CloneItems deep-copies a slice of items.
func CloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// SortItems orders items in place. When every item carries an explicit
// Order it defines a total order; otherwise items fall back to section
// ranking. The sort is stable so insertion order breaks ties.
func SortItems(items []Item) {
	ordered := true
	for _, it := range items {
		if it.Order == nil {
			ordered = false
			break
		}
	}
	sort.SliceStable(items, func(a, b int) bool {
		if ordered {
			return *items[a].Order < *items[b].Order
		}
		return items[a].Section.Rank() < items[b].Section.Rank()
	})
}
