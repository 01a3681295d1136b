package planner

import (
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

// Day is one day's bucket of items plus its journal fields. The journal
// fields are opaque pass-through state for this package.
type Day struct {
	Date     string `json:"date"`
	Items    []Item `json:"items"`
	Tasks    string `json:"tasks,omitempty"`
	GreatDay string `json:"greatDay,omitempty"`
	Grateful string `json:"grateful,omitempty"`
}

// ParseDate validates a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(layoutISO, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("planner: invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(layoutISO)
}

// IndexOf returns the position of the item with the given id, or -1.
func (d Day) IndexOf(id string) int {
	for i, it := range d.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Empty reports whether the day carries no items and no journal text, in
// which case its bucket may be pruned.
func (d Day) Empty() bool {
	return len(d.Items) == 0 && d.Tasks == "" && d.GreatDay == "" && d.Grateful == ""
}

// TimeBlocked returns the day's time-blocked items in bucket order.
func (d Day) TimeBlocked() []Item {
	out := make([]Item, 0, len(d.Items))
	for _, it := range d.Items {
		if it.TimeBlocked() {
			out = append(out, it)
		}
	}
	return out
}

// Clone deep-copies the day.
func (d Day) Clone() Day {
	out := d
	out.Items = CloneItems(d.Items)
	return out
}
