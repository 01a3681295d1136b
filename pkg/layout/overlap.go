// Package layout assigns lateral positions to a day's time-blocked items so
// overlapping blocks render side by side instead of on top of each other.
package layout

import (
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/planner"
)

// Foreground members of an overlap group share the right-hand band of the
// row; the remainder stays visible so the background block can be read.
const foregroundBandPercent = 55.0

// Placement is the computed visual position for one item. It is derived
// state: recompute it whenever the day's items or their times change, never
// persist it.
type Placement struct {
	ItemID       string
	Column       int
	TotalColumns int
	Background   bool
	LeftPercent  float64
	WidthPercent float64
	ZIndex       int
}

type interval struct {
	index int
	id    string
	start int
	end   int
}

// overlaps reports whether two half-open intervals intersect. Zero-duration
// or inverted intervals never intersect anything.
func (a interval) overlaps(b interval) bool {
	if a.end <= a.start || b.end <= b.start {
		return false
	}
	return a.start < b.end && a.end > b.start
}

// Place computes placements for the given items. Items that are not
// time-blocked are skipped. The result is keyed by item id and ordered by
// the input order of the items it covers.
func Place(items []planner.Item) []Placement {
	blocks := make([]interval, 0, len(items))
	for i, it := range items {
		if !it.TimeBlocked() {
			continue
		}
		blocks = append(blocks, interval{
			index: i,
			id:    it.ID,
			start: it.StartTime.Minutes(),
			end:   it.EndTime.Minutes(),
		})
	}

	placements := make([]Placement, 0, len(blocks))
	for _, group := range groupOverlapping(blocks) {
		placements = append(placements, placeGroup(group)...)
	}
	return placements
}

// groupOverlapping partitions the blocks into transitive overlap groups.
// Each group is seeded from the first ungrouped block in input order, then
// absorbs any remaining block that intersects a current member until a full
// pass absorbs nothing. Chaining through a middle block is intended: if A-B
// and B-C overlap, all three share a group even when A and C do not touch.
func groupOverlapping(blocks []interval) [][]interval {
	grouped := make([]bool, len(blocks))
	var groups [][]interval
	for seed := range blocks {
		if grouped[seed] {
			continue
		}
		group := []interval{blocks[seed]}
		grouped[seed] = true
		for {
			absorbed := false
			for i := range blocks {
				if grouped[i] {
					continue
				}
				for _, member := range group {
					if blocks[i].overlaps(member) {
						group = append(group, blocks[i])
						grouped[i] = true
						absorbed = true
						break
					}
				}
			}
			if !absorbed {
				break
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// placeGroup lays out one overlap group. A singleton spans the full row.
// Otherwise the longest block (first seen on ties) becomes the background
// at full width and lowest z, and the remaining members split the right
// band into equal columns ordered by original index.
func placeGroup(group []interval) []Placement {
	if len(group) == 1 {
		return []Placement{{
			ItemID:       group[0].id,
			TotalColumns: 1,
			LeftPercent:  0,
			WidthPercent: 100,
			ZIndex:       1,
		}}
	}

	background := 0
	for i := 1; i < len(group); i++ {
		d, best := duration(group[i]), duration(group[background])
		if d > best || (d == best && group[i].index < group[background].index) {
			background = i
		}
	}

	foreground := make([]interval, 0, len(group)-1)
	for i, b := range group {
		if i != background {
			foreground = append(foreground, b)
		}
	}
	// Columns follow the original bucket order, not absorption order.
	sortByIndex(foreground)

	columns := len(foreground)
	width := foregroundBandPercent / float64(columns)
	left := 100 - foregroundBandPercent

	out := make([]Placement, 0, len(group))
	out = append(out, Placement{
		ItemID:       group[background].id,
		TotalColumns: columns,
		Background:   true,
		LeftPercent:  0,
		WidthPercent: 100,
		ZIndex:       1,
	})
	for col, b := range foreground {
		out = append(out, Placement{
			ItemID:       b.id,
			Column:       col,
			TotalColumns: columns,
			LeftPercent:  left + float64(col)*width,
			WidthPercent: width,
			ZIndex:       2 + col,
		})
	}
	return out
}

func duration(b interval) int {
	return b.end - b.start
}

func sortByIndex(blocks []interval) {
	for i := 1; i < len(blocks); i++ {
		for j := i; j > 0 && blocks[j].index < blocks[j-1].index; j-- {
			blocks[j], blocks[j-1] = blocks[j-1], blocks[j]
		}
	}
}
