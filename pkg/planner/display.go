package planner

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/glyph"
)

// PrettyPrintDay renders a day's schedule as a table: time-blocked items
// first with their spans, then the untimed list.
func PrettyPrintDay(d Day) {
	title := color.New(color.Bold, color.Underline)
	_, _ = title.Println(d.Date)

	if len(d.Items) == 0 {
		fmt.Println("  (empty)")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	for _, it := range d.Items {
		if it.TimeBlocked() {
			tbl.AddRow(fmt.Sprintf("%s-%s", it.StartTime, it.EndTime), mark(it), text(it))
		}
	}
	for _, it := range d.Items {
		if !it.TimeBlocked() {
			tbl.AddRow(string(it.Section), mark(it), text(it))
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// PrettyPrintPool renders the unscheduled pool.
func PrettyPrintPool(items []Item) {
	title := color.New(color.Bold, color.Underline)
	_, _ = title.Println("unscheduled")

	if len(items) == 0 {
		fmt.Println("  (empty)")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, it := range items {
		tbl.AddRow(glyph.Pooled.String(), text(it))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func mark(it Item) string {
	return glyph.For(it.IsCompleted, it.TimeBlocked(), it.IsContentCalendar).String()
}

func text(it Item) string {
	if it.IsCompleted {
		return glyph.Strike(it.Text)
	}
	return it.Text
}

