// Package dialog provides edit-dialog collaborator implementations. The
// core never renders a form itself; it hands an EditRequest to whichever
// implementation the host surface wired in.
package dialog

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/dragdrop"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/planner"
)

// Stdin confirms scheduling on the terminal. Empty answers keep the
// prefilled value; an explicit "cancel" aborts, which callers treat as
// the rollback path.
type Stdin struct {
	In  io.Reader
	Out io.Writer
}

var _ dragdrop.Dialog = (*Stdin)(nil)

// Edit prompts for the item's fields and returns the committed item, or
// ok false when the user cancels.
func (d *Stdin) Edit(req dragdrop.EditRequest) (planner.Item, bool) {
	in := bufio.NewScanner(d.In)
	item := req.Existing
	item.Date = req.Date
	if req.Start != nil {
		c := *req.Start
		item.StartTime = &c
	}
	if req.End != nil {
		c := *req.End
		item.EndTime = &c
	}

	bold := color.New(color.Bold)
	_, _ = bold.Fprintf(d.Out, "schedule %q on %s", item.Text, req.Date)
	if item.TimeBlocked() {
		fmt.Fprintf(d.Out, " %s-%s", item.StartTime, item.EndTime)
	}
	fmt.Fprintln(d.Out)

	fmt.Fprintf(d.Out, "title [%s]: ", item.Text)
	if !in.Scan() {
		return planner.Item{}, false
	}
	switch answer := strings.TrimSpace(in.Text()); answer {
	case "":
	case "cancel":
		return planner.Item{}, false
	default:
		item.Text = answer
	}

	fmt.Fprint(d.Out, "confirm? [Y/n]: ")
	if !in.Scan() {
		return planner.Item{}, false
	}
	switch strings.ToLower(strings.TrimSpace(in.Text())) {
	case "", "y", "yes":
		return item, true
	default:
		return planner.Item{}, false
	}
}

// AutoCommit accepts every edit request unchanged. Surfaces that edit
// in place after the fact (the TUI) use it so drops land immediately.
type AutoCommit struct{}

var _ dragdrop.Dialog = AutoCommit{}

func (AutoCommit) Edit(req dragdrop.EditRequest) (planner.Item, bool) {
	item := req.Existing
	item.Date = req.Date
	if req.Start != nil {
		c := *req.Start
		item.StartTime = &c
	}
	if req.End != nil {
		c := *req.End
		item.EndTime = &c
	}
	return item, true
}
