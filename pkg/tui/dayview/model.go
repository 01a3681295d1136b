// Package dayview renders one day's timeline and drives the timeline
// gestures from terminal mouse events. One terminal row is one slot, so
// the daily scale's pixel math is reused by converting rows to pixels at
// the row boundary and nowhere else.
package dayview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/app"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/gesture"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/layout"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/planner"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/timegrid"
)

const (
	gutterWidth = 7 // "HH:MM "
	headerRows  = 2
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
)

var (
	gutterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	blockStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
	previewStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("99"))
	doneStyle    = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("243"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Model is the daily planner surface.
type Model struct {
	svc  *app.Service
	date string

	day        planner.Day
	placements map[string]layout.Placement

	scale  timegrid.Scale
	create *gesture.Create
	resize *gesture.Resize

	// resizeTarget is the item whose edge the active resize drags.
	resizeTarget string

	mode  mode
	input textinput.Model
	// pendingStart/End hold a committed create gesture while the title
	// prompt is open.
	pendingStart planner.Clock
	pendingEnd   planner.Clock

	scrollRow int // first visible slot row
	width     int
	height    int
	status    string

	now func() time.Time
}

// New builds a day view for the given date.
func New(svc *app.Service, date string) *Model {
	ti := textinput.New()
	ti.Placeholder = "Block title"
	ti.CharLimit = 256
	ti.Prompt = "> "

	scale := timegrid.Daily
	m := &Model{
		svc:        svc,
		date:       date,
		scale:      scale,
		create:     gesture.NewCreate(scale, scale.SlotMinutes),
		resize:     gesture.NewResize(scale),
		input:      ti,
		scrollRow:  minutesToRow(8 * 60), // open on the working morning
		now:        time.Now,
		placements: map[string]layout.Placement{},
	}
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd { return nil }

// Update handles key and mouse input.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if mouse.Button == tea.MouseLeft {
			m.press(mouse.X, mouse.Y)
		}
	case tea.MouseMotionMsg:
		mouse := msg.Mouse()
		m.move(mouse.Y)
	case tea.MouseReleaseMsg:
		mouse := msg.Mouse()
		m.release(mouse.Y)
	case tea.MouseWheelMsg:
		mouse := msg.Mouse()
		if mouse.Button == tea.MouseWheelUp {
			m.scrollBy(-1)
		} else if mouse.Button == tea.MouseWheelDown {
			m.scrollBy(1)
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (*Model, tea.Cmd) {
	if m.mode == modeInsert {
		switch msg.String() {
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text != "" {
				start, end := m.pendingStart, m.pendingEnd
				if _, err := m.svc.AddToDay(m.date, text, &start, &end); err != nil {
					m.status = "ERR: " + err.Error()
				}
				m.refresh()
			}
			m.mode = modeNormal
			m.input.SetValue("")
		case "esc":
			m.mode = modeNormal
			m.input.SetValue("")
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.scrollBy(-1)
	case "down", "j":
		m.scrollBy(1)
	case "r":
		m.refresh()
	}
	return m, nil
}

// press routes a left press to the resize machine when it lands on a
// block edge and to the create machine when it lands on empty timeline.
func (m *Model) press(x, y int) {
	offset, ok := m.rowToPixel(y)
	if !ok || x < gutterWidth {
		return
	}
	if item, edge, onEdge := m.edgeAt(y); onEdge {
		if m.resize.Press(item, edge, offset) {
			m.resizeTarget = item.ID
		}
		return
	}
	if m.itemAt(y) == nil {
		m.create.Press(offset)
	}
}

func (m *Model) move(y int) {
	offset, ok := m.rowToPixel(y)
	if !ok {
		return
	}
	if m.resize.Active() {
		m.resize.Move(offset)
		return
	}
	m.create.Move(offset)
}

func (m *Model) release(y int) {
	if m.resize.Active() {
		if start, end, ok := m.resize.Release(m.now()); ok {
			if err := m.svc.CommitResize(m.date, m.resizeTarget, start, end); err != nil {
				m.status = "ERR: " + err.Error()
			}
			m.refresh()
		}
		m.resizeTarget = ""
		return
	}
	if m.create.Active() {
		if offset, ok := m.rowToPixel(y); ok {
			m.create.Move(offset)
		}
		if start, end, ok := m.create.Release(); ok {
			m.mode = modeInsert
			m.pendingStart = start
			m.pendingEnd = end
			m.input.Focus()
		}
		return
	}
	// A bare click opens the editor unless a resize just finished here.
	if item := m.itemAt(y); item != nil && !m.resize.SuppressClick(m.now()) {
		if err := m.svc.OpenEdit(m.date, item.ID); err != nil {
			m.status = "ERR: " + err.Error()
		}
		m.refresh()
	}
}

// Refresh reloads the day from the store, for external change
// notifications.
func (m *Model) Refresh() {
	m.refresh()
}

// refresh reloads the day and recomputes overlap placements.
func (m *Model) refresh() {
	day, placements, err := m.svc.Day(m.date)
	if err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.day = day
	m.placements = make(map[string]layout.Placement, len(placements))
	for _, p := range placements {
		m.placements[p.ItemID] = p
	}
}

func (m *Model) scrollBy(rows int) {
	m.scrollRow += rows
	maxRow := minutesToRow(planner.MinutesPerDay) - m.visibleRows()
	if m.scrollRow > maxRow {
		m.scrollRow = maxRow
	}
	if m.scrollRow < 0 {
		m.scrollRow = 0
	}
	if m.svc.Store != nil {
		m.svc.Store.SetScroll(m.scrollRow)
	}
}

func (m *Model) visibleRows() int {
	rows := m.height - headerRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

// rowToPixel converts a terminal row to the timeline pixel offset the
// grid mapper understands.
func (m *Model) rowToPixel(y int) (float64, bool) {
	row := y - headerRows + m.scrollRow
	if row < 0 || row >= minutesToRow(planner.MinutesPerDay) {
		return 0, false
	}
	return float64(row) * timegrid.Daily.SlotPx(), true
}

func minutesToRow(mins int) int {
	return mins / timegrid.Daily.SlotMinutes
}

// itemAt returns the time-blocked item covering the row, preferring the
// topmost placement the way a pointer hit-test would.
func (m *Model) itemAt(y int) *planner.Item {
	row := y - headerRows + m.scrollRow
	var hit *planner.Item
	hitZ := -1
	for i := range m.day.Items {
		it := &m.day.Items[i]
		if !it.TimeBlocked() {
			continue
		}
		top := minutesToRow(it.StartTime.Minutes())
		bottom := minutesToRow(it.EndTime.Minutes())
		if row >= top && row < bottom {
			if z := m.placements[it.ID].ZIndex; z > hitZ {
				hit = it
				hitZ = z
			}
		}
	}
	return hit
}

// edgeAt reports whether the row is the first or last row of a block.
func (m *Model) edgeAt(y int) (planner.Item, gesture.Edge, bool) {
	item := m.itemAt(y)
	if item == nil {
		return planner.Item{}, gesture.EdgeTop, false
	}
	row := y - headerRows + m.scrollRow
	if row == minutesToRow(item.StartTime.Minutes()) {
		return *item, gesture.EdgeTop, true
	}
	if row == minutesToRow(item.EndTime.Minutes())-1 {
		return *item, gesture.EdgeBottom, true
	}
	return planner.Item{}, gesture.EdgeTop, false
}

// View renders the visible window of the day's timeline.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.date))
	if m.mode == modeInsert {
		b.WriteString("  ")
		b.WriteString(m.input.View())
	} else if m.status != "" {
		b.WriteString("  ")
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n\n")

	previewStart, previewEnd, hasPreview := m.create.Preview()

	rows := m.visibleRows()
	for r := 0; r < rows; r++ {
		row := m.scrollRow + r
		mins := row * timegrid.Daily.SlotMinutes
		if mins >= planner.MinutesPerDay {
			break
		}
		b.WriteString(m.renderRow(row, mins, previewStart, previewEnd, hasPreview))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderRow(row, mins int, pStart, pEnd planner.Clock, hasPreview bool) string {
	gutter := "      "
	if mins%60 == 0 {
		c, _ := planner.ClockFromMinutes(mins)
		gutter = c.String() + " "
	} else {
		gutter = strings.Repeat(" ", gutterWidth-1)
	}
	line := gutterStyle.Render(gutter)

	if hasPreview && mins >= pStart.Minutes() && mins < pEnd.Minutes() {
		label := fmt.Sprintf(" %s - %s ", pStart, pEnd)
		return line + previewStyle.Render(label)
	}

	if item := m.itemAtRow(row); item != nil {
		style := blockStyle
		label := " " + item.Text + " "
		if row == minutesToRow(item.StartTime.Minutes()) {
			label = fmt.Sprintf(" %s  %s-%s ", item.Text, item.StartTime, item.EndTime)
		}
		if item.IsCompleted {
			style = doneStyle
		}
		if p, ok := m.placements[item.ID]; ok && !p.Background && p.TotalColumns > 0 {
			return line + strings.Repeat(" ", m.columnPad(p)) + style.Render(label)
		}
		return line + style.Render(label)
	}
	return line
}

// columnPad converts a placement's left offset into indentation cells,
// scaled to the width left of the gutter.
func (m *Model) columnPad(p layout.Placement) int {
	band := m.width - gutterWidth
	if band <= 0 {
		band = 40
	}
	return int(p.LeftPercent / 100 * float64(band))
}

func (m *Model) itemAtRow(row int) *planner.Item {
	return m.itemAt(row + headerRows - m.scrollRow)
}
