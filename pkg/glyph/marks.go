package glyph

import "fmt"

// Glyph is a one-cell marker drawn next to an item in listings.
type Glyph struct {
	Symbol  string
	Meaning string
}

const (
	escape     = "\x1b"
	resetCode  = 0
	boldCode   = 1
	strikeCode = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

type Mark int

const (
	Task Mark = iota
	Completed
	Block
	Pooled
	Calendar
)

func DefaultGlyphs() []Glyph {
	return []Glyph{
		{Symbol: "●", Meaning: "task"},
		{Symbol: "✘", Meaning: "task completed"},
		{Symbol: "○", Meaning: "time block"},
		{Symbol: "⁃", Meaning: "unscheduled idea"},
		{Symbol: "✷", Meaning: "content calendar"},
	}
}

func (m Mark) Glyph() Glyph {
	return DefaultGlyphs()[m]
}

func (m Mark) String() string {
	return m.Glyph().Symbol
}

// For picks the marker for an item's state. Completion wins over the
// other states so finished blocks read as done in every listing.
func For(completed, timeBlocked, calendar bool) Mark {
	switch {
	case completed:
		return Completed
	case calendar:
		return Calendar
	case timeBlocked:
		return Block
	default:
		return Task
	}
}
