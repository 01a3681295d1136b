package planner

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of wall-clock minutes in one day.
const MinutesPerDay = 24 * 60

// Clock is a wall-clock time of day with minute precision. The zero value is
// midnight. EndOfDay (24:00) is permitted so a block may end exactly at the
// day boundary; it is never a valid start.
type Clock struct {
	Hour   int
	Minute int
}

// EndOfDay is the exclusive upper bound for a time block.
var EndOfDay = Clock{Hour: 24, Minute: 0}

// ParseClock parses an "HH:MM" 24-hour string. Out-of-range values are
// rejected rather than wrapped.
func ParseClock(s string) (Clock, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return Clock{}, fmt.Errorf("planner: invalid clock %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return Clock{}, fmt.Errorf("planner: invalid clock %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return Clock{}, fmt.Errorf("planner: invalid clock %q: %w", s, err)
	}
	c := Clock{Hour: h, Minute: m}
	if m < 0 || m > 59 || h < 0 || h > 23 {
		if c != EndOfDay {
			return Clock{}, fmt.Errorf("planner: clock %q out of range", s)
		}
	}
	return c, nil
}

// ClockFromMinutes converts minutes-from-midnight into a Clock. Values
// outside [0, MinutesPerDay] are rejected.
func ClockFromMinutes(mins int) (Clock, error) {
	if mins < 0 || mins > MinutesPerDay {
		return Clock{}, fmt.Errorf("planner: %d minutes out of range", mins)
	}
	return Clock{Hour: mins / 60, Minute: mins % 60}, nil
}

// Minutes returns the clock as minutes from midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Before reports whether c is strictly earlier than other.
func (c Clock) Before(other Clock) bool {
	return c.Minutes() < other.Minutes()
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MarshalJSON encodes the clock as an "HH:MM" string.
func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes an "HH:MM" string.
func (c *Clock) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
