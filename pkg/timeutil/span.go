package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	spanPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap     = map[string]int{
		"m":       1,
		"min":     1,
		"mins":    1,
		"minute":  1,
		"minutes": 1,
		"h":       60,
		"hr":      60,
		"hrs":     60,
		"hour":    60,
		"hours":   60,
	}
)

// ParseSpan parses a human-friendly block length (for example "90m", "2h",
// or "1h30m") into minutes. Spans are bounded by a single day.
func ParseSpan(input string) (int, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, fmt.Errorf("empty duration")
	}

	total := 0
	for len(remaining) > 0 {
		matches := spanPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid duration segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("invalid duration value %q: %w", matches[1], err)
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported duration unit %q", matches[2])
		}
		total += value * base

		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, fmt.Errorf("duration must be greater than zero")
	}
	if total > 24*60 {
		return 0, fmt.Errorf("duration %q exceeds a day", input)
	}
	return total, nil
}

// FormatSpan renders minutes using hour and minute tokens, "1h30m" style.
func FormatSpan(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%dm", h, m)
	}
}
