// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/planner"
)

// DayOptions captures the day selection flags for commands.
type DayOptions struct {
	OnString string
	Pool     bool
}

// AddDayArgs wires day-selection flags on the provided command.
func AddDayArgs(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify the day, example: --on="2024-01-05". Defaults to today.`)
	cmd.Flags().BoolVar(&o.Pool, "pool", false,
		"Target the unscheduled pool instead of a day.")
}

// GetOn resolves the selected date, defaulting to today. Returns the
// empty pool reference when --pool was given.
func (o *DayOptions) GetOn() (string, error) {
	if o.Pool {
		return "", nil
	}
	if o.OnString == "" {
		return planner.FormatDate(time.Now()), nil
	}
	t, err := planner.ParseDate(o.OnString)
	if err != nil {
		return "", err
	}
	return planner.FormatDate(t), nil
}
