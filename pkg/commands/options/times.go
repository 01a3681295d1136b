package options

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/planner"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/timeutil"
)

// TimeOptions captures the optional time-block flags for commands.
type TimeOptions struct {
	StartString string
	EndString   string
	ForString   string
}

// AddTimeArgs wires time-block flags on the provided command.
func AddTimeArgs(cmd *cobra.Command, o *TimeOptions) {
	cmd.Flags().StringVar(&o.StartString, "start", "",
		`Block start time, example: --start="09:00".`)
	cmd.Flags().StringVar(&o.EndString, "end", "",
		`Block end time, example: --end="10:00".`)
	cmd.Flags().StringVar(&o.ForString, "for", "",
		`Block length from the start time, example: --for="1h30m".`)
}

// GetTimes parses the flags into clocks. A block needs a start and either
// an explicit end or a length; anything partial is an error.
func (o *TimeOptions) GetTimes() (start, end *planner.Clock, err error) {
	if o.StartString == "" && o.EndString == "" && o.ForString == "" {
		return nil, nil, nil
	}
	if o.StartString == "" {
		return nil, nil, errors.New("--end and --for need --start")
	}
	s, err := planner.ParseClock(o.StartString)
	if err != nil {
		return nil, nil, err
	}

	var e planner.Clock
	switch {
	case o.EndString != "":
		e, err = planner.ParseClock(o.EndString)
		if err != nil {
			return nil, nil, err
		}
	case o.ForString != "":
		span, err := timeutil.ParseSpan(o.ForString)
		if err != nil {
			return nil, nil, err
		}
		mins := s.Minutes() + span
		if mins > planner.MinutesPerDay {
			mins = planner.MinutesPerDay
		}
		e, err = planner.ClockFromMinutes(mins)
		if err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, errors.New("--start needs --end or --for")
	}

	if !s.Before(e) {
		return nil, nil, errors.New("block start must come before its end")
	}
	return &s, &e, nil
}
