package commands

import (
	"github.com/spf13/cobra"

	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/commands/options"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/planner"
)

func addGet(topLevel *cobra.Command) {
	do := &options.DayOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show a day's schedule or the unscheduled pool",
		Example: `
bjt get
bjt get --on="2024-01-05"
bjt get --pool
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			svc, _, err := newService()
			if err != nil {
				return err
			}

			if do.Pool {
				items, err := svc.Pool()
				if err != nil {
					return err
				}
				planner.PrettyPrintPool(items)
				return nil
			}

			date, err := do.GetOn()
			if err != nil {
				return err
			}
			day, _, err := svc.Day(date)
			if err != nil {
				return err
			}
			planner.PrettyPrintDay(day)
			return nil
		},
	}

	options.AddDayArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
