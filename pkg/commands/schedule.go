package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/dragdrop"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/planner"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/store"
)

func addSchedule(topLevel *cobra.Command) {
	var to, at string

	cmd := &cobra.Command{
		Use:   "schedule [item id]",
		Short: "Schedule a pool item onto a day",
		Long: `Schedule takes an item from the unscheduled pool and places it on a
day. The edit dialog opens first; cancelling it returns the item to the
pool unchanged.`,
		Example: `
bjt schedule 4f7c... --to="2024-01-06"
bjt schedule 4f7c... --to="2024-01-06" --at="09:00"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one item id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if to == "" {
				return errors.New("requires --to")
			}

			svc, _, err := newService()
			if err != nil {
				return err
			}

			target := dragdrop.Target{Date: to, Index: store.Append}
			if at != "" {
				slot, err := planner.ParseClock(at)
				if err != nil {
					return err
				}
				target.Slot = &slot
			}

			return svc.Drop(dragdrop.Payload{
				ItemID:   args[0],
				FromPool: true,
			}, target)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "The destination day.")
	cmd.Flags().StringVar(&at, "at", "", `Schedule onto a time slot, example: --at="09:00".`)

	topLevel.AddCommand(cmd)
}
