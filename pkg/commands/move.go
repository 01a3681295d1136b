package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/dragdrop"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/planner"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/store"
)

func addMove(topLevel *cobra.Command) {
	var from, to, at string
	var toPool bool

	cmd := &cobra.Command{
		Use:   "move [item id]",
		Short: "Move an item between days, onto a time slot, or to the pool",
		Example: `
bjt move 4f7c... --from="2024-01-05" --to="2024-01-06"
bjt move 4f7c... --from="2024-01-05" --to="2024-01-05" --at="14:00"
bjt move 4f7c... --from="2024-01-05" --to-pool
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one item id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if from == "" {
				return errors.New("requires --from")
			}
			if !toPool && to == "" {
				return errors.New("requires --to or --to-pool")
			}

			svc, _, err := newService()
			if err != nil {
				return err
			}

			target := dragdrop.Target{Date: to, Index: store.Append}
			if toPool {
				target.Date = store.Pool
			}
			if at != "" {
				slot, err := planner.ParseClock(at)
				if err != nil {
					return err
				}
				target.Slot = &slot
			}

			return svc.Drop(dragdrop.Payload{
				ItemID:   args[0],
				FromDate: from,
			}, target)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "The item's current day.")
	cmd.Flags().StringVar(&to, "to", "", "The destination day.")
	cmd.Flags().StringVar(&at, "at", "", `Drop onto a time slot, example: --at="14:00".`)
	cmd.Flags().BoolVar(&toPool, "to-pool", false, "Unschedule the item into the pool.")

	topLevel.AddCommand(cmd)
}
