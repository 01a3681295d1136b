package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/commands/options"
)

func addAdd(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	to := &options.TimeOptions{}

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a task to a day or to the unscheduled pool",
		Example: `
bjt add film intro
bjt add --on="2024-01-05" --start="09:00" --end="10:00" edit episode 4
bjt add --on="2024-01-05" --start="14:00" --for="1h30m" record voiceover
bjt add --pool brainstorm thumbnails
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("requires the task text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			text := strings.Join(args, " ")

			svc, _, err := newService()
			if err != nil {
				return err
			}

			if do.Pool {
				_, err := svc.AddToPool(text)
				return err
			}

			date, err := do.GetOn()
			if err != nil {
				return err
			}
			start, end, err := to.GetTimes()
			if err != nil {
				return err
			}
			_, err = svc.AddToDay(date, text, start, end)
			return err
		},
	}

	options.AddDayArgs(cmd, do)
	options.AddTimeArgs(cmd, to)

	topLevel.AddCommand(cmd)
}
