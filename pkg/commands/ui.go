package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/commands/options"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/dialog"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	do := &options.DayOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive day planner",
		Example: `
bjt ui
bjt ui --on="2024-01-05"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			svc, p, err := newService()
			if err != nil {
				return err
			}
			// The TUI edits in place, so drops commit immediately instead
			// of waiting on a form.
			svc.Dialog = dialog.AutoCommit{}

			date, err := do.GetOn()
			if err != nil {
				return err
			}
			return tui.Run(context.Background(), svc, p, date)
		},
	}

	options.AddDayArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
