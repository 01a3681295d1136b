package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/app"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/commands/options"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/dialog"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "bjt",
		Short: options.Wrap80("Time-block planning on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addMove(topLevel)
	addSchedule(topLevel)
	addVersion(topLevel)
}

// newService opens persistence and the store for one command invocation.
func newService() (*app.Service, store.Persistence, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, nil, err
	}
	s, err := store.Open(p)
	if err != nil {
		return nil, nil, err
	}
	svc := &app.Service{
		Store:  s,
		Dialog: &dialog.Stdin{In: os.Stdin, Out: os.Stdout},
	}
	return svc, p, nil
}
