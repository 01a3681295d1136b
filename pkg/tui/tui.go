// Package tui hosts the terminal planner surfaces.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/app"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/store"
	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/tui/dayview"
)

// refreshMsg asks the active view to reload from the store. It carries no
// payload: the store is the single source of truth and views recompute
// their derived state from it.
type refreshMsg struct{}

type rootModel struct {
	day *dayview.Model
}

func (m rootModel) Init() tea.Cmd {
	return m.day.Init()
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case refreshMsg:
		m.day.Refresh()
		return m, nil
	}
	day, cmd := m.day.Update(msg)
	m.day = day
	return m, cmd
}

func (m rootModel) View() string {
	return m.day.View()
}

// Run starts the TUI on the given date and blocks until the user quits.
// Same-process store notices and cross-process persistence watch events
// both feed the same refresh path so every surface stays current.
func Run(ctx context.Context, svc *app.Service, p store.Persistence, date string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	root := rootModel{day: dayview.New(svc, date)}
	prog := tea.NewProgram(root, tea.WithAltScreen(), tea.WithMouseAllMotion())

	notices := svc.Store.Subscribe()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-notices:
				prog.Send(refreshMsg{})
			}
		}
	}()

	if p != nil {
		events, err := p.Watch(ctx)
		if err == nil {
			go func() {
				for range events {
					prog.Send(refreshMsg{})
				}
			}()
		}
	}

	_, err := prog.Run()
	return err
}
