package dash

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryansoe/eventory/pkg/app"
	"github.com/ryansoe/eventory/pkg/deadline"
	"github.com/ryansoe/eventory/pkg/tui"
)

type Dashboard struct {
	Demo    bool
	Service *app.Service
}

func (n *Dashboard) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not open dashboard, no service")
	}

	records, err := n.Service.Records(ctx, n.Demo)
	if err != nil {
		return err
	}

	var reload func() ([]deadline.Record, error)
	if !n.Demo {
		reload = func() ([]deadline.Record, error) {
			return n.Service.Records(ctx, false)
		}
	}

	p := tea.NewProgram(tui.New(records, reload), tea.WithAltScreen())

	// Nudge the dashboard when another process rewrites the cache.
	if !n.Demo && n.Service.Persistence != nil {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		events, err := n.Service.Watch(watchCtx)
		if err == nil {
			go func() {
				for range events {
					p.Send(tui.ReloadMsg{})
				}
			}()
		}
	}

	_, err = p.Run()
	return err
}
