package teaui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/xisnul/pkg/app"
)

// Run launches the Bubble Tea reader and blocks until it exits.
func Run(ctx context.Context, svc *app.Service, opts Options) error {
	m := New(ctx, svc, opts)
	defer m.b.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
