package src

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// RunTUI starts the interactive terminal interface and blocks until quit.
func RunTUI(ctx context.Context, cfg Config) error {
	client := NewOpenAIClient(cfg)
	m := NewModel(ctx, cfg, client)

	p := tea.NewProgram(m, tea.WithAltScreen())
	m.Program = p

	_, err := p.Run()
	return err
}
