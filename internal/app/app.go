package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyaoi/termfolio/internal/ui"
)

// Run executes the Bubble Tea program for the portfolio.
func Run(ctx context.Context, state ui.State) error {
	model := ui.NewModel(state)
	defer model.Close()

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := program.Run()
	return err
}
