// Package tui is the interactive trip board: one column per day, activities
// grouped by time of day, keyboard pick-up/drop for rearranging.
package tui

import (
	"context"
	"errors"

	"tripweaver-cli/internal/trip"

	tea "github.com/charmbracelet/bubbletea"
)

func Run(ctx context.Context, c *trip.Controller, opts Options) error {
	applyThemePreference()
	applyColorProfilePreference()
	_, err := tea.NewProgram(New(c, opts), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
