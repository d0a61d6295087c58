package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"github.com/nrcx/pomo/internal/config"
	"github.com/nrcx/pomo/internal/domain"
	"github.com/nrcx/pomo/internal/ports"
)

// Run starts the timer interface and blocks until the user quits or the
// context is cancelled. The engine is mutated only from inside the
// Bubbletea event loop, so ticks and user actions are serialized.
func Run(ctx context.Context, timer *domain.Timer, theme *config.ThemeConfig, snd ports.Sound, notifier ports.Notifier) error {
	model := NewModel(timer, theme, snd, notifier)

	// Seed the layout so the first frame renders before the initial
	// WindowSizeMsg arrives.
	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil {
		model.width = w
		model.height = h
		model.progress.Width = w - 4
	}

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
