// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nrcx/pomo/internal/config"
	"github.com/nrcx/pomo/internal/domain"
	"github.com/nrcx/pomo/internal/ports"
)

// resolveTheme fills any empty string fields in the given ThemeConfig with
// defaults. If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// tickMsg is sent once per second while the countdown runs. The sequence
// number identifies which tick chain scheduled it; messages from a
// superseded chain are discarded.
type tickMsg struct {
	seq int
}

// Model represents the TUI state. It owns the countdown engine and the
// single active tick chain that drives it.
type Model struct {
	timer    *domain.Timer
	progress progress.Model
	theme    config.ThemeConfig

	sound    ports.Sound
	notifier ports.Notifier

	width  int
	height int

	// tickSeq identifies the active tick chain. Every stop or start bumps
	// it, so a tick scheduled before the change lands with a stale
	// sequence and cannot touch the new state. At most one chain is ever
	// live: cancel, then replace.
	tickSeq int

	// completed holds the interval banner shown after a countdown hits
	// zero, cleared by the next user action.
	completed *domain.Interval
}

// NewModel creates a new TUI model around a countdown engine.
func NewModel(timer *domain.Timer, theme *config.ThemeConfig, sound ports.Sound, notifier ports.Notifier) Model {
	return Model{
		timer:    timer,
		progress: progress.New(progress.WithDefaultGradient()),
		theme:    resolveTheme(theme),
		sound:    sound,
		notifier: notifier,
	}
}

// Init initializes the TUI. The timer starts stopped, so no tick chain
// is armed yet.
func (m Model) Init() tea.Cmd {
	return nil
}

// armTick starts a fresh tick chain and returns its first command.
func (m *Model) armTick() tea.Cmd {
	m.tickSeq++
	return tickCmd(m.tickSeq)
}

// cancelTick invalidates any in-flight tick without arming a new chain.
func (m *Model) cancelTick() {
	m.tickSeq++
}

// tickCmd schedules a tick message one second out, stamped with the
// chain it belongs to.
func tickCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 4

	case tickMsg:
		// A stale sequence means this tick was scheduled before a pause,
		// reset or mode switch and has been logically cancelled.
		if msg.seq != m.tickSeq || !m.timer.Running() {
			return m, nil
		}
		if done, ok := m.timer.Tick(); ok {
			m.cancelTick()
			m.completed = &done
			m.notifyCompletion(done)
			return m, nil
		}
		return m, tickCmd(m.tickSeq)
	}

	var cmd tea.Cmd
	newProgress, cmd := m.progress.Update(msg)
	if p, ok := newProgress.(progress.Model); ok {
		m.progress = p
	}
	return m, cmd
}

// updateKey applies a user action. Actions are serialized with ticks by
// the Bubbletea event loop; any action that stops the countdown cancels
// the tick chain before returning.
func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "1", "w":
		m.completed = nil
		m.cancelTick()
		m.timer.SwitchMode(domain.ModeWork)

	case "2", "b":
		m.completed = nil
		m.cancelTick()
		m.timer.SwitchMode(domain.ModeShortBreak)

	case "3", "l":
		m.completed = nil
		m.cancelTick()
		m.timer.SwitchMode(domain.ModeLongBreak)

	case "s", " ":
		m.completed = nil
		if m.timer.Running() {
			m.cancelTick()
			m.timer.ToggleRunning()
		} else {
			m.timer.ToggleRunning()
			return m, m.armTick()
		}

	case "r":
		m.completed = nil
		m.cancelTick()
		m.timer.Reset()
	}

	return m, nil
}

// notifyCompletion fires the tone and the desktop notification for a
// finished interval. Both are best-effort: the adapters swallow or
// return failures and nothing here reaches the countdown state.
func (m *Model) notifyCompletion(done domain.Interval) {
	if m.sound != nil {
		m.sound.Beep()
	}
	if m.notifier != nil {
		_ = m.notifier.IntervalComplete(done.Mode)
	}
}

// getThemeColor returns the color for the current mode.
func (m Model) getThemeColor() lipgloss.Color {
	if m.timer.Mode().IsBreak() {
		return lipgloss.Color(m.theme.ColorBreak)
	}
	return lipgloss.Color(m.theme.ColorWork)
}

// getTimerColor returns the color for the countdown, dimmed while stopped.
func (m Model) getTimerColor() lipgloss.Color {
	if !m.timer.Running() {
		return lipgloss.Color(m.theme.ColorPaused)
	}
	return m.getThemeColor()
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	statusStyle := lipgloss.NewStyle().Foreground(m.getThemeColor())
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var sections []string

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle)).MarginBottom(1)
	sections = append(sections, titleStyle.Render(fmt.Sprintf("%s pomo", m.theme.IconApp)))

	sections = append(sections, m.viewModeTabs())

	// Completion banner, until the next action
	if m.completed != nil {
		sections = append(sections, "")
		sections = append(sections, statusStyle.Render(m.completed.Mode.Label()+" complete!"))
		sections = append(sections, m.progress.ViewAs(1.0))
	}

	// Countdown
	sections = append(sections, "")
	sections = append(sections, renderClock(formatClock(m.timer.Remaining()), m.getTimerColor(), m.width))

	if !m.timer.Running() && m.timer.Progress() > 0 && m.completed == nil {
		pauseBadge := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(m.theme.ColorPaused)).
			Padding(0, 1).
			Render(fmt.Sprintf("%s PAUSED", m.theme.IconPaused))
		sections = append(sections, "")
		sections = append(sections, pauseBadge)
	}

	// Progress ring analog: completed fraction of the current interval
	sections = append(sections, "")
	sections = append(sections, m.viewProgress())

	// Statistics panel
	stats := m.timer.Stats()
	statsText := fmt.Sprintf("%s %d sessions completed, %d minutes focused",
		m.theme.IconStats, stats.WorkSessions, stats.FocusedMinutes)
	sections = append(sections, "")
	sections = append(sections, helpStyle.Render(statsText))

	// Help
	startLabel := "[s]tart"
	if m.timer.Running() {
		startLabel = "[s] pause"
	}
	sections = append(sections, "")
	sections = append(sections, helpStyle.Render(
		fmt.Sprintf("[1]work [2]short [3]long  %s  [r]eset  [q]uit", startLabel)))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// viewModeTabs renders the three mode-selection controls with the
// current mode highlighted.
func (m Model) viewModeTabs() string {
	active := lipgloss.NewStyle().Bold(true).Foreground(m.getThemeColor())
	inactive := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	tabs := ""
	for i, mode := range []domain.Mode{domain.ModeWork, domain.ModeShortBreak, domain.ModeLongBreak} {
		if i > 0 {
			tabs += "   "
		}
		if mode == m.timer.Mode() {
			tabs += active.Render("[" + mode.Label() + "]")
		} else {
			tabs += inactive.Render(" " + mode.Label() + " ")
		}
	}
	return tabs
}

// viewProgress renders the gradient progress bar for the current mode.
func (m Model) viewProgress() string {
	var pbar progress.Model
	switch {
	case !m.timer.Running():
		pbar = progress.New(progress.WithGradient(m.theme.PausedGradientStart, m.theme.PausedGradientEnd))
	case m.timer.Mode().IsBreak():
		pbar = progress.New(progress.WithGradient(m.theme.BreakGradientStart, m.theme.BreakGradientEnd))
	default:
		pbar = progress.New(progress.WithGradient(m.theme.WorkGradientStart, m.theme.WorkGradientEnd))
	}
	pbar.Width = m.width - 4
	return pbar.ViewAs(m.timer.Progress())
}

// formatClock formats a second count as zero-padded MM:SS.
func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
