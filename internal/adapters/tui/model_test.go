package tui

// Key-flow tests exercise complete user interactions against the model,
// so regressions in key dispatch, tick sequencing, or completion wiring
// fail fast here.

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nrcx/pomo/internal/config"
	"github.com/nrcx/pomo/internal/domain"
)

func key(s string) tea.Msg {
	switch s {
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// fakeSound records completion tones.
type fakeSound struct {
	beeps int
}

func (f *fakeSound) Beep() { f.beeps++ }

// fakeNotifier records completion notifications.
type fakeNotifier struct {
	modes []domain.Mode
}

func (f *fakeNotifier) IntervalComplete(mode domain.Mode) error {
	f.modes = append(f.modes, mode)
	return nil
}

func newTestModel() Model {
	m := NewModel(domain.NewTimer(), nil, nil, nil)
	m.width = 80
	m.height = 24
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	result, cmd := m.Update(msg)
	updated, ok := result.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", result)
	}
	return updated, cmd
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{1500, "25:00"},
		{300, "05:00"},
		{90, "01:30"},
		{59, "00:59"},
		{0, "00:00"},
		{-3, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := formatClock(tt.seconds)
			if got != tt.want {
				t.Errorf("formatClock(%v) = %v, want %v", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestModel_StartArmsTick(t *testing.T) {
	m := newTestModel()

	m, cmd := update(t, m, key("s"))

	if !m.timer.Running() {
		t.Error("timer should be running after start")
	}
	if cmd == nil {
		t.Error("start should schedule a tick")
	}
}

func TestModel_PauseCancelsTick(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, key("s"))
	seq := m.tickSeq

	m, _ = update(t, m, key("s"))

	if m.timer.Running() {
		t.Error("timer should be stopped after pause")
	}
	if m.tickSeq == seq {
		t.Error("pause should invalidate the pending tick")
	}
}

func TestModel_TickDecrements(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, key("s"))

	m, cmd := update(t, m, tickMsg{seq: m.tickSeq})

	if m.timer.Remaining() != domain.WorkSeconds-1 {
		t.Errorf("Remaining() = %v, want %v", m.timer.Remaining(), domain.WorkSeconds-1)
	}
	if cmd == nil {
		t.Error("a running tick should re-arm the chain")
	}
}

func TestModel_StaleTickIgnored(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, key("s"))
	stale := m.tickSeq

	// Pause, then immediately restart: the tick scheduled before the
	// pause must not decrement the new chain's state.
	m, _ = update(t, m, key("s"))
	m, _ = update(t, m, key("s"))

	before := m.timer.Remaining()
	m, cmd := update(t, m, tickMsg{seq: stale})

	if m.timer.Remaining() != before {
		t.Errorf("stale tick decremented: %v -> %v", before, m.timer.Remaining())
	}
	if cmd != nil {
		t.Error("stale tick must not re-arm")
	}
}

func TestModel_TickAfterReset_NoDecrement(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, key("s"))
	stale := m.tickSeq

	m, _ = update(t, m, key("r"))

	m, _ = update(t, m, tickMsg{seq: stale})
	if m.timer.Remaining() != domain.WorkSeconds {
		t.Errorf("Remaining() = %v, want %v after reset", m.timer.Remaining(), domain.WorkSeconds)
	}
}

func TestModel_ModeSwitchKeys(t *testing.T) {
	tests := []struct {
		key  string
		want domain.Mode
	}{
		{"2", domain.ModeShortBreak},
		{"3", domain.ModeLongBreak},
		{"1", domain.ModeWork},
		{"b", domain.ModeShortBreak},
		{"l", domain.ModeLongBreak},
		{"w", domain.ModeWork},
	}

	m := newTestModel()
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			var cmd tea.Cmd
			m, cmd = update(t, m, key(tt.key))
			if m.timer.Mode() != tt.want {
				t.Errorf("Mode() = %v, want %v", m.timer.Mode(), tt.want)
			}
			if m.timer.Running() {
				t.Error("mode switch should stop the timer")
			}
			if m.timer.Remaining() != tt.want.Seconds() {
				t.Errorf("Remaining() = %v, want %v", m.timer.Remaining(), tt.want.Seconds())
			}
			if cmd != nil {
				t.Error("mode switch must not arm a tick")
			}
		})
	}
}

func TestModel_CompletionFiresNotifications(t *testing.T) {
	snd := &fakeSound{}
	notif := &fakeNotifier{}
	m := NewModel(domain.NewTimer(), nil, snd, notif)
	m.width = 80

	m, _ = update(t, m, key("2"))
	m, _ = update(t, m, key("s"))

	// Run the short break down to completion.
	for i := 0; i < domain.ShortBreakSeconds; i++ {
		m, _ = update(t, m, tickMsg{seq: m.tickSeq})
	}

	if snd.beeps != 1 {
		t.Errorf("beeps = %v, want 1", snd.beeps)
	}
	if len(notif.modes) != 1 || notif.modes[0] != domain.ModeShortBreak {
		t.Errorf("notified modes = %v, want [%v]", notif.modes, domain.ModeShortBreak)
	}
	if m.timer.Running() {
		t.Error("timer should stop on completion")
	}
	if m.timer.Mode() != domain.ModeWork {
		t.Errorf("Mode() = %v, want %v", m.timer.Mode(), domain.ModeWork)
	}
	if m.completed == nil {
		t.Error("completion banner should be set")
	}
}

func TestModel_CompletedBannerClearedByNextAction(t *testing.T) {
	m := newTestModel()
	done := domain.Interval{Mode: domain.ModeWork}
	m.completed = &done

	m, _ = update(t, m, key("s"))

	if m.completed != nil {
		t.Error("banner should clear on the next action")
	}
}

func TestModel_QuitKeys(t *testing.T) {
	for _, k := range []string{"q"} {
		m := newTestModel()
		_, cmd := m.Update(key(k))
		if cmd == nil {
			t.Fatalf("key %q should quit", k)
		}
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel()

	view := m.View()

	if view == "" {
		t.Error("View() should not return empty string")
	}
	if view == "Loading..." {
		t.Error("View() should not show loading when width is set")
	}
	if !strings.Contains(view, "25:00") && !strings.Contains(view, "█") {
		t.Error("View() should render the countdown")
	}
	if !strings.Contains(view, "0 sessions completed") {
		t.Error("View() should render the statistics panel")
	}
}

func TestModel_View_ZeroWidth(t *testing.T) {
	m := NewModel(domain.NewTimer(), nil, nil, nil)
	if m.View() != "Loading..." {
		t.Error("View() should show loading before the first size message")
	}
}

func TestModel_View_StartPauseLabel(t *testing.T) {
	m := newTestModel()
	if !strings.Contains(m.View(), "[s]tart") {
		t.Error("stopped view should offer start")
	}

	m, _ = update(t, m, key("s"))
	if !strings.Contains(m.View(), "[s] pause") {
		t.Error("running view should offer pause")
	}
}

func TestRenderClock_Narrow(t *testing.T) {
	out := renderClock("25:00", "#FFFFFF", 20)
	if strings.Contains(out, "\n") {
		t.Error("narrow render should be a single line")
	}
}

func TestRenderClock_Wide(t *testing.T) {
	out := renderClock("25:00", "#FFFFFF", 80)
	if got := strings.Count(out, "\n"); got != 4 {
		t.Errorf("wide render has %d newlines, want 4", got)
	}
}

func TestResolveTheme_FillsEmptyFields(t *testing.T) {
	defaults := config.DefaultThemeConfig()

	resolved := resolveTheme(nil)
	if resolved != defaults {
		t.Error("nil theme should resolve to full defaults")
	}

	partial := config.ThemeConfig{ColorWork: "#FF0000"}
	resolved = resolveTheme(&partial)
	if resolved.ColorWork != "#FF0000" {
		t.Errorf("ColorWork = %v, want override kept", resolved.ColorWork)
	}
	if resolved.ColorBreak != defaults.ColorBreak {
		t.Errorf("ColorBreak = %v, want default filled in", resolved.ColorBreak)
	}
}
