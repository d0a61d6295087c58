package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeOnce(t *testing.T, timer *Timer, mode Mode) Interval {
	t.Helper()
	timer.SwitchMode(mode)
	timer.running = true
	timer.remaining = 1
	done, ok := timer.Tick()
	require.True(t, ok, "interval should complete")
	return done
}

func TestTimer_History(t *testing.T) {
	timer := NewTimer()
	require.Empty(t, timer.History())

	first := completeOnce(t, timer, ModeWork)
	second := completeOnce(t, timer, ModeShortBreak)

	history := timer.History()
	require.Len(t, history, 2)
	assert.Equal(t, first.ID, history[0].ID)
	assert.Equal(t, second.ID, history[1].ID)
	assert.NotEqual(t, first.ID, second.ID)

	assert.Equal(t, ModeWork, history[0].Mode)
	assert.Equal(t, WorkSeconds, history[0].Seconds)
	assert.False(t, history[0].CompletedAt.IsZero())
}

func TestTimer_Stats(t *testing.T) {
	timer := NewTimer()

	stats := timer.Stats()
	assert.Equal(t, Stats{}, stats)

	completeOnce(t, timer, ModeWork)
	completeOnce(t, timer, ModeShortBreak)
	completeOnce(t, timer, ModeWork)

	stats = timer.Stats()
	assert.Equal(t, 2, stats.WorkSessions)
	assert.Equal(t, 1, stats.BreaksTaken)
	assert.Equal(t, 50, stats.FocusedMinutes)
}

func TestTimer_Stats_BreaksDoNotFocus(t *testing.T) {
	timer := NewTimer()

	completeOnce(t, timer, ModeShortBreak)
	completeOnce(t, timer, ModeLongBreak)

	stats := timer.Stats()
	assert.Equal(t, 0, stats.WorkSessions)
	assert.Equal(t, 2, stats.BreaksTaken)
	assert.Equal(t, 0, stats.FocusedMinutes)
}
