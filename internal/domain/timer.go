// Package domain contains the core timer engine and its types.
package domain

// Mode identifies which interval the timer counts down.
type Mode string

const (
	ModeWork       Mode = "work"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// Fixed interval lengths in seconds.
const (
	WorkSeconds       = 25 * 60
	ShortBreakSeconds = 5 * 60
	LongBreakSeconds  = 15 * 60
)

// SessionsBeforeLong is how many completed work sessions earn a long break.
const SessionsBeforeLong = 4

// Seconds returns the fixed length of the mode's interval.
func (m Mode) Seconds() int {
	switch m {
	case ModeShortBreak:
		return ShortBreakSeconds
	case ModeLongBreak:
		return LongBreakSeconds
	default:
		return WorkSeconds
	}
}

// Label returns a human-readable name for the mode.
func (m Mode) Label() string {
	switch m {
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Work"
	}
}

// IsBreak reports whether the mode is a break interval.
func (m Mode) IsBreak() bool {
	return m == ModeShortBreak || m == ModeLongBreak
}

// Timer is the countdown engine: current mode, remaining seconds, running
// flag and the completed work session count. It advances one second per
// Tick call; nothing elapses between ticks or while stopped. All state
// transitions are total functions, so no mutator returns an error.
type Timer struct {
	mode          Mode
	remaining     int
	running       bool
	completedWork int
	history       []Interval
}

// NewTimer returns a stopped timer in work mode with a full countdown.
func NewTimer() *Timer {
	return &Timer{
		mode:      ModeWork,
		remaining: WorkSeconds,
	}
}

// Mode returns the current mode.
func (t *Timer) Mode() Mode { return t.mode }

// Remaining returns the seconds left in the current interval.
func (t *Timer) Remaining() int { return t.remaining }

// Running reports whether the countdown is active.
func (t *Timer) Running() bool { return t.running }

// CompletedWork returns how many work sessions finished this run.
func (t *Timer) CompletedWork() int { return t.completedWork }

// SwitchMode stops the timer, changes the mode and restores the new mode's
// full duration. The work session counter is untouched.
func (t *Timer) SwitchMode(m Mode) {
	t.running = false
	t.mode = m
	t.remaining = m.Seconds()
}

// ToggleRunning flips the running flag without touching the countdown.
func (t *Timer) ToggleRunning() {
	t.running = !t.running
}

// Reset stops the timer and restores the current mode's full duration.
// The work session counter is untouched.
func (t *Timer) Reset() {
	t.running = false
	t.remaining = t.mode.Seconds()
}

// Tick advances the countdown by one second. It is a no-op while the timer
// is stopped. When the final second elapses the interval completes: the
// work counter advances on work completions, every fourth work completion
// leads into a long break, any other work completion into a short break,
// and breaks lead back to work. The timer stops at the head of the next
// interval with its full duration restored. The returned Interval
// describes the completed countdown when ok is true; the caller fires
// notifications from it exactly once.
func (t *Timer) Tick() (done Interval, ok bool) {
	if !t.running || t.remaining <= 0 {
		return Interval{}, false
	}
	if t.remaining > 1 {
		t.remaining--
		return Interval{}, false
	}
	t.remaining = 0
	return t.complete(), true
}

// complete runs the transition table for the interval that just hit zero.
func (t *Timer) complete() Interval {
	done := newInterval(t.mode)
	t.history = append(t.history, done)

	next := ModeWork
	if t.mode == ModeWork {
		t.completedWork++
		if t.completedWork%SessionsBeforeLong == 0 {
			next = ModeLongBreak
		} else {
			next = ModeShortBreak
		}
	}

	t.running = false
	t.mode = next
	t.remaining = next.Seconds()
	return done
}

// Progress returns the completed fraction of the current interval,
// 0 at a full countdown and 1 when it reaches zero.
func (t *Timer) Progress() float64 {
	return ProgressOf(t.mode, t.remaining)
}

// ProgressOf computes the completed fraction for a mode and a remaining
// second count. Pure so the presentation layer can derive it anywhere.
func ProgressOf(m Mode, remaining int) float64 {
	total := m.Seconds()
	if total <= 0 {
		return 0
	}
	if remaining < 0 {
		remaining = 0
	}
	if remaining > total {
		remaining = total
	}
	return float64(total-remaining) / float64(total)
}
