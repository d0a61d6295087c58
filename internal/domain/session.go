package domain

import (
	"time"

	"github.com/google/uuid"
)

// Interval records one completed countdown. Records live only for the
// lifetime of the process; nothing is persisted across restarts.
type Interval struct {
	ID          string
	Mode        Mode
	Seconds     int
	CompletedAt time.Time
}

// newInterval stamps a record for the interval that just completed.
func newInterval(m Mode) Interval {
	return Interval{
		ID:          uuid.NewString(),
		Mode:        m,
		Seconds:     m.Seconds(),
		CompletedAt: time.Now(),
	}
}

// Stats summarizes the completed intervals of the current run.
type Stats struct {
	WorkSessions   int
	BreaksTaken    int
	FocusedMinutes int
}

// History returns the completed intervals in completion order.
func (t *Timer) History() []Interval {
	return t.history
}

// Stats derives the statistics panel values. Focused minutes count work
// completions only, at the fixed work interval length.
func (t *Timer) Stats() Stats {
	breaks := 0
	for _, iv := range t.history {
		if iv.Mode.IsBreak() {
			breaks++
		}
	}
	return Stats{
		WorkSessions:   t.completedWork,
		BreaksTaken:    breaks,
		FocusedMinutes: t.completedWork * WorkSeconds / 60,
	}
}
