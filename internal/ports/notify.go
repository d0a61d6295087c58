// Package ports defines the capability interfaces the timer depends on.
package ports

import (
	"github.com/nrcx/pomo/internal/domain"
)

// Sound produces the audible completion tone.
// Implementations must not block the caller; playback failure is
// best-effort and never reaches the countdown logic.
type Sound interface {
	Beep()
}

// Notifier delivers a desktop notification for a completed interval.
type Notifier interface {
	IntervalComplete(mode domain.Mode) error
}
