// Package sound plays the completion tone through the system beeper.
package sound

import (
	"github.com/gen2brain/beeep"

	"github.com/nrcx/pomo/internal/ports"
)

// Completion tone parameters: an 800Hz chime lasting half a second.
const (
	toneFrequency = 800.0
	toneMillis    = 500
)

// Beeper implements ports.Sound using gen2brain/beeep.
type Beeper struct {
	enabled bool
}

// New creates a Beeper. A disabled beeper plays nothing.
func New(enabled bool) *Beeper {
	return &Beeper{enabled: enabled}
}

// SetEnabled turns the tone on or off.
func (b *Beeper) SetEnabled(enabled bool) {
	b.enabled = enabled
}

// Beep plays the completion tone on its own goroutine. Errors from the
// audio backend are discarded: the countdown and mode transitions proceed
// whether or not playback succeeds.
func (b *Beeper) Beep() {
	if b == nil || !b.enabled {
		return
	}
	go func() {
		_ = beeep.Beep(toneFrequency, toneMillis)
	}()
}

var _ ports.Sound = (*Beeper)(nil)
