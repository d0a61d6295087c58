// Package notification provides desktop notification utilities.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/nrcx/pomo/internal/config"
	"github.com/nrcx/pomo/internal/domain"
	"github.com/nrcx/pomo/internal/ports"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg *config.NotificationConfig
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if n.cfg == nil || !n.cfg.Enabled {
		return nil
	}

	return beeep.Notify(title, message, "")
}

// IntervalComplete displays a notification for the interval that just
// finished counting down.
func (n *Notifier) IntervalComplete(mode domain.Mode) error {
	switch mode {
	case domain.ModeShortBreak, domain.ModeLongBreak:
		return n.Notify("☕ Break Over!", "Your "+mode.Label()+" is complete. Ready to focus?")
	default:
		return n.Notify("🍅 Pomodoro Complete!", "Great job! Take a break before the next session.")
	}
}

// SetEnabled updates the enabled flag.
func (n *Notifier) SetEnabled(enabled bool) {
	if n.cfg != nil {
		n.cfg.Enabled = enabled
	}
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}

var _ ports.Notifier = (*Notifier)(nil)
