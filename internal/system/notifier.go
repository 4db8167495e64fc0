package system

import (
	"github.com/gen2brain/beeep"
	"go.uber.org/zap"
)

// Notifier implements ports.Notifier with desktop notifications.
// Delivery is fire-and-forget; failures are logged, never surfaced.
type Notifier struct {
	title   string
	enabled bool
	log     *zap.Logger
}

func NewNotifier(title string, enabled bool, log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{title: title, enabled: enabled, log: log}
}

func (n *Notifier) Notify(message string) {
	if !n.enabled {
		return
	}
	if err := beeep.Notify(n.title, message, ""); err != nil {
		n.log.Warn("notification delivery failed", zap.Error(err))
	}
}
