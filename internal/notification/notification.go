// Package notification sends desktop notifications through beeep.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/cloudpebble/cptui/internal/logger"
)

// AppName is used as the notification title.
const AppName = "CloudPebble"

type notifyFunc func(title, message string, icon any) error

var notify notifyFunc = beeep.Notify

// SetNotifier replaces the platform notifier. Tests use it.
func SetNotifier(fn func(title, message string, icon any) error) {
	notify = fn
}

// ResetNotifier restores the platform notifier.
func ResetNotifier() {
	notify = beeep.Notify
}

// Send shows a desktop notification.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title)
	err := notify(title, message, "")
	if err != nil {
		log.Warn("notification failed", "error", err)
	}
	return err
}

// ImportCompleted announces a finished project import. message is already
// localized.
func ImportCompleted(message string) error {
	return Send(AppName, message)
}
