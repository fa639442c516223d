// Package notify raises desktop notifications through the fyne app.
package notify

import (
	"sync"

	"fyne.io/fyne/v2"

	"tomato/internal/core/timekeeper"
)

// Notifier sends fyne notifications once permission is granted. fyne shows
// the application icon, so Notification.Icon is not used.
type Notifier struct {
	mu         sync.Mutex
	app        fyne.App
	enabled    bool
	permission timekeeper.Permission
}

// New creates a notifier for app. A disabled notifier denies permission.
func New(app fyne.App, enabled bool) *Notifier {
	return &Notifier{app: app, enabled: enabled}
}

// Permission returns the current permission state.
func (notifier *Notifier) Permission() timekeeper.Permission {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	return notifier.permission
}

// RequestPermission decides permission from the user's preference.
func (notifier *Notifier) RequestPermission() timekeeper.Permission {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if notifier.permission != timekeeper.PermissionDefault {
		return notifier.permission
	}
	if notifier.enabled && notifier.app != nil {
		notifier.permission = timekeeper.PermissionGranted
	} else {
		notifier.permission = timekeeper.PermissionDenied
	}
	return notifier.permission
}

// Notify sends the notification when permission is granted.
func (notifier *Notifier) Notify(notification timekeeper.Notification) error {
	if notifier.Permission() != timekeeper.PermissionGranted {
		return nil
	}
	notifier.app.SendNotification(fyne.NewNotification(notification.Title, notification.Body))
	return nil
}
