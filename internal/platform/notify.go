package platform

import (
	"errors"
	"sync"

	"tomato/internal/core/timekeeper"
)

// ErrNotificationsUnsupported indicates the system has no notification service.
var ErrNotificationsUnsupported = errors.New("desktop notifications unsupported")

// notificationSender delivers one notification to the OS service.
type notificationSender interface {
	Available() error
	Send(appName string, notification timekeeper.Notification) error
}

// DesktopNotifier raises notifications through the OS notification service
// for front ends without a GUI toolkit.
type DesktopNotifier struct {
	mu         sync.Mutex
	appName    string
	enabled    bool
	permission timekeeper.Permission
	sender     notificationSender
}

// NewDesktopNotifier creates a notifier. A disabled notifier denies permission.
func NewDesktopNotifier(appName string, enabled bool) *DesktopNotifier {
	return &DesktopNotifier{
		appName: appName,
		enabled: enabled,
		sender:  newNotificationSender(),
	}
}

// Permission returns the current permission state.
func (notifier *DesktopNotifier) Permission() timekeeper.Permission {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	return notifier.permission
}

// RequestPermission grants permission when notifications are enabled and
// the notification service is reachable.
func (notifier *DesktopNotifier) RequestPermission() timekeeper.Permission {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if notifier.permission != timekeeper.PermissionDefault {
		return notifier.permission
	}
	if !notifier.enabled || notifier.sender.Available() != nil {
		notifier.permission = timekeeper.PermissionDenied
		return notifier.permission
	}
	notifier.permission = timekeeper.PermissionGranted
	return notifier.permission
}

// Notify sends notification if permission was granted.
func (notifier *DesktopNotifier) Notify(notification timekeeper.Notification) error {
	if notifier.Permission() != timekeeper.PermissionGranted {
		return nil
	}
	return notifier.sender.Send(notifier.appName, notification)
}
