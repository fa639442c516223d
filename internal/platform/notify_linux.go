//go:build linux

package platform

import (
	"fmt"

	"github.com/godbus/dbus/v5"

	"tomato/internal/core/timekeeper"
)

const (
	notificationsDest   = "org.freedesktop.Notifications"
	notificationsPath   = dbus.ObjectPath("/org/freedesktop/Notifications")
	notificationsMethod = notificationsDest + ".Notify"
	defaultIcon         = "appointment-soon"
	expireDefault       = int32(-1)
)

type dbusSender struct{}

func newNotificationSender() notificationSender {
	return dbusSender{}
}

func (dbusSender) Available() error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotificationsUnsupported, err)
	}
	var hasOwner bool
	if err := conn.BusObject().Call("org.freedesktop.DBus.NameHasOwner", 0, notificationsDest).Store(&hasOwner); err != nil {
		return fmt.Errorf("%w: %v", ErrNotificationsUnsupported, err)
	}
	if !hasOwner {
		return ErrNotificationsUnsupported
	}
	return nil
}

func (dbusSender) Send(appName string, notification timekeeper.Notification) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}
	icon := notification.Icon
	if icon == "" {
		icon = defaultIcon
	}
	call := conn.Object(notificationsDest, notificationsPath).Call(
		notificationsMethod, 0,
		appName,
		uint32(0),
		icon,
		notification.Title,
		notification.Body,
		[]string{},
		map[string]dbus.Variant{},
		expireDefault,
	)
	if call.Err != nil {
		return fmt.Errorf("send notification: %w", call.Err)
	}
	return nil
}
