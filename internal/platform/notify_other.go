//go:build !linux

package platform

import "tomato/internal/core/timekeeper"

type unsupportedSender struct{}

func newNotificationSender() notificationSender {
	return unsupportedSender{}
}

func (unsupportedSender) Available() error {
	return ErrNotificationsUnsupported
}

func (unsupportedSender) Send(string, timekeeper.Notification) error {
	return ErrNotificationsUnsupported
}
