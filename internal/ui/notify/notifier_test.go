package notify

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tomato/internal/core/timekeeper"
)

func TestNotifierSendsWhenGranted(t *testing.T) {
	app := test.NewTempApp(t)
	notifier := New(app, true)

	assert.Equal(t, timekeeper.PermissionDefault, notifier.Permission())
	assert.Equal(t, timekeeper.PermissionGranted, notifier.RequestPermission())

	test.AssertNotificationSent(t, fyne.NewNotification("Work time is over", "Take a break!"), func() {
		require.NoError(t, notifier.Notify(timekeeper.Notification{Title: "Work time is over", Body: "Take a break!"}))
	})
}

func TestNotifierDisabledStaysSilent(t *testing.T) {
	app := test.NewTempApp(t)
	notifier := New(app, false)

	assert.Equal(t, timekeeper.PermissionDenied, notifier.RequestPermission())
	test.AssertNotificationSent(t, nil, func() {
		require.NoError(t, notifier.Notify(timekeeper.Notification{Title: "x"}))
	})
}
