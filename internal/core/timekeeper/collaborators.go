package timekeeper

import (
	"fmt"
	"time"
)

// View is everything a display needs to render the timer.
type View struct {
	Clock           string
	Phase           Phase
	PhaseLabel      string
	CompletedCycles int
	Running         bool
	Paused          bool
	Title           string
}

// Display renders the timer state. Render must not call back into the TimeKeeper.
type Display interface {
	Render(view View)
}

// Cue identifies the sound played when a phase ends.
type Cue string

const (
	CueWorkComplete  Cue = "work_complete"
	CueBreakComplete Cue = "break_complete"
)

// AudioNotifier plays a cue. Errors are logged and otherwise ignored.
type AudioNotifier interface {
	Play(cue Cue) error
}

// Permission is the desktop notification permission state.
type Permission int

const (
	PermissionDefault Permission = iota
	PermissionGranted
	PermissionDenied
)

func (permission Permission) String() string {
	switch permission {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "default"
	}
}

// Notification is a desktop notification payload.
type Notification struct {
	Title string
	Body  string
	Icon  string
}

// DesktopNotifier raises desktop notifications once permission is granted.
type DesktopNotifier interface {
	Permission() Permission
	RequestPermission() Permission
	Notify(notification Notification) error
}

// Messages holds the notification texts for each transition.
type Messages struct {
	WorkComplete  Notification
	BreakComplete Notification
}

// DefaultMessages returns the built-in notification texts.
func DefaultMessages() Messages {
	return Messages{
		WorkComplete: Notification{
			Title: "Work time is over",
			Body:  "Take a break!",
		},
		BreakComplete: Notification{
			Title: "Break is over",
			Body:  "Time to get back to work!",
		},
	}
}

// AppTitle is appended to the countdown in window titles.
const AppTitle = "Tomato"

// FormatClock renders whole seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatRemaining renders a duration as MM:SS, truncating sub-second parts.
func FormatRemaining(remaining time.Duration) string {
	return FormatClock(int(remaining / time.Second))
}

type nopDisplay struct{}

func (nopDisplay) Render(View) {}

type nopAudio struct{}

func (nopAudio) Play(Cue) error { return nil }

type nopNotifier struct{}

func (nopNotifier) Permission() Permission        { return PermissionDenied }
func (nopNotifier) RequestPermission() Permission { return PermissionDenied }
func (nopNotifier) Notify(Notification) error     { return nil }
