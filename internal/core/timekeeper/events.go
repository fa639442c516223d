package timekeeper

import "time"

// Phase is the current interval type.
type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// Label returns the display name of the phase.
func (phase Phase) Label() string {
	if phase == PhaseBreak {
		return "Break"
	}
	return "Work"
}

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type      EventType
	Phase     Phase
	Remaining time.Duration
	Completed int
	Running   bool
	Paused    bool
	At        time.Time
}
