package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"tomato/internal/core/timekeeper"
)

// ViewMsg carries a timer view into the bubbletea loop.
type ViewMsg timekeeper.View

// Sender is the part of tea.Program the display needs.
type Sender interface {
	Send(msg tea.Msg)
}

const displayBuffer = 64

// Display forwards timer views to a bubbletea program in order without
// blocking the timer. It implements timekeeper.Display.
type Display struct {
	mu       sync.Mutex
	views    chan timekeeper.View
	attached bool
	closed   bool
	done     chan struct{}
}

// NewDisplay creates a display; views are queued until Attach.
func NewDisplay() *Display {
	return &Display{
		views: make(chan timekeeper.View, displayBuffer),
		done:  make(chan struct{}),
	}
}

// Attach starts forwarding queued and future views to sender.
func (display *Display) Attach(sender Sender) {
	display.mu.Lock()
	if display.attached {
		display.mu.Unlock()
		return
	}
	display.attached = true
	display.mu.Unlock()

	go func() {
		defer close(display.done)
		for view := range display.views {
			sender.Send(ViewMsg(view))
		}
	}()
}

// Render queues view. When the queue is full the view is dropped; the next
// tick renders again.
func (display *Display) Render(view timekeeper.View) {
	display.mu.Lock()
	defer display.mu.Unlock()
	if display.closed {
		return
	}
	select {
	case display.views <- view:
	default:
	}
}

// Close stops forwarding and waits for queued views to be sent.
func (display *Display) Close() {
	display.mu.Lock()
	if display.closed {
		display.mu.Unlock()
		return
	}
	display.closed = true
	attached := display.attached
	close(display.views)
	display.mu.Unlock()
	if attached {
		<-display.done
	}
}
