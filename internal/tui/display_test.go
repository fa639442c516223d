package tui

import (
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"tomato/internal/core/timekeeper"
)

type recordingSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (sender *recordingSender) Send(msg tea.Msg) {
	sender.mu.Lock()
	defer sender.mu.Unlock()
	sender.msgs = append(sender.msgs, msg)
}

func TestDisplayForwardsInOrder(t *testing.T) {
	display := NewDisplay()
	display.Render(timekeeper.View{Clock: "25:00"})

	sender := &recordingSender{}
	display.Attach(sender)
	display.Render(timekeeper.View{Clock: "24:59"})
	display.Render(timekeeper.View{Clock: "24:58"})
	display.Close()

	var clocks []string
	for _, msg := range sender.msgs {
		clocks = append(clocks, msg.(ViewMsg).Clock)
	}
	assert.Equal(t, []string{"25:00", "24:59", "24:58"}, clocks)
}

func TestDisplayDropsWhenFullAndAfterClose(t *testing.T) {
	display := NewDisplay()
	for i := 0; i < displayBuffer+10; i++ {
		display.Render(timekeeper.View{Clock: "00:00"})
	}
	assert.Len(t, display.views, displayBuffer)

	display.Close()
	display.Close()
	display.Render(timekeeper.View{Clock: "00:01"})
}
