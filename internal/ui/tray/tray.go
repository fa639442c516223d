package tray

import (
	"fmt"

	"fyne.io/fyne/v2"

	"tomato/internal/core/timekeeper"
	"tomato/resources"
)

// Host is the part of desktop.App the tray needs.
type Host interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow  func()
	OnStart func()
	OnPause func()
	OnReset func()
	OnQuit  func()
}

// Manager handles system tray state.
type Manager struct {
	host        Host
	callbacks   Callbacks
	statusItem  *fyne.MenuItem
	startItem   *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	resetItem   *fyne.MenuItem
	phase       timekeeper.Phase
	paused      bool
	ticking     bool
	statusLabel string
	iconName    string
}

// New creates a tray manager with the provided callbacks.
func New(host Host, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:        host,
		callbacks:   callbacks,
		phase:       timekeeper.PhaseWork,
		statusLabel: "ready",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.startItem = fyne.NewMenuItem("Start", func() { invoke(manager.callbacks.OnStart) })
	manager.pauseItem = fyne.NewMenuItem("Pause", func() { invoke(manager.callbacks.OnPause) })
	manager.resetItem = fyne.NewMenuItem("Reset", func() { invoke(manager.callbacks.OnReset) })

	manager.refreshStatus()
	return manager
}

// Watch applies timer events to the tray until events is closed.
func (manager *Manager) Watch(events <-chan timekeeper.Event) {
	for event := range events {
		fyne.Do(func() {
			manager.HandleEvent(event)
		})
	}
}

// HandleEvent updates the status line, menu and icon from a timer event.
// It must run on the fyne main goroutine.
func (manager *Manager) HandleEvent(event timekeeper.Event) {
	manager.phase = event.Phase
	manager.paused = event.Paused
	manager.ticking = event.Running && !event.Paused
	manager.statusLabel = fmt.Sprintf("%s %s, %d done", event.Phase.Label(), timekeeper.FormatRemaining(event.Remaining), event.Completed)
	manager.refreshStatus()
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

func (manager *Manager) refreshStatus() {
	status := manager.statusLabel
	if manager.paused {
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.startItem.Disabled = manager.ticking
	manager.pauseItem.Disabled = !manager.ticking
	manager.refreshIcon()
	manager.refreshMenu()
}

func (manager *Manager) refreshIcon() {
	iconName := resources.IconWork
	switch {
	case manager.paused:
		iconName = resources.IconPaused
	case manager.phase == timekeeper.PhaseBreak:
		iconName = resources.IconBreak
	}
	if iconName == manager.iconName {
		return
	}
	manager.iconName = iconName
	manager.host.SetSystemTrayIcon(resources.MustLogo(iconName))
}

func (manager *Manager) refreshMenu() {
	manager.host.SetSystemTrayMenu(fyne.NewMenu(timekeeper.AppTitle,
		manager.statusItem,
		fyne.NewMenuItem("Show timer", func() { invoke(manager.callbacks.OnShow) }),
		fyne.NewMenuItemSeparator(),
		manager.startItem,
		manager.pauseItem,
		manager.resetItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { invoke(manager.callbacks.OnQuit) }),
	))
}

func invoke(callback func()) {
	if callback != nil {
		callback()
	}
}
