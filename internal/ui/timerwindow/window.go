package timerwindow

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"tomato/internal/core/timekeeper"
	"tomato/internal/ui/preferences"
	"tomato/resources"
)

// Commands are the timer operations the window buttons trigger.
type Commands interface {
	Start()
	Pause()
	Reset()
	UpdateSettings(workMinutes, breakMinutes int) error
}

var (
	workTint  = color.NRGBA{R: 220, G: 53, B: 45, A: 40}
	breakTint = color.NRGBA{R: 64, G: 168, B: 92, A: 40}
)

// Window is the main timer window. It implements timekeeper.Display.
type Window struct {
	window      fyne.Window
	commands    Commands
	background  *canvas.Rectangle
	timerLabel  *canvas.Text
	phaseLabel  *widget.Label
	cyclesLabel *widget.Label
	startButton *widget.Button
	pauseButton *widget.Button
	resetButton *widget.Button
	form        *preferences.Form
}

// New creates the timer window. Commands are attached with SetCommands once
// the timer exists.
func New(app fyne.App, settings preferences.Settings) *Window {
	window := app.NewWindow(timekeeper.AppTitle)

	background := canvas.NewRectangle(workTint)

	timerLabel := canvas.NewText(timekeeper.FormatClock(settings.WorkMinutes*60), theme.Color(theme.ColorNameForeground))
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timerLabel.TextSize = 56

	phaseLabel := widget.NewLabelWithStyle(timekeeper.PhaseWork.Label(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	cyclesLabel := widget.NewLabelWithStyle(cyclesText(0), fyne.TextAlignCenter, fyne.TextStyle{})

	timer := &Window{
		window:      window,
		background:  background,
		timerLabel:  timerLabel,
		phaseLabel:  phaseLabel,
		cyclesLabel: cyclesLabel,
	}

	timer.startButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), func() {
		if timer.commands != nil {
			timer.commands.Start()
		}
	})
	timer.pauseButton = widget.NewButtonWithIcon("Pause", theme.MediaPauseIcon(), func() {
		if timer.commands != nil {
			timer.commands.Pause()
		}
	})
	timer.resetButton = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), func() {
		if timer.commands != nil {
			timer.commands.Reset()
		}
	})
	timer.form = preferences.NewForm(window, settings, func(workMinutes, breakMinutes int) error {
		if timer.commands == nil {
			return nil
		}
		return timer.commands.UpdateSettings(workMinutes, breakMinutes)
	})

	buttons := container.NewHBox(layout.NewSpacer(), timer.startButton, timer.pauseButton, timer.resetButton, layout.NewSpacer())
	display := container.NewVBox(phaseLabel, timerLabel, cyclesLabel, buttons)
	content := container.NewVBox(
		container.NewStack(background, container.NewPadded(display)),
		widget.NewSeparator(),
		timer.form.Content(),
	)

	window.SetContent(content)
	window.Resize(fyne.NewSize(360, 420))

	timer.applyViewUnsafe(timekeeper.View{
		Clock:      timekeeper.FormatClock(settings.WorkMinutes * 60),
		Phase:      timekeeper.PhaseWork,
		PhaseLabel: timekeeper.PhaseWork.Label(),
		Title:      timekeeper.FormatClock(settings.WorkMinutes*60) + " - " + timekeeper.AppTitle,
	})
	return timer
}

// SetCommands attaches the timer commands.
func (timer *Window) SetCommands(commands Commands) {
	timer.commands = commands
}

// Window returns the underlying fyne window.
func (timer *Window) Window() fyne.Window {
	return timer.window
}

// Show displays the window.
func (timer *Window) Show() {
	timer.window.Show()
	timer.window.RequestFocus()
}

// Render implements timekeeper.Display. It is safe to call from any goroutine.
func (timer *Window) Render(view timekeeper.View) {
	fyne.Do(func() {
		timer.applyViewUnsafe(view)
	})
}

func (timer *Window) applyViewUnsafe(view timekeeper.View) {
	timer.timerLabel.Text = view.Clock
	timer.timerLabel.Refresh()
	timer.phaseLabel.SetText(view.PhaseLabel)
	timer.cyclesLabel.SetText(cyclesText(view.CompletedCycles))
	timer.window.SetTitle(view.Title)

	if view.Phase == timekeeper.PhaseBreak {
		timer.background.FillColor = breakTint
		timer.window.SetIcon(resources.MustLogo(resources.IconBreak))
	} else {
		timer.background.FillColor = workTint
		timer.window.SetIcon(resources.MustLogo(resources.IconWork))
	}
	timer.background.Refresh()

	ticking := view.Running && !view.Paused
	setEnabled(timer.startButton, !ticking)
	setEnabled(timer.pauseButton, ticking)
}

func setEnabled(button *widget.Button, enabled bool) {
	if enabled {
		button.Enable()
		return
	}
	button.Disable()
}

func cyclesText(completed int) string {
	return fmt.Sprintf("Completed: %d", completed)
}
