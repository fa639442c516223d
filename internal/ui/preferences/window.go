package preferences

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"tomato/internal/core/model"
)

// SaveFunc applies new durations and reports validation failures.
type SaveFunc func(workMinutes, breakMinutes int) error

// Form is the work/break settings panel with its Save button.
type Form struct {
	parent     fyne.Window
	settings   Settings
	onSave     SaveFunc
	workEntry  *widget.Entry
	breakEntry *widget.Entry
	saveButton *widget.Button
	content    fyne.CanvasObject
}

// NewForm builds the settings panel. Dialogs are shown on parent.
func NewForm(parent fyne.Window, settings Settings, onSave SaveFunc) *Form {
	workEntry := widget.NewEntry()
	breakEntry := widget.NewEntry()
	workEntry.SetText(fmt.Sprintf("%d", settings.WorkMinutes))
	breakEntry.SetText(fmt.Sprintf("%d", settings.BreakMinutes))

	form := &Form{
		parent:     parent,
		settings:   settings,
		onSave:     onSave,
		workEntry:  workEntry,
		breakEntry: breakEntry,
	}
	form.saveButton = widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), form.Submit)
	workEntry.OnSubmitted = func(string) { form.Submit() }
	breakEntry.OnSubmitted = func(string) { form.Submit() }

	fields := widget.NewForm(
		widget.NewFormItem(fmt.Sprintf("Work (%d-%d min)", model.MinWorkMinutes, model.MaxWorkMinutes), workEntry),
		widget.NewFormItem(fmt.Sprintf("Break (%d-%d min)", model.MinBreakMinutes, model.MaxBreakMinutes), breakEntry),
	)
	form.content = container.NewVBox(
		widget.NewLabelWithStyle("Settings", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		fields,
		form.saveButton,
	)
	return form
}

// Content returns the panel for embedding in a window.
func (form *Form) Content() fyne.CanvasObject {
	return form.content
}

// Settings returns the last saved settings.
func (form *Form) Settings() Settings {
	return form.settings
}

// UpdateSettings replaces the entry values.
func (form *Form) UpdateSettings(settings Settings) {
	form.workEntry.SetText(fmt.Sprintf("%d", settings.WorkMinutes))
	form.breakEntry.SetText(fmt.Sprintf("%d", settings.BreakMinutes))
}

// Submit validates the entries and hands them to the save handler.
// Failures are shown in an error dialog.
func (form *Form) Submit() {
	workMinutes, err := ParseMinutes(model.FieldWorkMinutes, form.workEntry.Text)
	if err != nil {
		form.showError(err)
		return
	}
	breakMinutes, err := ParseMinutes(model.FieldBreakMinutes, form.breakEntry.Text)
	if err != nil {
		form.showError(err)
		return
	}

	if form.onSave != nil {
		if err := form.onSave(workMinutes, breakMinutes); err != nil {
			form.showError(err)
			return
		}
	}

	form.settings.WorkMinutes = workMinutes
	form.settings.BreakMinutes = breakMinutes
	dialog.ShowInformation("Settings", "Settings saved", form.parent)
}

func (form *Form) showError(err error) {
	dialog.ShowError(err, form.parent)
}
