package preferences

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"tomato/internal/core/model"
)

type saveRecorder struct {
	calls [][2]int
	err   error
}

func (recorder *saveRecorder) save(workMinutes, breakMinutes int) error {
	recorder.calls = append(recorder.calls, [2]int{workMinutes, breakMinutes})
	return recorder.err
}

func TestFormSavesParsedValues(t *testing.T) {
	app := test.NewTempApp(t)
	window := app.NewWindow("test")
	recorder := &saveRecorder{}
	form := NewForm(window, DefaultSettings(), recorder.save)
	window.SetContent(form.Content())

	form.workEntry.SetText("50")
	form.breakEntry.SetText("10")
	test.Tap(form.saveButton)

	assert.Equal(t, [][2]int{{50, 10}}, recorder.calls)
	assert.Equal(t, 50, form.Settings().WorkMinutes)
	assert.Equal(t, 10, form.Settings().BreakMinutes)
	assert.NotNil(t, window.Canvas().Overlays().Top(), "confirmation dialog shown")
}

func TestFormRejectsNonNumericInput(t *testing.T) {
	app := test.NewTempApp(t)
	window := app.NewWindow("test")
	recorder := &saveRecorder{}
	form := NewForm(window, DefaultSettings(), recorder.save)
	window.SetContent(form.Content())

	form.workEntry.SetText("abc")
	test.Tap(form.saveButton)

	assert.Empty(t, recorder.calls)
	assert.NotNil(t, window.Canvas().Overlays().Top(), "error dialog shown")
	assert.Equal(t, 25, form.Settings().WorkMinutes)
}

func TestFormKeepsSettingsWhenSaveFails(t *testing.T) {
	app := test.NewTempApp(t)
	window := app.NewWindow("test")
	recorder := &saveRecorder{err: &model.ValidationError{Field: model.FieldBreakMinutes, Value: 31, Min: 1, Max: 30}}
	form := NewForm(window, DefaultSettings(), recorder.save)
	window.SetContent(form.Content())

	form.breakEntry.SetText("31")
	test.Tap(form.saveButton)

	assert.Len(t, recorder.calls, 1)
	assert.Equal(t, 5, form.Settings().BreakMinutes)
	assert.NotNil(t, window.Canvas().Overlays().Top())
}
