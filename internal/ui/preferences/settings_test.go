package preferences

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tomato/internal/core/model"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	assert.Equal(t, model.DefaultTimerConfig(), settings.TimerConfig())
	assert.True(t, settings.SoundEnabled)
	assert.True(t, settings.NotificationsEnabled)
	assert.NotEmpty(t, settings.Messages.WorkComplete.Title)
	assert.NoError(t, settings.TimerConfig().Validate())
}

func TestParseMinutes(t *testing.T) {
	value, err := ParseMinutes(model.FieldWorkMinutes, " 45 ")
	require.NoError(t, err)
	assert.Equal(t, 45, value)

	value, err = ParseMinutes(model.FieldWorkMinutes, "0")
	require.NoError(t, err, "range checks belong to the timer")
	assert.Zero(t, value)

	_, err = ParseMinutes(model.FieldBreakMinutes, "five")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrOutOfRange))
	var validation *model.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, model.FieldBreakMinutes, validation.Field)
	assert.Equal(t, 30, validation.Max)
	assert.Equal(t, "five", validation.Input)
}
