package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsBounds(t *testing.T) {
	for _, config := range []TimerConfig{
		{WorkMinutes: 1, BreakMinutes: 1},
		{WorkMinutes: 60, BreakMinutes: 30},
		DefaultTimerConfig(),
	} {
		assert.NoError(t, config.Validate(), "config %+v", config)
	}
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name      string
		config    TimerConfig
		field     string
		belowMin  bool
		aboveMax  bool
		wantInMsg string
	}{
		{"work below", TimerConfig{WorkMinutes: 0, BreakMinutes: 10}, FieldWorkMinutes, true, false, "below minimum 1"},
		{"work above", TimerConfig{WorkMinutes: 61, BreakMinutes: 10}, FieldWorkMinutes, false, true, "above maximum 60"},
		{"break below", TimerConfig{WorkMinutes: 25, BreakMinutes: 0}, FieldBreakMinutes, true, false, "below minimum 1"},
		{"break above", TimerConfig{WorkMinutes: 25, BreakMinutes: 31}, FieldBreakMinutes, false, true, "above maximum 30"},
		{"work checked first", TimerConfig{WorkMinutes: -5, BreakMinutes: 99}, FieldWorkMinutes, true, false, "work time"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrOutOfRange))

			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tc.field, validation.Field)
			assert.Equal(t, tc.belowMin, validation.BelowMin())
			assert.Equal(t, tc.aboveMax, validation.AboveMax())
			assert.Contains(t, err.Error(), tc.wantInMsg)
		})
	}
}

func TestValidationErrorUnparsedInput(t *testing.T) {
	err := &ValidationError{Field: FieldBreakMinutes, Min: 1, Max: 30, Input: "ten"}
	assert.Equal(t, `break time must be a whole number between 1 and 30, got "ten"`, err.Error())
	assert.False(t, err.BelowMin())
	assert.False(t, err.AboveMax())
}

func TestDurations(t *testing.T) {
	config := TimerConfig{WorkMinutes: 2, BreakMinutes: 1}
	assert.Equal(t, 120, config.WorkSeconds())
	assert.Equal(t, 60, config.BreakSeconds())
}
