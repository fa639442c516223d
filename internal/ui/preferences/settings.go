package preferences

import (
	"strconv"
	"strings"

	"tomato/internal/core/model"
	"tomato/internal/core/timekeeper"
)

// Settings defines the user preferences for a session.
type Settings struct {
	WorkMinutes  int
	BreakMinutes int

	SoundEnabled         bool
	NotificationsEnabled bool
	Messages             timekeeper.Messages
}

// DefaultSettings returns default settings for Tomato.
func DefaultSettings() Settings {
	config := model.DefaultTimerConfig()
	return Settings{
		WorkMinutes:          config.WorkMinutes,
		BreakMinutes:         config.BreakMinutes,
		SoundEnabled:         true,
		NotificationsEnabled: true,
		Messages:             timekeeper.DefaultMessages(),
	}
}

// TimerConfig converts settings to a TimerConfig.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		WorkMinutes:  settings.WorkMinutes,
		BreakMinutes: settings.BreakMinutes,
	}
}

// ParseMinutes parses a minutes entry. Text that is not a whole number is
// reported as a ValidationError for field; range checks are left to the timer.
func ParseMinutes(field, text string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		minimum, maximum := bounds(field)
		return 0, &model.ValidationError{
			Field: field,
			Min:   minimum,
			Max:   maximum,
			Input: text,
		}
	}
	return value, nil
}

func bounds(field string) (int, int) {
	if field == model.FieldBreakMinutes {
		return model.MinBreakMinutes, model.MaxBreakMinutes
	}
	return model.MinWorkMinutes, model.MaxWorkMinutes
}
