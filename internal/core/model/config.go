package model

// Duration bounds accepted by the timer, in minutes.
const (
	MinWorkMinutes  = 1
	MaxWorkMinutes  = 60
	MinBreakMinutes = 1
	MaxBreakMinutes = 30

	DefaultWorkMinutes  = 25
	DefaultBreakMinutes = 5
)

// TimerConfig holds the user-configured phase lengths.
type TimerConfig struct {
	WorkMinutes  int
	BreakMinutes int
}

// DefaultTimerConfig returns the classic 25/5 split.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		WorkMinutes:  DefaultWorkMinutes,
		BreakMinutes: DefaultBreakMinutes,
	}
}

// Validate checks both durations against their bounds.
// The work duration is checked first.
func (config TimerConfig) Validate() error {
	if config.WorkMinutes < MinWorkMinutes || config.WorkMinutes > MaxWorkMinutes {
		return &ValidationError{
			Field: FieldWorkMinutes,
			Value: config.WorkMinutes,
			Min:   MinWorkMinutes,
			Max:   MaxWorkMinutes,
		}
	}
	if config.BreakMinutes < MinBreakMinutes || config.BreakMinutes > MaxBreakMinutes {
		return &ValidationError{
			Field: FieldBreakMinutes,
			Value: config.BreakMinutes,
			Min:   MinBreakMinutes,
			Max:   MaxBreakMinutes,
		}
	}
	return nil
}

// WorkSeconds returns the work phase length in whole seconds.
func (config TimerConfig) WorkSeconds() int {
	return config.WorkMinutes * 60
}

// BreakSeconds returns the break phase length in whole seconds.
func (config TimerConfig) BreakSeconds() int {
	return config.BreakMinutes * 60
}
