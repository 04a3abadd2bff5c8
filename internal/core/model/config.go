package model

// Mode identifies which kind of interval the timer runs.
type Mode string

const (
	ModeFocus Mode = "focus"
	ModeRest  Mode = "rest"
)

// Valid reports whether mode is one of the known interval modes.
func (mode Mode) Valid() bool {
	return mode == ModeFocus || mode == ModeRest
}

// Toggle returns the other interval mode.
func (mode Mode) Toggle() Mode {
	if mode == ModeFocus {
		return ModeRest
	}
	return ModeFocus
}

// TimerConfig contains the configured interval lengths in whole seconds.
type TimerConfig struct {
	FocusSeconds int
	RestSeconds  int
}

// DurationFor returns the configured length of the given mode.
func (config TimerConfig) DurationFor(mode Mode) int {
	if mode == ModeRest {
		return config.RestSeconds
	}
	return config.FocusSeconds
}

// Normalized clamps negative durations to zero.
func (config TimerConfig) Normalized() TimerConfig {
	if config.FocusSeconds < 0 {
		config.FocusSeconds = 0
	}
	if config.RestSeconds < 0 {
		config.RestSeconds = 0
	}
	return config
}
