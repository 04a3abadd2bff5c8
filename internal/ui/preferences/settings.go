package preferences

import (
	"studytimer/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	FocusSeconds int
	RestSeconds  int
	RepeatRounds int

	ChimeEnabled         bool
	NotificationsEnabled bool
}

// DefaultSettings returns default settings for StudyTimer.
func DefaultSettings() Settings {
	return Settings{
		FocusSeconds:         25 * 60,
		RestSeconds:          5 * 60,
		RepeatRounds:         1,
		ChimeEnabled:         true,
		NotificationsEnabled: true,
	}
}

// TimerConfig converts settings to the engine configuration.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		FocusSeconds: settings.FocusSeconds,
		RestSeconds:  settings.RestSeconds,
	}.Normalized()
}

// WithDuration returns a copy with the duration of mode replaced.
func (settings Settings) WithDuration(mode model.Mode, seconds int) Settings {
	if seconds < 0 {
		seconds = 0
	}
	if mode == model.ModeRest {
		settings.RestSeconds = seconds
	} else {
		settings.FocusSeconds = seconds
	}
	return settings
}
