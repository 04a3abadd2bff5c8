package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"studytimer/internal/core/model"
	"studytimer/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlDuration struct {
	Hours   int `yaml:"hours"`
	Minutes int `yaml:"minutes"`
	Seconds int `yaml:"seconds"`
}

type yamlSettings struct {
	Focus         *yamlDuration `yaml:"focus,omitempty"`
	Rest          *yamlDuration `yaml:"rest,omitempty"`
	RepeatRounds  *int          `yaml:"repeat_rounds,omitempty"`
	Chime         *bool         `yaml:"chime,omitempty"`
	Notifications *bool         `yaml:"notifications,omitempty"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// LoadSettingsFile reads user preferences from the YAML file at configPath.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettingsFile writes user preferences to the YAML file at configPath.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	rounds := settings.RepeatRounds
	chime := settings.ChimeEnabled
	notifications := settings.NotificationsEnabled
	fileData := yamlSettings{
		Focus:         toYamlDuration(settings.FocusSeconds),
		Rest:          toYamlDuration(settings.RestSeconds),
		RepeatRounds:  &rounds,
		Chime:         &chime,
		Notifications: &notifications,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func toYamlDuration(total int) *yamlDuration {
	hours, minutes, seconds := model.SplitSeconds(total)
	return &yamlDuration{Hours: hours, Minutes: minutes, Seconds: seconds}
}

func (duration *yamlDuration) seconds() (int, bool) {
	if duration == nil || duration.Hours < 0 || duration.Minutes < 0 || duration.Seconds < 0 {
		return 0, false
	}
	return model.SecondsFromParts(duration.Hours, duration.Minutes, duration.Seconds), true
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if seconds, ok := fileData.Focus.seconds(); ok {
		settings.FocusSeconds = seconds
	}
	if seconds, ok := fileData.Rest.seconds(); ok {
		settings.RestSeconds = seconds
	}
	if fileData.RepeatRounds != nil && *fileData.RepeatRounds >= 0 {
		settings.RepeatRounds = *fileData.RepeatRounds
	}
	if fileData.Chime != nil {
		settings.ChimeEnabled = *fileData.Chime
	}
	if fileData.Notifications != nil {
		settings.NotificationsEnabled = *fileData.Notifications
	}
}
