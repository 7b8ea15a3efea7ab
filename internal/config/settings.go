package config

import (
	"github.com/gamebot-io/gamebot/internal/models"
)

// LoadSettings loads the global settings from ~/.gamebot/settings.yaml.
// If the file doesn't exist, returns default settings. Keys missing from
// the file keep their default values.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	settings, err := LoadYAMLOrDefault(path, models.NewSettings)
	if err != nil {
		return nil, err
	}
	settings.Normalize()
	return settings, nil
}

// SaveSettings saves the global settings to ~/.gamebot/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}
