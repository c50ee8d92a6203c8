package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultAPIBaseURL is the production API endpoint
const DefaultAPIBaseURL = "https://api.carrego.app/v1"

// DefaultTripMode is the transport mode preselected in trip forms
const DefaultTripMode = "air"

// Settings represents the structure of $CARREGO_HOME/settings.json.
// Pointer fields distinguish "not configured" from zero values so the
// precedence chain (CLI flag > env var > settings.json > default) works.
type Settings struct {
	APIBaseURL      string `json:"api_base_url,omitempty"`
	Debug           *bool  `json:"debug,omitempty"`
	DefaultTripMode string `json:"default_trip_mode,omitempty"`
	ErrorClearDelay *int   `json:"error_clear_delay,omitempty"`
	MaxLogFiles     *int   `json:"max_log_files,omitempty"`
}

// LoadSettings loads settings from $CARREGO_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $CARREGO_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
