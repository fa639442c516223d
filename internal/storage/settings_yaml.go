package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tomato/internal/core/model"
	"tomato/internal/core/timekeeper"
	"tomato/internal/logging"
	"tomato/internal/platform"
	"tomato/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlNotification struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	Icon  string `yaml:"icon"`
}

type yamlSettings struct {
	WorkMinutes   *int  `yaml:"work_minutes"`
	BreakMinutes  *int  `yaml:"break_minutes"`
	Sound         *bool `yaml:"sound"`
	Notifications *bool `yaml:"notifications"`
	Messages      struct {
		WorkComplete  yamlNotification `yaml:"work_complete"`
		BreakComplete yamlNotification `yaml:"break_complete"`
	} `yaml:"messages"`
}

// DefaultPath returns the settings file location under the user config dir.
func DefaultPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads startup preferences from YAML. A missing file yields
// the defaults. Values outside their bounds are replaced with defaults and
// logged. The file is never written back.
func LoadSettings(path string, logger *slog.Logger) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	if logger == nil {
		logger = logging.Discard()
	}

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("no settings file, using defaults", logging.Path(path))
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData, logger)
	logger.Debug("settings loaded", logging.Path(path))
	return settings, nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings, logger *slog.Logger) {
	if value := fileData.WorkMinutes; value != nil {
		if *value >= model.MinWorkMinutes && *value <= model.MaxWorkMinutes {
			settings.WorkMinutes = *value
		} else {
			logger.Warn("ignoring work_minutes outside bounds", slog.Int("value", *value))
		}
	}
	if value := fileData.BreakMinutes; value != nil {
		if *value >= model.MinBreakMinutes && *value <= model.MaxBreakMinutes {
			settings.BreakMinutes = *value
		} else {
			logger.Warn("ignoring break_minutes outside bounds", slog.Int("value", *value))
		}
	}

	if fileData.Sound != nil {
		settings.SoundEnabled = *fileData.Sound
	}
	if fileData.Notifications != nil {
		settings.NotificationsEnabled = *fileData.Notifications
	}

	mergeNotification(&settings.Messages.WorkComplete, fileData.Messages.WorkComplete)
	mergeNotification(&settings.Messages.BreakComplete, fileData.Messages.BreakComplete)
}

func mergeNotification(target *timekeeper.Notification, fileData yamlNotification) {
	if fileData.Title != "" {
		target.Title = fileData.Title
	}
	if fileData.Body != "" {
		target.Body = fileData.Body
	}
	if fileData.Icon != "" {
		target.Icon = fileData.Icon
	}
}
