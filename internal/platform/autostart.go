package platform

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrEmptyAppName is returned when an autostart entry has no name.
var ErrEmptyAppName = errors.New("app name is empty")

// ConfigDir returns the OS-standard configuration directory.
func ConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

// Autostart registers the application to launch when the user logs in.
type Autostart struct {
	appName   string
	execPath  string
	configDir func() (string, error)
	homeDir   func() (string, error)
}

// NewAutostart prepares a login entry that runs execPath.
func NewAutostart(appName, execPath string) (*Autostart, error) {
	if strings.TrimSpace(appName) == "" {
		return nil, fmt.Errorf("autostart: %w", ErrEmptyAppName)
	}
	if execPath == "" {
		return nil, fmt.Errorf("autostart: exec path is empty")
	}
	return &Autostart{
		appName:   appName,
		execPath:  execPath,
		configDir: ConfigDir,
		homeDir:   os.UserHomeDir,
	}, nil
}

func slugName(appName string) string {
	name := strings.ToLower(strings.TrimSpace(appName))
	return strings.ReplaceAll(name, " ", "-")
}
