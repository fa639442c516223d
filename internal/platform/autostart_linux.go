//go:build linux

package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Enable writes an XDG autostart desktop entry.
func (autostart *Autostart) Enable() error {
	entryPath, err := autostart.entryPath()
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(entryPath), 0o755); err != nil {
		return fmt.Errorf("enable autostart: create autostart dir: %w", err)
	}

	content := buildDesktopEntry(autostart.appName, autostart.execPath)
	if err := os.WriteFile(entryPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("enable autostart: write desktop entry: %w", err)
	}
	return nil
}

// Disable removes the desktop entry. A missing entry is not an error.
func (autostart *Autostart) Disable() error {
	entryPath, err := autostart.entryPath()
	if err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}

	if err := os.Remove(entryPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("disable autostart: remove desktop entry: %w", err)
	}
	return nil
}

// Enabled reports whether the desktop entry exists.
func (autostart *Autostart) Enabled() (bool, error) {
	entryPath, err := autostart.entryPath()
	if err != nil {
		return false, fmt.Errorf("autostart status: %w", err)
	}

	if _, err := os.Stat(entryPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("autostart status: %w", err)
	}
	return true, nil
}

func (autostart *Autostart) entryPath() (string, error) {
	configDir, err := autostart.configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "autostart", slugName(autostart.appName)+".desktop"), nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}

func buildDesktopEntry(appName, execPath string) string {
	execLine := execPath
	if strings.Contains(execLine, " ") && !strings.HasPrefix(execLine, `"`) {
		execLine = `"` + execLine + `"`
	}

	return fmt.Sprintf(
		`[Desktop Entry]
Type=Application
Name=%s
Comment=Pomodoro timer
Exec=%s
Icon=appointment-soon
Categories=Utility;Clock;
X-GNOME-Autostart-enabled=true
Terminal=false
`,
		appName,
		execLine,
	)
}
