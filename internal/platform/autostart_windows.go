//go:build windows

package platform

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

const registryRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

// Enable adds a value under the current user's Run key.
func (autostart *Autostart) Enable() error {
	output, err := exec.Command(
		"reg", "add", registryRunKey,
		"/v", autostart.appName,
		"/t", "REG_SZ",
		"/d", quoteWindowsPath(autostart.execPath),
		"/f",
	).CombinedOutput()
	if err != nil {
		return fmt.Errorf("enable autostart: reg add failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// Disable deletes the Run value. A missing value is not an error.
func (autostart *Autostart) Disable() error {
	enabled, err := autostart.Enabled()
	if err != nil || !enabled {
		return err
	}

	output, err := exec.Command("reg", "delete", registryRunKey, "/v", autostart.appName, "/f").CombinedOutput()
	if err != nil {
		return fmt.Errorf("disable autostart: reg delete failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// Enabled reports whether the Run value exists.
func (autostart *Autostart) Enabled() (bool, error) {
	err := exec.Command("reg", "query", registryRunKey, "/v", autostart.appName).Run()
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, fmt.Errorf("autostart status: %w", err)
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}

func quoteWindowsPath(execPath string) string {
	trimmed := strings.Trim(execPath, `"`)
	return fmt.Sprintf(`"%s"`, trimmed)
}
