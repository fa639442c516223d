//go:build !linux && !darwin && !windows

package platform

import (
	"errors"
	"path/filepath"
)

// ErrAutostartUnsupported is returned on platforms without a login item mechanism.
var ErrAutostartUnsupported = errors.New("autostart is not supported on this platform")

func (autostart *Autostart) Enable() error { return ErrAutostartUnsupported }

func (autostart *Autostart) Disable() error { return ErrAutostartUnsupported }

func (autostart *Autostart) Enabled() (bool, error) { return false, ErrAutostartUnsupported }

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}
