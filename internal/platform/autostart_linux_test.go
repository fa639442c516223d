//go:build linux

package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAutostart(t *testing.T, execPath string) (*Autostart, string) {
	t.Helper()
	autostart, err := NewAutostart("Tomato", execPath)
	require.NoError(t, err)
	configDir := t.TempDir()
	autostart.configDir = func() (string, error) { return configDir, nil }
	return autostart, filepath.Join(configDir, "autostart", "tomato.desktop")
}

func TestAutostartEnableDisable(t *testing.T) {
	autostart, entryPath := newTestAutostart(t, "/opt/tomato/bin/tomato")

	enabled, err := autostart.Enabled()
	require.NoError(t, err)
	assert.False(t, enabled)

	require.NoError(t, autostart.Enable())
	content, err := os.ReadFile(entryPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Name=Tomato\n")
	assert.Contains(t, string(content), "Exec=/opt/tomato/bin/tomato\n")

	enabled, err = autostart.Enabled()
	require.NoError(t, err)
	assert.True(t, enabled)

	require.NoError(t, autostart.Disable())
	require.NoError(t, autostart.Disable())
	enabled, err = autostart.Enabled()
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestAutostartQuotesPathWithSpaces(t *testing.T) {
	assert.Contains(t, buildDesktopEntry("Tomato", "/home/me/My Apps/tomato"), `Exec="/home/me/My Apps/tomato"`)
	assert.Contains(t, buildDesktopEntry("Tomato", `"/already quoted"`), `Exec="/already quoted"`+"\n")
}

func TestAutostartConfigDirFailure(t *testing.T) {
	autostart, _ := newTestAutostart(t, "/usr/bin/tomato")
	autostart.configDir = func() (string, error) { return "", errors.New("no config dir") }

	assert.ErrorContains(t, autostart.Enable(), "enable autostart: no config dir")
	_, err := autostart.Enabled()
	assert.Error(t, err)
}

func TestNewAutostartValidates(t *testing.T) {
	_, err := NewAutostart("  ", "/usr/bin/tomato")
	assert.ErrorIs(t, err, ErrEmptyAppName)

	_, err = NewAutostart("Tomato", "")
	assert.Error(t, err)
}

func TestSlugName(t *testing.T) {
	assert.Equal(t, "tomato-timer", slugName(" Tomato Timer "))
}
