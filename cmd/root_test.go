package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tomato/internal/core/model"
	"tomato/internal/logging"
)

func init() {
	color.NoColor = true
}

func parseOptions(t *testing.T, args ...string) (*options, *cobra.Command) {
	t.Helper()
	opts := &options{}
	cmd := &cobra.Command{Use: "tomato"}
	opts.register(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return opts, cmd
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSettingsFromFileAndFlags(t *testing.T) {
	path := writeConfig(t, "work_minutes: 40\nbreak_minutes: 8\n")

	opts, cmd := parseOptions(t, "--config", path, "--break", "10", "--no-sound")
	settings, err := opts.settings(cmd, logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, 40, settings.WorkMinutes)
	assert.Equal(t, 10, settings.BreakMinutes)
	assert.False(t, settings.SoundEnabled)
	assert.True(t, settings.NotificationsEnabled)
}

func TestSettingsMissingFileUsesDefaults(t *testing.T) {
	opts, cmd := parseOptions(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "--no-notify")
	settings, err := opts.settings(cmd, logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, model.DefaultWorkMinutes, settings.WorkMinutes)
	assert.Equal(t, model.DefaultBreakMinutes, settings.BreakMinutes)
	assert.False(t, settings.NotificationsEnabled)
}

func TestSettingsRejectsOutOfRangeFlags(t *testing.T) {
	path := writeConfig(t, "")

	opts, cmd := parseOptions(t, "--config", path, "--work", "0")
	_, err := opts.settings(cmd, logging.Discard())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrOutOfRange)
	assert.Contains(t, err.Error(), "invalid flags")

	opts, cmd = parseOptions(t, "--config", path, "--break", "31")
	_, err = opts.settings(cmd, logging.Discard())
	var validation *model.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, model.FieldBreakMinutes, validation.Field)
}

func TestSettingsRejectsMalformedConfig(t *testing.T) {
	path := writeConfig(t, "work_minutes: [1, 2\n")

	opts, cmd := parseOptions(t, "--config", path)
	_, err := opts.settings(cmd, logging.Discard())
	assert.Error(t, err)
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	opts, _ := parseOptions(t, "--log-level", "loud")
	_, err := opts.logger(&bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid --log-level")
}

func TestVersionCommand(t *testing.T) {
	rootCmd := newRootCommand(buildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-02"})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "tomato 1.2.3 (commit abc123, built 2026-01-02)\n", out.String())
}

func TestRootRejectsArguments(t *testing.T) {
	err := execute(buildInfo{}, []string{"now"})
	assert.Error(t, err)
}

func TestPrintError(t *testing.T) {
	var out bytes.Buffer
	printError(&out, errors.New("single instance: already running"))
	assert.Equal(t, "✗ single instance: already running\n", out.String())
}

type fakeLoginItem struct {
	enabled bool
	err     error
}

func (item *fakeLoginItem) Enable() error {
	if item.err != nil {
		return item.err
	}
	item.enabled = true
	return nil
}

func (item *fakeLoginItem) Disable() error {
	item.enabled = false
	return item.err
}

func (item *fakeLoginItem) Enabled() (bool, error) { return item.enabled, item.err }

func useLoginItem(t *testing.T, item *fakeLoginItem) {
	t.Helper()
	previous := loginEntry
	loginEntry = func() (loginItem, error) { return item, nil }
	t.Cleanup(func() { loginEntry = previous })
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := newRootCommand(buildInfo{})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAutostartCommands(t *testing.T) {
	item := &fakeLoginItem{}
	useLoginItem(t, item)

	out, err := runCommand(t, "autostart", "status")
	require.NoError(t, err)
	assert.Equal(t, "i autostart is disabled\n", out)

	out, err = runCommand(t, "autostart", "enable")
	require.NoError(t, err)
	assert.Equal(t, "✓ Tomato will start at login\n", out)
	assert.True(t, item.enabled)

	out, err = runCommand(t, "autostart", "status")
	require.NoError(t, err)
	assert.Equal(t, "i autostart is enabled\n", out)

	_, err = runCommand(t, "autostart", "disable")
	require.NoError(t, err)
	assert.False(t, item.enabled)
}

func TestAutostartFailure(t *testing.T) {
	useLoginItem(t, &fakeLoginItem{err: errors.New("read-only home")})

	_, err := runCommand(t, "autostart", "enable")
	assert.ErrorContains(t, err, "read-only home")
}
