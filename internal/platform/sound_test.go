package platform

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tomato/internal/core/timekeeper"
)

func newTestPlayer(t *testing.T) (*SoundPlayer, *[]*exec.Cmd) {
	t.Helper()
	player := NewSoundPlayer(true, t.TempDir(), nil)
	var started []*exec.Cmd
	player.lookPath = func(name string) (string, error) { return "/usr/bin/" + name, nil }
	player.start = func(cmd *exec.Cmd) error {
		started = append(started, cmd)
		return nil
	}
	return player, &started
}

func TestSoundPlayerLaunchesFirstAvailablePlayer(t *testing.T) {
	if len(playerCommands("x")) == 0 {
		t.Skipf("no player commands on %s", runtime.GOOS)
	}
	player, started := newTestPlayer(t)

	require.NoError(t, player.Play(timekeeper.CueWorkComplete))
	require.Len(t, *started, 1)

	cmd := (*started)[0]
	path := cmd.Args[len(cmd.Args)-1]
	if runtime.GOOS == "windows" {
		assert.Contains(t, path, "work_complete.wav")
	} else {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "RIFF", string(data[:4]))
	}

	require.NoError(t, player.Play(timekeeper.CueWorkComplete))
	assert.Len(t, player.files, 1, "cue file written once")

	require.NoError(t, player.Close())
	assert.Empty(t, player.files)
}

func TestSoundPlayerCloseRemovesOwnDir(t *testing.T) {
	player := NewSoundPlayer(true, "", nil)
	player.lookPath = func(name string) (string, error) { return "/usr/bin/" + name, nil }
	player.start = func(*exec.Cmd) error { return nil }

	err := player.Play(timekeeper.CueBreakComplete)
	if len(playerCommands("x")) == 0 {
		require.ErrorIs(t, err, ErrNoPlayer)
	} else {
		require.NoError(t, err)
	}
	dir := player.dir
	require.NotEmpty(t, dir)
	_, err = os.Stat(dir)
	require.NoError(t, err)

	require.NoError(t, player.Close())
	_, err = os.Stat(dir)
	assert.True(t, errors.Is(err, os.ErrNotExist), "sound dir %s still exists", dir)

	assert.ErrorIs(t, player.Play(timekeeper.CueWorkComplete), ErrPlayerClosed)
	require.NoError(t, player.Close())
}

func TestSoundPlayerCloseKeepsCallerDir(t *testing.T) {
	player, _ := newTestPlayer(t)
	dir := player.dir

	_ = player.Play(timekeeper.CueWorkComplete)
	require.NoError(t, player.Close())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSoundPlayerWithoutPlayer(t *testing.T) {
	player, started := newTestPlayer(t)
	player.lookPath = func(string) (string, error) { return "", exec.ErrNotFound }

	err := player.Play(timekeeper.CueBreakComplete)
	assert.True(t, errors.Is(err, ErrNoPlayer))
	assert.Empty(t, *started)
}

func TestSoundPlayerStartFailure(t *testing.T) {
	if len(playerCommands("x")) == 0 {
		t.Skipf("no player commands on %s", runtime.GOOS)
	}
	player, _ := newTestPlayer(t)
	player.start = func(*exec.Cmd) error { return errors.New("exec format error") }

	assert.ErrorContains(t, player.Play(timekeeper.CueBreakComplete), "exec format error")
}

func TestSoundPlayerDisabled(t *testing.T) {
	player := NewSoundPlayer(false, t.TempDir(), nil)
	assert.True(t, errors.Is(player.Play(timekeeper.CueWorkComplete), ErrSoundDisabled))
}

func TestBellPlayer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, BellPlayer{Out: &buf}.Play(timekeeper.CueWorkComplete))
	assert.Equal(t, "\a", buf.String())
	assert.ErrorIs(t, BellPlayer{}.Play(timekeeper.CueWorkComplete), ErrNoPlayer)
}

type stubAudio struct {
	err   error
	calls int
}

func (audio *stubAudio) Play(timekeeper.Cue) error {
	audio.calls++
	return audio.err
}

func TestFallbackPlayer(t *testing.T) {
	primary := &stubAudio{err: ErrNoPlayer}
	secondary := &stubAudio{}
	fallback := FallbackPlayer{Primary: primary, Secondary: secondary}

	require.NoError(t, fallback.Play(timekeeper.CueWorkComplete))
	assert.Equal(t, 1, secondary.calls)

	primary.err = ErrSoundDisabled
	assert.ErrorIs(t, fallback.Play(timekeeper.CueWorkComplete), ErrSoundDisabled)
	assert.Equal(t, 1, secondary.calls, "disabled sound stays silent")

	primary.err = nil
	require.NoError(t, fallback.Play(timekeeper.CueWorkComplete))
	assert.Equal(t, 1, secondary.calls)

	primary.err = ErrNoPlayer
	secondary.err = errors.New("no tty")
	err := fallback.Play(timekeeper.CueWorkComplete)
	assert.ErrorIs(t, err, ErrNoPlayer)
	assert.ErrorContains(t, err, "no tty")
}
