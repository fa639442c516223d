package platform

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"tomato/internal/core/timekeeper"
	"tomato/internal/logging"
	"tomato/resources"
)

// ErrNoPlayer indicates no audio player command was found on this system.
var ErrNoPlayer = errors.New("no audio player available")

// ErrSoundDisabled is returned by a disabled SoundPlayer.
var ErrSoundDisabled = errors.New("sound disabled")

// ErrPlayerClosed is returned by Play after Close.
var ErrPlayerClosed = errors.New("sound player closed")

// SoundPlayer plays cue sounds with the platform's command-line player.
// Playback runs in the background; Play only reports failures to launch.
type SoundPlayer struct {
	mu       sync.Mutex
	enabled  bool
	dir      string
	ownsDir  bool
	closed   bool
	files    map[timekeeper.Cue]string
	logger   *slog.Logger
	lookPath func(string) (string, error)
	start    func(*exec.Cmd) error
}

// NewSoundPlayer creates a player that writes cue files under dir.
// An empty dir means a fresh directory under os.TempDir.
func NewSoundPlayer(enabled bool, dir string, logger *slog.Logger) *SoundPlayer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &SoundPlayer{
		enabled:  enabled,
		dir:      dir,
		files:    make(map[timekeeper.Cue]string),
		logger:   logger,
		lookPath: exec.LookPath,
		start:    startDetached,
	}
}

// Play launches the player for cue.
func (player *SoundPlayer) Play(cue timekeeper.Cue) error {
	if !player.enabled {
		return ErrSoundDisabled
	}

	path, err := player.cueFile(cue)
	if err != nil {
		return err
	}

	for _, candidate := range playerCommands(path) {
		binary, err := player.lookPath(candidate[0])
		if err != nil {
			continue
		}
		cmd := exec.Command(binary, candidate[1:]...)
		if err := player.start(cmd); err != nil {
			return fmt.Errorf("start %s: %w", candidate[0], err)
		}
		player.logger.Debug("playing cue", logging.Cue(string(cue)), slog.String("player", candidate[0]))
		return nil
	}
	return ErrNoPlayer
}

// Close removes the cue files written by the player, and the directory when
// the player created it. Play fails afterwards.
func (player *SoundPlayer) Close() error {
	player.mu.Lock()
	defer player.mu.Unlock()
	if player.closed {
		return nil
	}
	player.closed = true

	var errs []error
	for cue, path := range player.files {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
		delete(player.files, cue)
	}
	if player.ownsDir {
		if err := os.RemoveAll(player.dir); err != nil {
			errs = append(errs, fmt.Errorf("remove sound dir: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (player *SoundPlayer) cueFile(cue timekeeper.Cue) (string, error) {
	player.mu.Lock()
	defer player.mu.Unlock()

	if player.closed {
		return "", ErrPlayerClosed
	}
	if path, ok := player.files[cue]; ok {
		return path, nil
	}

	resource, err := resources.Cue(string(cue))
	if err != nil {
		return "", err
	}
	if player.dir == "" {
		dir, err := os.MkdirTemp("", "tomato-sounds-")
		if err != nil {
			return "", fmt.Errorf("create sound dir: %w", err)
		}
		player.dir = dir
		player.ownsDir = true
	}
	path := filepath.Join(player.dir, resource.Name())
	if err := os.WriteFile(path, resource.Content(), 0o644); err != nil {
		return "", fmt.Errorf("write cue file: %w", err)
	}
	player.files[cue] = path
	return path, nil
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

// BellPlayer rings the terminal bell.
type BellPlayer struct {
	Out io.Writer
}

// Play writes the BEL control character.
func (bell BellPlayer) Play(timekeeper.Cue) error {
	if bell.Out == nil {
		return ErrNoPlayer
	}
	_, err := io.WriteString(bell.Out, "\a")
	return err
}

// FallbackPlayer tries Primary and falls back to Secondary when it fails.
// A disabled primary is not a failure.
type FallbackPlayer struct {
	Primary   timekeeper.AudioNotifier
	Secondary timekeeper.AudioNotifier
}

// Play plays cue on the first player that succeeds.
func (fallback FallbackPlayer) Play(cue timekeeper.Cue) error {
	err := fallback.Primary.Play(cue)
	if err == nil || errors.Is(err, ErrSoundDisabled) || fallback.Secondary == nil {
		return err
	}
	if secondErr := fallback.Secondary.Play(cue); secondErr != nil {
		return errors.Join(err, secondErr)
	}
	return nil
}
