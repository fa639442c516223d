package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tomato/internal/core/timekeeper"
	"tomato/internal/platform"
	"tomato/internal/tui"
)

func newTermCommand(opts *options) *cobra.Command {
	var logFile string
	termCmd := &cobra.Command{
		Use:   "term",
		Short: "Run the timer in the terminal",
		Long: `Run the timer as a terminal UI.

Keys: s start, p pause, r reset, e edit settings, q quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTerminal(cmd, opts, logFile)
		},
	}
	termCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file (the terminal is used by the UI)")
	return termCmd
}

func runTerminal(cmd *cobra.Command, opts *options, logFile string) error {
	var logOut io.Writer = io.Discard
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer file.Close()
		logOut = file
	}

	logger, err := opts.logger(logOut)
	if err != nil {
		return err
	}
	settings, err := opts.settings(cmd, logger)
	if err != nil {
		return err
	}

	display := tui.NewDisplay()
	player := platform.NewSoundPlayer(settings.SoundEnabled, "", logger)
	defer func() {
		_ = player.Close()
	}()

	audio := platform.FallbackPlayer{
		Primary:   player,
		Secondary: platform.BellPlayer{Out: cmd.ErrOrStderr()},
	}

	keeper, err := timekeeper.New(settings.TimerConfig(), timekeeper.Config{
		Display:  display,
		Audio:    audio,
		Notifier: platform.NewDesktopNotifier(appName, settings.NotificationsEnabled),
		Messages: settings.Messages,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	keeper.RequestNotificationPermission()

	snapshot := keeper.Snapshot()
	program := tea.NewProgram(
		tui.NewModel(keeper, keeper.View(), snapshot.Config),
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	display.Attach(program)

	_, runErr := program.Run()
	keeper.Close()
	display.Close()
	if runErr != nil {
		return fmt.Errorf("terminal ui: %w", runErr)
	}
	return nil
}
