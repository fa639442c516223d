package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"tomato/internal/logging"
	"tomato/internal/storage"
	"tomato/internal/ui/preferences"
)

const (
	appName    = "Tomato"
	appID      = "com.tomato.timer"
	configName = "tomato"
)

// options are the flags shared by every front end.
type options struct {
	configPath   string
	workMinutes  int
	breakMinutes int
	logLevel     string
	noSound      bool
	noNotify     bool
}

func (opts *options) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Settings file (default $XDG_CONFIG_HOME/tomato/settings.yaml)")
	flags.IntVar(&opts.workMinutes, "work", 0, "Work phase length in minutes (1-60)")
	flags.IntVar(&opts.breakMinutes, "break", 0, "Break phase length in minutes (1-30)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.BoolVar(&opts.noSound, "no-sound", false, "Do not play a sound when a phase ends")
	flags.BoolVar(&opts.noNotify, "no-notify", false, "Do not raise desktop notifications")
}

func (opts *options) logger(out io.Writer) (*slog.Logger, error) {
	logger, err := logging.New(out, opts.logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return logger, nil
}

// settings loads the settings file and applies flag overrides on top.
func (opts *options) settings(cmd *cobra.Command, logger *slog.Logger) (preferences.Settings, error) {
	path := opts.configPath
	if path == "" {
		defaultPath, err := storage.DefaultPath(configName)
		if err != nil {
			return preferences.Settings{}, err
		}
		path = defaultPath
	}

	settings, err := storage.LoadSettings(path, logger)
	if err != nil {
		return preferences.Settings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("work") {
		settings.WorkMinutes = opts.workMinutes
	}
	if flags.Changed("break") {
		settings.BreakMinutes = opts.breakMinutes
	}
	if opts.noSound {
		settings.SoundEnabled = false
	}
	if opts.noNotify {
		settings.NotificationsEnabled = false
	}

	if err := settings.TimerConfig().Validate(); err != nil {
		return preferences.Settings{}, fmt.Errorf("invalid flags: %w", err)
	}
	return settings, nil
}

func newRootCommand(info buildInfo) *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "tomato",
		Short: "Tomato - a Pomodoro timer",
		Long: `Tomato alternates work and break intervals, counts completed work
cycles and announces every transition with a sound and a desktop notification.

Without a subcommand it opens the desktop window with a tray menu.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesktop(cmd, opts)
		},
	}
	opts.register(rootCmd)

	rootCmd.AddCommand(
		newTermCommand(opts),
		newAutostartCommand(),
		newVersionCommand(info),
	)
	return rootCmd
}

func execute(info buildInfo, args []string) error {
	rootCmd := newRootCommand(info)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
