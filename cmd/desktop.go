package main

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/cobra"

	"tomato/internal/core/timekeeper"
	"tomato/internal/platform"
	"tomato/internal/ui/notify"
	"tomato/internal/ui/timerwindow"
	"tomato/internal/ui/tray"
	"tomato/resources"
)

const trayEventBuffer = 16

func runDesktop(cmd *cobra.Command, opts *options) error {
	logger, err := opts.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	settings, err := opts.settings(cmd, logger)
	if err != nil {
		return err
	}

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustLogo(resources.IconWork))

	timerWindow := timerwindow.New(fyneApp, settings)
	player := platform.NewSoundPlayer(settings.SoundEnabled, "", logger)
	defer func() {
		_ = player.Close()
	}()

	keeper, err := timekeeper.New(settings.TimerConfig(), timekeeper.Config{
		Display:  timerWindow,
		Audio:    player,
		Notifier: notify.New(fyneApp, settings.NotificationsEnabled),
		Messages: settings.Messages,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	defer keeper.Close()
	timerWindow.SetCommands(keeper)

	window := timerWindow.Window()
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnShow:  timerWindow.Show,
			OnStart: keeper.Start,
			OnPause: keeper.Pause,
			OnReset: keeper.Reset,
			OnQuit:  fyneApp.Quit,
		})
		go trayManager.Watch(keeper.Subscribe(trayEventBuffer))
		window.SetCloseIntercept(window.Hide)
	} else {
		logger.Info("system tray unsupported, closing the window quits")
		window.SetMaster()
	}

	permission := keeper.RequestNotificationPermission()
	logger.Info("tomato started",
		slog.Int("work_minutes", settings.WorkMinutes),
		slog.Int("break_minutes", settings.BreakMinutes),
		slog.String("notifications", permission.String()))

	timerWindow.Show()
	fyneApp.Run()
	return nil
}
