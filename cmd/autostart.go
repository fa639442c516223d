package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tomato/internal/platform"
)

// loginEntry is replaced in tests.
var loginEntry = func() (loginItem, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate executable: %w", err)
	}
	autostart, err := platform.NewAutostart(appName, execPath)
	if err != nil {
		return nil, err
	}
	return autostart, nil
}

type loginItem interface {
	Enable() error
	Disable() error
	Enabled() (bool, error)
}

func newAutostartCommand() *cobra.Command {
	autostartCmd := &cobra.Command{
		Use:   "autostart",
		Short: "Manage launching Tomato at login",
	}

	autostartCmd.AddCommand(
		&cobra.Command{
			Use:   "enable",
			Short: "Start Tomato when you log in",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				item, err := loginEntry()
				if err != nil {
					return err
				}
				if err := item.Enable(); err != nil {
					return err
				}
				printSuccess(cmd.OutOrStdout(), "Tomato will start at login")
				return nil
			},
		},
		&cobra.Command{
			Use:   "disable",
			Short: "Stop starting Tomato at login",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				item, err := loginEntry()
				if err != nil {
					return err
				}
				if err := item.Disable(); err != nil {
					return err
				}
				printSuccess(cmd.OutOrStdout(), "Tomato will no longer start at login")
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show whether Tomato starts at login",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				item, err := loginEntry()
				if err != nil {
					return err
				}
				enabled, err := item.Enabled()
				if err != nil {
					return err
				}
				if enabled {
					printInfo(cmd.OutOrStdout(), "autostart is %s", green("enabled"))
				} else {
					printInfo(cmd.OutOrStdout(), "autostart is %s", yellow("disabled"))
				}
				return nil
			},
		},
	)
	return autostartCmd
}
