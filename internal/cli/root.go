// Package cli provides the command-line interface for launchpad.
package cli

import (
	"fmt"

	"github.com/runoshun/launchpad/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupProcess = "process"
	groupLibrary = "library"
	groupSetup   = "setup"
)

// NewRootCommand creates the root command for launchpad.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "launchpad",
		Short: "Game library and detached process launcher",
		Long: `launchpad keeps a library of Steam games and emulator ROMs and
starts them as detached processes that outlive the launcher.

The process commands expose the bare launcher: they start any
executable without waiting for it and without keeping a handle.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupProcess, Title: "Process Commands:"},
		&cobra.Group{ID: groupLibrary, Title: "Library Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	launchProcessCmd := newLaunchProcessCommand(c)
	launchProcessCmd.GroupID = groupProcess

	isRunningCmd := newIsProcessRunningCommand(c)
	isRunningCmd.GroupID = groupProcess

	gameCmd := newGameCommand(c)
	gameCmd.GroupID = groupLibrary

	folderCmd := newFolderCommand(c)
	folderCmd.GroupID = groupLibrary

	emulatorCmd := newEmulatorCommand(c)
	emulatorCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		launchProcessCmd,
		isRunningCmd,
		gameCmd,
		folderCmd,
		emulatorCmd,
		configCmd,
	)

	return root
}
