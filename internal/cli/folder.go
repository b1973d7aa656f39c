package cli

import (
	"fmt"

	"github.com/runoshun/launchpad/internal/app"
	"github.com/runoshun/launchpad/internal/domain"
	"github.com/runoshun/launchpad/internal/usecase"
	"github.com/spf13/cobra"
)

// newFolderCommand creates the folder command.
func newFolderCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder",
		Short: "Manage ROM folders",
		Long: `Manage folders that are scanned for ROMs.

Each folder holds ROMs of one platform and names the emulator used to
run them. Games found by a scan inherit the folder's emulator.`,
	}

	cmd.AddCommand(
		newFolderAddCommand(c),
		newFolderListCommand(c),
		newFolderRmCommand(c),
		newFolderScanCommand(c),
	)

	return cmd
}

// newFolderAddCommand creates the folder add subcommand.
func newFolderAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Platform   string
		EmulatorID string
		Name       string
	}

	cmd := &cobra.Command{
		Use:   "add <path>",
		Short: "Register a ROM folder",
		Long: `Register a ROM folder. Run "launchpad folder scan" afterwards to add its games.

Examples:
  launchpad folder add ~/roms/ps2 --platform ps2 --emulator pcsx2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			platform, err := domain.ParsePlatform(opts.Platform)
			if err != nil {
				return err
			}
			out, err := c.AddGameFolderUseCase().Execute(cmd.Context(), usecase.AddGameFolderInput{
				Path:       args[0],
				Platform:   platform,
				EmulatorID: opts.EmulatorID,
				Name:       opts.Name,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added folder %s: %s (%s)\n", out.Folder.ID, out.Folder.Name, out.Folder.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Platform, "platform", "p", "", "Platform of the ROMs (ps2, ps3, gba, custom)")
	cmd.Flags().StringVarP(&opts.EmulatorID, "emulator", "e", "", "Emulator ID used for the ROMs")
	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "Display name (default: directory name)")
	_ = cmd.MarkFlagRequired("platform")

	return cmd
}

// newFolderListCommand creates the folder list subcommand.
func newFolderListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List ROM folders",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListGameFoldersUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(out.Folders))
			for _, f := range out.Folders {
				rows = append(rows, []string{f.ID, f.Name, string(f.Platform), f.EmulatorID, f.Path})
			}
			printTable(cmd.OutOrStdout(), []string{"ID", "NAME", "PLATFORM", "EMULATOR", "PATH"}, rows, 2, "No folders.")
			return nil
		},
	}
}

// newFolderRmCommand creates the folder rm subcommand.
func newFolderRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Unregister a ROM folder",
		Long:    `Unregister a ROM folder and remove the games found in it from the library.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.RemoveGameFolderUseCase().Execute(cmd.Context(), usecase.RemoveGameFolderInput{FolderID: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed folder %s (%d games removed)\n", out.Folder.Name, out.PrunedGames)
			return nil
		},
	}
}

// newFolderScanCommand creates the folder scan subcommand.
func newFolderScanCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [id]",
		Short: "Scan ROM folders for new games",
		Long: `Scan every registered folder, or only the given one, and add ROMs
that are not in the library yet. Games inside a scanned folder whose ROM
file no longer exists are removed from the library.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in usecase.ScanFoldersInput
			if len(args) == 1 {
				in.FolderID = args[0]
			}
			out, err := c.ScanFoldersUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, r := range out.Results {
				if r.Err != nil {
					_, _ = fmt.Fprintf(w, "%s: error: %v\n", r.Folder.Name, r.Err)
					continue
				}
				if r.Removed > 0 {
					_, _ = fmt.Fprintf(w, "%s: %d found, %d added, %d removed\n", r.Folder.Name, r.Found, r.Added, r.Removed)
					continue
				}
				_, _ = fmt.Fprintf(w, "%s: %d found, %d added\n", r.Folder.Name, r.Found, r.Added)
			}
			_, _ = fmt.Fprintf(w, "Added %d games\n", out.Added())
			if n := out.Removed(); n > 0 {
				_, _ = fmt.Fprintf(w, "Removed %d missing games\n", n)
			}
			return nil
		},
	}
}
