package cli

import (
	"fmt"
	"strings"

	"github.com/runoshun/launchpad/internal/app"
	"github.com/runoshun/launchpad/internal/domain"
	"github.com/runoshun/launchpad/internal/usecase"
	"github.com/spf13/cobra"
)

// newEmulatorCommand creates the emulator command.
func newEmulatorCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emulator",
		Short: "Manage emulators",
		Long: `Manage emulator definitions.

Emulators come from the built-in catalog, the user catalog named by
[emulators] catalog in config.toml, and the library, in increasing
order of precedence.`,
	}

	cmd.AddCommand(
		newEmulatorListCommand(c),
		newEmulatorSetCommand(c),
	)

	return cmd
}

// newEmulatorListCommand creates the emulator list subcommand.
func newEmulatorListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List emulators",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListEmulatorsUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(out.Emulators))
			for _, e := range out.Emulators {
				command := "-"
				if cfg := e.Emulator.ForOS(c.OS); cfg != nil {
					command = strings.TrimSpace(cfg.Exe + " " + strings.Join(cfg.Args, " "))
				}
				rows = append(rows, []string{e.ID, e.Emulator.Name, string(e.Emulator.Platform), command})
			}
			printTable(cmd.OutOrStdout(), []string{"ID", "NAME", "PLATFORM", "COMMAND (" + string(c.OS) + ")"}, rows, 2, "No emulators.")
			return nil
		},
	}
}

// newEmulatorSetCommand creates the emulator set subcommand.
func newEmulatorSetCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name     string
		Platform string
		Exe      string
		OS       string
		Args     []string
	}

	cmd := &cobra.Command{
		Use:   "set [id]",
		Short: "Create or update an emulator",
		Long: `Create or update the command line of an emulator for one OS.

Without an ID a new emulator is created. Arguments may contain ${ROM},
which is replaced by the ROM path at launch.

Examples:
  # Point the built-in PCSX2 entry at a custom build
  launchpad emulator set pcsx2 --exe /opt/pcsx2/pcsx2-qt --arg -batch --arg '${ROM}'

  # Add a new emulator
  launchpad emulator set --name "DuckStation" --platform custom --exe duckstation-qt --arg '${ROM}'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := usecase.UpsertEmulatorInput{
				Name: opts.Name,
				Exe:  opts.Exe,
				Args: opts.Args,
			}
			if len(args) == 1 {
				in.ID = args[0]
			}
			if opts.Platform != "" {
				p, err := domain.ParsePlatform(opts.Platform)
				if err != nil {
					return err
				}
				in.Platform = p
			}
			if opts.OS != "" {
				k, err := domain.ParseOSKey(opts.OS)
				if err != nil {
					return err
				}
				in.OS = k
			}

			out, err := c.UpsertEmulatorUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved emulator %s: %s\n", out.ID, out.Emulator.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "Display name")
	cmd.Flags().StringVarP(&opts.Platform, "platform", "p", "", "Platform the emulator runs")
	cmd.Flags().StringVar(&opts.Exe, "exe", "", "Executable path or name")
	cmd.Flags().StringArrayVar(&opts.Args, "arg", nil, "Argument; ${ROM} is replaced by the ROM path (repeatable)")
	cmd.Flags().StringVar(&opts.OS, "os", "", "OS being configured: win, mac or linux (default: current OS)")
	_ = cmd.MarkFlagRequired("exe")

	return cmd
}
