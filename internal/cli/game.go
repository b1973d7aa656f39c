package cli

import (
	"fmt"

	"github.com/runoshun/launchpad/internal/app"
	"github.com/runoshun/launchpad/internal/domain"
	"github.com/runoshun/launchpad/internal/usecase"
	"github.com/spf13/cobra"
)

// newGameCommand creates the game command.
func newGameCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Manage and launch games",
		Long:  `Manage the game library and launch games.`,
	}

	cmd.AddCommand(
		newGameAddSteamCommand(c),
		newGameAddROMCommand(c),
		newGameListCommand(c),
		newGameFavoriteCommand(c),
		newGameRmCommand(c),
		newGameLaunchCommand(c),
	)

	return cmd
}

// newGameAddSteamCommand creates the game add-steam subcommand.
func newGameAddSteamCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add-steam <appid> <title>",
		Short: "Add a Steam game",
		Long: `Add a Steam game by its app ID.

Examples:
  launchpad game add-steam 400 "Portal"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddSteamGameUseCase().Execute(cmd.Context(), usecase.AddSteamGameInput{
				AppID: args[0],
				Title: args[1],
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added game %s: %s\n", out.Game.ID, out.Game.Title)
			return nil
		},
	}
}

// newGameAddROMCommand creates the game add-rom subcommand.
func newGameAddROMCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Platform   string
		EmulatorID string
		Title      string
	}

	cmd := &cobra.Command{
		Use:   "add-rom <path>",
		Short: "Add a single ROM",
		Long: `Add a single ROM file to the library.

The title defaults to the file name without its extension, with dots
and underscores turned into spaces.

Examples:
  launchpad game add-rom ~/roms/gba/Golden_Sun.gba --platform gba --emulator mgba`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			platform, err := domain.ParsePlatform(opts.Platform)
			if err != nil {
				return err
			}
			out, err := c.AddROMGameUseCase().Execute(cmd.Context(), usecase.AddROMGameInput{
				ROMPath:    args[0],
				Platform:   platform,
				EmulatorID: opts.EmulatorID,
				Title:      opts.Title,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added game %s: %s\n", out.Game.ID, out.Game.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Platform, "platform", "p", "", "Platform (ps2, ps3, gba, custom)")
	cmd.Flags().StringVarP(&opts.EmulatorID, "emulator", "e", "", "Emulator ID (default: the emulator of the folder containing the ROM)")
	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Display title")
	_ = cmd.MarkFlagRequired("platform")

	return cmd
}

// newGameListCommand creates the game list subcommand.
func newGameListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Platform  string
		Query     string
		Favorites bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List games",
		Long: `List games in the library, favorites first, then by title.

Examples:
  # Games with "fantasy" anywhere in the title
  launchpad game list --search fantasy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var platform domain.Platform
			if opts.Platform != "" {
				p, err := domain.ParsePlatform(opts.Platform)
				if err != nil {
					return err
				}
				platform = p
			}

			out, err := c.ListGamesUseCase().Execute(cmd.Context(), usecase.ListGamesInput{
				Platform:      platform,
				Query:         opts.Query,
				FavoritesOnly: opts.Favorites,
			})
			if err != nil {
				return err
			}

			printGames(cmd, out.Games)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Platform, "platform", "p", "", "Only list games of this platform")
	cmd.Flags().StringVarP(&opts.Query, "search", "q", "", "Only list games whose title contains this text")
	cmd.Flags().BoolVar(&opts.Favorites, "favorites", false, "Only list favorites")

	return cmd
}

// printGames prints games as a table.
func printGames(cmd *cobra.Command, games []*domain.Game) {
	w := cmd.OutOrStdout()
	rows := make([][]string, 0, len(games))
	for _, g := range games {
		fav := ""
		if g.Favorite {
			fav = "*"
		}
		source := g.ROMPath
		if g.Platform == domain.PlatformSteam {
			source = "app " + g.SteamAppID
		}
		rows = append(rows, []string{fav, g.ID, g.Title, string(g.Platform), source})
	}
	printTable(w, []string{"", "ID", "TITLE", "PLATFORM", "SOURCE"}, rows, 3, "No games.")
}

// newGameFavoriteCommand creates the game favorite subcommand.
func newGameFavoriteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "favorite <id>",
		Aliases: []string{"fav"},
		Short:   "Toggle a game's favorite flag",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ToggleFavoriteUseCase().Execute(cmd.Context(), usecase.ToggleFavoriteInput{GameID: args[0]})
			if err != nil {
				return err
			}
			if out.Game.Favorite {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as favorite\n", out.Game.Title)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unmarked %s as favorite\n", out.Game.Title)
			}
			return nil
		},
	}
}

// newGameRmCommand creates the game rm subcommand.
func newGameRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a game from the library",
		Long:    `Remove a game from the library. ROM files are left on disk.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.RemoveGameUseCase().Execute(cmd.Context(), usecase.RemoveGameInput{GameID: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed game %s: %s\n", out.Game.ID, out.Game.Title)
			return nil
		},
	}
}

// newGameLaunchCommand creates the game launch subcommand.
func newGameLaunchCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "launch <id>",
		Short: "Launch a game",
		Long: `Launch a game as a detached process.

Steam games are opened through the Steam client. Other games run through
their emulator, or the emulator of the folder the ROM was found in.
The exact command is written to the game's log file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.LaunchGameUseCase().Execute(cmd.Context(), usecase.LaunchGameInput{GameID: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Launched %s\n", out.Game.Title)
			return nil
		},
	}
}
