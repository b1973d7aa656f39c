package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/runoshun/launchpad/internal/domain"
	"github.com/runoshun/launchpad/internal/usecase/shared"
)

// LaunchGameInput contains the parameters for launching a game.
type LaunchGameInput struct {
	GameID string
}

// LaunchGameOutput contains the command that was started.
type LaunchGameOutput struct {
	Game *domain.Game
	Spec domain.LaunchSpec
}

// LaunchGame starts a game from the library.
// Steam games are handed to the Steam client; everything else runs through
// the game's emulator, or the emulator of the folder the ROM was found in.
// Fields are ordered to minimize memory padding.
type LaunchGame struct {
	games    domain.GameRepository
	catalog  domain.EmulatorCatalog
	launcher domain.ProcessLauncher
	fs       domain.FileSystem
	logger   domain.Logger
	config   domain.ConfigLoader
	os       domain.OSKey
}

// NewLaunchGame creates a new LaunchGame use case.
func NewLaunchGame(
	games domain.GameRepository,
	catalog domain.EmulatorCatalog,
	launcher domain.ProcessLauncher,
	fs domain.FileSystem,
	logger domain.Logger,
	config domain.ConfigLoader,
	os domain.OSKey,
) *LaunchGame {
	return &LaunchGame{
		games:    games,
		catalog:  catalog,
		launcher: launcher,
		fs:       fs,
		logger:   logger,
		config:   config,
		os:       os,
	}
}

// Execute launches the game.
func (uc *LaunchGame) Execute(_ context.Context, in LaunchGameInput) (*LaunchGameOutput, error) {
	game, err := shared.GetGame(uc.games, in.GameID)
	if err != nil {
		return nil, err
	}

	var spec domain.LaunchSpec
	if game.Platform == domain.PlatformSteam {
		spec, err = uc.steamSpec(game)
	} else {
		spec, err = uc.romSpec(game)
	}
	if err != nil {
		uc.logger.Error(game.ID, "launch", err.Error())
		return nil, err
	}

	uc.logger.Info(game.ID, "launch", "starting: "+formatCommand(spec))
	if err := uc.launcher.Launch(spec); err != nil {
		uc.logger.Error(game.ID, "launch", err.Error())
		return nil, err
	}

	return &LaunchGameOutput{Game: game, Spec: spec}, nil
}

func (uc *LaunchGame) steamSpec(game *domain.Game) (domain.LaunchSpec, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return domain.LaunchSpec{}, fmt.Errorf("load config: %w", err)
	}
	return domain.SteamLaunchSpec(game.SteamAppID, cfg.SteamOpener(uc.os))
}

func (uc *LaunchGame) romSpec(game *domain.Game) (domain.LaunchSpec, error) {
	settings, err := uc.games.GetSettings()
	if err != nil {
		return domain.LaunchSpec{}, fmt.Errorf("get settings: %w", err)
	}

	emulatorID := resolveEmulatorID(game, settings)
	if emulatorID == "" {
		return domain.LaunchSpec{}, fmt.Errorf("%w: %s", domain.ErrNoEmulator, game.Title)
	}

	emulators, err := shared.EffectiveEmulators(uc.catalog, settings)
	if err != nil {
		return domain.LaunchSpec{}, err
	}
	emu, ok := emulators[emulatorID]
	if !ok {
		return domain.LaunchSpec{}, fmt.Errorf("%w: %s", domain.ErrEmulatorNotFound, emulatorID)
	}

	spec, err := domain.BuildROMLaunchSpec(game, emu, uc.os)
	if err != nil {
		return domain.LaunchSpec{}, fmt.Errorf("%s: %w", emu.Name, err)
	}

	// Bare command names are resolved through PATH by the OS.
	if strings.ContainsAny(spec.Exe, `/\`) && !uc.fs.Exists(spec.Exe) {
		return domain.LaunchSpec{}, fmt.Errorf("%w: %s", domain.ErrEmulatorNotFound, spec.Exe)
	}
	if rom := domain.Dequote(game.ROMPath); !uc.fs.Exists(rom) {
		return domain.LaunchSpec{}, fmt.Errorf("%w: %s", domain.ErrROMNotFound, rom)
	}

	return spec, nil
}

// resolveEmulatorID returns the game's emulator, or that of the first folder containing its ROM.
func resolveEmulatorID(game *domain.Game, settings *domain.Settings) string {
	if game.EmulatorID != "" {
		return game.EmulatorID
	}
	rom := domain.Dequote(game.ROMPath)
	for _, f := range settings.GameFolders {
		if f.EmulatorID != "" && f.Contains(rom) {
			return f.EmulatorID
		}
	}
	return ""
}

// formatCommand renders spec as a single shell-like line for logs.
func formatCommand(spec domain.LaunchSpec) string {
	parts := make([]string, 0, len(spec.Args)+1)
	parts = append(parts, strconv.Quote(spec.Exe))
	for _, a := range spec.Args {
		parts = append(parts, strconv.Quote(a))
	}
	line := strings.Join(parts, " ")
	if spec.HasCwd() {
		line += " (cwd " + spec.Cwd + ")"
	}
	return line
}
