package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/launchpad/internal/domain"
)

// AddSteamGameInput contains the parameters for adding a Steam game.
type AddSteamGameInput struct {
	AppID string // Steam app ID (required)
	Title string // Display title (required)
}

// AddGameOutput contains the game that was added.
type AddGameOutput struct {
	Game *domain.Game
}

// AddSteamGame adds a Steam game to the library.
type AddSteamGame struct {
	games domain.GameRepository
	ids   domain.IDGenerator
}

// NewAddSteamGame creates a new AddSteamGame use case.
func NewAddSteamGame(games domain.GameRepository, ids domain.IDGenerator) *AddSteamGame {
	return &AddSteamGame{games: games, ids: ids}
}

// Execute adds the game.
func (uc *AddSteamGame) Execute(_ context.Context, in AddSteamGameInput) (*AddGameOutput, error) {
	appID := strings.TrimSpace(in.AppID)
	if appID == "" {
		return nil, domain.ErrMissingSteamAppID
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}

	game := &domain.Game{
		ID:         uc.ids.NewID(),
		Title:      title,
		Platform:   domain.PlatformSteam,
		SteamAppID: appID,
	}
	if err := uc.games.SaveGame(game); err != nil {
		return nil, fmt.Errorf("save game: %w", err)
	}
	return &AddGameOutput{Game: game}, nil
}

// AddROMGameInput contains the parameters for adding a ROM game.
type AddROMGameInput struct {
	ROMPath    string          // Path to the ROM (required)
	Platform   domain.Platform // Platform of the ROM (required, not steam)
	EmulatorID string          // Emulator to use; empty falls back to the folder's emulator
	Title      string          // Display title; derived from the file name if empty
}

// AddROMGame adds a single ROM to the library.
type AddROMGame struct {
	games domain.GameRepository
	ids   domain.IDGenerator
}

// NewAddROMGame creates a new AddROMGame use case.
func NewAddROMGame(games domain.GameRepository, ids domain.IDGenerator) *AddROMGame {
	return &AddROMGame{games: games, ids: ids}
}

// Execute adds the game.
func (uc *AddROMGame) Execute(_ context.Context, in AddROMGameInput) (*AddGameOutput, error) {
	if !in.Platform.IsValid() || !in.Platform.UsesEmulator() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPlatform, in.Platform)
	}
	romPath := domain.Dequote(strings.TrimSpace(in.ROMPath))
	if romPath == "" {
		return nil, domain.ErrMissingROMPath
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = domain.TitleFromFilename(romPath)
	}

	game := &domain.Game{
		ID:         uc.ids.NewID(),
		Title:      title,
		Platform:   in.Platform,
		ROMPath:    romPath,
		EmulatorID: in.EmulatorID,
	}
	if err := uc.games.SaveGame(game); err != nil {
		return nil, fmt.Errorf("save game: %w", err)
	}
	return &AddGameOutput{Game: game}, nil
}
