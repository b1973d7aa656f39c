// Package shared provides shared utilities for use cases.
package shared

import (
	"fmt"

	"github.com/runoshun/launchpad/internal/domain"
)

// GetGame retrieves a game by ID and returns domain.ErrGameNotFound if not found.
// This centralizes the common pattern of:
//
//	game, err := repo.GetGame(id)
//	if err != nil { return nil, fmt.Errorf("get game: %w", err) }
//	if game == nil { return nil, domain.ErrGameNotFound }
func GetGame(repo domain.GameRepository, id string) (*domain.Game, error) {
	game, err := repo.GetGame(id)
	if err != nil {
		return nil, fmt.Errorf("get game: %w", err)
	}
	if game == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrGameNotFound, id)
	}
	return game, nil
}

// FindFolder returns the folder with the given ID, or domain.ErrFolderNotFound.
func FindFolder(settings *domain.Settings, id string) (domain.GameFolder, error) {
	for _, f := range settings.GameFolders {
		if f.ID == id {
			return f, nil
		}
	}
	return domain.GameFolder{}, fmt.Errorf("%w: %s", domain.ErrFolderNotFound, id)
}
