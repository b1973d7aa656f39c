package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/launchpad/internal/domain"
	"github.com/runoshun/launchpad/internal/usecase/shared"
)

// ToggleFavoriteInput contains the parameters for toggling a favorite.
type ToggleFavoriteInput struct {
	GameID string
}

// ToggleFavoriteOutput contains the updated game.
type ToggleFavoriteOutput struct {
	Game *domain.Game
}

// ToggleFavorite flips the favorite flag of a game.
type ToggleFavorite struct {
	games domain.GameRepository
}

// NewToggleFavorite creates a new ToggleFavorite use case.
func NewToggleFavorite(games domain.GameRepository) *ToggleFavorite {
	return &ToggleFavorite{games: games}
}

// Execute toggles the flag.
func (uc *ToggleFavorite) Execute(_ context.Context, in ToggleFavoriteInput) (*ToggleFavoriteOutput, error) {
	game, err := shared.GetGame(uc.games, in.GameID)
	if err != nil {
		return nil, err
	}
	game.Favorite = !game.Favorite
	if err := uc.games.SaveGame(game); err != nil {
		return nil, fmt.Errorf("save game: %w", err)
	}
	return &ToggleFavoriteOutput{Game: game}, nil
}
