package usecase

import (
	"context"

	"github.com/runoshun/launchpad/internal/domain"
	"github.com/runoshun/launchpad/internal/usecase/shared"
)

// RemoveGameInput contains the parameters for removing a game.
type RemoveGameInput struct {
	GameID string
}

// RemoveGameOutput contains the removed game.
type RemoveGameOutput struct {
	Game *domain.Game
}

// RemoveGame removes a game from the library. ROM files are left on disk.
type RemoveGame struct {
	games domain.GameRepository
}

// NewRemoveGame creates a new RemoveGame use case.
func NewRemoveGame(games domain.GameRepository) *RemoveGame {
	return &RemoveGame{games: games}
}

// Execute removes the game.
func (uc *RemoveGame) Execute(_ context.Context, in RemoveGameInput) (*RemoveGameOutput, error) {
	game, err := shared.GetGame(uc.games, in.GameID)
	if err != nil {
		return nil, err
	}
	if err := uc.games.DeleteGame(game.ID); err != nil {
		return nil, err
	}
	return &RemoveGameOutput{Game: game}, nil
}
