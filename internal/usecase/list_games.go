package usecase

import (
	"context"

	"github.com/runoshun/launchpad/internal/domain"
)

// ListGamesInput contains the parameters for listing games.
type ListGamesInput struct {
	Platform      domain.Platform // Empty lists every platform
	Query         string          // Title search, case-insensitive
	FavoritesOnly bool
}

// ListGamesOutput contains the listed games.
type ListGamesOutput struct {
	Games []*domain.Game
}

// ListGames lists games in the library, favorites first.
type ListGames struct {
	games domain.GameRepository
}

// NewListGames creates a new ListGames use case.
func NewListGames(games domain.GameRepository) *ListGames {
	return &ListGames{games: games}
}

// Execute lists the games.
func (uc *ListGames) Execute(_ context.Context, in ListGamesInput) (*ListGamesOutput, error) {
	games, err := uc.games.ListGames(domain.GameFilter{
		Platform:      in.Platform,
		Query:         in.Query,
		FavoritesOnly: in.FavoritesOnly,
	})
	if err != nil {
		return nil, err
	}
	domain.SortGames(games)
	return &ListGamesOutput{Games: games}, nil
}
