package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/heroparty/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/heroparty/internal/models"
)

// Repository is the directory of open and finished games
type Repository interface {
	// SaveGame persists a game record and its player index
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game record by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.GameRecord, error)

	// GetGameByPlayer retrieves the game a player is seated in
	GetGameByPlayer(ctx context.Context, input *GetGameByPlayerInput) (*models.GameRecord, error)

	// DeleteGame removes a game record and its player index
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// GetOpenGames retrieves every game that is waiting or active
	GetOpenGames(ctx context.Context, input *GetOpenGamesInput) (*GetOpenGamesOutput, error)
}
