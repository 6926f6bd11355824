package result

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/heroparty/internal/repositories/result Repository

import (
	"context"

	"github.com/KirkDiggler/heroparty/internal/models"
)

// Repository defines the interface for finished game persistence
type Repository interface {
	// SaveResult records a finished game and credits the winner
	SaveResult(ctx context.Context, input *SaveResultInput) error

	// GetResult retrieves a finished game by ID
	GetResult(ctx context.Context, input *GetResultInput) (*models.GameResult, error)

	// GetLeaderboard returns the players with the most wins
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*models.Leaderboard, error)
}
