package result

import "github.com/KirkDiggler/heroparty/internal/models"

type SaveResultInput struct {
	Result *models.GameResult
}

type GetResultInput struct {
	GameID string
}

type GetLeaderboardInput struct {
	// Limit caps the number of entries; zero means the default
	Limit int
}
