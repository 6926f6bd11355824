package game

import "github.com/KirkDiggler/heroparty/internal/models"

type SaveGameInput struct {
	Game *models.GameRecord
}

type GetGameInput struct {
	GameID string
}

type GetGameByPlayerInput struct {
	PlayerID string
}

type DeleteGameInput struct {
	GameID string
}

type GetOpenGamesInput struct {
}

type GetOpenGamesOutput struct {
	// Games are ordered oldest first
	Games []*models.GameRecord
}
