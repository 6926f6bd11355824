package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusWaiting indicates a game is waiting for players to join
	GameStatusWaiting GameStatus = "waiting"

	// GameStatusActive indicates a game is in progress
	GameStatusActive GameStatus = "active"

	// GameStatusCompleted indicates a player has slain enough monsters to win
	GameStatusCompleted GameStatus = "completed"
)

// IsWaiting returns true if the game is waiting for players
func (s GameStatus) IsWaiting() bool {
	return s == GameStatusWaiting
}

// IsActive returns true if the game is in progress
func (s GameStatus) IsActive() bool {
	return s == GameStatusActive
}

// IsCompleted returns true if the game has a winner
func (s GameStatus) IsCompleted() bool {
	return s == GameStatusCompleted
}

// GameResult is the record of a finished game
type GameResult struct {
	// GameID is the unique identifier for the game
	GameID string `json:"gameId"`

	// WinnerID is the player who reached the slay target first
	WinnerID string `json:"winnerId"`

	// WinnerName is the display name of the winner
	WinnerName string `json:"winnerName"`

	// Players lists everyone seated in the game, in turn order
	Players []*PlayerSummary `json:"players"`

	// Turns is the number of turns that were started
	Turns int `json:"turns"`

	// StartedAt is when the cards were dealt
	StartedAt time.Time `json:"startedAt"`

	// FinishedAt is when the winner was decided
	FinishedAt time.Time `json:"finishedAt"`
}

// GameRecord is the directory entry of a game: who is seated and how far it
// has got. It is rewritten whenever seats or status change.
type GameRecord struct {
	// ID is the unique identifier for the game
	ID string `json:"id"`

	// Status is the lifecycle state of the game
	Status GameStatus `json:"status"`

	// Players are the seated players in turn order
	Players []*PlayerSummary `json:"players"`

	// WinnerID is set once the game is completed
	WinnerID string `json:"winnerId,omitempty"`

	// CreatedAt is when the game was opened
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the record was last written
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasPlayer reports whether playerID is seated in the game
func (g *GameRecord) HasPlayer(playerID string) bool {
	for _, p := range g.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}
