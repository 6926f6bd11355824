package game

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/heroparty/internal/catalog"
	"github.com/KirkDiggler/heroparty/internal/common/clock"
	"github.com/KirkDiggler/heroparty/internal/common/uuid"
	"github.com/KirkDiggler/heroparty/internal/dice"
	"github.com/KirkDiggler/heroparty/internal/game/session"
	"github.com/KirkDiggler/heroparty/internal/models"
	gameRepo "github.com/KirkDiggler/heroparty/internal/repositories/game"
	resultRepo "github.com/KirkDiggler/heroparty/internal/repositories/result"
	"github.com/KirkDiggler/heroparty/internal/services/broadcast"
)

// Config holds configuration for the game service
type Config struct {
	// Maximum number of concurrent games; zero means unlimited
	MaxConcurrentGames int

	// FinishedGameTTL is how long a won game stays open before its room is
	// ended; zero means ten minutes
	FinishedGameTTL time.Duration

	// Rules every new game is played with
	Rules session.Rules

	// Catalog every new game is dealt from
	Catalog *catalog.Catalog

	// Repository dependencies
	GameRepo   gameRepo.Repository
	ResultRepo resultRepo.Repository

	// Notifier receives a snapshot after every successful action; optional
	Notifier broadcast.Notifier

	// Announcer is told about every finished game; optional
	Announcer broadcast.Announcer

	// Logger defaults to slog.Default
	Logger *slog.Logger

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// GameID is optional; a fresh id is generated when empty
	GameID string

	// CreatorID is the player creating the game
	CreatorID string

	// CreatorName is the display name of the player creating the game
	CreatorName string
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	// GameID is the unique identifier for the created game
	GameID string

	// Snapshot is the state after the creator was seated
	Snapshot *broadcast.Snapshot
}

// ActionOutput is the result of any successful game action
type ActionOutput struct {
	// Outcome describes what the action did
	Outcome *session.Outcome

	// Snapshot is the state right after the action
	Snapshot *broadcast.Snapshot
}

// JoinGameInput contains parameters for joining a game
type JoinGameInput struct {
	GameID     string
	PlayerID   string
	PlayerName string
}

// LeaveGameInput contains parameters for leaving a game
type LeaveGameInput struct {
	GameID   string
	PlayerID string
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	GameID string

	// PlayerID is who asked to start
	PlayerID string
}

// DrawCardInput contains parameters for drawing a card
type DrawCardInput struct {
	GameID   string
	PlayerID string
}

// PlayCardInput contains parameters for playing a card from hand
type PlayCardInput struct {
	GameID   string
	PlayerID string
	CardID   string
}

// AttackMonsterInput contains parameters for attacking a monster
type AttackMonsterInput struct {
	GameID    string
	PlayerID  string
	MonsterID string
}

// UseHeroAbilityInput contains parameters for using a party hero
type UseHeroAbilityInput struct {
	GameID   string
	PlayerID string
	CardID   string
}

// EndTurnInput contains parameters for ending a turn
type EndTurnInput struct {
	GameID   string
	PlayerID string
}

// DiscardHandInput contains parameters for discarding a hand
type DiscardHandInput struct {
	GameID   string
	PlayerID string
}

// PlayModifierInput contains parameters for playing a modifier
type PlayModifierInput struct {
	GameID   string
	PlayerID string
	CardID   string

	// Value is one of the card's options; nil picks the first
	Value *int
}

// PassRollInput contains parameters for passing on a roll
type PassRollInput struct {
	GameID   string
	PlayerID string
}

// PassChallengeInput contains parameters for passing on a challenge
type PassChallengeInput struct {
	GameID   string
	PlayerID string
}

// InitiateChallengeInput contains parameters for challenging a card
type InitiateChallengeInput struct {
	GameID   string
	PlayerID string
}

// RollDuelDiceInput contains parameters for a duelist's roll
type RollDuelDiceInput struct {
	GameID   string
	PlayerID string
}

// ResolveSelectionInput contains parameters for answering a selection
type ResolveSelectionInput struct {
	GameID    string
	PlayerID  string
	Selection session.Selection
}

// GetStateInput contains parameters for reading a game
type GetStateInput struct {
	GameID string
}

// GetStateOutput contains the current state of a game
type GetStateOutput struct {
	Snapshot *broadcast.Snapshot
}

// ListGamesInput contains parameters for listing open games
type ListGamesInput struct {
}

// ListGamesOutput contains the open games, oldest first
type ListGamesOutput struct {
	Games []*models.GameRecord
}

// FindPlayerGameInput contains parameters for finding a player's game
type FindPlayerGameInput struct {
	PlayerID string
}

// FindPlayerGameOutput contains the game a player is seated in
type FindPlayerGameOutput struct {
	Game *models.GameRecord
}

// GetLeaderboardInput contains parameters for the all-time leaderboard
type GetLeaderboardInput struct {
	// Limit caps the number of entries; zero means the repository default
	Limit int
}

// GetLeaderboardOutput contains the all-time leaderboard
type GetLeaderboardOutput struct {
	Leaderboard *models.Leaderboard
}

// EndGameInput contains parameters for ending a game
type EndGameInput struct {
	GameID string
}

// EndGameOutput contains the result of ending a game
type EndGameOutput struct {
	// Completed reports whether the game had a winner
	Completed bool
}
