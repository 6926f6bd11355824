package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/heroparty/internal/services/game Service

import "context"

// Service defines the interface for game operations. Every call for one game
// id is applied in arrival order by that game's room.
type Service interface {
	// CreateGame opens a new game room and seats the creator
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// JoinGame seats a player before the game starts
	JoinGame(ctx context.Context, input *JoinGameInput) (*ActionOutput, error)

	// LeaveGame unseats a player before the game starts
	LeaveGame(ctx context.Context, input *LeaveGameInput) (*ActionOutput, error)

	// StartGame deals the cards
	StartGame(ctx context.Context, input *StartGameInput) (*ActionOutput, error)

	// DrawCard draws from the draw pile
	DrawCard(ctx context.Context, input *DrawCardInput) (*ActionOutput, error)

	// PlayCard plays a card from hand
	PlayCard(ctx context.Context, input *PlayCardInput) (*ActionOutput, error)

	// AttackMonster opens an attack roll
	AttackMonster(ctx context.Context, input *AttackMonsterInput) (*ActionOutput, error)

	// UseHeroAbility opens a hero ability roll
	UseHeroAbility(ctx context.Context, input *UseHeroAbilityInput) (*ActionOutput, error)

	// EndTurn passes the turn on
	EndTurn(ctx context.Context, input *EndTurnInput) (*ActionOutput, error)

	// DiscardHand spends the discard cost
	DiscardHand(ctx context.Context, input *DiscardHandInput) (*ActionOutput, error)

	// PlayModifier applies a modifier to the open roll or duel
	PlayModifier(ctx context.Context, input *PlayModifierInput) (*ActionOutput, error)

	// PassRoll passes on the open roll or duel
	PassRoll(ctx context.Context, input *PassRollInput) (*ActionOutput, error)

	// PassChallenge lets a pending card through
	PassChallenge(ctx context.Context, input *PassChallengeInput) (*ActionOutput, error)

	// InitiateChallenge contests a pending card
	InitiateChallenge(ctx context.Context, input *InitiateChallengeInput) (*ActionOutput, error)

	// RollDuelDice rolls for a duelist
	RollDuelDice(ctx context.Context, input *RollDuelDiceInput) (*ActionOutput, error)

	// ResolveSelection answers a pending effect selection
	ResolveSelection(ctx context.Context, input *ResolveSelectionInput) (*ActionOutput, error)

	// GetState returns the current snapshot without changing anything
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// ListGames returns the games that are waiting or in progress
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)

	// FindPlayerGame returns the game a player is seated in
	FindPlayerGame(ctx context.Context, input *FindPlayerGameInput) (*FindPlayerGameOutput, error)

	// GetLeaderboard returns the all-time winners
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// EndGame stops a game room and forgets it
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)

	// Close stops every room
	Close()
}
