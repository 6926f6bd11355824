package session

// GameError is a custom error type for rejected game actions. A rejected
// action never changes session state.
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidTurn              GameError = "not your turn"
	ErrInsufficientActionPoints GameError = "not enough action points"
	ErrNoActiveRoll             GameError = "no active roll"
	ErrNoActiveChallenge        GameError = "no active challenge"
	ErrWrongCardType            GameError = "wrong card type"
	ErrCardNotFound             GameError = "card not found"
	ErrMonsterNotFound          GameError = "monster not found"
	ErrSelfTargetNotAllowed     GameError = "cannot target yourself"
	ErrCapacityExceeded         GameError = "game is at maximum capacity"
	ErrAlreadyStarted           GameError = "game already started"
	ErrNotEnoughPlayers         GameError = "not enough players to start"
	ErrNotStarted               GameError = "game has not started"
	ErrGameOver                 GameError = "game is over"
	ErrPlayerNotFound           GameError = "player not found"
	ErrPlayerAlreadySeated      GameError = "player already seated"
	ErrActionPending            GameError = "a roll or challenge is still open"
	ErrHeroAlreadyUsed          GameError = "hero ability already used this turn"
	ErrNoChallengeCard          GameError = "no challenge card in hand"
	ErrInvalidModifierValue     GameError = "modifier value not offered by card"
	ErrWrongDuelPhase           GameError = "action not allowed in this duel phase"
	ErrNotDuelist               GameError = "only the challenger and defender roll"
	ErrSelectionPending         GameError = "waiting for a target selection"
	ErrNoPendingSelection       GameError = "no selection pending"
	ErrInvalidSelection         GameError = "invalid selection"
	ErrNotEnoughLeaders         GameError = "catalog has fewer leaders than players"
	ErrNilConfig                GameError = "config cannot be nil"
	ErrNilCatalog               GameError = "catalog cannot be nil"
	ErrNilDiceRoller            GameError = "dice roller cannot be nil"
	ErrNilUUIDGenerator         GameError = "UUID generator cannot be nil"
	ErrInvalidRules             GameError = "invalid rules"
)
