package game

// GameError is a custom error type for game service errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound      GameError = "game not found"
	ErrGameAlreadyExists GameError = "game already exists"
	ErrTooManyGames      GameError = "too many concurrent games"
	ErrServiceClosed     GameError = "game service is closed"
	ErrNilConfig         GameError = "config cannot be nil"
	ErrNilCatalog        GameError = "catalog cannot be nil"
	ErrNilResultRepo     GameError = "result repository cannot be nil"
	ErrNilGameRepo       GameError = "game repository cannot be nil"
	ErrNilDiceRoller     GameError = "dice roller cannot be nil"
	ErrNilClock          GameError = "clock cannot be nil"
	ErrNilUUIDGenerator  GameError = "UUID generator cannot be nil"
)
