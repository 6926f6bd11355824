package messaging

import (
	"github.com/KirkDiggler/heroparty/internal/dice"
	"github.com/KirkDiggler/heroparty/internal/game/session"
	"github.com/KirkDiggler/heroparty/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// GetJoinGameMessageInput contains parameters for getting a join game message
type GetJoinGameMessageInput struct {
	// PlayerName is the name of the player joining
	PlayerName string

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetJoinGameMessageOutput contains the result of getting a join game message
type GetJoinGameMessageOutput struct {
	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}

// GetGameStatusMessageInput is the input for GetGameStatusMessage
type GetGameStatusMessageInput struct {
	GameStatus  models.GameStatus
	PlayerCount int
}

// GetGameStatusMessageOutput is the output for GetGameStatusMessage
type GetGameStatusMessageOutput struct {
	Message string
}

// GetOutcomeMessageInput contains the input for GetOutcomeMessage
type GetOutcomeMessageInput struct {
	// ActorName is who took the action
	ActorName string

	// Outcome is what the action did
	Outcome *session.Outcome
}

// GetOutcomeMessageOutput contains the output for GetOutcomeMessage
type GetOutcomeMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetWinnerMessageInput contains the input for GetWinnerMessage
type GetWinnerMessageInput struct {
	WinnerName string
	Turns      int
}

// GetWinnerMessageOutput contains the output for GetWinnerMessage
type GetWinnerMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error returned by the game service
	Err error
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Code is a stable identifier for clients
	Code string

	// Message is the generated message
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// DiceRoller picks among message variants; a time-seeded roller is used
	// when nil
	DiceRoller dice.Roller
}
