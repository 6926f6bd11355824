package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/heroparty/internal/dice"
	"github.com/KirkDiggler/heroparty/internal/game/session"
	"github.com/KirkDiggler/heroparty/internal/models"
	"github.com/KirkDiggler/heroparty/internal/services/game"
)

// service implements the Service interface
type service struct {
	diceRoller dice.Roller
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (*service, error) {
	var roller dice.Roller
	if config != nil {
		roller = config.DiceRoller
	}
	if roller == nil {
		roller = dice.New(nil)
	}

	return &service{
		diceRoller: roller,
	}, nil
}

// pick returns a random entry of messages
func (s *service) pick(messages []string) string {
	if len(messages) == 0 {
		return ""
	}
	i := s.diceRoller.Roll(len(messages)) - 1
	if i < 0 || i >= len(messages) {
		i = 0
	}
	return messages[i]
}

// GetJoinGameMessage returns a message for when a player joins a game
func (s *service) GetJoinGameMessage(ctx context.Context, input *GetJoinGameMessageInput) (*GetJoinGameMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	messages := []string{
		fmt.Sprintf("Welcome to the party, %s! Pick a leader and sharpen your dice.", input.PlayerName),
		fmt.Sprintf("A new hero appears! %s has joined the table.", input.PlayerName),
		fmt.Sprintf("%s pulls up a chair. The monsters are getting nervous.", input.PlayerName),
		fmt.Sprintf("Fresh recruit! %s is ready to slay.", input.PlayerName),
	}

	return &GetJoinGameMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetGameStatusMessage returns a dynamic message based on the game status
func (s *service) GetGameStatusMessage(ctx context.Context, input *GetGameStatusMessageInput) (*GetGameStatusMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	switch input.GameStatus {
	case models.GameStatusWaiting:
		messages = []string{
			fmt.Sprintf("%d adventurers gathered. Waiting for the party to fill up.", input.PlayerCount),
			"The tavern is filling up. Start when everyone is seated.",
			"Gather 'round! The monsters won't slay themselves.",
		}
	case models.GameStatusActive:
		messages = []string{
			"The game is afoot! Play heroes, slay monsters.",
			"Dice are rolling. Keep a challenge card handy.",
			"Three monsters stand between you and glory.",
		}
	case models.GameStatusCompleted:
		messages = []string{
			"Game over! The monsters have been dealt with.",
			"The dice have spoken. Another legend is written.",
		}
	default:
		return &GetGameStatusMessageOutput{
			Message: "Hero party in progress. May your rolls be high!",
		}, nil
	}

	return &GetGameStatusMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetOutcomeMessage returns a headline for what an action did
func (s *service) GetOutcomeMessage(ctx context.Context, input *GetOutcomeMessageInput) (*GetOutcomeMessageOutput, error) {
	if input == nil || input.Outcome == nil {
		return nil, errors.New("input and outcome cannot be nil")
	}

	out := input.Outcome
	output := &GetOutcomeMessageOutput{
		Message: out.Message,
		Tone:    ToneNeutral,
	}

	switch {
	case out.Winner != "":
		output.Title = s.pick([]string{"VICTORY!", "Legend Status!", "All Monsters Slain!"})
		output.Tone = ToneCelebration
	case out.Punished:
		output.Title = s.pick([]string{"Ouch!", "The monster bites back!", "Critical Fail!"})
		output.Tone = ToneFunny
	case out.Unimplemented:
		output.Title = "Ability resolved"
		output.Message = strings.TrimSpace(out.Message + " This hero's effect is not available yet.")
	case out.Interaction != nil:
		output.Title = "Choose a target"
	case out.Event == session.EventDuelStarted:
		output.Title = s.pick([]string{"CHALLENGE!", "Objection!", "Not so fast!"})
		output.Tone = ToneFunny
	case out.Resolved:
		output.Title = "Resolved"
		output.Tone = ToneEncouraging
	}

	return output, nil
}

// GetWinnerMessage returns the announcement for a finished game
func (s *service) GetWinnerMessage(ctx context.Context, input *GetWinnerMessageInput) (*GetWinnerMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	titles := []string{
		"We Have a Champion!",
		"Monsters Beware!",
		"Victory!",
	}

	messages := []string{
		fmt.Sprintf("%s slew three monsters in %d turns and takes the crown!", input.WinnerName, input.Turns),
		fmt.Sprintf("After %d turns, %s's party stands victorious.", input.Turns, input.WinnerName),
		fmt.Sprintf("%s wins! It only took %d turns of dice and betrayal.", input.WinnerName, input.Turns),
	}

	return &GetWinnerMessageOutput{
		Title:   s.pick(titles),
		Message: s.pick(messages),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input and error cannot be nil")
	}

	var gameErr session.GameError
	if errors.As(input.Err, &gameErr) {
		return &GetErrorMessageOutput{
			Code:    errorCode(gameErr.Error()),
			Message: sessionErrorMessage(gameErr),
		}, nil
	}

	var serviceErr game.GameError
	if errors.As(input.Err, &serviceErr) {
		message := "Something went wrong with that game."
		switch serviceErr {
		case game.ErrGameNotFound:
			message = "That game doesn't exist. Check the code and try again."
		case game.ErrTooManyGames:
			message = "The tavern is full. Try again in a bit."
		case game.ErrServiceClosed:
			message = "The server is shutting down."
		}
		return &GetErrorMessageOutput{
			Code:    errorCode(serviceErr.Error()),
			Message: message,
		}, nil
	}

	return &GetErrorMessageOutput{
		Code:    "internal",
		Message: "Something went wrong. Please try again.",
	}, nil
}

func sessionErrorMessage(err session.GameError) string {
	switch err {
	case session.ErrInvalidTurn:
		return "Hold on, it's not your turn."
	case session.ErrInsufficientActionPoints:
		return "You're out of action points. End your turn."
	case session.ErrActionPending:
		return "Finish the open roll or challenge first."
	case session.ErrSelectionPending:
		return "Waiting for a target to be chosen."
	case session.ErrNoChallengeCard:
		return "You need a Challenge card to do that."
	case session.ErrInvalidModifierValue:
		return "That modifier can't be played for that value."
	case session.ErrHeroAlreadyUsed:
		return "That hero already acted this turn."
	case session.ErrGameOver:
		return "The game is over. Start a new one!"
	case session.ErrCapacityExceeded:
		return "The party is full."
	}
	msg := err.Error()
	return strings.ToUpper(msg[:1]) + msg[1:] + "."
}

// errorCode turns an error message into a snake_case code
func errorCode(message string) string {
	return strings.ReplaceAll(strings.ToLower(message), " ", "_")
}
