package messaging

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	diceMocks "github.com/KirkDiggler/heroparty/internal/dice/mocks"
	"github.com/KirkDiggler/heroparty/internal/game/session"
	"github.com/KirkDiggler/heroparty/internal/models"
	"github.com/KirkDiggler/heroparty/internal/services/game"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockDiceRoller *diceMocks.MockRoller
	service        *service
	ctx            context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.ctx = context.Background()

	// Always pick the first variant
	s.mockDiceRoller.EXPECT().Roll(gomock.Any()).Return(1).AnyTimes()

	var err error
	s.service, err = NewService(&ServiceConfig{DiceRoller: s.mockDiceRoller})
	s.Require().NoError(err)
}

func (s *MessagingServiceTestSuite) TestGetJoinGameMessage() {
	output, err := s.service.GetJoinGameMessage(s.ctx, &GetJoinGameMessageInput{PlayerName: "Alice"})
	s.Require().NoError(err)
	s.Contains(output.Message, "Alice")
	s.Equal(ToneFunny, output.Tone)

	_, err = s.service.GetJoinGameMessage(s.ctx, nil)
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestGetGameStatusMessage() {
	output, err := s.service.GetGameStatusMessage(s.ctx, &GetGameStatusMessageInput{
		GameStatus:  models.GameStatusWaiting,
		PlayerCount: 3,
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "3 adventurers")

	output, err = s.service.GetGameStatusMessage(s.ctx, &GetGameStatusMessageInput{GameStatus: "unknown"})
	s.Require().NoError(err)
	s.NotEmpty(output.Message)
}

func (s *MessagingServiceTestSuite) TestGetOutcomeMessage() {
	output, err := s.service.GetOutcomeMessage(s.ctx, &GetOutcomeMessageInput{
		Outcome: &session.Outcome{Winner: "alice", Message: "Alice wins the game!"},
	})
	s.Require().NoError(err)
	s.Equal("VICTORY!", output.Title)
	s.Equal(ToneCelebration, output.Tone)

	output, err = s.service.GetOutcomeMessage(s.ctx, &GetOutcomeMessageInput{
		Outcome: &session.Outcome{Punished: true, Punishment: "Discard 2 cards"},
	})
	s.Require().NoError(err)
	s.Equal(ToneFunny, output.Tone)

	output, err = s.service.GetOutcomeMessage(s.ctx, &GetOutcomeMessageInput{
		Outcome: &session.Outcome{Unimplemented: true, Message: "Ability succeeded!"},
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "not available yet")

	_, err = s.service.GetOutcomeMessage(s.ctx, &GetOutcomeMessageInput{})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestGetWinnerMessage() {
	output, err := s.service.GetWinnerMessage(s.ctx, &GetWinnerMessageInput{WinnerName: "Alice", Turns: 9})
	s.Require().NoError(err)
	s.Equal("We Have a Champion!", output.Title)
	s.Contains(output.Message, "Alice")
	s.Contains(output.Message, "9 turns")
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage() {
	testCases := []struct {
		name     string
		err      error
		code     string
		contains string
	}{
		{"turn", session.ErrInvalidTurn, "not_your_turn", "not your turn"},
		{"wrapped", fmt.Errorf("play: %w", session.ErrNoChallengeCard), "no_challenge_card_in_hand", "Challenge card"},
		{"fallback", session.ErrMonsterNotFound, "monster_not_found", "Monster not found."},
		{"service", game.ErrGameNotFound, "game_not_found", "doesn't exist"},
		{"unknown", fmt.Errorf("redis down"), "internal", "went wrong"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: tc.err})
			s.Require().NoError(err)
			s.Equal(tc.code, output.Code)
			s.Contains(output.Message, tc.contains)
		})
	}
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}
