package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	diceMocks "github.com/KirkDiggler/heroparty/internal/dice/mocks"
	"github.com/KirkDiggler/heroparty/internal/models"
	"github.com/KirkDiggler/heroparty/internal/services/messaging"
)

type fakeSender struct {
	channelID string
	embeds    []*discordgo.MessageEmbed
	err       error
}

func (f *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.channelID = channelID
	f.embeds = append(f.embeds, embed)
	return &discordgo.Message{ID: "msg-1"}, nil
}

type AnnouncerTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	sender    *fakeSender
	messaging messaging.Service
	announcer *Announcer
	ctx       context.Context
}

func (s *AnnouncerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	roller := diceMocks.NewMockRoller(s.mockCtrl)
	roller.EXPECT().Roll(gomock.Any()).Return(1).AnyTimes()

	var err error
	s.messaging, err = messaging.NewService(&messaging.ServiceConfig{DiceRoller: roller})
	s.Require().NoError(err)

	s.sender = &fakeSender{}
	s.announcer, err = NewAnnouncer(&AnnouncerConfig{
		Sender:           s.sender,
		ChannelID:        "chan-1",
		MessagingService: s.messaging,
	})
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *AnnouncerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AnnouncerTestSuite) TestNewAnnouncerValidation() {
	_, err := NewAnnouncer(nil)
	s.Error(err)

	_, err = NewAnnouncer(&AnnouncerConfig{ChannelID: "c", MessagingService: s.messaging})
	s.Error(err)

	_, err = NewAnnouncer(&AnnouncerConfig{Sender: s.sender, MessagingService: s.messaging})
	s.Error(err)

	_, err = NewAnnouncer(&AnnouncerConfig{Sender: s.sender, ChannelID: "c"})
	s.Error(err)
}

func (s *AnnouncerTestSuite) TestAnnounceResult() {
	finished := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	err := s.announcer.AnnounceResult(s.ctx, &models.GameResult{
		GameID:     "game-1",
		WinnerID:   "p1",
		WinnerName: "Alice",
		Turns:      7,
		Players: []*models.PlayerSummary{
			{ID: "p1", Name: "Alice", SlainMonsters: 3},
			{ID: "p2", Name: "Bob", SlainMonsters: 1},
		},
		FinishedAt: finished,
	})
	s.Require().NoError(err)

	s.Equal("chan-1", s.sender.channelID)
	s.Require().Len(s.sender.embeds, 1)
	embed := s.sender.embeds[0]
	s.Equal("We Have a Champion!", embed.Title)
	s.Contains(embed.Description, "Alice")
	s.Contains(embed.Description, "7 turns")
	s.Require().Len(embed.Fields, 2)
	s.Equal("👑 Alice", embed.Fields[0].Name)
	s.Equal("3 monsters slain", embed.Fields[0].Value)
	s.Equal("Bob", embed.Fields[1].Name)
	s.Equal("1 monster slain", embed.Fields[1].Value)
	s.Equal("Game game-1", embed.Footer.Text)
	s.Equal("2026-03-01T20:00:00Z", embed.Timestamp)
}

func (s *AnnouncerTestSuite) TestAnnounceResultSendFailure() {
	s.sender.err = errors.New("discord unavailable")

	err := s.announcer.AnnounceResult(s.ctx, &models.GameResult{GameID: "game-1", WinnerName: "Alice"})
	s.Error(err)
	s.Contains(err.Error(), "game-1")
}

func (s *AnnouncerTestSuite) TestAnnounceNilResult() {
	s.Error(s.announcer.AnnounceResult(s.ctx, nil))
	s.Empty(s.sender.embeds)
}

func TestAnnouncerSuite(t *testing.T) {
	suite.Run(t, new(AnnouncerTestSuite))
}
