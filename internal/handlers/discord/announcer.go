package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/heroparty/internal/models"
	"github.com/KirkDiggler/heroparty/internal/services/messaging"
)

// ChannelSender is the part of *discordgo.Session the announcer needs
type ChannelSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// AnnouncerConfig holds the dependencies of an Announcer
type AnnouncerConfig struct {
	// Sender posts to Discord, usually the bot's session
	Sender ChannelSender

	// ChannelID is where results are posted
	ChannelID string

	// MessagingService writes the headline
	MessagingService messaging.Service
}

// Announcer posts finished games to a Discord channel
type Announcer struct {
	sender           ChannelSender
	channelID        string
	messagingService messaging.Service
}

// NewAnnouncer creates a new result announcer
func NewAnnouncer(cfg *AnnouncerConfig) (*Announcer, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Sender == nil {
		return nil, errors.New("sender cannot be nil")
	}

	if cfg.ChannelID == "" {
		return nil, errors.New("channel id cannot be empty")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	return &Announcer{
		sender:           cfg.Sender,
		channelID:        cfg.ChannelID,
		messagingService: cfg.MessagingService,
	}, nil
}

// AnnounceResult posts the result of a finished game
func (a *Announcer) AnnounceResult(ctx context.Context, result *models.GameResult) error {
	if result == nil {
		return errors.New("result cannot be nil")
	}

	headline, err := a.messagingService.GetWinnerMessage(ctx, &messaging.GetWinnerMessageInput{
		WinnerName: result.WinnerName,
		Turns:      result.Turns,
	})
	if err != nil {
		return fmt.Errorf("failed to get winner message: %w", err)
	}

	embed := renderResult(result, headline.Title, headline.Message)
	if _, err := a.sender.ChannelMessageSendEmbed(a.channelID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to post result for game %s: %w", result.GameID, err)
	}

	return nil
}
