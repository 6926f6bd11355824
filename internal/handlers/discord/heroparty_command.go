package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/heroparty/internal/services/game"
	"github.com/KirkDiggler/heroparty/internal/services/messaging"
)

const commandTimeout = 5 * time.Second

// HeroPartyCommandConfig holds the dependencies of the /heroparty command
type HeroPartyCommandConfig struct {
	GameService      game.Service
	MessagingService messaging.Service

	// PublicURL is the base url clients connect to
	PublicURL string

	Logger *slog.Logger
}

// HeroPartyCommand handles the /heroparty command
type HeroPartyCommand struct {
	BaseCommand
	gameService      game.Service
	messagingService messaging.Service
	publicURL        string
	logger           *slog.Logger
}

// NewHeroPartyCommand creates a new heroparty command handler
func NewHeroPartyCommand(cfg *HeroPartyCommandConfig) *HeroPartyCommand {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &HeroPartyCommand{
		BaseCommand: BaseCommand{
			Name:        "heroparty",
			Description: "Hero party card game commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "new",
					Description: "Create a new game and take the first seat",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show the state of a game",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "game",
							Description: "The game id, defaults to the game you are seated in",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the all-time winners",
				},
			},
		},
		gameService:      cfg.GameService,
		messagingService: cfg.MessagingService,
		publicURL:        strings.TrimRight(cfg.PublicURL, "/"),
		logger:           logger,
	}
}

// Handle processes a Discord interaction for the heroparty command
func (c *HeroPartyCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	userID, username := interactionUser(i)

	var embed *discordgo.MessageEmbed
	var err error
	switch sub := data.Options[0]; sub.Name {
	case "new":
		embed, err = c.handleNew(ctx, userID, username)
	case "status":
		embed, err = c.handleStatus(ctx, userID, optionString(sub.Options, "game"))
	case "leaderboard":
		embed, err = c.handleLeaderboard(ctx)
	default:
		err = errors.New("unknown subcommand")
	}
	if err != nil {
		c.logger.Warn("heroparty command failed", "user_id", userID, "error", err)
		return RespondWithError(s, i, c.errorText(ctx, err))
	}

	return RespondWithEmbed(s, i, embed)
}

func (c *HeroPartyCommand) handleNew(ctx context.Context, userID, username string) (*discordgo.MessageEmbed, error) {
	created, err := c.gameService.CreateGame(ctx, &game.CreateGameInput{
		CreatorID:   userID,
		CreatorName: username,
	})
	if err != nil {
		return nil, err
	}

	joined, err := c.messagingService.GetJoinGameMessage(ctx, &messaging.GetJoinGameMessageInput{
		PlayerName: username,
	})
	if err != nil {
		return nil, err
	}

	return renderNewGame(created.GameID, joined.Message, c.joinURL(created.GameID)), nil
}

func (c *HeroPartyCommand) handleStatus(ctx context.Context, userID, gameID string) (*discordgo.MessageEmbed, error) {
	if gameID == "" {
		found, err := c.gameService.FindPlayerGame(ctx, &game.FindPlayerGameInput{PlayerID: userID})
		if err != nil {
			return nil, err
		}
		gameID = found.Game.ID
	}

	state, err := c.gameService.GetState(ctx, &game.GetStateInput{GameID: gameID})
	if err != nil {
		return nil, err
	}

	public := state.Snapshot.Public
	status, err := c.messagingService.GetGameStatusMessage(ctx, &messaging.GetGameStatusMessageInput{
		GameStatus:  public.Status,
		PlayerCount: len(public.Players),
	})
	if err != nil {
		return nil, err
	}

	return renderStatus(public, status.Message), nil
}

func (c *HeroPartyCommand) handleLeaderboard(ctx context.Context) (*discordgo.MessageEmbed, error) {
	out, err := c.gameService.GetLeaderboard(ctx, &game.GetLeaderboardInput{})
	if err != nil {
		return nil, err
	}
	return renderLeaderboard(out.Leaderboard), nil
}

func (c *HeroPartyCommand) errorText(ctx context.Context, err error) string {
	msg, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return err.Error()
	}
	return msg.Message
}

func (c *HeroPartyCommand) joinURL(gameID string) string {
	if c.publicURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/games/%s/ws", c.publicURL, gameID)
}

// interactionUser returns the id and display name of whoever invoked i.
// Guild interactions carry a member, direct messages carry a user.
func interactionUser(i *discordgo.InteractionCreate) (string, string) {
	if i.Member != nil && i.Member.User != nil {
		name := i.Member.User.Username
		if i.Member.Nick != "" {
			name = i.Member.Nick
		}
		return i.Member.User.ID, name
	}
	if i.User != nil {
		return i.User.ID, i.User.Username
	}
	return "", ""
}

func optionString(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}
