package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/heroparty/internal/game/session"
	"github.com/KirkDiggler/heroparty/internal/models"
)

// renderNewGame renders the reply to a created game
func renderNewGame(gameID, greeting, joinURL string) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Game", Value: fmt.Sprintf("`%s`", gameID), Inline: true},
	}
	if joinURL != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Join",
			Value: joinURL,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "A New Party Gathers",
		Description: greeting,
		Color:       colorSuccess,
		Fields:      fields,
	}
}

// renderStatus renders the public state of a game
func renderStatus(view *session.PublicView, headline string) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, p := range view.Players {
		marker := ""
		if p.ID == view.CurrentPlayerID {
			marker = " ⬅"
		}
		heroes := countHeroes(p.Party)
		fmt.Fprintf(&b, "**%s**: %d %s, %d slain, %d cards%s\n",
			p.Name, heroes, plural(heroes, "hero", "heroes"), len(p.SlainMonsters), p.HandCount, marker)
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Status", Value: string(view.Status), Inline: true},
		{Name: "Turn", Value: fmt.Sprintf("%d", view.TurnCount+1), Inline: true},
	}
	if players := b.String(); players != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Players", Value: players})
	}

	if len(view.ActiveMonsters) > 0 {
		names := make([]string, 0, len(view.ActiveMonsters))
		for _, m := range view.ActiveMonsters {
			names = append(names, m.Name)
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Monsters",
			Value: strings.Join(names, ", "),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Game %s", view.GameID),
		Description: headline,
		Color:       colorSuccess,
		Fields:      fields,
	}
}

// renderLeaderboard renders the all-time winners
func renderLeaderboard(board *models.Leaderboard) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🏆 Hall of Heroes",
		Color: colorWinner,
	}
	if board == nil || len(board.Entries) == 0 {
		embed.Description = "No one has won a game yet."
		return embed
	}

	var b strings.Builder
	for i, entry := range board.Entries {
		fmt.Fprintf(&b, "%d. **%s**: %d %s\n", i+1, entry.PlayerName, entry.Wins, plural(entry.Wins, "win", "wins"))
	}
	embed.Description = b.String()
	return embed
}

// renderResult renders a finished game
func renderResult(result *models.GameResult, title, message string) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(result.Players)+1)
	for _, p := range result.Players {
		name := p.Name
		if p.ID == result.WinnerID {
			name = "👑 " + name
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   name,
			Value:  fmt.Sprintf("%d %s slain", p.SlainMonsters, plural(p.SlainMonsters, "monster", "monsters")),
			Inline: true,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       colorWinner,
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Game %s", result.GameID)},
	}
	if !result.FinishedAt.IsZero() {
		embed.Timestamp = result.FinishedAt.UTC().Format(time.RFC3339)
	}
	return embed
}

func countHeroes(party []models.Card) int {
	n := 0
	for _, c := range party {
		if c.Type == models.CardTypeHero {
			n++
		}
	}
	return n
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
