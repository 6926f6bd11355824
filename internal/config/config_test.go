package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/heroparty/internal/game/session"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.False(t, cfg.Discord.Enabled())
	assert.False(t, cfg.NATS.Enabled())
	assert.Equal(t, "games", cfg.NATS.SubjectPrefix)
	assert.Equal(t, 100, cfg.Game.MaxConcurrentGames)
	assert.Equal(t, 10*time.Minute, cfg.Game.FinishedGameTTL)
	assert.Equal(t, session.DefaultRules(), cfg.Rules.SessionRules())
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"PORT":                   "9000",
		"LOG_LEVEL":              "DEBUG",
		"SHUTDOWN_TIMEOUT":       "3s",
		"REDIS_ADDR":             "redis:6379",
		"REDIS_DB":               "2",
		"DISCORD_TOKEN":          "token",
		"DISCORD_CHANNEL_ID":     "chan",
		"NATS_URL":               "nats://nats:4222",
		"GAME_DICE_SEED":         "42",
		"GAME_FINISHED_GAME_TTL": "90s",
		"GAME_CATALOG_PATH":      "/etc/heroparty/cards.yaml",
		"RULES_SLAY_TARGET":      "5",
		"RULES_MAX_PLAYERS":      "4",
	})
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.True(t, cfg.Discord.Enabled())
	assert.True(t, cfg.NATS.Enabled())
	assert.Equal(t, int64(42), cfg.Game.DiceSeed)
	assert.Equal(t, 90*time.Second, cfg.Game.FinishedGameTTL)
	assert.Equal(t, "/etc/heroparty/cards.yaml", cfg.Game.CatalogPath)

	rules := cfg.Rules.SessionRules()
	assert.Equal(t, 5, rules.SlayTarget)
	assert.Equal(t, 4, rules.MaxPlayers)
	assert.Equal(t, 3, rules.ActionPoints)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{name: "discord without channel", vars: map[string]string{"DISCORD_TOKEN": "token"}},
		{name: "negative max games", vars: map[string]string{"GAME_MAX_CONCURRENT_GAMES": "-1"}},
		{name: "bad number", vars: map[string]string{"RULES_HAND_SIZE": "five"}},
		{name: "bad level", vars: map[string]string{"LOG_LEVEL": "LOUD"}},
		{name: "zero shutdown", vars: map[string]string{"SHUTDOWN_TIMEOUT": "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.vars)
			assert.Error(t, err)
		})
	}
}
