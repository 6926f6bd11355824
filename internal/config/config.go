// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/heroparty/internal/game/session"
)

// Config holds all server configuration
type Config struct {
	// Port the HTTP server listens on
	Port string `env:"PORT" envDefault:"8080"`

	// PublicURL is the externally reachable base url, used in invites
	PublicURL string `env:"PUBLIC_URL"`

	// LogLevel is one of DEBUG, INFO, WARN, ERROR
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Redis   RedisConfig   `envPrefix:"REDIS_"`
	Discord DiscordConfig `envPrefix:"DISCORD_"`
	NATS    NATSConfig    `envPrefix:"NATS_"`
	Game    GameConfig    `envPrefix:"GAME_"`
	Rules   RulesConfig   `envPrefix:"RULES_"`
}

// RedisConfig holds the result ledger connection
type RedisConfig struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// DiscordConfig enables the bot and winner announcements when Token is set
type DiscordConfig struct {
	Token         string `env:"TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	// ChannelID receives winner announcements
	ChannelID string `env:"CHANNEL_ID"`
}

// Enabled reports whether the Discord bot should run
func (c DiscordConfig) Enabled() bool {
	return c.Token != ""
}

// NATSConfig enables the event stream when URL is set
type NATSConfig struct {
	URL           string `env:"URL"`
	SubjectPrefix string `env:"SUBJECT_PREFIX" envDefault:"games"`
}

// Enabled reports whether events are published to NATS
func (c NATSConfig) Enabled() bool {
	return c.URL != ""
}

// GameConfig holds game service settings
type GameConfig struct {
	// MaxConcurrentGames caps open rooms; zero means unlimited
	MaxConcurrentGames int `env:"MAX_CONCURRENT_GAMES" envDefault:"100"`

	// FinishedGameTTL is how long a won game stays open before it is ended
	FinishedGameTTL time.Duration `env:"FINISHED_GAME_TTL" envDefault:"10m"`

	// CatalogPath overrides the embedded card catalog
	CatalogPath string `env:"CATALOG_PATH"`

	// DiceSeed fixes the random source; zero seeds from the clock
	DiceSeed int64 `env:"DICE_SEED"`
}

// RulesConfig mirrors session.Rules
type RulesConfig struct {
	MinPlayers        int `env:"MIN_PLAYERS" envDefault:"2"`
	MaxPlayers        int `env:"MAX_PLAYERS" envDefault:"6"`
	HandSize          int `env:"HAND_SIZE" envDefault:"5"`
	CopiesPerCard     int `env:"COPIES_PER_CARD"`
	ActiveMonsters    int `env:"ACTIVE_MONSTERS" envDefault:"3"`
	SlayTarget        int `env:"SLAY_TARGET" envDefault:"3"`
	ActionPoints      int `env:"ACTION_POINTS" envDefault:"3"`
	AttackCost        int `env:"ATTACK_COST" envDefault:"2"`
	DiscardHandCost   int `env:"DISCARD_HAND_COST" envDefault:"3"`
	LeaderBonus       int `env:"LEADER_BONUS" envDefault:"2"`
	RollBonus         int `env:"ROLL_BONUS" envDefault:"3"`
	ForceDiscardCount int `env:"FORCE_DISCARD_COUNT" envDefault:"2"`
}

// SessionRules converts the configured rules
func (r RulesConfig) SessionRules() session.Rules {
	return session.Rules{
		MinPlayers:        r.MinPlayers,
		MaxPlayers:        r.MaxPlayers,
		HandSize:          r.HandSize,
		CopiesPerCard:     r.CopiesPerCard,
		ActiveMonsters:    r.ActiveMonsters,
		SlayTarget:        r.SlayTarget,
		ActionPoints:      r.ActionPoints,
		AttackCost:        r.AttackCost,
		DiscardHandCost:   r.DiscardHandCost,
		LeaderBonus:       r.LeaderBonus,
		RollBonus:         r.RollBonus,
		ForceDiscardCount: r.ForceDiscardCount,
	}
}

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}
	return parse(env.Options{})
}

// LoadFrom parses configuration from vars instead of the process environment
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT cannot be empty")
	}
	if c.Redis.Addr == "" {
		return errors.New("REDIS_ADDR cannot be empty")
	}
	if c.Discord.Enabled() && c.Discord.ChannelID == "" {
		return errors.New("DISCORD_CHANNEL_ID is required when DISCORD_TOKEN is set")
	}
	if c.Game.MaxConcurrentGames < 0 {
		return errors.New("GAME_MAX_CONCURRENT_GAMES must be >= 0")
	}
	if c.Game.FinishedGameTTL <= 0 {
		return errors.New("GAME_FINISHED_GAME_TTL must be > 0")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be > 0")
	}
	return nil
}
