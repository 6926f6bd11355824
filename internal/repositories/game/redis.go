package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/heroparty/internal/models"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix   = "game:"
	playerKeyPrefix = "player:"
	playerKeySuffix = ":game"
	openGamesKey    = "games:open"
)

// RepositoryError is a custom error type for game repository errors
type RepositoryError string

// Error implements the error interface
func (e RepositoryError) Error() string {
	return string(e)
}

const (
	ErrGameNotFound   RepositoryError = "game not found"
	ErrNilConfig      RepositoryError = "config cannot be nil"
	ErrNilRedisClient RepositoryError = "redis client cannot be nil"
	ErrInvalidInput   RepositoryError = "input and game cannot be nil"
	ErrEmptyGameID    RepositoryError = "game ID cannot be empty"
	ErrEmptyPlayerID  RepositoryError = "player ID cannot be empty"
)

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient redis.UniversalClient
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RedisClient == nil {
		return nil, ErrNilRedisClient
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func gameKey(gameID string) string {
	return gameKeyPrefix + gameID
}

func playerKey(playerID string) string {
	return playerKeyPrefix + playerID + playerKeySuffix
}

// SaveGame persists a game record to Redis
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return ErrInvalidInput
	}
	if input.Game.ID == "" {
		return ErrEmptyGameID
	}

	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, gameKey(input.Game.ID), gameJSON, 0)

	// Point every seated player at this game
	for _, p := range input.Game.Players {
		pipe.Set(ctx, playerKey(p.ID), input.Game.ID, 0)
	}

	// Only waiting and active games are listed as open
	if input.Game.Status.IsCompleted() {
		pipe.SRem(ctx, openGamesKey, input.Game.ID)
	} else {
		pipe.SAdd(ctx, openGamesKey, input.Game.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves a game record by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.GameRecord, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrEmptyGameID
	}

	gameJSON, err := r.client.Get(ctx, gameKey(input.GameID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.GameRecord
	if err := json.Unmarshal(gameJSON, &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// GetGameByPlayer retrieves the game a player was last seated in. A player
// who has since left that game has no game.
func (r *redisRepository) GetGameByPlayer(ctx context.Context, input *GetGameByPlayerInput) (*models.GameRecord, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrEmptyPlayerID
	}

	gameID, err := r.client.Get(ctx, playerKey(input.PlayerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game ID for player: %w", err)
	}

	game, err := r.GetGame(ctx, &GetGameInput{GameID: gameID})
	if err != nil {
		return nil, err
	}
	if !game.HasPlayer(input.PlayerID) {
		return nil, ErrGameNotFound
	}

	return game, nil
}

// DeleteGame removes a game record from Redis
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return ErrEmptyGameID
	}

	game, err := r.GetGame(ctx, &GetGameInput{GameID: input.GameID})
	if err != nil {
		return err
	}

	// Read the player index first; a player may already be in a newer game
	lookups := r.client.Pipeline()
	indexCommands := make(map[string]*redis.StringCmd, len(game.Players))
	for _, p := range game.Players {
		indexCommands[p.ID] = lookups.Get(ctx, playerKey(p.ID))
	}
	if _, err := lookups.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to read player index: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, gameKey(input.GameID))
	pipe.SRem(ctx, openGamesKey, input.GameID)
	for playerID, cmd := range indexCommands {
		if cmd.Val() == input.GameID {
			pipe.Del(ctx, playerKey(playerID))
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// GetOpenGames retrieves all waiting and active games from Redis
func (r *redisRepository) GetOpenGames(ctx context.Context, input *GetOpenGamesInput) (*GetOpenGamesOutput, error) {
	gameIDs, err := r.client.SMembers(ctx, openGamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get open game IDs: %w", err)
	}

	if len(gameIDs) == 0 {
		return &GetOpenGamesOutput{
			Games: []*models.GameRecord{},
		}, nil
	}

	// Get all games in one round trip
	pipe := r.client.Pipeline()
	gameCommands := make(map[string]*redis.StringCmd, len(gameIDs))
	for _, gameID := range gameIDs {
		gameCommands[gameID] = pipe.Get(ctx, gameKey(gameID))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get open games: %w", err)
	}

	games := make([]*models.GameRecord, 0, len(gameIDs))
	for gameID, cmd := range gameCommands {
		gameJSON, err := cmd.Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Game was deleted between reading the set and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get game %s: %w", gameID, err)
		}

		var game models.GameRecord
		if err := json.Unmarshal(gameJSON, &game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game %s: %w", gameID, err)
		}
		games = append(games, &game)
	}

	sort.Slice(games, func(i, j int) bool {
		if games[i].CreatedAt.Equal(games[j].CreatedAt) {
			return games[i].ID < games[j].ID
		}
		return games[i].CreatedAt.Before(games[j].CreatedAt)
	})

	return &GetOpenGamesOutput{
		Games: games,
	}, nil
}
