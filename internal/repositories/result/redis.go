package result

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/heroparty/internal/models"
)

const (
	// Key prefixes for Redis
	resultKeyPrefix = "result:"
	winsKey         = "leaderboard:wins"
	namesKey        = "leaderboard:names"

	defaultLeaderboardLimit = 10
)

// RepositoryError is a custom error type for result repository errors
type RepositoryError string

// Error implements the error interface
func (e RepositoryError) Error() string {
	return string(e)
}

const (
	ErrResultNotFound  RepositoryError = "result not found"
	ErrResultRecorded  RepositoryError = "result already recorded"
	ErrNilConfig       RepositoryError = "config cannot be nil"
	ErrNilRedisClient  RepositoryError = "redis client cannot be nil"
	ErrInvalidInput    RepositoryError = "input and result cannot be nil"
	ErrEmptyGameID     RepositoryError = "game ID cannot be empty"
	ErrMissingWinnerID RepositoryError = "result has no winner"
)

// Config holds configuration for the Redis result repository
type Config struct {
	// Redis client
	RedisClient redis.UniversalClient
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedis creates a new Redis-backed result repository
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

// SaveResult stores the result and bumps the winner's score. A game id is
// only ever credited once.
func (r *redisRepository) SaveResult(ctx context.Context, input *SaveResultInput) error {
	if input == nil || input.Result == nil {
		return ErrInvalidInput
	}
	if input.Result.GameID == "" {
		return ErrEmptyGameID
	}
	if input.Result.WinnerID == "" {
		return ErrMissingWinnerID
	}

	resultJSON, err := json.Marshal(input.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	resultKey := fmt.Sprintf("%s%s", resultKeyPrefix, input.Result.GameID)
	created, err := r.client.SetNX(ctx, resultKey, resultJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	if !created {
		return ErrResultRecorded
	}

	pipe := r.client.TxPipeline()
	pipe.ZIncrBy(ctx, winsKey, 1, input.Result.WinnerID)
	pipe.HSet(ctx, namesKey, input.Result.WinnerID, input.Result.WinnerName)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update leaderboard: %w", err)
	}

	return nil
}

// GetResult retrieves a result by game ID from Redis
func (r *redisRepository) GetResult(ctx context.Context, input *GetResultInput) (*models.GameResult, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrEmptyGameID
	}

	resultKey := fmt.Sprintf("%s%s", resultKeyPrefix, input.GameID)
	resultJSON, err := r.client.Get(ctx, resultKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	var result models.GameResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

// GetLeaderboard reads the top winners, most wins first
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*models.Leaderboard, error) {
	limit := defaultLeaderboardLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	scores, err := r.client.ZRevRangeWithScores(ctx, winsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	leaderboard := &models.Leaderboard{
		Entries: make([]*models.LeaderboardEntry, 0, len(scores)),
	}
	if len(scores) == 0 {
		return leaderboard, nil
	}

	ids := make([]string, 0, len(scores))
	for _, z := range scores {
		ids = append(ids, fmt.Sprint(z.Member))
	}

	names, err := r.client.HMGet(ctx, namesKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player names: %w", err)
	}

	for i, z := range scores {
		entry := &models.LeaderboardEntry{
			PlayerID: ids[i],
			Wins:     int(z.Score),
		}
		if name, ok := names[i].(string); ok {
			entry.PlayerName = name
		}
		leaderboard.Entries = append(leaderboard.Entries, entry)
	}

	return leaderboard, nil
}
