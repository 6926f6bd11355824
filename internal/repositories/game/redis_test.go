package game

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/heroparty/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) record(gameID string, status models.GameStatus, playerIDs ...string) *models.GameRecord {
	game := &models.GameRecord{
		ID:        gameID,
		Status:    status,
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
	for _, id := range playerIDs {
		game.Players = append(game.Players, &models.PlayerSummary{ID: id, Name: "Player " + id})
	}
	return game
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidation() {
	_, err := NewRedis(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewRedis(&Config{})
	s.ErrorIs(err, ErrNilRedisClient)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetGame() {
	err := s.repo.SaveGame(s.ctx, &SaveGameInput{
		Game: s.record("g1", models.GameStatusWaiting, "p1", "p2"),
	})
	s.Require().NoError(err)

	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "g1"})
	s.Require().NoError(err)
	s.Equal("g1", game.ID)
	s.Equal(models.GameStatusWaiting, game.Status)
	s.Require().Len(game.Players, 2)
	s.Equal("Player p2", game.Players[1].Name)
	s.True(game.CreatedAt.Equal(s.testNow))
}

func (s *RedisRepositoryTestSuite) TestGetGameNotFound() {
	_, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "missing"})
	s.ErrorIs(err, ErrGameNotFound)

	_, err = s.repo.GetGame(s.ctx, &GetGameInput{})
	s.ErrorIs(err, ErrEmptyGameID)
}

func (s *RedisRepositoryTestSuite) TestSaveGameValidation() {
	s.ErrorIs(s.repo.SaveGame(s.ctx, nil), ErrInvalidInput)
	s.ErrorIs(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: &models.GameRecord{}}), ErrEmptyGameID)
}

func (s *RedisRepositoryTestSuite) TestGetGameByPlayer() {
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{
		Game: s.record("g1", models.GameStatusActive, "p1", "p2"),
	}))

	game, err := s.repo.GetGameByPlayer(s.ctx, &GetGameByPlayerInput{PlayerID: "p2"})
	s.Require().NoError(err)
	s.Equal("g1", game.ID)

	_, err = s.repo.GetGameByPlayer(s.ctx, &GetGameByPlayerInput{PlayerID: "stranger"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetGameByPlayerAfterLeaving() {
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{
		Game: s.record("g1", models.GameStatusWaiting, "p1", "p2"),
	}))
	// p2 left before the game started
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{
		Game: s.record("g1", models.GameStatusWaiting, "p1"),
	}))

	_, err := s.repo.GetGameByPlayer(s.ctx, &GetGameByPlayerInput{PlayerID: "p2"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetOpenGames() {
	older := s.record("g2", models.GameStatusActive, "p1")
	older.CreatedAt = s.testNow.Add(-time.Hour)
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: older}))
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: s.record("g1", models.GameStatusWaiting, "p2")}))
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: s.record("g3", models.GameStatusCompleted, "p3")}))

	out, err := s.repo.GetOpenGames(s.ctx, &GetOpenGamesInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Games, 2)
	s.Equal("g2", out.Games[0].ID)
	s.Equal("g1", out.Games[1].ID)
}

func (s *RedisRepositoryTestSuite) TestCompletedGameLeavesOpenSet() {
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: s.record("g1", models.GameStatusActive, "p1")}))

	completed := s.record("g1", models.GameStatusCompleted, "p1")
	completed.WinnerID = "p1"
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: completed}))

	out, err := s.repo.GetOpenGames(s.ctx, &GetOpenGamesInput{})
	s.Require().NoError(err)
	s.Empty(out.Games)

	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "g1"})
	s.Require().NoError(err)
	s.Equal("p1", game.WinnerID)
}

func (s *RedisRepositoryTestSuite) TestDeleteGame() {
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: s.record("g1", models.GameStatusActive, "p1", "p2")}))
	// p2 has moved on to a newer game
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: s.record("g2", models.GameStatusWaiting, "p2")}))

	s.Require().NoError(s.repo.DeleteGame(s.ctx, &DeleteGameInput{GameID: "g1"}))

	_, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "g1"})
	s.ErrorIs(err, ErrGameNotFound)

	_, err = s.repo.GetGameByPlayer(s.ctx, &GetGameByPlayerInput{PlayerID: "p1"})
	s.ErrorIs(err, ErrGameNotFound)
	s.False(s.mr.Exists(playerKey("p1")))

	game, err := s.repo.GetGameByPlayer(s.ctx, &GetGameByPlayerInput{PlayerID: "p2"})
	s.Require().NoError(err)
	s.Equal("g2", game.ID)

	out, err := s.repo.GetOpenGames(s.ctx, &GetOpenGamesInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Games, 1)
	s.Equal("g2", out.Games[0].ID)
}

func (s *RedisRepositoryTestSuite) TestDeleteMissingGame() {
	err := s.repo.DeleteGame(s.ctx, &DeleteGameInput{GameID: "missing"})
	s.ErrorIs(err, ErrGameNotFound)
}
