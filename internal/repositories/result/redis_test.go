package result

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

func (s *RedisRepositoryTestSuite) result(gameID, winnerID, winnerName string) *models.GameResult {
	return &models.GameResult{
		GameID:     gameID,
		WinnerID:   winnerID,
		WinnerName: winnerName,
		Players: []*models.PlayerSummary{
			{ID: winnerID, Name: winnerName, SlainMonsters: 3},
			{ID: "other", Name: "Other", SlainMonsters: 1},
		},
		Turns:      12,
		StartedAt:  s.testNow,
		FinishedAt: s.testNow.Add(20 * time.Minute),
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedis() {
	_, err := NewRedis(nil)
	s.Equal(ErrNilConfig, err)

	_, err = NewRedis(&Config{})
	s.Equal(ErrNilRedisClient, err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetResult() {
	expected := s.result("ABCDE", "alice", "Alice")

	err := s.repo.SaveResult(s.ctx, &SaveResultInput{Result: expected})
	s.Require().NoError(err)

	actual, err := s.repo.GetResult(s.ctx, &GetResultInput{GameID: "ABCDE"})
	s.Require().NoError(err)
	s.Equal(expected.WinnerID, actual.WinnerID)
	s.Equal(expected.Turns, actual.Turns)
	s.Len(actual.Players, 2)
	s.True(expected.FinishedAt.Equal(actual.FinishedAt))
}

func (s *RedisRepositoryTestSuite) TestGetResultNotFound() {
	_, err := s.repo.GetResult(s.ctx, &GetResultInput{GameID: "missing"})
	s.ErrorIs(err, ErrResultNotFound)

	_, err = s.repo.GetResult(s.ctx, &GetResultInput{})
	s.ErrorIs(err, ErrEmptyGameID)
}

func (s *RedisRepositoryTestSuite) TestSaveResultValidation() {
	s.ErrorIs(s.repo.SaveResult(s.ctx, nil), ErrInvalidInput)
	s.ErrorIs(s.repo.SaveResult(s.ctx, &SaveResultInput{Result: &models.GameResult{WinnerID: "a"}}), ErrEmptyGameID)
	s.ErrorIs(s.repo.SaveResult(s.ctx, &SaveResultInput{Result: &models.GameResult{GameID: "g"}}), ErrMissingWinnerID)
}

func (s *RedisRepositoryTestSuite) TestSaveResultCreditsOnce() {
	r := s.result("ABCDE", "alice", "Alice")
	s.Require().NoError(s.repo.SaveResult(s.ctx, &SaveResultInput{Result: r}))
	s.ErrorIs(s.repo.SaveResult(s.ctx, &SaveResultInput{Result: r}), ErrResultRecorded)

	score, err := s.mr.ZScore(winsKey, "alice")
	s.Require().NoError(err)
	s.Equal(float64(1), score)
}

func (s *RedisRepositoryTestSuite) TestLeaderboardOrder() {
	s.Require().NoError(s.repo.SaveResult(s.ctx, &SaveResultInput{Result: s.result("G1", "alice", "Alice")}))
	s.Require().NoError(s.repo.SaveResult(s.ctx, &SaveResultInput{Result: s.result("G2", "bob", "Bob")}))
	s.Require().NoError(s.repo.SaveResult(s.ctx, &SaveResultInput{Result: s.result("G3", "bob", "Bobby")}))

	leaderboard, err := s.repo.GetLeaderboard(s.ctx, &GetLeaderboardInput{})
	s.Require().NoError(err)
	s.Require().Len(leaderboard.Entries, 2)
	s.Equal("bob", leaderboard.Entries[0].PlayerID)
	s.Equal("Bobby", leaderboard.Entries[0].PlayerName)
	s.Equal(2, leaderboard.Entries[0].Wins)
	s.Equal("alice", leaderboard.Entries[1].PlayerID)
	s.Equal(1, leaderboard.Entries[1].Wins)

	leaderboard, err = s.repo.GetLeaderboard(s.ctx, &GetLeaderboardInput{Limit: 1})
	s.Require().NoError(err)
	s.Len(leaderboard.Entries, 1)
}

func (s *RedisRepositoryTestSuite) TestEmptyLeaderboard() {
	leaderboard, err := s.repo.GetLeaderboard(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(leaderboard.Entries)
}
