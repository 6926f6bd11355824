package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/heroparty/internal/catalog"
	"github.com/KirkDiggler/heroparty/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/heroparty/internal/common/uuid/mocks"
	"github.com/KirkDiggler/heroparty/internal/dice"
	diceMocks "github.com/KirkDiggler/heroparty/internal/dice/mocks"
	"github.com/KirkDiggler/heroparty/internal/game/session"
	"github.com/KirkDiggler/heroparty/internal/models"
	gameRepo "github.com/KirkDiggler/heroparty/internal/repositories/game"
	gameMocks "github.com/KirkDiggler/heroparty/internal/repositories/game/mocks"
	resultRepo "github.com/KirkDiggler/heroparty/internal/repositories/result"
	resultMocks "github.com/KirkDiggler/heroparty/internal/repositories/result/mocks"
	broadcastMocks "github.com/KirkDiggler/heroparty/internal/services/broadcast/mocks"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockGameRepo   *gameMocks.MockRepository
	mockResultRepo *resultMocks.MockRepository
	mockNotifier   *broadcastMocks.MockNotifier
	mockAnnouncer  *broadcastMocks.MockAnnouncer
	mockDiceRoller *diceMocks.MockRoller
	mockClock      *mocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	gameService    *service
	ctx            context.Context

	// Test data
	testTime   time.Time
	testGameID string

	recordsMu sync.Mutex
	records   map[string]*models.GameRecord
}

func (s *GameServiceTestSuite) record(gameID string) *models.GameRecord {
	s.recordsMu.Lock()
	defer s.recordsMu.Unlock()
	return s.records[gameID]
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameRepo = gameMocks.NewMockRepository(s.mockCtrl)
	s.mockResultRepo = resultMocks.NewMockRepository(s.mockCtrl)
	s.mockNotifier = broadcastMocks.NewMockNotifier(s.mockCtrl)
	s.mockAnnouncer = broadcastMocks.NewMockAnnouncer(s.mockCtrl)
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGameID = "ABCDE"

	s.records = make(map[string]*models.GameRecord)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *gameRepo.SaveGameInput) error {
			s.recordsMu.Lock()
			defer s.recordsMu.Unlock()
			s.records[input.Game.ID] = input.Game
			return nil
		}).AnyTimes()
	s.mockDiceRoller.EXPECT().Shuffle(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockUUID.EXPECT().NewInstanceID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(catalogID string, copy int) string {
			return fmt.Sprintf("%s-%d", catalogID, copy)
		}).AnyTimes()

	var err error
	s.gameService, err = New(&Config{
		Catalog:       catalog.MustDefault(),
		GameRepo:      s.mockGameRepo,
		ResultRepo:    s.mockResultRepo,
		Notifier:      s.mockNotifier,
		Announcer:     s.mockAnnouncer,
		DiceRoller:    s.mockDiceRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.gameService.Close()
	s.mockCtrl.Finish()
}

// setupStartedGame creates a game with alice and bob seated and dealt
func (s *GameServiceTestSuite) setupStartedGame() *ActionOutput {
	s.mockUUID.EXPECT().NewGameID().Return(s.testGameID)

	created, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		CreatorID:   "alice",
		CreatorName: "Alice",
	})
	s.Require().NoError(err)
	s.Require().Equal(s.testGameID, created.GameID)

	_, err = s.gameService.JoinGame(s.ctx, &JoinGameInput{GameID: s.testGameID, PlayerID: "bob", PlayerName: "Bob"})
	s.Require().NoError(err)

	started, err := s.gameService.StartGame(s.ctx, &StartGameInput{GameID: s.testGameID, PlayerID: "alice"})
	s.Require().NoError(err)
	return started
}

// playAliceToVictory starts a game and has alice slay three monsters with
// sixes. Callers set the dice, result and announcer expectations.
func (s *GameServiceTestSuite) playAliceToVictory() *ActionOutput {
	state := s.setupStartedGame().Snapshot
	var last *ActionOutput
	for i := 0; i < 3; i++ {
		monsterID := state.Public.ActiveMonsters[0].ID
		_, err := s.gameService.AttackMonster(s.ctx, &AttackMonsterInput{GameID: s.testGameID, PlayerID: "alice", MonsterID: monsterID})
		s.Require().NoError(err)

		_, err = s.gameService.PassRoll(s.ctx, &PassRollInput{GameID: s.testGameID, PlayerID: "alice"})
		s.Require().NoError(err)
		last, err = s.gameService.PassRoll(s.ctx, &PassRollInput{GameID: s.testGameID, PlayerID: "bob"})
		s.Require().NoError(err)
		s.True(last.Outcome.Resolved)
		state = last.Snapshot

		if i < 2 {
			_, err = s.gameService.EndTurn(s.ctx, &EndTurnInput{GameID: s.testGameID, PlayerID: "alice"})
			s.Require().NoError(err)
			_, err = s.gameService.EndTurn(s.ctx, &EndTurnInput{GameID: s.testGameID, PlayerID: "bob"})
			s.Require().NoError(err)
		}
	}
	return last
}

func (s *GameServiceTestSuite) TestNew() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{ResultRepo: s.mockResultRepo})
	s.Equal(ErrNilCatalog, err)

	cfg := &Config{Catalog: catalog.MustDefault()}
	_, err = New(cfg)
	s.Equal(ErrNilGameRepo, err)

	cfg.GameRepo = s.mockGameRepo
	_, err = New(cfg)
	s.Equal(ErrNilResultRepo, err)

	cfg.ResultRepo = s.mockResultRepo
	_, err = New(cfg)
	s.Equal(ErrNilDiceRoller, err)

	cfg.DiceRoller = s.mockDiceRoller
	_, err = New(cfg)
	s.Equal(ErrNilClock, err)

	cfg.Clock = s.mockClock
	_, err = New(cfg)
	s.Equal(ErrNilUUIDGenerator, err)
}

func (s *GameServiceTestSuite) TestCreateGameSeatsCreator() {
	s.mockUUID.EXPECT().NewGameID().Return(s.testGameID)
	s.mockNotifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	output, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		CreatorID:   "alice",
		CreatorName: "Alice",
	})
	s.Require().NoError(err)
	s.Equal(s.testGameID, output.GameID)
	s.Require().NotNil(output.Snapshot)
	s.Len(output.Snapshot.Public.Players, 1)
	s.Contains(output.Snapshot.Private, "alice")
	s.Equal(models.GameStatusWaiting, output.Snapshot.Public.Status)

	record := s.record(s.testGameID)
	s.Require().NotNil(record)
	s.Equal(models.GameStatusWaiting, record.Status)
	s.True(record.HasPlayer("alice"))
	s.Equal(s.testTime, record.CreatedAt)

	_, err = s.gameService.CreateGame(s.ctx, &CreateGameInput{GameID: s.testGameID})
	s.Equal(ErrGameAlreadyExists, err)
}

func (s *GameServiceTestSuite) TestCreateGameRetriesTakenID() {
	gomock.InOrder(
		s.mockUUID.EXPECT().NewGameID().Return(s.testGameID),
		s.mockUUID.EXPECT().NewGameID().Return(s.testGameID),
		s.mockUUID.EXPECT().NewGameID().Return("FGHIJ"),
	)

	first, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{})
	s.Require().NoError(err)
	second, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{})
	s.Require().NoError(err)

	s.Equal(s.testGameID, first.GameID)
	s.Equal("FGHIJ", second.GameID)

	// creatorless games are still listed
	s.Require().NotNil(s.record("FGHIJ"))
	s.Empty(s.record("FGHIJ").Players)
}

func (s *GameServiceTestSuite) TestMaxConcurrentGames() {
	s.gameService.maxConcurrentGames = 1

	_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{GameID: "ONE"})
	s.Require().NoError(err)

	_, err = s.gameService.CreateGame(s.ctx, &CreateGameInput{GameID: "TWO"})
	s.Equal(ErrTooManyGames, err)
}

func (s *GameServiceTestSuite) TestUnknownGame() {
	_, err := s.gameService.DrawCard(s.ctx, &DrawCardInput{GameID: "missing", PlayerID: "alice"})
	s.Equal(ErrGameNotFound, err)

	_, err = s.gameService.GetState(s.ctx, &GetStateInput{GameID: "missing"})
	s.Equal(ErrGameNotFound, err)
}

func (s *GameServiceTestSuite) TestRejectedActionPublishesNothing() {
	// create, join and start
	s.mockNotifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	started := s.setupStartedGame()
	s.Equal(session.EventGameStarted, started.Outcome.Event)
	s.Len(started.Snapshot.Private, 2)
	s.Len(started.Snapshot.Private["bob"].Hand, 5)

	_, err := s.gameService.DrawCard(s.ctx, &DrawCardInput{GameID: s.testGameID, PlayerID: "bob"})
	s.True(errors.Is(err, session.ErrInvalidTurn))

	_, err = s.gameService.JoinGame(s.ctx, &JoinGameInput{GameID: s.testGameID, PlayerID: "cara"})
	s.True(errors.Is(err, session.ErrAlreadyStarted))
}

func (s *GameServiceTestSuite) TestWinnerIsRecordedOnce() {
	s.mockNotifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockDiceRoller.EXPECT().Roll(dice.Sides).Return(6).AnyTimes()

	var saved *models.GameResult
	s.mockResultRepo.EXPECT().SaveResult(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *resultRepo.SaveResultInput) error {
			saved = input.Result
			return nil
		}).Times(1)
	s.mockAnnouncer.EXPECT().AnnounceResult(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	last := s.playAliceToVictory()

	s.Equal("alice", last.Outcome.Winner)
	s.Equal(models.GameStatusCompleted, last.Snapshot.Public.Status)

	s.Require().NotNil(saved)
	s.Equal(s.testGameID, saved.GameID)
	s.Equal("alice", saved.WinnerID)
	s.Equal("Alice", saved.WinnerName)
	s.Equal(5, saved.Turns)
	s.Equal(s.testTime, saved.StartedAt)
	s.Len(saved.Players, 2)

	record := s.record(s.testGameID)
	s.Require().NotNil(record)
	s.Equal(models.GameStatusCompleted, record.Status)
	s.Equal("alice", record.WinnerID)

	_, err := s.gameService.EndTurn(s.ctx, &EndTurnInput{GameID: s.testGameID, PlayerID: "alice"})
	s.True(errors.Is(err, session.ErrGameOver))

	s.mockGameRepo.EXPECT().DeleteGame(gomock.Any(), &gameRepo.DeleteGameInput{GameID: s.testGameID}).Return(nil)
	ended, err := s.gameService.EndGame(s.ctx, &EndGameInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.True(ended.Completed)
}

func (s *GameServiceTestSuite) TestPublishFailureDoesNotFailAction() {
	s.mockNotifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("hub down")).AnyTimes()

	started := s.setupStartedGame()
	s.NotNil(started.Outcome)
}

func (s *GameServiceTestSuite) TestGetStateIsSerialized() {
	s.mockNotifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.setupStartedGame()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			output, err := s.gameService.GetState(s.ctx, &GetStateInput{GameID: s.testGameID})
			s.NoError(err)
			s.Nil(output.Snapshot.Outcome)
			s.Equal(3, output.Snapshot.Public.ActionPoints)
		}()
	}
	wg.Wait()
}

func (s *GameServiceTestSuite) TestEndGame() {
	_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{GameID: s.testGameID})
	s.Require().NoError(err)

	s.mockGameRepo.EXPECT().DeleteGame(gomock.Any(), &gameRepo.DeleteGameInput{GameID: s.testGameID}).
		Return(gameRepo.ErrGameNotFound)

	output, err := s.gameService.EndGame(s.ctx, &EndGameInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.False(output.Completed)

	_, err = s.gameService.EndGame(s.ctx, &EndGameInput{GameID: s.testGameID})
	s.Equal(ErrGameNotFound, err)

	_, err = s.gameService.JoinGame(s.ctx, &JoinGameInput{GameID: s.testGameID, PlayerID: "alice"})
	s.Equal(ErrGameNotFound, err)
}

func (s *GameServiceTestSuite) TestLastPlayerLeavingFreesTheRoom() {
	s.gameService.maxConcurrentGames = 1
	s.mockNotifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{GameID: "ONE", CreatorID: "alice", CreatorName: "Alice"})
	s.Require().NoError(err)

	s.mockGameRepo.EXPECT().DeleteGame(gomock.Any(), &gameRepo.DeleteGameInput{GameID: "ONE"}).Return(nil)
	left, err := s.gameService.LeaveGame(s.ctx, &LeaveGameInput{GameID: "ONE", PlayerID: "alice"})
	s.Require().NoError(err)
	s.Empty(left.Snapshot.Public.Players)

	_, err = s.gameService.GetState(s.ctx, &GetStateInput{GameID: "ONE"})
	s.Equal(ErrGameNotFound, err)

	_, err = s.gameService.CreateGame(s.ctx, &CreateGameInput{GameID: "TWO"})
	s.NoError(err)
}

func (s *GameServiceTestSuite) TestLeavingKeepsRoomWhileOthersAreSeated() {
	s.mockNotifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{GameID: "ONE", CreatorID: "alice", CreatorName: "Alice"})
	s.Require().NoError(err)
	_, err = s.gameService.JoinGame(s.ctx, &JoinGameInput{GameID: "ONE", PlayerID: "bob", PlayerName: "Bob"})
	s.Require().NoError(err)

	_, err = s.gameService.LeaveGame(s.ctx, &LeaveGameInput{GameID: "ONE", PlayerID: "alice"})
	s.Require().NoError(err)

	state, err := s.gameService.GetState(s.ctx, &GetStateInput{GameID: "ONE"})
	s.Require().NoError(err)
	s.Len(state.Snapshot.Public.Players, 1)
}

func (s *GameServiceTestSuite) TestWonGameIsEndedAfterTTL() {
	s.gameService.finishedGameTTL = 20 * time.Millisecond
	s.mockNotifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockDiceRoller.EXPECT().Roll(dice.Sides).Return(6).AnyTimes()
	s.mockResultRepo.EXPECT().SaveResult(gomock.Any(), gomock.Any()).Return(nil)
	s.mockAnnouncer.EXPECT().AnnounceResult(gomock.Any(), gomock.Any()).Return(nil)

	deleted := make(chan struct{})
	s.mockGameRepo.EXPECT().DeleteGame(gomock.Any(), &gameRepo.DeleteGameInput{GameID: s.testGameID}).DoAndReturn(
		func(context.Context, *gameRepo.DeleteGameInput) error {
			close(deleted)
			return nil
		})

	last := s.playAliceToVictory()
	s.Require().Equal("alice", last.Outcome.Winner)

	select {
	case <-deleted:
	case <-time.After(2 * time.Second):
		s.FailNow("won game was never ended")
	}

	_, err := s.gameService.GetState(s.ctx, &GetStateInput{GameID: s.testGameID})
	s.Equal(ErrGameNotFound, err)
}

func (s *GameServiceTestSuite) TestEndedGameIsNotEndedAgainByTTL() {
	s.gameService.finishedGameTTL = 20 * time.Millisecond
	s.mockNotifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockDiceRoller.EXPECT().Roll(dice.Sides).Return(6).AnyTimes()
	s.mockResultRepo.EXPECT().SaveResult(gomock.Any(), gomock.Any()).Return(nil)
	s.mockAnnouncer.EXPECT().AnnounceResult(gomock.Any(), gomock.Any()).Return(nil)
	s.mockGameRepo.EXPECT().DeleteGame(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	s.playAliceToVictory()

	_, err := s.gameService.EndGame(s.ctx, &EndGameInput{GameID: s.testGameID})
	s.Require().NoError(err)

	time.Sleep(60 * time.Millisecond)
}

func (s *GameServiceTestSuite) TestClose() {
	_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{GameID: s.testGameID})
	s.Require().NoError(err)

	s.gameService.Close()

	_, err = s.gameService.CreateGame(s.ctx, &CreateGameInput{GameID: "OTHER"})
	s.Equal(ErrServiceClosed, err)
	_, err = s.gameService.GetState(s.ctx, &GetStateInput{GameID: s.testGameID})
	s.Equal(ErrServiceClosed, err)
}

func (s *GameServiceTestSuite) TestGetLeaderboard() {
	expected := &models.Leaderboard{
		Entries: []*models.LeaderboardEntry{{PlayerID: "alice", PlayerName: "Alice", Wins: 2}},
	}
	s.mockResultRepo.EXPECT().GetLeaderboard(s.ctx, &resultRepo.GetLeaderboardInput{Limit: 5}).Return(expected, nil)

	output, err := s.gameService.GetLeaderboard(s.ctx, &GetLeaderboardInput{Limit: 5})
	s.Require().NoError(err)
	s.Equal(expected, output.Leaderboard)
}

func (s *GameServiceTestSuite) TestListGamesSkipsStaleRecords() {
	_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{GameID: s.testGameID})
	s.Require().NoError(err)

	live := &models.GameRecord{ID: s.testGameID, Status: models.GameStatusWaiting}
	stale := &models.GameRecord{ID: "STALE", Status: models.GameStatusActive}
	s.mockGameRepo.EXPECT().GetOpenGames(s.ctx, &gameRepo.GetOpenGamesInput{}).
		Return(&gameRepo.GetOpenGamesOutput{Games: []*models.GameRecord{stale, live}}, nil)

	output, err := s.gameService.ListGames(s.ctx, &ListGamesInput{})
	s.Require().NoError(err)
	s.Equal([]*models.GameRecord{live}, output.Games)
}

func (s *GameServiceTestSuite) TestListGamesRepoError() {
	s.mockGameRepo.EXPECT().GetOpenGames(s.ctx, gomock.Any()).Return(nil, errors.New("redis down"))

	_, err := s.gameService.ListGames(s.ctx, &ListGamesInput{})
	s.EqualError(err, "redis down")
}

func (s *GameServiceTestSuite) TestFindPlayerGame() {
	s.mockNotifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	s.mockUUID.EXPECT().NewGameID().Return(s.testGameID)

	_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{CreatorID: "alice", CreatorName: "Alice"})
	s.Require().NoError(err)

	record := s.record(s.testGameID)
	s.mockGameRepo.EXPECT().GetGameByPlayer(s.ctx, &gameRepo.GetGameByPlayerInput{PlayerID: "alice"}).Return(record, nil)

	output, err := s.gameService.FindPlayerGame(s.ctx, &FindPlayerGameInput{PlayerID: "alice"})
	s.Require().NoError(err)
	s.Equal(s.testGameID, output.Game.ID)
}

func (s *GameServiceTestSuite) TestFindPlayerGameNotFound() {
	s.mockGameRepo.EXPECT().GetGameByPlayer(s.ctx, &gameRepo.GetGameByPlayerInput{PlayerID: "alice"}).
		Return(nil, gameRepo.ErrGameNotFound)

	_, err := s.gameService.FindPlayerGame(s.ctx, &FindPlayerGameInput{PlayerID: "alice"})
	s.Equal(ErrGameNotFound, err)

	// a record whose room is gone
	s.mockGameRepo.EXPECT().GetGameByPlayer(s.ctx, &gameRepo.GetGameByPlayerInput{PlayerID: "bob"}).
		Return(&models.GameRecord{ID: "GONE"}, nil)

	_, err = s.gameService.FindPlayerGame(s.ctx, &FindPlayerGameInput{PlayerID: "bob"})
	s.Equal(ErrGameNotFound, err)
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}
