package game

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/heroparty/internal/catalog"
	"github.com/KirkDiggler/heroparty/internal/common/clock"
	"github.com/KirkDiggler/heroparty/internal/common/uuid"
	"github.com/KirkDiggler/heroparty/internal/dice"
	"github.com/KirkDiggler/heroparty/internal/game/session"
	"github.com/KirkDiggler/heroparty/internal/models"
	gameRepo "github.com/KirkDiggler/heroparty/internal/repositories/game"
	resultRepo "github.com/KirkDiggler/heroparty/internal/repositories/result"
	"github.com/KirkDiggler/heroparty/internal/services/broadcast"
)

// maxIDAttempts bounds retries when a generated game id is already taken
const maxIDAttempts = 5

// defaultFinishedGameTTL is how long a won game stays readable
const defaultFinishedGameTTL = 10 * time.Minute

// service implements the Service interface
type service struct {
	maxConcurrentGames int
	rules              session.Rules
	catalog            *catalog.Catalog
	gameRepo           gameRepo.Repository
	resultRepo         resultRepo.Repository
	notifier           broadcast.Notifier
	announcer          broadcast.Announcer
	logger             *slog.Logger
	diceRoller         dice.Roller
	clock              clock.Clock
	uuidGenerator      uuid.UUID
	finishedGameTTL    time.Duration

	mu     sync.Mutex
	rooms  map[string]*room
	closed bool
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.ResultRepo == nil {
		return nil, ErrNilResultRepo
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = broadcast.Notifiers{}
	}

	announcer := cfg.Announcer
	if announcer == nil {
		announcer = broadcast.Announcers{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	finishedGameTTL := cfg.FinishedGameTTL
	if finishedGameTTL <= 0 {
		finishedGameTTL = defaultFinishedGameTTL
	}

	return &service{
		maxConcurrentGames: cfg.MaxConcurrentGames,
		rules:              cfg.Rules,
		catalog:            cfg.Catalog,
		gameRepo:           cfg.GameRepo,
		resultRepo:         cfg.ResultRepo,
		notifier:           notifier,
		announcer:          announcer,
		logger:             logger,
		diceRoller:         cfg.DiceRoller,
		clock:              cfg.Clock,
		uuidGenerator:      cfg.UUIDGenerator,
		finishedGameTTL:    finishedGameTTL,
		rooms:              make(map[string]*room),
	}, nil
}

// CreateGame opens a new game room and seats the creator
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	r, err := s.openRoom(input.GameID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("game created", "game_id", r.id, "creator_id", input.CreatorID)

	output := &CreateGameOutput{GameID: r.id}
	if input.CreatorID == "" {
		rep, err := r.submit(ctx, &command{
			readOnly: true,
			persist:  true,
			apply: func(*session.Session) (*session.Outcome, error) {
				return nil, nil
			},
		})
		if err != nil {
			return nil, err
		}
		output.Snapshot = rep.snapshot
		return output, nil
	}

	joined, err := s.JoinGame(ctx, &JoinGameInput{
		GameID:     r.id,
		PlayerID:   input.CreatorID,
		PlayerName: input.CreatorName,
	})
	if err != nil {
		return nil, err
	}
	output.Snapshot = joined.Snapshot

	return output, nil
}

func (s *service) openRoom(gameID string) (*room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrServiceClosed
	}
	if s.maxConcurrentGames > 0 && len(s.rooms) >= s.maxConcurrentGames {
		return nil, ErrTooManyGames
	}

	if gameID != "" {
		if _, ok := s.rooms[gameID]; ok {
			return nil, ErrGameAlreadyExists
		}
	} else {
		for i := 0; i < maxIDAttempts; i++ {
			candidate := s.uuidGenerator.NewGameID()
			if _, ok := s.rooms[candidate]; !ok {
				gameID = candidate
				break
			}
		}
		if gameID == "" {
			return nil, ErrGameAlreadyExists
		}
	}

	sess, err := session.New(&session.Config{
		ID:            gameID,
		Rules:         s.rules,
		Catalog:       s.catalog,
		DiceRoller:    s.diceRoller,
		UUIDGenerator: s.uuidGenerator,
	})
	if err != nil {
		return nil, err
	}

	r := newRoom(s, sess)
	s.rooms[gameID] = r
	go r.run()

	return r, nil
}

func (s *service) room(gameID string) (*room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrServiceClosed
	}
	r, ok := s.rooms[gameID]
	if !ok {
		return nil, ErrGameNotFound
	}
	return r, nil
}

// perform runs apply on the game's room and returns what it did
func (s *service) perform(ctx context.Context, gameID, playerID string, apply func(*session.Session) (*session.Outcome, error)) (*ActionOutput, error) {
	r, err := s.room(gameID)
	if err != nil {
		return nil, err
	}

	return r.perform(ctx, playerID, apply)
}

func (r *room) perform(ctx context.Context, playerID string, apply func(*session.Session) (*session.Outcome, error)) (*ActionOutput, error) {
	rep, err := r.submit(ctx, &command{actorID: playerID, apply: apply})
	if err != nil {
		return nil, err
	}
	if rep.err != nil {
		return nil, rep.err
	}

	return &ActionOutput{
		Outcome:  rep.outcome,
		Snapshot: rep.snapshot,
	}, nil
}

// JoinGame seats a player before the game starts
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*ActionOutput, error) {
	return s.perform(ctx, input.GameID, input.PlayerID, func(sess *session.Session) (*session.Outcome, error) {
		return sess.AddPlayer(input.PlayerID, input.PlayerName)
	})
}

// LeaveGame unseats a player before the game starts. The room closes once
// the last player has left.
func (s *service) LeaveGame(ctx context.Context, input *LeaveGameInput) (*ActionOutput, error) {
	r, err := s.room(input.GameID)
	if err != nil {
		return nil, err
	}

	output, err := r.perform(ctx, input.PlayerID, func(sess *session.Session) (*session.Outcome, error) {
		return sess.RemovePlayer(input.PlayerID)
	})
	if err != nil {
		return nil, err
	}

	if len(output.Snapshot.Public.Players) == 0 {
		s.logger.Info("last player left", "game_id", r.id)
		s.retire(ctx, r)
	}

	return output, nil
}

// StartGame deals the cards
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*ActionOutput, error) {
	output, err := s.perform(ctx, input.GameID, input.PlayerID, func(sess *session.Session) (*session.Outcome, error) {
		return sess.Start()
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("game started", "game_id", input.GameID, "players", len(output.Snapshot.Public.Players))

	return output, nil
}

// DrawCard draws from the draw pile
func (s *service) DrawCard(ctx context.Context, input *DrawCardInput) (*ActionOutput, error) {
	return s.perform(ctx, input.GameID, input.PlayerID, func(sess *session.Session) (*session.Outcome, error) {
		return sess.DrawCard(input.PlayerID)
	})
}

// PlayCard plays a card from hand
func (s *service) PlayCard(ctx context.Context, input *PlayCardInput) (*ActionOutput, error) {
	return s.perform(ctx, input.GameID, input.PlayerID, func(sess *session.Session) (*session.Outcome, error) {
		return sess.PlayCard(input.PlayerID, input.CardID)
	})
}

// AttackMonster opens an attack roll
func (s *service) AttackMonster(ctx context.Context, input *AttackMonsterInput) (*ActionOutput, error) {
	return s.perform(ctx, input.GameID, input.PlayerID, func(sess *session.Session) (*session.Outcome, error) {
		return sess.AttackMonster(input.PlayerID, input.MonsterID)
	})
}

// UseHeroAbility opens a hero ability roll
func (s *service) UseHeroAbility(ctx context.Context, input *UseHeroAbilityInput) (*ActionOutput, error) {
	return s.perform(ctx, input.GameID, input.PlayerID, func(sess *session.Session) (*session.Outcome, error) {
		return sess.UseHeroAbility(input.PlayerID, input.CardID)
	})
}

// EndTurn passes the turn on
func (s *service) EndTurn(ctx context.Context, input *EndTurnInput) (*ActionOutput, error) {
	return s.perform(ctx, input.GameID, input.PlayerID, func(sess *session.Session) (*session.Outcome, error) {
		return sess.EndTurn(input.PlayerID)
	})
}

// DiscardHand spends the discard cost
func (s *service) DiscardHand(ctx context.Context, input *DiscardHandInput) (*ActionOutput, error) {
	return s.perform(ctx, input.GameID, input.PlayerID, func(sess *session.Session) (*session.Outcome, error) {
		return sess.DiscardHand(input.PlayerID)
	})
}

// PlayModifier applies a modifier to the open roll or duel
func (s *service) PlayModifier(ctx context.Context, input *PlayModifierInput) (*ActionOutput, error) {
	return s.perform(ctx, input.GameID, input.PlayerID, func(sess *session.Session) (*session.Outcome, error) {
		return sess.PlayModifier(input.PlayerID, input.CardID, input.Value)
	})
}

// PassRoll passes on the open roll or duel
func (s *service) PassRoll(ctx context.Context, input *PassRollInput) (*ActionOutput, error) {
	return s.perform(ctx, input.GameID, input.PlayerID, func(sess *session.Session) (*session.Outcome, error) {
		return sess.PassRoll(input.PlayerID)
	})
}

// PassChallenge lets a pending card through
func (s *service) PassChallenge(ctx context.Context, input *PassChallengeInput) (*ActionOutput, error) {
	return s.perform(ctx, input.GameID, input.PlayerID, func(sess *session.Session) (*session.Outcome, error) {
		return sess.PassChallenge(input.PlayerID)
	})
}

// InitiateChallenge contests a pending card
func (s *service) InitiateChallenge(ctx context.Context, input *InitiateChallengeInput) (*ActionOutput, error) {
	return s.perform(ctx, input.GameID, input.PlayerID, func(sess *session.Session) (*session.Outcome, error) {
		return sess.InitiateChallenge(input.PlayerID)
	})
}

// RollDuelDice rolls for a duelist
func (s *service) RollDuelDice(ctx context.Context, input *RollDuelDiceInput) (*ActionOutput, error) {
	return s.perform(ctx, input.GameID, input.PlayerID, func(sess *session.Session) (*session.Outcome, error) {
		return sess.RollDuelDice(input.PlayerID)
	})
}

// ResolveSelection answers a pending effect selection
func (s *service) ResolveSelection(ctx context.Context, input *ResolveSelectionInput) (*ActionOutput, error) {
	return s.perform(ctx, input.GameID, input.PlayerID, func(sess *session.Session) (*session.Outcome, error) {
		return sess.ResolveSelection(input.PlayerID, input.Selection)
	})
}

// GetState returns the current snapshot without changing anything
func (s *service) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	r, err := s.room(input.GameID)
	if err != nil {
		return nil, err
	}

	rep, err := r.submit(ctx, &command{
		readOnly: true,
		apply: func(*session.Session) (*session.Outcome, error) {
			return nil, nil
		},
	})
	if err != nil {
		return nil, err
	}

	return &GetStateOutput{Snapshot: rep.snapshot}, nil
}

// ListGames returns the open games this server is running, oldest first
func (s *service) ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error) {
	open, err := s.gameRepo.GetOpenGames(ctx, &gameRepo.GetOpenGamesInput{})
	if err != nil {
		return nil, err
	}

	// Records can outlive their room across a restart
	s.mu.Lock()
	games := make([]*models.GameRecord, 0, len(open.Games))
	for _, g := range open.Games {
		if _, ok := s.rooms[g.ID]; ok {
			games = append(games, g)
		}
	}
	s.mu.Unlock()

	return &ListGamesOutput{Games: games}, nil
}

// FindPlayerGame returns the running game a player is seated in
func (s *service) FindPlayerGame(ctx context.Context, input *FindPlayerGameInput) (*FindPlayerGameOutput, error) {
	record, err := s.gameRepo.GetGameByPlayer(ctx, &gameRepo.GetGameByPlayerInput{PlayerID: input.PlayerID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	if _, err := s.room(record.ID); err != nil {
		return nil, err
	}

	return &FindPlayerGameOutput{Game: record}, nil
}

// GetLeaderboard returns the all-time winners
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	leaderboard, err := s.resultRepo.GetLeaderboard(ctx, &resultRepo.GetLeaderboardInput{
		Limit: input.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &GetLeaderboardOutput{Leaderboard: leaderboard}, nil
}

// EndGame stops a game room and forgets it
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	s.mu.Lock()
	r, ok := s.rooms[input.GameID]
	s.mu.Unlock()

	if !ok || !s.retire(ctx, r) {
		return nil, ErrGameNotFound
	}

	return &EndGameOutput{
		Completed: r.session.Status().IsCompleted(),
	}, nil
}

// retire stops r and drops its directory record. It reports false when r was
// already gone, e.g. ended by another caller or replaced under the same id.
func (s *service) retire(ctx context.Context, r *room) bool {
	s.mu.Lock()
	if s.rooms[r.id] != r {
		s.mu.Unlock()
		return false
	}
	delete(s.rooms, r.id)
	if r.retireTimer != nil {
		r.retireTimer.Stop()
	}
	s.mu.Unlock()

	r.stop()
	s.logger.Info("game ended", "game_id", r.id)

	err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{GameID: r.id})
	if err != nil && !errors.Is(err, gameRepo.ErrGameNotFound) {
		s.logger.Error("failed to delete game record", "game_id", r.id, "error", err)
	}
	return true
}

// retireLater ends a won game once players have had time to see the result
func (s *service) retireLater(r *room) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rooms[r.id] != r || r.retireTimer != nil {
		return
	}
	r.retireTimer = time.AfterFunc(s.finishedGameTTL, func() {
		s.retire(context.Background(), r)
	})
}

// Close stops every room
func (s *service) Close() {
	s.mu.Lock()
	rooms := s.rooms
	s.rooms = make(map[string]*room)
	s.closed = true
	for _, r := range rooms {
		if r.retireTimer != nil {
			r.retireTimer.Stop()
		}
	}
	s.mu.Unlock()

	for _, r := range rooms {
		r.stop()
	}
}
