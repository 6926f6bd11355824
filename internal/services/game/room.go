package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/heroparty/internal/game/session"
	"github.com/KirkDiggler/heroparty/internal/models"
	gameRepo "github.com/KirkDiggler/heroparty/internal/repositories/game"
	resultRepo "github.com/KirkDiggler/heroparty/internal/repositories/result"
	"github.com/KirkDiggler/heroparty/internal/services/broadcast"
)

// command is one call waiting for its room
type command struct {
	ctx      context.Context
	actorID  string
	apply    func(*session.Session) (*session.Outcome, error)
	readOnly bool
	// persist writes the directory record even for a read-only command
	persist bool
	reply   chan reply
}

type reply struct {
	outcome  *session.Outcome
	snapshot *broadcast.Snapshot
	err      error
}

// room exclusively owns one session. Commands run to completion one at a
// time on the room's goroutine.
type room struct {
	id        string
	session   *session.Session
	svc       *service
	logger    *slog.Logger
	incoming  chan *command
	quit      chan struct{}
	done      chan struct{}
	createdAt time.Time
	startedAt time.Time

	// retireTimer ends a won game; guarded by the service mutex
	retireTimer *time.Timer
}

func newRoom(svc *service, sess *session.Session) *room {
	return &room{
		id:        sess.ID(),
		session:   sess,
		svc:       svc,
		logger:    svc.logger.With("game_id", sess.ID()),
		incoming:  make(chan *command),
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
		createdAt: svc.clock.Now(),
	}
}

func (r *room) run() {
	defer close(r.done)
	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.incoming:
			r.handle(cmd)
		}
	}
}

func (r *room) stop() {
	close(r.quit)
	<-r.done
}

// submit hands cmd to the room and waits for its reply. A cancelled ctx stops
// the wait; a command the room already accepted still runs.
func (r *room) submit(ctx context.Context, cmd *command) (*reply, error) {
	cmd.ctx = ctx
	cmd.reply = make(chan reply, 1)

	select {
	case r.incoming <- cmd:
	case <-r.done:
		return nil, ErrGameNotFound
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case rep := <-cmd.reply:
		return &rep, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (r *room) handle(cmd *command) {
	outcome, err := cmd.apply(r.session)
	if err != nil {
		r.logger.Debug("action rejected", "player_id", cmd.actorID, "error", err)
		cmd.reply <- reply{err: err}
		return
	}

	snapshot := r.snapshot(cmd.actorID, outcome)
	if cmd.persist || (!cmd.readOnly && changesDirectory(outcome)) {
		r.saveRecord(context.WithoutCancel(cmd.ctx), snapshot)
	}
	if !cmd.readOnly {
		ctx := context.WithoutCancel(cmd.ctx)

		if outcome != nil && outcome.Event == session.EventGameStarted {
			r.startedAt = r.svc.clock.Now()
		}

		if err := r.svc.notifier.Publish(ctx, snapshot); err != nil {
			r.logger.Error("failed to publish snapshot", "error", err)
		}

		if outcome != nil && outcome.Winner != "" {
			r.recordResult(ctx, outcome.Winner)
			r.svc.retireLater(r)
		}
	}

	cmd.reply <- reply{outcome: outcome, snapshot: snapshot}
}

func (r *room) snapshot(actorID string, outcome *session.Outcome) *broadcast.Snapshot {
	snapshot := &broadcast.Snapshot{
		GameID:  r.id,
		ActorID: actorID,
		Outcome: outcome,
		Public:  r.session.PublicView(),
		Private: make(map[string]*session.PrivateView),
	}
	for _, playerID := range r.session.PlayerIDs() {
		view, err := r.session.PrivateView(playerID)
		if err != nil {
			continue
		}
		snapshot.Private[playerID] = view
	}
	return snapshot
}

// changesDirectory reports whether outcome changed who is seated or how far
// the game has got
func changesDirectory(outcome *session.Outcome) bool {
	if outcome == nil {
		return false
	}
	if outcome.Winner != "" {
		return true
	}
	switch outcome.Event {
	case session.EventPlayerJoined, session.EventPlayerLeft, session.EventGameStarted:
		return true
	}
	return false
}

func (r *room) saveRecord(ctx context.Context, snapshot *broadcast.Snapshot) {
	record := &models.GameRecord{
		ID:        r.id,
		Status:    snapshot.Public.Status,
		WinnerID:  snapshot.Public.WinnerID,
		Players:   r.session.Summaries(),
		CreatedAt: r.createdAt,
		UpdatedAt: r.svc.clock.Now(),
	}

	if err := r.svc.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: record}); err != nil {
		r.logger.Error("failed to save game record", "error", err)
	}
}

// recordResult runs once per game: only the deciding action carries a Winner
func (r *room) recordResult(ctx context.Context, winnerID string) {
	result := &models.GameResult{
		GameID:     r.id,
		WinnerID:   winnerID,
		Players:    r.session.Summaries(),
		Turns:      r.session.TurnCount() + 1,
		StartedAt:  r.startedAt,
		FinishedAt: r.svc.clock.Now(),
	}
	for _, p := range result.Players {
		if p.ID == winnerID {
			result.WinnerName = p.Name
		}
	}

	r.logger.Info("game won", "winner_id", winnerID, "turns", result.Turns)

	if err := r.svc.resultRepo.SaveResult(ctx, &resultRepo.SaveResultInput{Result: result}); err != nil {
		r.logger.Error("failed to save result", "error", err)
	}

	if err := r.svc.announcer.AnnounceResult(ctx, result); err != nil {
		r.logger.Error("failed to announce result", "error", err)
	}
}
