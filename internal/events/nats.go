// Package events streams public game state and results to NATS.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/KirkDiggler/heroparty/internal/game/session"
	"github.com/KirkDiggler/heroparty/internal/models"
	"github.com/KirkDiggler/heroparty/internal/services/broadcast"
)

// DefaultSubjectPrefix is the root of every subject the publisher writes
const DefaultSubjectPrefix = "games"

// Conn is the part of *nats.Conn the publisher needs
type Conn interface {
	Publish(subj string, data []byte) error
}

// Config holds configuration for the publisher
type Config struct {
	// Conn is the NATS connection
	Conn Conn

	// SubjectPrefix defaults to DefaultSubjectPrefix
	SubjectPrefix string
}

// StateEvent is published after every game action. It carries only what
// every player may see.
type StateEvent struct {
	GameID  string              `json:"gameId"`
	ActorID string              `json:"actorId,omitempty"`
	Outcome *session.Outcome    `json:"outcome,omitempty"`
	State   *session.PublicView `json:"state"`
}

// Publisher writes game events to NATS subjects
type Publisher struct {
	conn   Conn
	prefix string
}

// New creates a new NATS publisher
func New(cfg *Config) (*Publisher, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Conn == nil {
		return nil, errors.New("nats connection cannot be nil")
	}

	prefix := cfg.SubjectPrefix
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}

	return &Publisher{
		conn:   cfg.Conn,
		prefix: prefix,
	}, nil
}

// Connect dials NATS and keeps reconnecting for the life of the process
func Connect(url string, logger *slog.Logger) (*nats.Conn, error) {
	if logger == nil {
		logger = slog.Default()
	}

	nc, err := nats.Connect(url,
		nats.Name("heroparty"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}
	return nc, nil
}

// StateSubject is where public snapshots of gameID are published
func (p *Publisher) StateSubject(gameID string) string {
	return fmt.Sprintf("%s.%s.state", p.prefix, gameID)
}

// ResultSubject is where the result of gameID is published
func (p *Publisher) ResultSubject(gameID string) string {
	return fmt.Sprintf("%s.%s.result", p.prefix, gameID)
}

// Publish implements broadcast.Notifier. Private hands are dropped.
func (p *Publisher) Publish(ctx context.Context, snapshot *broadcast.Snapshot) error {
	if snapshot == nil {
		return errors.New("snapshot cannot be nil")
	}

	return p.publish(ctx, p.StateSubject(snapshot.GameID), &StateEvent{
		GameID:  snapshot.GameID,
		ActorID: snapshot.ActorID,
		Outcome: snapshot.Outcome,
		State:   snapshot.Public,
	})
}

// AnnounceResult implements broadcast.Announcer
func (p *Publisher) AnnounceResult(ctx context.Context, result *models.GameResult) error {
	if result == nil {
		return errors.New("result cannot be nil")
	}
	return p.publish(ctx, p.ResultSubject(result.GameID), result)
}

func (p *Publisher) publish(ctx context.Context, subject string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal event for %s: %w", subject, err)
	}

	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return nil
}
