package ws

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/heroparty/internal/services/broadcast"
	"github.com/KirkDiggler/heroparty/internal/services/messaging"
)

// HubConfig holds configuration for the hub
type HubConfig struct {
	// MessagingService writes the headline of each outcome
	MessagingService messaging.Service

	// Logger defaults to slog.Default
	Logger *slog.Logger
}

// Hub tracks the connections of every game and fans snapshots out to them.
// It is the transport's broadcast.Notifier.
type Hub struct {
	mu        sync.RWMutex
	games     map[string]map[*Client]struct{}
	messaging messaging.Service
	logger    *slog.Logger
}

// NewHub creates a new hub
func NewHub(cfg *HubConfig) (*Hub, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Hub{
		games:     make(map[string]map[*Client]struct{}),
		messaging: cfg.MessagingService,
		logger:    logger.With("component", "ws_hub"),
	}, nil
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.games[c.gameID]
	if !ok {
		clients = make(map[*Client]struct{})
		h.games[c.gameID] = clients
	}
	clients[c] = struct{}{}
	h.logger.Debug("client registered", "game_id", c.gameID, "player_id", c.playerID)
}

// unregister forgets c and closes its send channel, which stops its writer
func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.games[c.gameID]
	if !ok {
		return
	}
	if _, ok := clients[c]; !ok {
		return
	}

	delete(clients, c)
	if len(clients) == 0 {
		delete(h.games, c.gameID)
	}
	close(c.send)
	h.logger.Debug("client unregistered", "game_id", c.gameID, "player_id", c.playerID)
}

// Connections returns how many clients are watching gameID
func (h *Hub) Connections(gameID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.games[gameID])
}

// Send delivers msg to c if it is still registered
func (h *Hub) Send(c *Client, msg *Outbound) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if _, ok := h.games[c.gameID][c]; !ok {
		return
	}
	h.enqueue(c, msg)
}

// enqueue never blocks the caller. A client whose buffer is full has fallen
// too far behind and is disconnected. Callers hold mu.
func (h *Hub) enqueue(c *Client, msg *Outbound) {
	select {
	case c.send <- msg:
	default:
		h.logger.Warn("client too slow, dropping", "game_id", c.gameID, "player_id", c.playerID)
		c.close()
	}
}

// Publish implements broadcast.Notifier. Each connection receives the public
// state plus its own player's hand.
func (h *Hub) Publish(ctx context.Context, snapshot *broadcast.Snapshot) error {
	if snapshot == nil {
		return errors.New("snapshot cannot be nil")
	}

	headline := h.headline(ctx, snapshot)

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.games[snapshot.GameID] {
		h.enqueue(c, stateMessage(snapshot, c.playerID, headline))
	}
	return nil
}

func (h *Hub) headline(ctx context.Context, snapshot *broadcast.Snapshot) string {
	if snapshot.Outcome == nil {
		return ""
	}

	actorName := snapshot.ActorID
	if snapshot.Public != nil {
		for _, p := range snapshot.Public.Players {
			if p.ID == snapshot.ActorID {
				actorName = p.Name
			}
		}
	}

	out, err := h.messaging.GetOutcomeMessage(ctx, &messaging.GetOutcomeMessageInput{
		ActorName: actorName,
		Outcome:   snapshot.Outcome,
	})
	if err != nil {
		h.logger.Warn("failed to get outcome message", "game_id", snapshot.GameID, "error", err)
		return ""
	}
	return out.Title
}

// stateMessage is snapshot as seen by playerID
func stateMessage(snapshot *broadcast.Snapshot, playerID, headline string) *Outbound {
	return &Outbound{
		Type:     TypeState,
		GameID:   snapshot.GameID,
		ActorID:  snapshot.ActorID,
		Outcome:  snapshot.Outcome,
		Headline: headline,
		State:    snapshot.Public,
		Hand:     snapshot.Private[playerID],
	}
}
