package broadcast

import (
	"github.com/KirkDiggler/heroparty/internal/game/session"
)

// Snapshot is the state of one game right after an action
type Snapshot struct {
	// GameID is the game the snapshot belongs to
	GameID string

	// ActorID is the player whose action produced the snapshot
	ActorID string

	// Outcome is what the action did; nil for plain state reads
	Outcome *session.Outcome

	// Public is the table everyone sees
	Public *session.PublicView

	// Private holds each seated player's hand, keyed by player id. It must
	// only ever be delivered to its owner.
	Private map[string]*session.PrivateView
}
