// Package broadcast carries game snapshots and results out of the game
// service to whatever is listening.
package broadcast

//go:generate mockgen -package=mocks -destination=mocks/mock_broadcast.go github.com/KirkDiggler/heroparty/internal/services/broadcast Notifier,Announcer

import (
	"context"

	"github.com/KirkDiggler/heroparty/internal/models"
)

// Notifier receives a snapshot after every successful game action
type Notifier interface {
	Publish(ctx context.Context, snapshot *Snapshot) error
}

// Announcer is told once about every finished game
type Announcer interface {
	AnnounceResult(ctx context.Context, result *models.GameResult) error
}
