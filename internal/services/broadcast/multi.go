package broadcast

import (
	"context"
	"errors"

	"github.com/KirkDiggler/heroparty/internal/models"
)

// Notifiers fans a snapshot out to every notifier, in order
type Notifiers []Notifier

// Publish implements Notifier
func (n Notifiers) Publish(ctx context.Context, snapshot *Snapshot) error {
	var errs []error
	for _, notifier := range n {
		if err := notifier.Publish(ctx, snapshot); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Announcers fans a result out to every announcer, in order
type Announcers []Announcer

// AnnounceResult implements Announcer
func (a Announcers) AnnounceResult(ctx context.Context, result *models.GameResult) error {
	var errs []error
	for _, announcer := range a {
		if err := announcer.AnnounceResult(ctx, result); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
