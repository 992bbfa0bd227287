package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Domenick1991/kiosk/internal/database"
	"github.com/Domenick1991/kiosk/internal/domain"
	"github.com/Domenick1991/kiosk/internal/repository"
)

type Mailer interface {
	Send(ctx context.Context, event domain.InteractionEvent) error
}

type Refresher interface {
	Refresh(ctx context.Context) ([]domain.Destination, error)
}

// Processor handles interaction events delivered by the consumer.
type Processor struct {
	interactions repository.InteractionRepository
	mailer       Mailer
	logger       *slog.Logger
}

func NewProcessor(interactions repository.InteractionRepository, mailer Mailer, logger *slog.Logger) *Processor {
	return &Processor{interactions: interactions, mailer: mailer, logger: logger}
}

// Handle stores the event and sends the route email for email interactions.
// A storage error is returned so the message is redelivered; a redelivered
// event that was already stored does not send a second email.
func (p *Processor) Handle(ctx context.Context, event domain.InteractionEvent) error {
	inserted, err := p.interactions.Insert(ctx, event)
	switch {
	case errors.Is(err, database.ErrNotConfigured):
		inserted = true
	case err != nil:
		return err
	case !inserted:
		p.logger.Debug("duplicate interaction skipped", "id", event.ID, "type", event.Type)
		return nil
	}

	if event.Type != domain.InteractionEmail || p.mailer == nil {
		return nil
	}
	if err := p.mailer.Send(ctx, event); err != nil {
		p.logger.Warn("route email not sent", "id", event.ID, "degraded", event.Degraded, "error", err)
	}
	return nil
}

// RefreshCatalog rewrites the destination cache every interval until ctx is
// done.
func RefreshCatalog(ctx context.Context, source Refresher, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			list, err := source.Refresh(ctx)
			if err != nil {
				logger.Warn("catalog refresh failed", "error", err)
				continue
			}
			logger.Info("catalog refreshed", "destinations", len(list))
		}
	}
}
