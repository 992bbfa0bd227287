package repository

import (
	"context"

	"github.com/Domenick1991/kiosk/internal/database"
	"github.com/Domenick1991/kiosk/internal/domain"
)

type InteractionRepository interface {
	Insert(ctx context.Context, event domain.InteractionEvent) (bool, error)
}

type PGInteractionRepository struct {
	db database.Querier
}

func NewInteractionRepository(db database.Querier) InteractionRepository {
	return &PGInteractionRepository{db: db}
}

// Insert stores the event and reports whether it was new. Redelivered events
// carry the same id and are skipped.
func (r *PGInteractionRepository) Insert(ctx context.Context, event domain.InteractionEvent) (bool, error) {
	var userData any
	if len(event.UserData) > 0 {
		userData = []byte(event.UserData)
	}

	cmd, err := r.db.Exec(ctx, `INSERT INTO interactions
		(id, interaction_type, occurred_at, session_id, device_id, user_id, user_name, user_email, destination_id, user_data, degraded)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), $10, $11)
		ON CONFLICT (id) DO NOTHING`,
		event.ID, string(event.Type), event.Timestamp, event.SessionID, event.DeviceID,
		event.UserID, event.UserName, event.UserEmail, event.DestinationID, userData, event.Degraded)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

var _ InteractionRepository = (*PGInteractionRepository)(nil)
