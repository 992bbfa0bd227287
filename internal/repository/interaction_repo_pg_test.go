package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/kiosk/internal/database"
	"github.com/Domenick1991/kiosk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewInteractionRepository(t *testing.T) {
	repo := NewInteractionRepository(&database.DB{})
	assert.NotNil(t, repo)
}

func TestInteractionRepository_InsertUnconfigured(t *testing.T) {
	repo := NewInteractionRepository(&database.DB{})

	inserted, err := repo.Insert(context.Background(), domain.InteractionEvent{
		ID:        "evt-1",
		Type:      domain.InteractionAddToRoute,
		Timestamp: time.Now(),
		SessionID: "sess_1_abc",
		DeviceID:  "kiosk-local",
	})

	assert.ErrorIs(t, err, database.ErrNotConfigured)
	assert.False(t, inserted)
}
