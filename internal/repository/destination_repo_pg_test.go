package repository

import (
	"context"
	"testing"

	"github.com/Domenick1991/kiosk/internal/database"
	"github.com/stretchr/testify/assert"
)

func TestNewDestinationRepository(t *testing.T) {
	repo := NewDestinationRepository(&database.DB{})
	assert.NotNil(t, repo)
}

func TestDestinationRepository_ListUnconfigured(t *testing.T) {
	repo := NewDestinationRepository(&database.DB{})

	list, err := repo.List(context.Background())

	assert.ErrorIs(t, err, database.ErrNotConfigured)
	assert.Nil(t, list)
}
