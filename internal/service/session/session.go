package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/kiosk/internal/storage"
	"github.com/google/uuid"
)

const randomLength = 7

type Provider struct {
	store *storage.Local
	now   func() time.Time
}

func NewProvider(store *storage.Local) *Provider {
	return &Provider{store: store, now: time.Now}
}

// GetOrCreate returns the persisted session id, creating one of the form
// sess_<unix millis>_<7 alphanumerics> when none exists. If the store cannot
// persist it the id is still returned and a new one is made next time.
func (p *Provider) GetOrCreate(ctx context.Context) string {
	if id, ok := p.store.Get(ctx, storage.KeySessionID); ok && id != "" {
		return id
	}

	id := NewID(p.now())
	p.store.Set(ctx, storage.KeySessionID, id)
	return id
}

func NewID(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:randomLength]
	return fmt.Sprintf("sess_%d_%s", now.UnixMilli(), random)
}
