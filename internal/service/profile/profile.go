package profile

import (
	"context"
	"errors"

	"github.com/Domenick1991/kiosk/internal/domain"
	"github.com/Domenick1991/kiosk/internal/outcome"
	"github.com/Domenick1991/kiosk/internal/storage"
)

var ErrAnonymous = errors.New("no authenticated profile")

type Source interface {
	Fetch(ctx context.Context) (*domain.UserProfile, error)
}

type Resolver struct {
	source Source
	store  *storage.Local
}

func NewResolver(source Source, store *storage.Local) *Resolver {
	return &Resolver{source: source, store: store}
}

// Resolve makes one call to the profile source. On success the id, name and
// email are mirrored into the device store; any failure means anonymous.
func (r *Resolver) Resolve(ctx context.Context) outcome.Result[*domain.UserProfile] {
	if r.source == nil {
		return outcome.Fail[*domain.UserProfile](ErrAnonymous)
	}

	p, err := r.source.Fetch(ctx)
	if err != nil {
		return outcome.Fail[*domain.UserProfile](err)
	}
	if p == nil {
		return outcome.Fail[*domain.UserProfile](ErrAnonymous)
	}

	if p.ID != "" {
		r.store.Set(ctx, storage.KeyUserID, p.ID)
	}
	if p.Name != "" {
		r.store.Set(ctx, storage.KeyUserName, p.Name)
	}
	if p.Email != "" {
		r.store.Set(ctx, storage.KeyUserEmail, p.Email)
	}
	return outcome.Ok(p)
}

// Cached rebuilds the profile mirrored by an earlier Resolve. It returns nil
// when nothing was mirrored.
func (r *Resolver) Cached(ctx context.Context) *domain.UserProfile {
	var p domain.UserProfile
	p.ID, _ = r.store.Get(ctx, storage.KeyUserID)
	p.Name, _ = r.store.Get(ctx, storage.KeyUserName)
	p.Email, _ = r.store.Get(ctx, storage.KeyUserEmail)
	if p == (domain.UserProfile{}) {
		return nil
	}
	return &p
}
