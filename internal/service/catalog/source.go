package catalog

import (
	"context"

	"github.com/Domenick1991/kiosk/internal/domain"
	"github.com/Domenick1991/kiosk/internal/repository"
)

type Cache interface {
	GetDestinations(ctx context.Context) ([]domain.Destination, error)
	SetDestinations(ctx context.Context, destinations []domain.Destination) error
}

// CachedSource reads destinations through the cache and falls back to the
// repository on a miss or cache error.
type CachedSource struct {
	repo  repository.DestinationRepository
	cache Cache
}

func NewCachedSource(repo repository.DestinationRepository, cache Cache) *CachedSource {
	return &CachedSource{repo: repo, cache: cache}
}

func (s *CachedSource) List(ctx context.Context) ([]domain.Destination, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetDestinations(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}
	return s.Refresh(ctx)
}

// Refresh bypasses the cache and rewrites it from the repository.
func (s *CachedSource) Refresh(ctx context.Context) ([]domain.Destination, error) {
	destinations, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil && len(destinations) > 0 {
		_ = s.cache.SetDestinations(ctx, destinations)
	}
	return destinations, nil
}

var _ Source = (*CachedSource)(nil)
