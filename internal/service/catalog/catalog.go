package catalog

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/Domenick1991/kiosk/internal/domain"
	"github.com/Domenick1991/kiosk/internal/outcome"
)

var ErrEmptyCatalog = errors.New("remote catalog is empty")

type Source interface {
	List(ctx context.Context) ([]domain.Destination, error)
}

// Catalog holds the best destination list available. It starts from a seed
// and is replaced wholesale by the first non-empty remote answer.
type Catalog struct {
	source Source

	mu           sync.RWMutex
	destinations []domain.Destination
	loading      bool
}

func New(source Source, seed []domain.Destination) *Catalog {
	return &Catalog{source: source, destinations: slices.Clone(seed)}
}

// Load makes one attempt to fetch the remote list. On error or an empty
// answer the current list stays untouched.
func (c *Catalog) Load(ctx context.Context) outcome.Result[[]domain.Destination] {
	res := c.Fetch(ctx)
	if res.OK() {
		c.Replace(res.Value)
	}
	return res
}

// Fetch asks the source without applying the answer. The loading flag is set
// while the call runs.
func (c *Catalog) Fetch(ctx context.Context) outcome.Result[[]domain.Destination] {
	if c.source == nil {
		return outcome.Fail[[]domain.Destination](errors.New("no catalog source"))
	}

	c.setLoading(true)
	defer c.setLoading(false)

	list, err := c.source.List(ctx)
	if err != nil {
		return outcome.Fail[[]domain.Destination](err)
	}
	if len(list) == 0 {
		return outcome.Fail[[]domain.Destination](ErrEmptyCatalog)
	}
	return outcome.Ok(slices.Clone(list))
}

func (c *Catalog) Replace(list []domain.Destination) {
	c.mu.Lock()
	c.destinations = slices.Clone(list)
	c.mu.Unlock()
}

func (c *Catalog) Destinations() []domain.Destination {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.destinations)
}

func (c *Catalog) Lookup(id string) (domain.Destination, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, d := range c.destinations {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Destination{}, false
}

func (c *Catalog) Has(id string) bool {
	_, ok := c.Lookup(id)
	return ok
}

func (c *Catalog) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

func (c *Catalog) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}
