package route

import (
	"context"
	"encoding/json"
	"net/url"
	"slices"
	"strings"

	"github.com/Domenick1991/kiosk/internal/domain"
	"github.com/Domenick1991/kiosk/internal/service/interaction"
	"github.com/Domenick1991/kiosk/internal/storage"
)

type Recorder interface {
	Record(ctx context.Context, req interaction.Request)
}

// Builder keeps the ordered, duplicate-free list of destinations the visitor
// picked. Every mutation overwrites the persisted copy. Not safe for
// concurrent use.
type Builder struct {
	ids      []string
	store    *storage.Local
	recorder Recorder
}

func NewBuilder(store *storage.Local, recorder Recorder) *Builder {
	return &Builder{ids: []string{}, store: store, recorder: recorder}
}

// Restore loads the persisted route. Missing or malformed data yields an
// empty route.
func (b *Builder) Restore(ctx context.Context) []string {
	b.ids = []string{}
	raw, ok := b.store.Get(ctx, storage.KeyRoute)
	if !ok || raw == "" {
		return b.IDs()
	}

	var stored []string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return b.IDs()
	}
	for _, id := range stored {
		if id != "" && !slices.Contains(b.ids, id) {
			b.ids = append(b.ids, id)
		}
	}
	return b.IDs()
}

// Add appends id unless it is empty or already present, and reports whether
// the route changed.
func (b *Builder) Add(ctx context.Context, id string) bool {
	if id == "" || slices.Contains(b.ids, id) {
		return false
	}
	b.ids = append(b.ids, id)
	b.persist(ctx)

	if b.recorder != nil {
		b.recorder.Record(ctx, interaction.Request{
			Type:          domain.InteractionAddToRoute,
			DestinationID: id,
		})
	}
	return true
}

// Remove drops every occurrence of id and persists the result.
func (b *Builder) Remove(ctx context.Context, id string) bool {
	before := len(b.ids)
	b.ids = slices.DeleteFunc(b.ids, func(v string) bool { return v == id })
	b.persist(ctx)
	return len(b.ids) != before
}

func (b *Builder) IDs() []string {
	return slices.Clone(b.ids)
}

func (b *Builder) Len() int {
	return len(b.ids)
}

func (b *Builder) Contains(id string) bool {
	return slices.Contains(b.ids, id)
}

// ShareLink returns <origin>/route?ids=<id>,<id>,...
func (b *Builder) ShareLink(origin string) string {
	return ShareLink(origin, b.ids)
}

func ShareLink(origin string, ids []string) string {
	escaped := make([]string, len(ids))
	for i, id := range ids {
		escaped[i] = url.QueryEscape(id)
	}
	return strings.TrimRight(origin, "/") + "/route?ids=" + strings.Join(escaped, ",")
}

func (b *Builder) persist(ctx context.Context) {
	data, err := json.Marshal(b.ids)
	if err != nil {
		return
	}
	b.store.Set(ctx, storage.KeyRoute, string(data))
}
