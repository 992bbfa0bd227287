package interaction

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Domenick1991/kiosk/internal/domain"
	"github.com/Domenick1991/kiosk/internal/outcome"
	"github.com/Domenick1991/kiosk/internal/service/session"
	"github.com/Domenick1991/kiosk/internal/storage"
	"github.com/google/uuid"
)

type Sink interface {
	Publish(ctx context.Context, event domain.InteractionEvent) error
}

// Request describes a user action. Profile, when known, wins over the
// mirrored values in the device store.
type Request struct {
	Type          domain.InteractionType
	DestinationID string
	Profile       *domain.UserProfile
	UserData      any
}

type Recorder struct {
	sink     Sink
	store    *storage.Local
	sessions *session.Provider
	deviceID string
	timeout  time.Duration
	metrics  *Metrics
	logger   *slog.Logger
	now      func() time.Time

	inflight sync.WaitGroup
}

type Option func(*Recorder)

func WithMetrics(m *Metrics) Option {
	return func(r *Recorder) {
		r.metrics = m
	}
}

func WithTimeout(d time.Duration) Option {
	return func(r *Recorder) {
		r.timeout = d
	}
}

func NewRecorder(sink Sink, store *storage.Local, sessions *session.Provider, deviceID string, logger *slog.Logger, opts ...Option) *Recorder {
	r := &Recorder{
		sink:     sink,
		store:    store,
		sessions: sessions,
		deviceID: deviceID,
		timeout:  5 * time.Second,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record sends the event in the background. The caller's cancellation does
// not reach the send and its outcome is only logged.
func (r *Recorder) Record(ctx context.Context, req Request) {
	detached := context.WithoutCancel(ctx)
	r.inflight.Add(1)
	go func() {
		defer r.inflight.Done()
		sendCtx, cancel := context.WithTimeout(detached, r.timeout)
		defer cancel()
		if res := r.Send(sendCtx, req); !res.OK() {
			r.logger.Debug("interaction not recorded", "type", req.Type, "error", res.Err)
		}
	}()
}

// Wait blocks until every background send has finished.
func (r *Recorder) Wait() {
	r.inflight.Wait()
}

// Send builds and publishes one event. If the full event cannot be built the
// reduced event is sent instead.
func (r *Recorder) Send(ctx context.Context, req Request) outcome.Result[domain.InteractionEvent] {
	event, err := r.Build(ctx, req)
	if err != nil {
		r.logger.Warn("sending reduced interaction", "type", req.Type, "error", err)
		event = r.reduced(ctx, req)
		r.metrics.degraded(req.Type)
	}

	if r.sink == nil {
		r.metrics.failed(event.Type)
		return outcome.Fail[domain.InteractionEvent](fmt.Errorf("no interaction sink"))
	}
	if err := r.sink.Publish(ctx, event); err != nil {
		r.metrics.failed(event.Type)
		return outcome.Fail[domain.InteractionEvent](fmt.Errorf("publish %s: %w", event.Type, err))
	}
	r.metrics.sent(event.Type)
	return outcome.Ok(event)
}

// Build assembles the full event.
func (r *Recorder) Build(ctx context.Context, req Request) (event domain.InteractionEvent, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("build interaction: %v", p)
		}
	}()

	event = r.reduced(ctx, req)
	event.Degraded = false
	event.DestinationID = req.DestinationID

	event.UserID, _ = r.store.Get(ctx, storage.KeyUserID)
	event.UserName, _ = r.store.Get(ctx, storage.KeyUserName)
	event.UserEmail, _ = r.store.Get(ctx, storage.KeyUserEmail)
	if p := req.Profile; p != nil {
		if p.ID != "" {
			event.UserID = p.ID
		}
		if p.Name != "" {
			event.UserName = p.Name
		}
		if p.Email != "" {
			event.UserEmail = p.Email
		}
	}

	if req.UserData != nil {
		data, err := json.Marshal(req.UserData)
		if err != nil {
			return domain.InteractionEvent{}, fmt.Errorf("encode user data: %w", err)
		}
		event.UserData = data
	}
	return event, nil
}

func (r *Recorder) reduced(ctx context.Context, req Request) domain.InteractionEvent {
	return domain.InteractionEvent{
		ID:        uuid.NewString(),
		Type:      req.Type,
		Timestamp: r.now().UTC(),
		SessionID: r.sessions.GetOrCreate(ctx),
		DeviceID:  r.deviceID,
		Degraded:  true,
	}
}
