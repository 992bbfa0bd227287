package kiosk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Domenick1991/kiosk/internal/domain"
	"github.com/Domenick1991/kiosk/internal/service/catalog"
	"github.com/Domenick1991/kiosk/internal/service/flights"
	"github.com/Domenick1991/kiosk/internal/service/interaction"
	"github.com/Domenick1991/kiosk/internal/service/navigator"
	"github.com/Domenick1991/kiosk/internal/service/profile"
	"github.com/Domenick1991/kiosk/internal/service/route"
	"github.com/Domenick1991/kiosk/internal/service/session"
	"github.com/Domenick1991/kiosk/internal/storage"
)

var (
	ErrNotMounted         = errors.New("kiosk is not mounted")
	ErrNoDestination      = errors.New("no destination selected")
	ErrUnknownDestination = errors.New("unknown destination")
)

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is the transient toast shown for an explicit user action.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

func success(format string, args ...any) *Notice {
	return &Notice{Kind: NoticeSuccess, Message: fmt.Sprintf(format, args...)}
}

func failure(format string, args ...any) *Notice {
	return &Notice{Kind: NoticeError, Message: fmt.Sprintf(format, args...)}
}

type Snapshot struct {
	DeviceID       string              `json:"device_id"`
	SessionID      string              `json:"session_id"`
	State          navigator.State     `json:"state"`
	Destination    *domain.Destination `json:"destination,omitempty"`
	Route          []string            `json:"route"`
	Profile        *domain.UserProfile `json:"profile,omitempty"`
	CatalogSize    int                 `json:"catalog_size"`
	CatalogLoading bool                `json:"catalog_loading"`
}

type Response struct {
	Notice   *Notice         `json:"notice,omitempty"`
	Snapshot Snapshot        `json:"state"`
	Link     string          `json:"link,omitempty"`
	Flights  []domain.Flight `json:"flights,omitempty"`
}

type InitialView struct {
	View          domain.View `json:"initial_view"`
	DestinationID string      `json:"destination_id"`
}

// Deps are the collaborators shared by every kiosk.
type Deps struct {
	CatalogSource catalog.Source
	Seed          []domain.Destination
	ProfileSource profile.Source
	Sink          interaction.Sink
	Metrics       *interaction.Metrics
	Flights       flights.FlightUseCase
	RemoteTimeout time.Duration
	Logger        *slog.Logger
}

// Kiosk coordinates one device: its session, profile, catalog, route and
// current view. All state changes go through its methods, which serialize on
// mu. Background loads apply their results only while the kiosk is alive.
type Kiosk struct {
	deviceID      string
	remoteTimeout time.Duration
	logger        *slog.Logger

	sessions *session.Provider
	profiles *profile.Resolver
	catalog  *catalog.Catalog
	route    *route.Builder
	recorder *interaction.Recorder
	nav      *navigator.Navigator
	flights  flights.FlightUseCase

	mu        sync.Mutex
	alive     bool
	sessionID string
	profile   *domain.UserProfile

	background sync.WaitGroup
}

func New(deviceID string, store storage.Store, deps Deps) *Kiosk {
	logger := deps.Logger.With("device_id", deviceID)
	local := storage.NewLocal(store, logger)
	sessions := session.NewProvider(local)

	timeout := deps.RemoteTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	recorder := interaction.NewRecorder(deps.Sink, local, sessions, deviceID, logger,
		interaction.WithMetrics(deps.Metrics),
		interaction.WithTimeout(timeout),
	)

	k := &Kiosk{
		deviceID:      deviceID,
		remoteTimeout: timeout,
		logger:        logger,
		sessions:      sessions,
		profiles:      profile.NewResolver(deps.ProfileSource, local),
		catalog:       catalog.New(deps.CatalogSource, deps.Seed),
		route:         route.NewBuilder(local, recorder),
		recorder:      recorder,
		flights:       deps.Flights,
	}
	k.nav = navigator.New(k.onEnter)
	return k
}

// Mount starts the kiosk: it restores the session, mirrored profile and
// route, applies the initial view, then fetches the profile and catalog in the background.
// Mounting a live kiosk only returns its snapshot.
func (k *Kiosk) Mount(ctx context.Context, initial InitialView) (Response, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.alive {
		return Response{Snapshot: k.snapshot()}, nil
	}
	k.alive = true
	k.sessionID = k.sessions.GetOrCreate(ctx)
	k.profile = k.profiles.Cached(ctx)
	k.route.Restore(ctx)

	if _, err := k.nav.Start(ctx, initial.View, initial.DestinationID, k.guards()); err != nil {
		k.logger.Info("initial view ignored", "view", initial.View, "error", err)
	}

	k.loadInBackground(ctx)
	return Response{Snapshot: k.snapshot()}, nil
}

// Unmount marks the kiosk dead. In-flight loads finish but their results are
// dropped.
func (k *Kiosk) Unmount() {
	k.mu.Lock()
	k.alive = false
	k.mu.Unlock()
}

// Wait blocks until background loads and interaction sends are done.
func (k *Kiosk) Wait() {
	k.background.Wait()
	k.recorder.Wait()
}

func (k *Kiosk) loadInBackground(ctx context.Context) {
	detached := context.WithoutCancel(ctx)

	k.background.Add(2)
	go func() {
		defer k.background.Done()
		loadCtx, cancel := context.WithTimeout(detached, k.remoteTimeout)
		defer cancel()

		res := k.profiles.Resolve(loadCtx)

		k.mu.Lock()
		defer k.mu.Unlock()
		if !k.alive {
			return
		}
		if !res.OK() {
			k.logger.Debug("profile fetch failed, keeping mirrored profile", "error", res.Err)
		}
		k.profile = res.Or(k.profile)
	}()

	go func() {
		defer k.background.Done()
		loadCtx, cancel := context.WithTimeout(detached, k.remoteTimeout)
		defer cancel()

		res := k.catalog.Fetch(loadCtx)

		k.mu.Lock()
		defer k.mu.Unlock()
		if !k.alive {
			return
		}
		if !res.OK() {
			k.logger.Warn("using bundled destinations", "error", res.Err)
			return
		}
		k.catalog.Replace(res.Value)
	}()
}

func (k *Kiosk) Snapshot() Snapshot {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.snapshot()
}

func (k *Kiosk) Destinations() []domain.Destination {
	return k.catalog.Destinations()
}

func (k *Kiosk) SelectDestination(ctx context.Context, id string) (Response, error) {
	return k.dispatch(ctx, navigator.SelectDestination{ID: id})
}

func (k *Kiosk) Back(ctx context.Context) (Response, error) {
	return k.dispatch(ctx, navigator.Back{})
}

func (k *Kiosk) OpenFlights(ctx context.Context) (Response, error) {
	return k.dispatch(ctx, navigator.OpenFlights{})
}

func (k *Kiosk) OpenRoute(ctx context.Context) (Response, error) {
	return k.dispatch(ctx, navigator.OpenRoute{})
}

// Navigate dispatches an event by name: select, back, flights or route.
func (k *Kiosk) Navigate(ctx context.Context, action, destinationID string) (Response, error) {
	switch action {
	case "select":
		return k.SelectDestination(ctx, destinationID)
	case "back":
		return k.Back(ctx)
	case "flights":
		return k.OpenFlights(ctx)
	case "route":
		return k.OpenRoute(ctx)
	}
	return Response{}, fmt.Errorf("%w: unknown action %q", navigator.ErrTransitionRejected, action)
}

func (k *Kiosk) dispatch(ctx context.Context, e navigator.Event) (Response, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.alive {
		return Response{}, ErrNotMounted
	}
	if _, err := k.nav.Dispatch(ctx, e, k.guards()); err != nil {
		return Response{Snapshot: k.snapshot()}, err
	}
	return Response{Snapshot: k.snapshot()}, nil
}

// onEnter runs under mu after every accepted transition.
func (k *Kiosk) onEnter(ctx context.Context, s navigator.State) {
	if s.View != domain.ViewFlights {
		return
	}
	k.recorder.Record(ctx, interaction.Request{
		Type:    domain.InteractionOpenFlights,
		Profile: k.profile,
	})
}

// AddToRoute adds id, or the selected destination when id is empty.
func (k *Kiosk) AddToRoute(ctx context.Context, id string) (Response, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.alive {
		return Response{}, ErrNotMounted
	}
	if id == "" {
		id = k.nav.State().DestinationID
	}
	if id == "" {
		return Response{Snapshot: k.snapshot()}, ErrNoDestination
	}
	if !k.catalog.Has(id) {
		return Response{Snapshot: k.snapshot()}, fmt.Errorf("%w: %s", ErrUnknownDestination, id)
	}

	resp := Response{}
	if k.route.Add(ctx, id) {
		resp.Notice = success("Added to your route")
	}
	resp.Snapshot = k.snapshot()
	return resp, nil
}

func (k *Kiosk) RemoveFromRoute(ctx context.Context, id string) (Response, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.alive {
		return Response{}, ErrNotMounted
	}
	k.route.Remove(ctx, id)
	return Response{Snapshot: k.snapshot()}, nil
}

// SendEmail records the email request and reports success straight away.
// An empty address does nothing.
func (k *Kiosk) SendEmail(ctx context.Context, email string) (Response, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.alive {
		return Response{}, ErrNotMounted
	}
	if email == "" {
		return Response{Snapshot: k.snapshot()}, nil
	}

	state := k.nav.State()
	destinationID := state.DestinationID
	if state.View == domain.ViewRoute {
		destinationID = ""
	}
	k.recorder.Record(ctx, interaction.Request{
		Type:          domain.InteractionEmail,
		DestinationID: destinationID,
		Profile:       k.profile,
		UserData: map[string]any{
			"email": email,
			"route": k.route.IDs(),
		},
	})

	return Response{Notice: success("Route sent to %s", email), Snapshot: k.snapshot()}, nil
}

// GenerateQR builds the shareable route link for origin.
func (k *Kiosk) GenerateQR(ctx context.Context, origin string) (Response, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.alive {
		return Response{}, ErrNotMounted
	}

	link := k.route.ShareLink(origin)
	k.recorder.Record(ctx, interaction.Request{
		Type:     domain.InteractionQRGenerated,
		Profile:  k.profile,
		UserData: map[string]any{"route": k.route.IDs()},
	})

	return Response{Notice: success("QR code generated"), Snapshot: k.snapshot(), Link: link}, nil
}

func (k *Kiosk) SearchFlights(ctx context.Context, criteria flights.Criteria) (Response, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.alive {
		return Response{}, ErrNotMounted
	}
	results, err := k.flights.Search(ctx, criteria)
	if err != nil {
		return Response{Notice: failure("Flight search failed"), Snapshot: k.snapshot()}, nil
	}
	return Response{
		Notice:   success("Found %d flights", len(results)),
		Snapshot: k.snapshot(),
		Flights:  results,
	}, nil
}

// RequestBooking acknowledges a booking request for a listed flight.
func (k *Kiosk) RequestBooking(ctx context.Context, flightNumber string) (Response, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.alive {
		return Response{}, ErrNotMounted
	}
	if _, err := k.flights.FindByNumber(ctx, flightNumber); err != nil {
		return Response{Notice: failure("Flight %s is not available", flightNumber), Snapshot: k.snapshot()}, err
	}
	return Response{
		Notice:   success("Booking request for flight %s initiated", flightNumber),
		Snapshot: k.snapshot(),
	}, nil
}

func (k *Kiosk) guards() navigator.Guards {
	return navigator.Guards{
		HasDestination: k.catalog.Has,
		RouteLen:       k.route.Len(),
	}
}

func (k *Kiosk) snapshot() Snapshot {
	state := k.nav.State()
	s := Snapshot{
		DeviceID:       k.deviceID,
		SessionID:      k.sessionID,
		State:          state,
		Route:          k.route.IDs(),
		Profile:        k.profile,
		CatalogSize:    len(k.catalog.Destinations()),
		CatalogLoading: k.catalog.Loading(),
	}
	if state.View == domain.ViewDestination {
		if d, ok := k.catalog.Lookup(state.DestinationID); ok {
			s.Destination = &d
		}
	}
	return s
}
