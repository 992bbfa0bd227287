// Package navigator is the kiosk's view state machine.
//
//	home ──SelectDestination──▶ destination
//	home ──OpenFlights────────▶ flights
//	home ──OpenRoute──────────▶ route        (route must be non-empty)
//	destination|flights|route ──Back──▶ home
//
// Transition is pure; Navigator adds the current state and enter hooks.
package navigator

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/kiosk/internal/domain"
)

var ErrTransitionRejected = errors.New("transition rejected")

type State struct {
	View          domain.View `json:"view"`
	DestinationID string      `json:"destination_id,omitempty"`
}

func Home() State {
	return State{View: domain.ViewHome}
}

// Event is one of SelectDestination, Back, OpenFlights or OpenRoute.
type Event interface {
	event()
}

type SelectDestination struct {
	ID string
}

type Back struct{}

type OpenFlights struct{}

type OpenRoute struct{}

func (SelectDestination) event() {}
func (Back) event()              {}
func (OpenFlights) event()       {}
func (OpenRoute) event()         {}

// Guards answer the questions a transition depends on.
type Guards struct {
	HasDestination func(id string) bool
	RouteLen       int
}

func Transition(s State, e Event, g Guards) (State, error) {
	switch e := e.(type) {
	case SelectDestination:
		if s.View != domain.ViewHome {
			return s, rejected(s, e)
		}
		if e.ID == "" || g.HasDestination == nil || !g.HasDestination(e.ID) {
			return s, fmt.Errorf("%w: unknown destination %q", ErrTransitionRejected, e.ID)
		}
		return State{View: domain.ViewDestination, DestinationID: e.ID}, nil
	case Back:
		if s.View == domain.ViewHome {
			return s, rejected(s, e)
		}
		return Home(), nil
	case OpenFlights:
		if s.View != domain.ViewHome {
			return s, rejected(s, e)
		}
		return State{View: domain.ViewFlights}, nil
	case OpenRoute:
		if s.View != domain.ViewHome {
			return s, rejected(s, e)
		}
		if g.RouteLen == 0 {
			return s, fmt.Errorf("%w: route is empty", ErrTransitionRejected)
		}
		return State{View: domain.ViewRoute}, nil
	default:
		return s, fmt.Errorf("%w: unknown event %T", ErrTransitionRejected, e)
	}
}

func rejected(s State, e Event) error {
	return fmt.Errorf("%w: %T from %s", ErrTransitionRejected, e, s.View)
}

// EventFor maps an externally requested view onto the event that enters it
// from home.
func EventFor(view domain.View, destinationID string) (Event, bool) {
	switch view {
	case domain.ViewDestination:
		return SelectDestination{ID: destinationID}, true
	case domain.ViewFlights:
		return OpenFlights{}, true
	case domain.ViewRoute:
		return OpenRoute{}, true
	}
	return nil, false
}

// Navigator holds the current state. It is not safe for concurrent use; the
// kiosk serializes access.
type Navigator struct {
	state   State
	started bool
	onEnter func(context.Context, State)
}

// New returns a navigator in the home state. onEnter, if set, runs after
// every accepted transition with the new state.
func New(onEnter func(context.Context, State)) *Navigator {
	return &Navigator{state: Home(), onEnter: onEnter}
}

func (n *Navigator) State() State {
	return n.state
}

func (n *Navigator) Dispatch(ctx context.Context, e Event, g Guards) (State, error) {
	next, err := Transition(n.state, e, g)
	if err != nil {
		return n.state, err
	}
	n.state = next
	if n.onEnter != nil {
		n.onEnter(ctx, next)
	}
	return next, nil
}

// Start applies an initial view once. Later calls, home and unknown views are
// ignored; a view whose guard fails leaves the navigator at home.
func (n *Navigator) Start(ctx context.Context, view domain.View, destinationID string, g Guards) (State, error) {
	if n.started {
		return n.state, nil
	}
	n.started = true

	e, ok := EventFor(view, destinationID)
	if !ok {
		return n.state, nil
	}
	return n.Dispatch(ctx, e, g)
}
