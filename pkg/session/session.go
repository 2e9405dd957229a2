package session

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidTransition = errors.New("invalid session transition")

type Stage string

const (
	Idle               Stage = "Idle"
	SearchSubmitted    Stage = "SearchSubmitted"
	Found              Stage = "Found"
	NotFound           Stage = "NotFound"
	RouteViewRequested Stage = "RouteViewRequested"
	RouteFound         Stage = "RouteFound"
	RouteNotFound      Stage = "RouteNotFound"
)

type EventType string

const (
	Submit       EventType = "Submit"
	Matched      EventType = "Matched"
	NoMatch      EventType = "NoMatch"
	ViewRoute    EventType = "ViewRoute"
	RouteLoaded  EventType = "RouteLoaded"
	RouteMissing EventType = "RouteMissing"
	Reset        EventType = "Reset"
)

type Event struct {
	Type    EventType
	Code    string
	RouteID string
}

// State is one visitor's position in the lookup flow. It is a plain value
// carried through the request rather than held anywhere globally.
type State struct {
	Stage   Stage
	Code    string
	RouteID string
}

func New() State {
	return State{Stage: Idle}
}

// Resume rebuilds the state of a visitor who already has results for code,
// which is how links from the results page carry the session along
func Resume(code string) State {
	return State{Stage: Found, Code: code}
}

// Direct is the state of a visitor who opened a route without searching
// first. It sits at Found so ViewRoute is accepted, with no code to go back to.
func Direct() State {
	return Resume("")
}

var transitions = map[Stage]map[EventType]Stage{
	Idle: {
		Submit: SearchSubmitted,
	},
	SearchSubmitted: {
		Matched: Found,
		NoMatch: NotFound,
	},
	Found: {
		ViewRoute: RouteViewRequested,
		Submit:    SearchSubmitted,
	},
	NotFound: {
		Reset:  Idle,
		Submit: SearchSubmitted,
	},
	RouteViewRequested: {
		RouteLoaded:  RouteFound,
		RouteMissing: RouteNotFound,
	},
}

// Next applies event to state. Anything not in the transition table is
// rejected with ErrInvalidTransition and the state is returned unchanged.
func Next(state State, event Event) (State, error) {
	target, ok := transitions[state.Stage][event.Type]
	if !ok {
		return state, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, event.Type, state.Stage)
	}

	next := state
	next.Stage = target

	switch event.Type {
	case Submit:
		next.Code = strings.TrimSpace(event.Code)
		next.RouteID = ""
	case ViewRoute:
		routeID := strings.TrimSpace(event.RouteID)
		if routeID == "" {
			return state, fmt.Errorf("%w: no route selected", ErrInvalidTransition)
		}
		next.RouteID = routeID
	case Reset:
		next = New()
	}

	return next, nil
}

// Apply runs a sequence of events from state, stopping at the first rejected one
func Apply(state State, events ...Event) (State, error) {
	var err error

	for _, event := range events {
		state, err = Next(state, event)
		if err != nil {
			return state, err
		}
	}

	return state, nil
}

func (s State) ShowsResults() bool {
	return s.Stage == Found || s.Stage == NotFound
}

func (s State) ShowsRoute() bool {
	return s.Stage == RouteFound || s.Stage == RouteNotFound
}
