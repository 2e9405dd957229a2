package routes

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/travigo/eventcoach/pkg/booking"
	"github.com/travigo/eventcoach/pkg/dataaggregator"
	"github.com/travigo/eventcoach/pkg/dataaggregator/query"
	"github.com/travigo/eventcoach/pkg/geometry"
	"github.com/travigo/eventcoach/pkg/routetable"
	"github.com/travigo/eventcoach/pkg/session"
)

// searchBookings walks a visitor's search through the session states.
// A non-nil error means the bookings could not be read at all.
func searchBookings(code string) (session.State, []*booking.Record, error) {
	state, _ := session.Next(session.New(), session.Event{Type: session.Submit, Code: code})

	records, err := dataaggregator.Lookup[[]*booking.Record](query.Booking{Code: code})
	if err != nil {
		return state, nil, err
	}

	if len(records) == 0 {
		state, _ = session.Next(state, session.Event{Type: session.NoMatch})
	} else {
		state, _ = session.Next(state, session.Event{Type: session.Matched})
	}

	return state, records, nil
}

// bookingsAvailable reports whether the bookings table can currently be read
func bookingsAvailable() (int, error) {
	records, err := dataaggregator.Lookup[[]*booking.Record](query.BookingDataset{})
	if err != nil {
		return 0, err
	}

	return len(records), nil
}

// viewRoute moves a visitor with the given state onto a route. An empty
// route id is rejected with session.ErrInvalidTransition.
func viewRoute(ctx context.Context, state session.State, routeID string) (session.State, *routetable.Route, *geometry.Path, error) {
	state, err := session.Next(state, session.Event{Type: session.ViewRoute, RouteID: routeID})
	if err != nil {
		return state, nil, nil, err
	}

	route, err := dataaggregator.Lookup[*routetable.Route](query.Route{Identifier: state.RouteID})
	if err != nil {
		if !errors.Is(err, routetable.ErrRouteNotFound) {
			log.Error().Err(err).Str("route", state.RouteID).Msg("Failed to load route timetable")
		}

		state, _ = session.Next(state, session.Event{Type: session.RouteMissing})
		return state, nil, nil, nil
	}

	state, _ = session.Next(state, session.Event{Type: session.RouteLoaded})

	path, err := dataaggregator.Lookup[*geometry.Path](query.RoutePath{Route: route, Context: ctx})
	if err != nil {
		log.Error().Err(err).Str("route", state.RouteID).Msg("Failed to build route path")
		path = &geometry.Path{Points: geometry.StraightLine(route.Stops), Source: geometry.SourceStraight}
	}

	return state, route, path, nil
}

func logUnavailable(err error) {
	if errors.Is(err, booking.ErrMalformedSource) {
		log.Error().Err(err).Msg("Bookings file is malformed")
	} else {
		log.Error().Err(err).Msg("Bookings file is unavailable")
	}
}
