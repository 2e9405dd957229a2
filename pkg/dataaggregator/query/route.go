package query

import (
	"context"

	"github.com/travigo/eventcoach/pkg/routetable"
)

type Route struct {
	Identifier string
}

// RoutePath asks for the line to draw through a route's stops
type RoutePath struct {
	Route   *routetable.Route
	Context context.Context
}
