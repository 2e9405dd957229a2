package geometry

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/eventcoach/pkg/routetable"
)

const DefaultTimeout = 2 * time.Second

type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Source string

const (
	SourceStraight Source = "straight"
	SourceRoad     Source = "road"
)

// Path is the line drawn between a route's stops
type Path struct {
	Points []Point `json:"points"`
	Source Source  `json:"source"`
}

// Drawable is true when there are enough points to draw a line at all
func (p *Path) Drawable() bool {
	return p != nil && len(p.Points) > 1
}

// Router follows the road network between consecutive waypoints
type Router interface {
	Route(ctx context.Context, waypoints []Point) ([]Point, error)
}

// StraightLine joins every stop that has coordinates, in running order
func StraightLine(stops []*routetable.Stop) []Point {
	points := []Point{}

	for _, stop := range stops {
		if !stop.HasLocation() {
			continue
		}

		points = append(points, Point{
			Latitude:  *stop.Latitude,
			Longitude: *stop.Longitude,
		})
	}

	return points
}

// Builder produces the path for a route. Road geometry from the Router is
// used when available, otherwise the straight line between stops.
type Builder struct {
	Router  Router
	Cache   *PathCache
	Timeout time.Duration
}

func (b *Builder) Path(ctx context.Context, route *routetable.Route) *Path {
	waypoints := StraightLine(route.Stops)
	straight := &Path{Points: waypoints, Source: SourceStraight}

	if b == nil || b.Router == nil || len(waypoints) < 2 {
		return straight
	}

	timeout := b.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	// One deadline bounds the cache round trips and the router call together
	routeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if b.Cache != nil {
		if points, ok := b.Cache.Get(routeCtx, waypoints); ok {
			return &Path{Points: points, Source: SourceRoad}
		}
	}

	points, err := b.Router.Route(routeCtx, waypoints)
	if err != nil || len(points) < 2 {
		log.Warn().Err(err).Str("route", route.ID).Msg("Road geometry unavailable, using straight line")

		return straight
	}

	if b.Cache != nil {
		b.Cache.Set(routeCtx, waypoints, points)
	}

	return &Path{Points: points, Source: SourceRoad}
}
