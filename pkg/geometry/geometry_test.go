package geometry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/eventcoach/pkg/routetable"
)

type fakeRouter struct {
	points []Point
	err    error
	delay  time.Duration
	calls  int
}

func (f *fakeRouter) Route(ctx context.Context, waypoints []Point) ([]Point, error) {
	f.calls++

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return f.points, f.err
}

func float(value float64) *float64 {
	return &value
}

func testRoute() *routetable.Route {
	return &routetable.Route{
		ID: "1",
		Stops: []*routetable.Stop{
			{Name: "Banbury", Latitude: float(52.06), Longitude: float(-1.34)},
			{Name: "Layby", Latitude: float(52.05)},
			{Name: "Silverstone", Latitude: float(52.08), Longitude: float(-1.02)},
		},
		HasCoordinateColumns: true,
	}
}

var roadPoints = []Point{{52.06, -1.34}, {52.07, -1.20}, {52.08, -1.02}}

func TestStraightLine(t *testing.T) {
	points := StraightLine(testRoute().Stops)

	assert.Equal(t, []Point{{52.06, -1.34}, {52.08, -1.02}}, points)
}

func TestPathWithoutRouter(t *testing.T) {
	var builder *Builder

	path := builder.Path(context.Background(), testRoute())

	assert.Equal(t, SourceStraight, path.Source)
	assert.True(t, path.Drawable())
}

func TestPathSinglePointNotDrawable(t *testing.T) {
	router := &fakeRouter{points: roadPoints}
	builder := &Builder{Router: router}

	route := testRoute()
	route.Stops = route.Stops[:1]

	path := builder.Path(context.Background(), route)

	assert.False(t, path.Drawable())
	assert.Equal(t, 0, router.calls)
}

func TestPathUsesRoadGeometry(t *testing.T) {
	builder := &Builder{Router: &fakeRouter{points: roadPoints}}

	path := builder.Path(context.Background(), testRoute())

	assert.Equal(t, SourceRoad, path.Source)
	assert.Equal(t, roadPoints, path.Points)
}

func TestPathFallsBackOnError(t *testing.T) {
	builder := &Builder{Router: &fakeRouter{err: errors.New("connection refused")}}

	path := builder.Path(context.Background(), testRoute())

	assert.Equal(t, SourceStraight, path.Source)
	assert.Len(t, path.Points, 2)
}

func TestPathFallsBackOnTimeout(t *testing.T) {
	router := &fakeRouter{points: roadPoints, delay: time.Second}
	builder := &Builder{Router: router, Timeout: 20 * time.Millisecond}

	start := time.Now()
	path := builder.Path(context.Background(), testRoute())

	assert.Equal(t, SourceStraight, path.Source)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, 1, router.calls)
}

func TestPathCache(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	router := &fakeRouter{points: roadPoints}
	builder := &Builder{
		Router: router,
		Cache:  NewPathCache(client, time.Hour),
	}

	first := builder.Path(context.Background(), testRoute())
	second := builder.Path(context.Background(), testRoute())

	assert.Equal(t, SourceRoad, second.Source)
	assert.Equal(t, first.Points, second.Points)
	assert.Equal(t, 1, router.calls)

	keys := server.Keys()
	require.Len(t, keys, 1)
	assert.Contains(t, keys[0], "eventcoach:geometry:")
}

func TestPathCacheUnreachable(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	server.Close()

	router := &fakeRouter{points: roadPoints, delay: time.Second}
	builder := &Builder{
		Router:  router,
		Cache:   NewPathCache(client, time.Hour),
		Timeout: 50 * time.Millisecond,
	}

	start := time.Now()
	path := builder.Path(context.Background(), testRoute())

	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, SourceStraight, path.Source)
	assert.True(t, path.Drawable())
}
