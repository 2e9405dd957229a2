package geometry

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const DefaultCacheExpiration = 24 * time.Hour

// PathCache keeps road geometry in Redis keyed by the waypoints it was
// requested for, so an edited timetable never reuses a stale line
type PathCache struct {
	Cache *cache.Cache[string]
}

func NewPathCache(client *redis.Client, expiration time.Duration) *PathCache {
	if expiration <= 0 {
		expiration = DefaultCacheExpiration
	}

	redisStore := redisstore.NewRedis(client, store.WithExpiration(expiration))

	return &PathCache{
		Cache: cache.New[string](redisStore),
	}
}

func cacheKey(waypoints []Point) string {
	hash := sha1.New()
	for _, point := range waypoints {
		fmt.Fprintf(hash, "%.6f,%.6f;", point.Latitude, point.Longitude)
	}

	return "eventcoach:geometry:" + hex.EncodeToString(hash.Sum(nil))
}

func (c *PathCache) Get(ctx context.Context, waypoints []Point) ([]Point, bool) {
	value, err := c.Cache.Get(ctx, cacheKey(waypoints))
	if err != nil {
		return nil, false
	}

	var points []Point
	if err := json.Unmarshal([]byte(value), &points); err != nil {
		log.Error().Err(err).Msg("Failed to decode cached geometry")
		return nil, false
	}

	return points, true
}

func (c *PathCache) Set(ctx context.Context, waypoints []Point, points []Point) {
	pointsJSON, _ := json.Marshal(points)

	if err := c.Cache.Set(ctx, cacheKey(waypoints), string(pointsJSON)); err != nil {
		log.Error().Err(err).Msg("Failed to store geometry in cache")
	}
}
