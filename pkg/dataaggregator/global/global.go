package global

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/travigo/eventcoach/pkg/booking"
	"github.com/travigo/eventcoach/pkg/config"
	"github.com/travigo/eventcoach/pkg/dataaggregator"
	"github.com/travigo/eventcoach/pkg/dataaggregator/source/bookinglookup"
	"github.com/travigo/eventcoach/pkg/dataaggregator/source/routegeometry"
	"github.com/travigo/eventcoach/pkg/dataaggregator/source/routelookup"
	"github.com/travigo/eventcoach/pkg/geometry"
	"github.com/travigo/eventcoach/pkg/osrm"
	"github.com/travigo/eventcoach/pkg/redis_client"
	"github.com/travigo/eventcoach/pkg/routetable"
)

func Setup(ctx context.Context, cfg *config.Config) {
	dataaggregator.GlobalAggregator = New(ctx, cfg)
}

// New builds an aggregator with every source configured from cfg.
// Road geometry and its cache are optional and left out when not configured
// or when Redis cannot be reached.
func New(ctx context.Context, cfg *config.Config) dataaggregator.Aggregator {
	aggregator := dataaggregator.Aggregator{}

	aggregator.RegisterSource(bookinglookup.Source{
		Store: booking.NewStore(cfg.Data.BookingsPath),
	})

	aggregator.RegisterSource(routelookup.Source{
		Store: routetable.NewStore(routetable.Files{
			Dir:    cfg.Data.RoutesDir,
			Prefix: cfg.Data.RouteFilePrefix,
			Suffix: cfg.Data.RouteFileSuffix,
		}),
	})

	builder := &geometry.Builder{
		Timeout: cfg.OSRM.Timeout,
	}

	if cfg.OSRM.URL != "" {
		builder.Router = osrm.NewClient(cfg.OSRM.URL, cfg.OSRM.Profile, cfg.OSRM.Timeout)

		if cfg.Redis.Address != "" {
			if err := redis_client.Connect(ctx, cfg.Redis); err != nil {
				log.Warn().Err(err).Msg("Failed to connect to Redis, road geometry will not be cached")
			} else {
				builder.Cache = geometry.NewPathCache(redis_client.Client, cfg.GeometryCache.Expiration)
			}
		}
	}

	aggregator.RegisterSource(routegeometry.Source{
		Builder: builder,
	})

	return aggregator
}
