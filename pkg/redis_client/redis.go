package redis_client

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/travigo/eventcoach/pkg/config"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"

// Connect opens the shared client and checks the server is reachable
func Connect(ctx context.Context, cfg config.Redis) error {
	address := cfg.Address
	if address == "" {
		address = defaultConnectionAddress
	}

	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: cfg.Password,
		DB:       cfg.Database,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return err
	}

	Client = client

	return nil
}
