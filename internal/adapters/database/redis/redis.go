package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Badsnus/golf-stats/internal/adapters/database/redis/stats"
)

type Client struct {
	Stats *stats.Storage

	redis *redis.Client
}

type Options struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func New(opts Options) (*Client, error) {
	statsStorage := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := statsStorage.Ping(context.Background()).Err(); err != nil {
		_ = statsStorage.Close()
		return nil, fmt.Errorf("failed to ping stats storage: %w", err)
	}

	return &Client{
		Stats: stats.NewStorage(statsStorage, opts.TTL),
		redis: statsStorage,
	}, nil
}

// Flush drops everything the client has cached.
func (c *Client) Flush(ctx context.Context) error {
	return c.Stats.Flush(ctx)
}

func (c *Client) Close() error {
	return c.redis.Close()
}
