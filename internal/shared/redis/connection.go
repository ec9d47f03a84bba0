package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"starmap-server/internal/shared/config"

	"github.com/redis/go-redis/v9"
)

// Client backs the save cache. A nil *Client means caching is off.
type Client struct {
	*redis.Client
}

// Connect dials redis and checks it answers before handing back the client.
// A disabled config returns (nil, nil).
func Connect(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	logger := slog.With("component", "redis", "operation", "connect")

	if !cfg.Enabled {
		logger.Info("Redis disabled, save cache off")
		return nil, nil
	}

	opts, err := options(cfg)
	if err != nil {
		logger.Error("Invalid Redis configuration", "error", err)
		return nil, err
	}
	logger.Debug("Connecting to Redis", "addr", opts.Addr, "db", opts.DB)

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		logger.Error("Failed to ping Redis", "addr", opts.Addr, "error", err)
		return nil, fmt.Errorf("failed to ping Redis at %s: %w", opts.Addr, err)
	}

	logger.Info("Redis save cache connected", "addr", opts.Addr)
	return &Client{rdb}, nil
}

// options prefers REDIS_URL and falls back to host, port and db. Saves are
// small and infrequent, so the pool stays small.
func options(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
		}
		return opts, nil
	}

	return &redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     4,
		MinIdleConns: 1,
	}, nil
}

func (c *Client) Close() error {
	if c == nil || c.Client == nil {
		return nil
	}
	return c.Client.Close()
}

// PingContext lets the health check probe redis like the database pool
func (c *Client) PingContext(ctx context.Context) error {
	return c.Ping(ctx).Err()
}
