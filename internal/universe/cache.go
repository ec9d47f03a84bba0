package universe

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"starmap-server/internal/shared/errors"
	"starmap-server/internal/shared/redis"
)

// Cache keeps compressed saves close to the handlers. A miss is reported as
// (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, id uuid.UUID) ([]byte, bool, error)
	Set(ctx context.Context, id uuid.UUID, save []byte) error
	Delete(ctx context.Context, id uuid.UUID) error
}

const saveKeyPrefix = "starmap:save:"

func saveKey(id uuid.UUID) string {
	return saveKeyPrefix + id.String()
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "save_cache"),
	}
}

func (c *RedisCache) Get(ctx context.Context, id uuid.UUID) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, saveKey(id)).Bytes()
	if err != nil {
		if stderrors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, errors.WrapExternal("failed to read cached save", err)
	}

	c.logger.Debug("Save cache hit", "world_id", id)
	return data, true, nil
}

func (c *RedisCache) Set(ctx context.Context, id uuid.UUID, save []byte) error {
	if err := c.client.Set(ctx, saveKey(id), save, c.ttl).Err(); err != nil {
		return errors.WrapExternal("failed to cache save", err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, saveKey(id)).Err(); err != nil {
		return errors.WrapExternal("failed to evict cached save", err)
	}
	return nil
}

// noopCache is used when redis is disabled
type noopCache struct{}

func (noopCache) Get(context.Context, uuid.UUID) ([]byte, bool, error) { return nil, false, nil }
func (noopCache) Set(context.Context, uuid.UUID, []byte) error         { return nil }
func (noopCache) Delete(context.Context, uuid.UUID) error              { return nil }
