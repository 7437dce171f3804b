package redis

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// InitRedis connects and verifies the server answers. Existing keys are kept
// so snapshots survive a quick restart of another instance.
func InitRedis(addr string, db int, ttl time.Duration) (*RedisClient, error) {
	rc, err := NewRedisClient(addr, db, ttl)
	if err != nil {
		return nil, err
	}

	if err := rc.client.Ping(rc.ctx).Err(); err != nil {
		rc.client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info().Msg("Successfully connected to Redis")
	return rc, nil
}

// CloseRedis gracefully closes the Redis connection
func CloseRedis(rc *RedisClient) error {
	if err := rc.client.Close(); err != nil {
		return fmt.Errorf("error closing Redis connection: %w", err)
	}
	return nil
}
