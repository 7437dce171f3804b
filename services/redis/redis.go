package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/HenryKun55/multiwordle/models"
	redis_utils "github.com/HenryKun55/multiwordle/services/redis/utils"
	"github.com/HenryKun55/multiwordle/services/session"
	"github.com/redis/go-redis/v9"
)

var _ session.Store = (*RedisClient)(nil)

// RedisClient handles Redis operations
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
	ttl    time.Duration
}

// NewRedisClient creates a client from a redis:// URL or a bare host:port.
// ttl bounds how long session snapshots live.
func NewRedisClient(addr string, db int, ttl time.Duration) (*RedisClient, error) {
	var opt *redis.Options
	if addr == "localhost:6379" || addr == "127.0.0.1:6379" {
		opt = &redis.Options{Addr: addr, DB: db}
	} else {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("error parsing Redis URL: %w", err)
		}
		opt = parsed
	}
	return &RedisClient{
		client: redis.NewClient(opt),
		ctx:    context.Background(),
		ttl:    ttl,
	}, nil
}

// Save stores a disconnected player's snapshot.
// Key format: "session:{roomId}:{token}"
// TTL: reconnection grace window
func (rc *RedisClient) Save(ctx context.Context, snap models.SessionSnapshot) error {
	key := redis_utils.FormatSessionKey(snap.RoomID, snap.Token)
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("error marshaling session data: %w", err)
	}
	return rc.client.Set(rc.context(ctx), key, data, rc.ttl).Err()
}

// Get retrieves a snapshot. Redis expiry already enforces the grace window.
func (rc *RedisClient) Get(ctx context.Context, token, roomID string) (*models.SessionSnapshot, error) {
	key := redis_utils.FormatSessionKey(roomID, token)
	data, err := rc.client.Get(rc.context(ctx), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting session data: %w", err)
	}

	var snap models.SessionSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("error unmarshaling session data: %w", err)
	}
	return &snap, nil
}

func (rc *RedisClient) Delete(ctx context.Context, token, roomID string) error {
	key := redis_utils.FormatSessionKey(roomID, token)
	if err := rc.client.Del(rc.context(ctx), key).Err(); err != nil {
		return fmt.Errorf("error deleting session data: %w", err)
	}
	return nil
}

// Sweep is a no-op, keys expire on their own
func (rc *RedisClient) Sweep(_ context.Context) (int, error) {
	return 0, nil
}

// Count scans the session keyspace
func (rc *RedisClient) Count(ctx context.Context) (int, error) {
	keys, err := rc.sessionKeys(rc.context(ctx))
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

func (rc *RedisClient) sessionKeys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := rc.client.Scan(ctx, 0, redis_utils.SessionKeyPattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("error scanning session keys: %w", err)
	}
	return keys, nil
}

func (rc *RedisClient) context(ctx context.Context) context.Context {
	if ctx == nil {
		return rc.ctx
	}
	return ctx
}
