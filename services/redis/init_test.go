package redis_test

import (
	"testing"
	"time"

	"github.com/HenryKun55/multiwordle/services/redis"
	"github.com/stretchr/testify/assert"
)

func TestInitRedis(t *testing.T) {
	tests := []struct {
		name string
		addr string
	}{
		{"malformed url", "://not-a-url"},
		{"unreachable server", "redis://127.0.0.1:1/0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc, err := redis.InitRedis(tt.addr, 0, time.Minute)
			assert.Error(t, err)
			assert.Nil(t, rc)
		})
	}
}

func TestNewRedisClientParsesURL(t *testing.T) {
	rc, err := redis.NewRedisClient("redis://127.0.0.1:6379/0", 0, time.Minute)
	assert.NoError(t, err)
	assert.NotNil(t, rc)
	assert.NoError(t, redis.CloseRedis(rc))
}
