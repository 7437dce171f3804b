package config

import (
	"github.com/HenryKun55/multiwordle/services/redis"
	"github.com/rs/zerolog/log"
)

// ConnectRedis connects to REDIS_URL. Callers only use it when the URL is set.
func ConnectRedis(cfg *Config) (*redis.RedisClient, error) {
	redisClient, err := redis.InitRedis(cfg.RedisURL, 0, cfg.ReconnectGrace)
	if err != nil {
		log.Error().Err(err).Msg("Error connecting to Redis")
		return nil, err
	}
	log.Info().Msg("Redis connection established")
	return redisClient, nil
}
