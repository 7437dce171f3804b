package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	game_constants "github.com/HenryKun55/multiwordle/constants/game"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const devOrigin = "http://localhost:3000"

// Config is the process configuration, read once at startup
type Config struct {
	Port       string
	Env        string
	Production bool
	CorsOrigin string
	LogLevel   string

	MaxGlobalConnections int64
	MaxPlayersPerRoom    int
	RateLimitWindow      time.Duration
	RateLimitMax         int
	RoomIdleTimeout      time.Duration
	EmptyRoomGrace       time.Duration
	ReconnectGrace       time.Duration
	SweepInterval        time.Duration
	EventQueueSize       int

	PingInterval      time.Duration
	PingTimeout       time.Duration
	MaxHTTPBufferSize int64

	HTTPRateLimitRPS   int
	HTTPRateLimitBurst int

	RedisURL string
	WordsDir string
}

// Load reads .env when present, then the environment
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not read .env")
	}
	return FromEnv()
}

func FromEnv() *Config {
	env := getEnv("NODE_ENV", getEnv("APP_ENV", "development"))
	production := strings.EqualFold(env, "production")

	origin := getEnv("CORS_ORIGIN", os.Getenv("NEXT_PUBLIC_APP_URL"))
	if !production || origin == "" {
		if production {
			log.Warn().Msg("no CORS origin configured for production, falling back to " + devOrigin)
		}
		origin = devOrigin
	}

	return &Config{
		Port:       getEnv("PORT", "3000"),
		Env:        env,
		Production: production,
		CorsOrigin: origin,
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		MaxGlobalConnections: int64(getEnvInt("MAX_GLOBAL_CONNECTIONS", game_constants.DefaultMaxGlobalConnections)),
		MaxPlayersPerRoom:    getEnvInt("MAX_PLAYERS_PER_ROOM", game_constants.DefaultMaxPlayersPerRoom),
		RateLimitWindow:      getEnvDuration("RATE_LIMIT_WINDOW", game_constants.DefaultRateLimitWindow),
		RateLimitMax:         getEnvInt("RATE_LIMIT_MAX", game_constants.DefaultRateLimitMax),
		RoomIdleTimeout:      getEnvDuration("ROOM_IDLE_TIMEOUT", game_constants.DefaultRoomIdleTimeout),
		EmptyRoomGrace:       getEnvDuration("EMPTY_ROOM_GRACE", game_constants.DefaultEmptyRoomGrace),
		ReconnectGrace:       getEnvDuration("RECONNECT_GRACE", game_constants.DefaultReconnectGrace),
		SweepInterval:        getEnvDuration("SWEEP_INTERVAL", game_constants.DefaultSweepInterval),
		EventQueueSize:       getEnvInt("EVENT_QUEUE_SIZE", 1024),

		PingInterval:      getEnvDuration("PING_INTERVAL", 25*time.Second),
		PingTimeout:       getEnvDuration("PING_TIMEOUT", 60*time.Second),
		MaxHTTPBufferSize: int64(getEnvInt("MAX_HTTP_BUFFER_SIZE", 1000000)),

		HTTPRateLimitRPS:   getEnvInt("HTTP_RATE_LIMIT_RPS", 5),
		HTTPRateLimitBurst: getEnvInt("HTTP_RATE_LIMIT_BURST", 10),

		RedisURL: os.Getenv("REDIS_URL"),
		WordsDir: os.Getenv("WORDS_DIR"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvDuration accepts positive Go durations ("90s") or plain milliseconds
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		if ms, convErr := strconv.Atoi(val); convErr == nil {
			d, err = time.Duration(ms)*time.Millisecond, nil
		}
	}
	if err == nil && d > 0 {
		return d
	}
	log.Warn().Str("key", key).Str("value", val).Dur("default", fallback).Msg("invalid duration, using default")
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	i, err := strconv.Atoi(val)
	if err != nil || i <= 0 {
		log.Warn().Str("key", key).Str("value", val).Int("default", fallback).Msg("invalid int, using default")
		return fallback
	}
	return i
}
