package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HenryKun55/multiwordle/config"
	game_constants "github.com/HenryKun55/multiwordle/constants/game"
	"github.com/HenryKun55/multiwordle/controllers"
	"github.com/HenryKun55/multiwordle/middleware"
	"github.com/HenryKun55/multiwordle/routes"
	"github.com/HenryKun55/multiwordle/services/events"
	"github.com/HenryKun55/multiwordle/services/ratelimit"
	"github.com/HenryKun55/multiwordle/services/redis"
	"github.com/HenryKun55/multiwordle/services/rooms"
	"github.com/HenryKun55/multiwordle/services/session"
	"github.com/HenryKun55/multiwordle/services/socket_io/handlers"
	socketio_types "github.com/HenryKun55/multiwordle/services/socket_io/types"
	"github.com/HenryKun55/multiwordle/services/words"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	httpLimiterCleanup = 5 * time.Minute
	shutdownTimeout    = 10 * time.Second
)

func main() {
	cfg := config.Load()
	config.SetupLogger(cfg)
	log.Info().Str("env", cfg.Env).Msg("Setting up server...")

	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	dict, err := words.Load(cfg.WordsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading word lists")
	}
	stats := dict.Stats()
	log.Info().Int("targets", stats.Targets).Int("allowed", stats.Allowed).Msg("Word lists loaded")

	var store session.Store = session.NewMemoryStore(cfg.ReconnectGrace)
	var redisClient *redis.RedisClient
	if cfg.RedisURL != "" {
		redisClient, err = config.ConnectRedis(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Error connecting to Redis")
		}
		store = redisClient
	}

	limiter := ratelimit.New(cfg.RateLimitMax, cfg.RateLimitWindow)
	registry := rooms.NewRegistry(dict, limiter, store, rooms.Options{
		MaxPlayersPerRoom: cfg.MaxPlayersPerRoom,
		IdleTimeout:       cfg.RoomIdleTimeout,
		EmptyRoomGrace:    cfg.EmptyRoomGrace,
	})

	dispatcher := events.NewDispatcher(cfg.EventQueueSize)
	sockets := socketio_types.NewSocketServer(cfg.MaxGlobalConnections)
	handlers.Register(dispatcher, registry, sockets)

	httpLimiter := middleware.NewIPRateLimiter(cfg.HTTPRateLimitRPS, cfg.HTTPRateLimitBurst)

	r := gin.New()
	middleware.SetUpMiddleware(r, cfg)
	routes.SetupRoutes(r, routes.Deps{
		Config:     cfg,
		Dispatcher: dispatcher,
		Registry:   registry,
		Sockets:    sockets,
		Health: controllers.HealthInfo{
			Env:       cfg.Env,
			StartedAt: time.Now(),
			Words:     dict.Stats,
		},
		HTTPLimiter: httpLimiter,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go dispatcher.Run(ctx)
	dispatcher.Every(ctx, cfg.SweepInterval, events.Event{Name: game_constants.EventSweep})
	go func() {
		ticker := time.NewTicker(httpLimiterCleanup)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				httpLimiter.Cleanup(httpLimiterCleanup)
			}
		}
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("cors_origin", cfg.CorsOrigin).Msg("Server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Error starting server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	sockets.Sio_server.Close(nil)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	dispatcher.Stop()

	if redisClient != nil {
		if err := redis.CloseRedis(redisClient); err != nil {
			log.Error().Err(err).Msg("Error closing Redis")
		}
	}
	log.Info().Msg("Server exited")
}
