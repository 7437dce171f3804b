package routes

import (
	"github.com/HenryKun55/multiwordle/config"
	"github.com/HenryKun55/multiwordle/controllers"
	"github.com/HenryKun55/multiwordle/middleware"
	"github.com/HenryKun55/multiwordle/services/events"
	"github.com/HenryKun55/multiwordle/services/rooms"
	"github.com/HenryKun55/multiwordle/services/socket_io"
	socketio_types "github.com/HenryKun55/multiwordle/services/socket_io/types"
	utils "github.com/HenryKun55/multiwordle/utils"

	"github.com/gin-gonic/gin"
)

// Deps is everything the HTTP surface needs
type Deps struct {
	Config      *config.Config
	Dispatcher  *events.Dispatcher
	Registry    *rooms.Registry
	Sockets     *socketio_types.SocketServer
	Health      controllers.HealthInfo
	HTTPLimiter *middleware.IPRateLimiter
}

// SetupRoutes configures the API routes and mounts socket.io
func SetupRoutes(router *gin.Engine, deps Deps) {
	gameController := &controllers.GameController{
		Dispatcher:  deps.Dispatcher,
		Registry:    deps.Registry,
		Connections: deps.Sockets,
	}

	// utils global
	router.Use(utils.ErrorHandler())
	router.Use(utils.Logger())

	api := router.Group("/")
	if deps.HTTPLimiter != nil {
		api.Use(deps.HTTPLimiter.Middleware())
	}
	{
		api.GET("/ping", controllers.Ping)
		api.GET("/healthz", controllers.Healthz(deps.Health))
		api.GET("/stats", gameController.GetStats)
		api.GET("/rooms/:roomId", gameController.GetRoom)
	}

	socket_io.Start(router, deps.Sockets, deps.Dispatcher, deps.Config)
}
