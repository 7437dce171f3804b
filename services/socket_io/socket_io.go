package socket_io

import (
	"github.com/HenryKun55/multiwordle/config"
	game_constants "github.com/HenryKun55/multiwordle/constants/game"
	"github.com/HenryKun55/multiwordle/models"
	"github.com/HenryKun55/multiwordle/services/events"
	socketio_types "github.com/HenryKun55/multiwordle/services/socket_io/types"
	socketio_utils "github.com/HenryKun55/multiwordle/services/socket_io/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	eio_log "github.com/zishang520/engine.io/v2/log"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

// Inbound events forwarded to the dispatcher as-is
var forwarded = []string{
	game_constants.EventJoinRoom,
	game_constants.EventGuess,
	game_constants.EventLetter,
	game_constants.EventBackspace,
}

func serverOptions(cfg *config.Config) *socket.ServerOptions {
	c := socket.DefaultServerOptions()
	c.SetServeClient(false)
	c.SetPingInterval(cfg.PingInterval)
	c.SetPingTimeout(cfg.PingTimeout)
	c.SetMaxHttpBufferSize(cfg.MaxHTTPBufferSize)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      cfg.CorsOrigin,
		Credentials: true,
	})
	return c
}

// Start creates the socket.io server, mounts it on the router and forwards
// every admitted connection's events into the dispatcher.
func Start(router *gin.Engine, sio *socketio_types.SocketServer, d *events.Dispatcher, cfg *config.Config) {
	eio_log.DEBUG = !cfg.Production && cfg.LogLevel == "debug"
	c := serverOptions(cfg)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)
		HandleConnection(sio, d, client)
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	log.Info().Int64("max_connections", sio.Max()).Str("cors_origin", cfg.CorsOrigin).Msg("Socket server started")
}

// Refuser turns away a connection that did not get a slot
type Refuser interface {
	Refuse(event string, payload any)
}

type socketRefuser struct {
	client *socket.Socket
}

func (r socketRefuser) Refuse(event string, payload any) {
	r.client.Emit(event, payload)
	r.client.Disconnect(true)
}

// Admit reserves a slot under the global ceiling. When the server is full
// the connection is told so and dropped, and Admit reports false.
func Admit(sio *socketio_types.SocketServer, connID string, r Refuser) bool {
	if sio.TryAcquire() {
		return true
	}
	log.Warn().Str("conn", connID).Int64("connections", sio.Count()).Msg("[CONNECT] server full, rejecting")
	r.Refuse(game_constants.EventServerFull, models.ServerFull{
		Message:            game_constants.MsgServerFull,
		CurrentConnections: sio.Count(),
		MaxConnections:     sio.Max(),
	})
	return false
}

// HandleConnection admits or rejects a new socket against the global ceiling
func HandleConnection(sio *socketio_types.SocketServer, d *events.Dispatcher, client *socket.Socket) {
	connID := string(client.Id())
	if !Admit(sio, connID, socketRefuser{client: client}) {
		return
	}

	sio.AddConnection(connID, client)
	origin := socketio_utils.ClientOrigin(client)
	log.Info().Str("conn", connID).Str("origin", origin).Int64("connections", sio.Count()).Msg("[CONNECT] client connected")

	for _, name := range forwarded {
		name := name
		client.On(name, func(args ...interface{}) {
			d.Post(events.Event{
				Name:    name,
				ConnID:  connID,
				Origin:  origin,
				Payload: socketio_utils.FirstArg(args),
			})
		})
	}

	client.On("disconnect", func(args ...interface{}) {
		sio.RemoveConnection(connID)
		sio.Release()
		log.Info().Str("conn", connID).Interface("reason", socketio_utils.FirstArg(args)).Msg("[DISCONNECT] client disconnected")
		d.Post(events.Event{Name: game_constants.EventDisconnect, ConnID: connID, Origin: origin})
	})
}
