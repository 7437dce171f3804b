package handlers

import (
	"time"

	game_constants "github.com/HenryKun55/multiwordle/constants/game"
	"github.com/HenryKun55/multiwordle/services/events"
	"github.com/HenryKun55/multiwordle/services/rooms"
)

// Transport delivers outbound events. SocketServer is the production
// implementation; broadcasts reach exactly the connections joined to a room.
type Transport interface {
	EmitTo(connID, event string, payload any)
	Broadcast(roomID, event string, payload any)
	Join(connID, roomID string)
	Leave(connID, roomID string)
}

// Scheduler posts an event back into the queue later
type Scheduler interface {
	After(delay time.Duration, evt events.Event) *time.Timer
}

// Register wires every game event into the dispatcher's table
func Register(d *events.Dispatcher, reg *rooms.Registry, t Transport) {
	d.Handle(game_constants.EventJoinRoom, HandleJoinRoom(reg, t))
	d.Handle(game_constants.EventGuess, HandleGuess(reg, t))
	d.Handle(game_constants.EventLetter, HandleLetter(reg, t))
	d.Handle(game_constants.EventBackspace, HandleBackspace(reg, t))
	d.Handle(game_constants.EventDisconnect, HandleDisconnect(reg, t, d))
	d.Handle(game_constants.EventExpireRoom, HandleExpireRoom(reg))
	d.Handle(game_constants.EventSweep, HandleSweep(reg, t))
	d.OnError(HandleEventError(t))
}
