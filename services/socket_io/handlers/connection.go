package handlers

import (
	"context"
	"fmt"

	game_constants "github.com/HenryKun55/multiwordle/constants/game"
	"github.com/HenryKun55/multiwordle/models"
	"github.com/HenryKun55/multiwordle/services/events"
	"github.com/HenryKun55/multiwordle/services/rooms"
	"github.com/rs/zerolog/log"
)

// HandleDisconnect removes the connection from its rooms. Rooms left empty
// get an expiry check scheduled; the others see the updated state.
func HandleDisconnect(reg *rooms.Registry, t Transport, s Scheduler) events.Handler {
	return func(ctx context.Context, evt events.Event) error {
		departures := reg.Disconnect(ctx, evt.ConnID)
		for _, d := range departures {
			log.Info().
				Str("room", d.Room.ID).
				Str("conn", evt.ConnID).
				Bool("saved", d.Saved).
				Int("remaining", len(d.Room.Players)).
				Msg("[DISCONNECT] player left")

			if d.Emptied {
				s.After(reg.EmptyRoomGrace(), events.Event{
					Name:    game_constants.EventExpireRoom,
					Payload: d.Room.ID,
				})
				continue
			}
			t.Broadcast(d.Room.ID, game_constants.EventGameUpdated, reg.State(d.Room))
		}
		return nil
	}
}

// HandleExpireRoom deletes a room whose grace period elapsed while empty
func HandleExpireRoom(reg *rooms.Registry) events.Handler {
	return func(_ context.Context, evt events.Event) error {
		roomID, ok := evt.Payload.(string)
		if !ok {
			return fmt.Errorf("expire event without room id: %T", evt.Payload)
		}
		if !reg.ExpireEmptyRoom(roomID) {
			log.Debug().Str("room", roomID).Msg("[EXPIRE] room spared")
		}
		return nil
	}
}

// HandleSweep evicts idle rooms and detaches their sockets
func HandleSweep(reg *rooms.Registry, t Transport) events.Handler {
	return func(ctx context.Context, _ events.Event) error {
		report := reg.Sweep(ctx)
		for _, ev := range report.Evicted {
			for _, connID := range ev.ConnIDs {
				t.Leave(connID, ev.RoomID)
			}
		}
		log.Info().
			Int("rooms_evicted", len(report.Evicted)).
			Int("sessions_removed", report.SessionsRemoved).
			Int("windows_removed", report.WindowsRemoved).
			Msg("[SWEEP] maintenance done")
		return nil
	}
}

// HandleEventError tells the originating connection something went wrong
func HandleEventError(t Transport) events.ErrorHandler {
	return func(evt events.Event, _ error) {
		if evt.ConnID == "" {
			return
		}
		t.EmitTo(evt.ConnID, game_constants.EventRoomError, models.RoomError{Message: game_constants.MsgInternalError})
	}
}
