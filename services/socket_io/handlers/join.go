package handlers

import (
	"context"

	game_constants "github.com/HenryKun55/multiwordle/constants/game"
	"github.com/HenryKun55/multiwordle/models"
	"github.com/HenryKun55/multiwordle/services/events"
	"github.com/HenryKun55/multiwordle/services/rooms"
	socketio_utils "github.com/HenryKun55/multiwordle/services/socket_io/utils"
	"github.com/rs/zerolog/log"
)

// HandleJoinRoom joins or creates a room, or restores a reconnecting player
func HandleJoinRoom(reg *rooms.Registry, t Transport) events.Handler {
	return func(ctx context.Context, evt events.Event) error {
		var payload models.JoinRoomPayload
		if err := socketio_utils.DecodePayload(evt.Payload, &payload); err != nil {
			log.Debug().Err(err).Str("conn", evt.ConnID).Msg("[JOIN-ERROR] bad payload")
			t.EmitTo(evt.ConnID, game_constants.EventRoomError, models.RoomError{Message: game_constants.MsgInvalidPayload})
			return nil
		}

		res, err := reg.JoinOrCreate(ctx, rooms.JoinRequest{
			RoomID:         payload.RoomID,
			PlayerName:     payload.PlayerName,
			ConnID:         evt.ConnID,
			Origin:         evt.Origin,
			ReconnectToken: payload.Token(),
		})
		if err != nil {
			msg := rooms.UserMessage(err, game_constants.MsgJoinFailed)
			if msg == game_constants.MsgJoinFailed {
				log.Error().Err(err).Str("conn", evt.ConnID).Msg("[JOIN-ERROR] join failed")
			} else {
				log.Info().Str("conn", evt.ConnID).Str("reason", msg).Msg("[JOIN-ERROR] join rejected")
			}
			t.EmitTo(evt.ConnID, game_constants.EventRoomError, models.RoomError{Message: msg})
			return nil
		}

		room := res.Room
		t.Join(evt.ConnID, room.ID)
		state := reg.State(room)

		log.Info().
			Str("room", room.ID).
			Str("conn", evt.ConnID).
			Str("player", res.Player.Name).
			Bool("reconnected", res.Reconnected).
			Int("players", len(room.Players)).
			Msg("[JOIN] player joined")

		t.EmitTo(evt.ConnID, game_constants.EventRoomJoined, models.RoomJoined{
			PlayerID:    res.Player.ID,
			GameState:   state,
			Reconnected: res.Reconnected,
		})
		t.Broadcast(room.ID, game_constants.EventGameUpdated, state)
		return nil
	}
}
