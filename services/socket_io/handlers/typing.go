package handlers

import (
	"context"

	game_constants "github.com/HenryKun55/multiwordle/constants/game"
	"github.com/HenryKun55/multiwordle/models"
	"github.com/HenryKun55/multiwordle/services/events"
	"github.com/HenryKun55/multiwordle/services/rooms"
	socketio_utils "github.com/HenryKun55/multiwordle/services/socket_io/utils"
)

// Live typing is passive: failures of any kind are dropped without a reply.

func HandleLetter(reg *rooms.Registry, t Transport) events.Handler {
	return func(_ context.Context, evt events.Event) error {
		var payload models.LetterPayload
		if err := socketio_utils.DecodePayload(evt.Payload, &payload); err != nil {
			return nil
		}
		room, p, ok := reg.UpdateCurrentGuess(payload.RoomID, evt.ConnID, evt.Origin, payload.Letter)
		if ok {
			t.Broadcast(room.ID, game_constants.EventPlayerUpdated, models.PlayerUpdated{PlayerID: p.ID, CurrentGuess: p.CurrentGuess})
		}
		return nil
	}
}

func HandleBackspace(reg *rooms.Registry, t Transport) events.Handler {
	return func(_ context.Context, evt events.Event) error {
		var payload models.BackspacePayload
		if err := socketio_utils.DecodePayload(evt.Payload, &payload); err != nil {
			return nil
		}
		room, p, ok := reg.Backspace(payload.RoomID, evt.ConnID, evt.Origin)
		if ok {
			t.Broadcast(room.ID, game_constants.EventPlayerUpdated, models.PlayerUpdated{PlayerID: p.ID, CurrentGuess: p.CurrentGuess})
		}
		return nil
	}
}
