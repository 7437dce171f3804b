package handlers

import (
	"context"
	"errors"

	game_constants "github.com/HenryKun55/multiwordle/constants/game"
	"github.com/HenryKun55/multiwordle/models"
	"github.com/HenryKun55/multiwordle/services/events"
	"github.com/HenryKun55/multiwordle/services/rooms"
	socketio_utils "github.com/HenryKun55/multiwordle/services/socket_io/utils"
	"github.com/rs/zerolog/log"
)

// HandleGuess judges a submitted word. Emission order: game:ended to the
// room when the game ends, the result to the sender, then game:updated.
func HandleGuess(reg *rooms.Registry, t Transport) events.Handler {
	return func(ctx context.Context, evt events.Event) error {
		var payload models.GuessPayload
		if err := socketio_utils.DecodePayload(evt.Payload, &payload); err != nil {
			t.EmitTo(evt.ConnID, game_constants.EventRoomError, models.RoomError{Message: game_constants.MsgInvalidPayload})
			return nil
		}

		out, err := reg.SubmitGuess(payload.RoomID, evt.ConnID, evt.Origin, payload.Word)
		if errors.Is(err, rooms.ErrRateLimited) {
			return nil
		}
		if err != nil {
			log.Info().Err(err).Str("conn", evt.ConnID).Str("room", payload.RoomID).Msg("[GUESS-ERROR] guess rejected")
			t.EmitTo(evt.ConnID, game_constants.EventRoomError, models.RoomError{
				Message: rooms.UserMessage(err, game_constants.MsgGuessFailed),
			})
			return nil
		}
		if out.Ignored {
			return nil
		}
		if !out.Valid {
			t.EmitTo(evt.ConnID, game_constants.EventGuessResult, models.GuessResult{
				PlayerID: out.Player.ID,
				IsValid:  false,
				Message:  out.Message,
			})
			return nil
		}

		room := out.Room
		state := reg.State(room)
		if out.GameEnded {
			log.Info().Str("room", room.ID).Bool("solved", room.WinnerID != nil).Msg("[GAME-END] game ended")
			t.Broadcast(room.ID, game_constants.EventGameEnded, models.GameEnded{
				Winner:     reg.Winner(room),
				Word:       room.TargetWord,
				FinalState: state,
			})
		}
		t.EmitTo(evt.ConnID, game_constants.EventGuessResult, models.GuessResult{
			PlayerID: out.Player.ID,
			Guess:    out.Guess,
			IsValid:  true,
		})
		t.Broadcast(room.ID, game_constants.EventGameUpdated, state)
		return nil
	}
}
