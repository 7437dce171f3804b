package rooms

import (
	"errors"

	game_constants "github.com/HenryKun55/multiwordle/constants/game"
)

var (
	ErrRateLimited    = errors.New("rate limit exceeded")
	ErrRoomNotFound   = errors.New("room not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrRoomFull       = errors.New("room is full")
	ErrNameTaken      = errors.New("player name already in use")
	ErrAlreadyInRoom  = errors.New("connection already joined this room")
)

// ValidationError carries a message meant for the player
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UserMessage maps a registry error to the text sent to the client.
// Unknown errors get fallback so internals never leak.
func UserMessage(err error, fallback string) string {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Message
	case errors.Is(err, ErrRateLimited):
		return game_constants.MsgRateLimited
	case errors.Is(err, ErrRoomNotFound):
		return game_constants.MsgRoomNotFound
	case errors.Is(err, ErrPlayerNotFound):
		return game_constants.MsgPlayerNotFound
	case errors.Is(err, ErrRoomFull):
		return game_constants.MsgRoomFull
	case errors.Is(err, ErrNameTaken):
		return game_constants.MsgNameTaken
	case errors.Is(err, ErrAlreadyInRoom):
		return game_constants.MsgAlreadyInRoom
	}
	return fallback
}
