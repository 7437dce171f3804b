package wordle

import (
	"regexp"
	"unicode/utf8"

	game_constants "github.com/HenryKun55/multiwordle/constants/game"
)

// Result is the outcome of a validation predicate. Message is user facing.
type Result struct {
	Valid   bool
	Message string
}

var ok = Result{Valid: true}

func invalid(msg string) Result {
	return Result{Valid: false, Message: msg}
}

var (
	lettersOnly  = regexp.MustCompile(`^[A-Z]+$`)
	playerNameRe = regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)
	roomIDRe     = regexp.MustCompile(`^[a-zA-Z0-9\-]+$`)
)

// Dictionary answers whether a normalized word may be guessed
type Dictionary interface {
	IsAllowed(word string) bool
}

func ValidateWordFormat(word string) Result {
	normalized := Normalize(word)
	if utf8.RuneCountInString(normalized) != game_constants.WordLength {
		return invalid(game_constants.MsgWordLength)
	}
	if !lettersOnly.MatchString(normalized) {
		return invalid(game_constants.MsgWordLettersOnly)
	}
	return ok
}

// ValidateWord checks format first, then dictionary membership
func ValidateWord(word string, dict Dictionary) Result {
	if res := ValidateWordFormat(word); !res.Valid {
		return res
	}
	if dict != nil && !dict.IsAllowed(Normalize(word)) {
		return invalid(game_constants.MsgWordNotInList)
	}
	return ok
}

func ValidatePlayerName(name string) Result {
	sanitized := Sanitize(name)
	n := utf8.RuneCountInString(sanitized)
	switch {
	case n == 0:
		return invalid(game_constants.MsgNameEmpty)
	case n < game_constants.MinPlayerNameLength:
		return invalid(game_constants.MsgNameTooShort)
	case n > game_constants.MaxPlayerNameLength:
		return invalid(game_constants.MsgNameTooLong)
	case !playerNameRe.MatchString(sanitized):
		return invalid(game_constants.MsgNameInvalid)
	}
	return ok
}

func ValidateRoomID(roomID string) Result {
	sanitized := Sanitize(roomID)
	n := utf8.RuneCountInString(sanitized)
	switch {
	case n == 0:
		return invalid(game_constants.MsgRoomIDEmpty)
	case n < game_constants.MinRoomIDLength:
		return invalid(game_constants.MsgRoomIDTooShort)
	case n > game_constants.MaxRoomIDLength:
		return invalid(game_constants.MsgRoomIDTooLong)
	case !roomIDRe.MatchString(sanitized):
		return invalid(game_constants.MsgRoomIDInvalid)
	}
	return ok
}
