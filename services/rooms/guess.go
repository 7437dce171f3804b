package rooms

import (
	"strings"

	game_constants "github.com/HenryKun55/multiwordle/constants/game"
	"github.com/HenryKun55/multiwordle/models"
	"github.com/HenryKun55/multiwordle/services/wordle"
)

// GuessOutcome describes what a guess did. Ignored outcomes produce no
// reply at all; invalid ones are reported to the sender only.
type GuessOutcome struct {
	Room    *models.Room
	Player  *models.Player
	Guess   *models.Guess
	Valid   bool
	Message string
	Ignored bool
	// GameEnded is set when this guess moved the room to ended
	GameEnded bool
}

// SubmitGuess judges a complete word for a player and applies the win and
// loss transitions.
func (r *Registry) SubmitGuess(roomID, connID, origin, word string) (*GuessOutcome, error) {
	if !r.limiter.Allow(origin) {
		return nil, ErrRateLimited
	}

	room, p, err := r.playerIn(wordle.Sanitize(roomID), connID)
	if err != nil {
		return nil, err
	}
	out := &GuessOutcome{Room: room, Player: p}
	if room.Ended {
		out.Message = game_constants.MsgGameEnded
		return out, nil
	}
	if !p.IsPlaying() {
		out.Ignored = true
		return out, nil
	}

	word = wordle.Sanitize(word)
	if res := wordle.ValidateWord(word, r.words); !res.Valid {
		out.Message = res.Message
		return out, nil
	}

	now := r.now()
	g := wordle.Evaluate(word, room.TargetWord)
	p.Guesses = append(p.Guesses, g)
	p.Attempts++
	p.CurrentGuess = ""
	p.Touch(now)
	out.Guess = &g
	out.Valid = true

	switch {
	case wordle.IsWinning(g):
		p.Status = models.StatusWon
		id := p.ID
		room.WinnerID = &id
		room.Ended = true
		for _, other := range room.Players {
			if other.IsPlaying() {
				other.Status = models.StatusLost
			}
		}
		out.GameEnded = true
	case p.Attempts >= game_constants.MaxAttempts:
		p.Status = models.StatusLost
		if allLost(room) {
			room.Ended = true
			room.WinnerID = nil
			out.GameEnded = true
		}
	}
	return out, nil
}

func allLost(room *models.Room) bool {
	for _, p := range room.Players {
		if p.Status != models.StatusLost {
			return false
		}
	}
	return true
}

// UpdateCurrentGuess replaces the player's live typing. It reports false when
// nothing changed or the event should be dropped.
func (r *Registry) UpdateCurrentGuess(roomID, connID, origin, partial string) (*models.Room, *models.Player, bool) {
	if !r.limiter.Allow(origin) {
		return nil, nil, false
	}
	room, p, err := r.playerIn(wordle.Sanitize(roomID), connID)
	if err != nil || !p.IsPlaying() {
		return nil, nil, false
	}
	p.CurrentGuess = clampGuess(strings.ToUpper(wordle.Sanitize(partial)))
	p.Touch(r.now())
	return room, p, true
}

// Backspace drops the last typed letter
func (r *Registry) Backspace(roomID, connID, origin string) (*models.Room, *models.Player, bool) {
	if !r.limiter.Allow(origin) {
		return nil, nil, false
	}
	room, p, err := r.playerIn(wordle.Sanitize(roomID), connID)
	if err != nil || !p.IsPlaying() {
		return nil, nil, false
	}
	if letters := []rune(p.CurrentGuess); len(letters) > 0 {
		p.CurrentGuess = string(letters[:len(letters)-1])
	}
	p.Touch(r.now())
	return room, p, true
}

func clampGuess(s string) string {
	letters := []rune(s)
	if len(letters) > game_constants.WordLength {
		letters = letters[:game_constants.WordLength]
	}
	return string(letters)
}
