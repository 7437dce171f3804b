package models

import "time"

type PlayerStatus string

const (
	StatusPlaying PlayerStatus = "playing"
	StatusWon     PlayerStatus = "won"
	StatusLost    PlayerStatus = "lost"
)

type LetterStatus string

const (
	LetterCorrect LetterStatus = "correct"
	LetterPresent LetterStatus = "present"
	LetterAbsent  LetterStatus = "absent"
)

// Letter is one evaluated position of a guess
type Letter struct {
	Char   string       `json:"char"`
	Status LetterStatus `json:"status"`
}

// Guess is immutable once appended to a player
type Guess struct {
	Word    string   `json:"word"`
	Letters []Letter `json:"letters"`
}

// Player represents a participant of a room, keyed by its connection id.
// Attempts always equals len(Guesses); won and lost are terminal.
type Player struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Guesses      []Guess      `json:"guesses"`
	CurrentGuess string       `json:"currentGuess"`
	Status       PlayerStatus `json:"status"`
	Attempts     int          `json:"attempts"`
	LastUpdate   int64        `json:"lastUpdate"` // unix millis

	JoinSeq uint64 `json:"-"`
}

func NewPlayer(id, name string, now time.Time) *Player {
	return &Player{
		ID:         id,
		Name:       name,
		Guesses:    []Guess{},
		Status:     StatusPlaying,
		LastUpdate: now.UnixMilli(),
	}
}

func (p *Player) IsPlaying() bool {
	return p.Status == StatusPlaying
}

func (p *Player) Touch(now time.Time) {
	p.LastUpdate = now.UnixMilli()
}

// Clone returns a deep copy safe to hand to the transport or a session store
func (p *Player) Clone() Player {
	c := *p
	c.Guesses = make([]Guess, len(p.Guesses))
	for i, g := range p.Guesses {
		letters := make([]Letter, len(g.Letters))
		copy(letters, g.Letters)
		c.Guesses[i] = Guess{Word: g.Word, Letters: letters}
	}
	return c
}
