package rooms

import (
	"context"

	"github.com/HenryKun55/multiwordle/models"
	"github.com/HenryKun55/multiwordle/services/wordle"
)

// State builds the public game state with players in ranking order
func (r *Registry) State(room *models.Room) models.GameState {
	ranked := room.PlayersInJoinOrder()
	wordle.Rank(ranked)

	players := make([]models.Player, len(ranked))
	for i, p := range ranked {
		players[i] = p.Clone()
	}
	var winner *string
	if room.WinnerID != nil {
		id := *room.WinnerID
		winner = &id
	}
	return models.GameState{
		RoomID:   room.ID,
		Players:  players,
		WinnerID: winner,
		Ended:    room.Ended,
	}
}

// Winner returns a copy of the winning player, or nil when nobody won
// or the winner has since left.
func (r *Registry) Winner(room *models.Room) *models.Player {
	if room.WinnerID == nil {
		return nil
	}
	p, ok := room.Players[*room.WinnerID]
	if !ok {
		return nil
	}
	c := p.Clone()
	return &c
}

type RankEntry struct {
	Name     string              `json:"name"`
	Status   models.PlayerStatus `json:"status"`
	Attempts int                 `json:"attempts"`
	Score    int                 `json:"score"`
	Progress int                 `json:"progress"`
}

// Summary is the public HTTP view of a room. The target word is not included.
type Summary struct {
	ID        string      `json:"id"`
	Ended     bool        `json:"ended"`
	Players   int         `json:"players"`
	CreatedAt int64       `json:"createdAt"`
	Ranking   []RankEntry `json:"ranking"`
}

func (r *Registry) Summary(roomID string) (*Summary, bool) {
	room, ok := r.rooms[wordle.Sanitize(roomID)]
	if !ok {
		return nil, false
	}
	ranked := room.PlayersInJoinOrder()
	wordle.Rank(ranked)

	s := &Summary{
		ID:        room.ID,
		Ended:     room.Ended,
		Players:   len(room.Players),
		CreatedAt: room.CreatedAt.UnixMilli(),
		Ranking:   make([]RankEntry, len(ranked)),
	}
	for i, p := range ranked {
		s.Ranking[i] = RankEntry{
			Name:     p.Name,
			Status:   p.Status,
			Attempts: p.Attempts,
			Score:    wordle.Score(p.Attempts, p.Status == models.StatusWon),
			Progress: wordle.Progress(p.Guesses),
		}
	}
	return s, true
}

type Stats struct {
	Rooms           int `json:"rooms"`
	Players         int `json:"players"`
	PendingSessions int `json:"pendingSessions"`
}

func (r *Registry) Stats(ctx context.Context) Stats {
	s := Stats{Rooms: len(r.rooms)}
	for _, room := range r.rooms {
		s.Players += len(room.Players)
	}
	if n, err := r.sessions.Count(ctx); err == nil {
		s.PendingSessions = n
	}
	return s
}
