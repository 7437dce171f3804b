package models

import (
	"sort"
	"time"
)

// Room is an isolated game with one hidden target word shared by its players.
// Players are keyed by connection id.
type Room struct {
	ID         string
	TargetWord string
	Players    map[string]*Player
	WinnerID   *string
	Ended      bool
	CreatedAt  time.Time
	EmptySince time.Time // zero while the room has players
}

func NewRoom(id, target string, now time.Time) *Room {
	return &Room{
		ID:         id,
		TargetWord: target,
		Players:    make(map[string]*Player),
		CreatedAt:  now,
	}
}

// PlayersInJoinOrder returns the live players ordered by join sequence
func (r *Room) PlayersInJoinOrder() []*Player {
	players := make([]*Player, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool {
		return players[i].JoinSeq < players[j].JoinSeq
	})
	return players
}

// LastActivity is the latest of the creation time and every player's last update
func (r *Room) LastActivity() time.Time {
	last := r.CreatedAt
	for _, p := range r.Players {
		if t := time.UnixMilli(p.LastUpdate); t.After(last) {
			last = t
		}
	}
	return last
}

// GameState is the public view of a room. The target word is never part of it.
type GameState struct {
	RoomID   string   `json:"roomId"`
	Players  []Player `json:"players"`
	WinnerID *string  `json:"winnerId"`
	Ended    bool     `json:"ended"`
}
