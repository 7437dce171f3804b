package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/HenryKun55/multiwordle/models"
	"github.com/HenryKun55/multiwordle/services/session"
	"github.com/HenryKun55/multiwordle/services/wordle"
	"github.com/rs/zerolog/log"
)

type JoinRequest struct {
	RoomID         string
	PlayerName     string
	ConnID         string
	Origin         string
	ReconnectToken string
}

type JoinResult struct {
	Room        *models.Room
	Player      *models.Player
	Reconnected bool
	Created     bool
}

// JoinOrCreate admits a connection into a room, creating the room on first
// join. A live session matching the reconnect token restores the saved
// player under the new connection id instead.
func (r *Registry) JoinOrCreate(ctx context.Context, req JoinRequest) (*JoinResult, error) {
	if !r.limiter.Allow(req.Origin) {
		return nil, ErrRateLimited
	}

	roomID := wordle.Sanitize(req.RoomID)
	if res := wordle.ValidateRoomID(roomID); !res.Valid {
		return nil, &ValidationError{Message: res.Message}
	}
	name := wordle.Sanitize(req.PlayerName)
	if res := wordle.ValidatePlayerName(name); !res.Valid {
		return nil, &ValidationError{Message: res.Message}
	}

	now := r.now()
	if token := wordle.Sanitize(req.ReconnectToken); token != "" {
		if res := r.reconnect(ctx, token, roomID, req.ConnID, now); res != nil {
			return res, nil
		}
	}

	room, created, err := r.getOrCreate(roomID, now)
	if err != nil {
		return nil, err
	}
	if _, ok := room.Players[req.ConnID]; ok {
		return nil, ErrAlreadyInRoom
	}
	if len(room.Players) >= r.opts.MaxPlayersPerRoom {
		return nil, ErrRoomFull
	}
	if nameTaken(room, name) {
		return nil, ErrNameTaken
	}

	p := models.NewPlayer(req.ConnID, name, now)
	p.JoinSeq = r.nextSeq()
	if room.Ended {
		p.Status = models.StatusLost
	}
	r.addMember(room, p)

	return &JoinResult{Room: room, Player: p, Created: created}, nil
}

func (r *Registry) getOrCreate(roomID string, now time.Time) (*models.Room, bool, error) {
	if room, ok := r.rooms[roomID]; ok {
		return room, false, nil
	}
	target, err := r.words.RandomTarget()
	if err != nil {
		return nil, false, fmt.Errorf("creating room %s: %w", roomID, err)
	}
	room := models.NewRoom(roomID, wordle.Normalize(target), now)
	r.rooms[roomID] = room
	log.Info().Str("room", roomID).Msg("room created")
	return room, true, nil
}

// reconnect returns nil when the token does not resolve to a restorable
// player, in which case the caller performs a plain join. A saved player
// whose name was claimed by someone else while away is not restored.
func (r *Registry) reconnect(ctx context.Context, token, roomID, connID string, now time.Time) *JoinResult {
	snap, err := r.sessions.Get(ctx, token, roomID)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			log.Warn().Err(err).Str("room", roomID).Msg("session lookup failed, joining as new player")
		}
		return nil
	}

	room, ok := r.rooms[roomID]
	if !ok {
		r.dropSession(ctx, token, roomID)
		return nil
	}
	if _, ok := room.Players[connID]; ok {
		return nil
	}
	if nameTaken(room, snap.Player.Name) {
		log.Info().Str("room", roomID).Str("name", snap.Player.Name).Msg("saved name taken meanwhile, joining as new player")
		r.dropSession(ctx, token, roomID)
		return nil
	}

	p := snap.Player.Clone()
	p.ID = connID
	p.JoinSeq = r.nextSeq()
	if room.Ended && p.Status == models.StatusPlaying {
		p.Status = models.StatusLost
	}
	p.Touch(now)
	r.addMember(room, &p)
	r.dropSession(ctx, token, roomID)

	return &JoinResult{Room: room, Player: &p, Reconnected: true}
}

func (r *Registry) dropSession(ctx context.Context, token, roomID string) {
	if err := r.sessions.Delete(ctx, token, roomID); err != nil {
		log.Warn().Err(err).Str("room", roomID).Msg("failed to delete session")
	}
}

func nameTaken(room *models.Room, name string) bool {
	for _, p := range room.Players {
		if strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}
