package rooms

import (
	"context"
	"sort"

	"github.com/HenryKun55/multiwordle/models"
	"github.com/rs/zerolog/log"
)

// Departure is the effect of a disconnect on one room
type Departure struct {
	Room *models.Room
	// Emptied rooms need an expiry check after the grace period
	Emptied bool
	Saved   bool
}

// Disconnect removes connID from every room it joined. Players still in play
// are snapshotted so they can reconnect within the grace window.
func (r *Registry) Disconnect(ctx context.Context, connID string) []Departure {
	set, ok := r.memberships[connID]
	if !ok {
		return nil
	}
	roomIDs := make([]string, 0, len(set))
	for id := range set {
		roomIDs = append(roomIDs, id)
	}
	sort.Strings(roomIDs)

	now := r.now()
	departures := make([]Departure, 0, len(roomIDs))
	for _, id := range roomIDs {
		room, ok := r.rooms[id]
		if !ok {
			continue
		}
		p, ok := room.Players[connID]
		if !ok {
			continue
		}

		d := Departure{Room: room}
		if p.IsPlaying() && !room.Ended {
			snap := models.SessionSnapshot{
				Token:          connID,
				RoomID:         room.ID,
				Player:         p.Clone(),
				DisconnectedAt: now,
			}
			if err := r.sessions.Save(ctx, snap); err != nil {
				log.Warn().Err(err).Str("room", room.ID).Str("conn", connID).Msg("failed to save session")
			} else {
				d.Saved = true
			}
		}

		r.removeMember(room, connID)
		if len(room.Players) == 0 {
			room.EmptySince = now
			d.Emptied = true
		}
		departures = append(departures, d)
	}
	return departures
}

// ExpireEmptyRoom deletes the room only if it is still empty and has been
// for the whole grace period. Reports whether the room was deleted.
func (r *Registry) ExpireEmptyRoom(roomID string) bool {
	room, ok := r.rooms[roomID]
	if !ok || len(room.Players) > 0 || room.EmptySince.IsZero() {
		return false
	}
	if r.now().Sub(room.EmptySince) < r.opts.EmptyRoomGrace {
		return false
	}
	r.deleteRoom(room)
	log.Info().Str("room", roomID).Msg("empty room deleted")
	return true
}

// Eviction lists the connections that were still attached to an idle room
type Eviction struct {
	RoomID  string
	ConnIDs []string
}

type SweepReport struct {
	Evicted         []Eviction
	SessionsRemoved int
	WindowsRemoved  int
}

// Sweep evicts idle rooms and purges expired sessions and rate windows
func (r *Registry) Sweep(ctx context.Context) SweepReport {
	var report SweepReport
	now := r.now()

	ids := make([]string, 0, len(r.rooms))
	for id := range r.rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		room := r.rooms[id]
		if now.Sub(room.LastActivity()) <= r.opts.IdleTimeout {
			continue
		}
		ev := Eviction{RoomID: id}
		for _, p := range room.PlayersInJoinOrder() {
			ev.ConnIDs = append(ev.ConnIDs, p.ID)
		}
		r.deleteRoom(room)
		report.Evicted = append(report.Evicted, ev)
		log.Info().Str("room", id).Int("players", len(ev.ConnIDs)).Msg("idle room evicted")
	}

	removed, err := r.sessions.Sweep(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("session sweep failed")
	}
	report.SessionsRemoved = removed
	report.WindowsRemoved = r.limiter.Sweep()
	return report
}
