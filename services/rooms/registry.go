package rooms

import (
	"time"

	game_constants "github.com/HenryKun55/multiwordle/constants/game"
	"github.com/HenryKun55/multiwordle/models"
	"github.com/HenryKun55/multiwordle/services/session"
)

// WordSource draws targets and answers dictionary lookups
type WordSource interface {
	RandomTarget() (string, error)
	IsAllowed(word string) bool
}

// Limiter admits or rejects actions per origin
type Limiter interface {
	Allow(origin string) bool
	Sweep() int
}

type Options struct {
	MaxPlayersPerRoom int
	IdleTimeout       time.Duration
	EmptyRoomGrace    time.Duration
	Clock             func() time.Time
}

func (o Options) withDefaults() Options {
	if o.MaxPlayersPerRoom <= 0 {
		o.MaxPlayersPerRoom = game_constants.DefaultMaxPlayersPerRoom
	}
	if o.IdleTimeout <= 0 {
		o.IdleTimeout = game_constants.DefaultRoomIdleTimeout
	}
	if o.EmptyRoomGrace <= 0 {
		o.EmptyRoomGrace = game_constants.DefaultEmptyRoomGrace
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	return o
}

// Registry owns every room and player. It is not safe for concurrent use:
// all calls must come from the single event consumer.
type Registry struct {
	rooms       map[string]*models.Room
	memberships map[string]map[string]struct{} // connID -> roomIDs
	words       WordSource
	limiter     Limiter
	sessions    session.Store
	opts        Options
	seq         uint64
}

func NewRegistry(words WordSource, limiter Limiter, sessions session.Store, opts Options) *Registry {
	return &Registry{
		rooms:       make(map[string]*models.Room),
		memberships: make(map[string]map[string]struct{}),
		words:       words,
		limiter:     limiter,
		sessions:    sessions,
		opts:        opts.withDefaults(),
	}
}

func (r *Registry) EmptyRoomGrace() time.Duration {
	return r.opts.EmptyRoomGrace
}

func (r *Registry) Room(roomID string) (*models.Room, bool) {
	room, ok := r.rooms[roomID]
	return room, ok
}

func (r *Registry) now() time.Time {
	return r.opts.Clock()
}

func (r *Registry) nextSeq() uint64 {
	r.seq++
	return r.seq
}

func (r *Registry) addMember(room *models.Room, p *models.Player) {
	room.Players[p.ID] = p
	room.EmptySince = time.Time{}
	set, ok := r.memberships[p.ID]
	if !ok {
		set = make(map[string]struct{})
		r.memberships[p.ID] = set
	}
	set[room.ID] = struct{}{}
}

func (r *Registry) removeMember(room *models.Room, connID string) {
	delete(room.Players, connID)
	if set, ok := r.memberships[connID]; ok {
		delete(set, room.ID)
		if len(set) == 0 {
			delete(r.memberships, connID)
		}
	}
}

func (r *Registry) deleteRoom(room *models.Room) {
	for connID := range room.Players {
		r.removeMember(room, connID)
	}
	delete(r.rooms, room.ID)
}

func (r *Registry) playerIn(roomID, connID string) (*models.Room, *models.Player, error) {
	room, ok := r.rooms[roomID]
	if !ok {
		return nil, nil, ErrRoomNotFound
	}
	p, ok := room.Players[connID]
	if !ok {
		return room, nil, ErrPlayerNotFound
	}
	return room, p, nil
}
