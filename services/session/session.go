package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/HenryKun55/multiwordle/models"
)

var ErrNotFound = errors.New("session not found")

// Store keeps disconnected players' snapshots for the reconnection grace
// window. Snapshots are keyed by (token, roomID).
type Store interface {
	Save(ctx context.Context, snap models.SessionSnapshot) error
	// Get returns ErrNotFound when the snapshot is missing or expired
	Get(ctx context.Context, token, roomID string) (*models.SessionSnapshot, error)
	Delete(ctx context.Context, token, roomID string) error
	// Sweep removes expired snapshots and returns how many were removed
	Sweep(ctx context.Context) (int, error)
	Count(ctx context.Context) (int, error)
}

type key struct {
	token  string
	roomID string
}

// MemoryStore is the default Store. State is lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[key]models.SessionSnapshot
	grace    time.Duration
	now      func() time.Time
}

func NewMemoryStore(grace time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[key]models.SessionSnapshot),
		grace:    grace,
		now:      time.Now,
	}
}

func (m *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	m.now = now
	return m
}

func (m *MemoryStore) Save(_ context.Context, snap models.SessionSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[key{snap.Token, snap.RoomID}] = snap
	return nil
}

func (m *MemoryStore) Get(_ context.Context, token, roomID string) (*models.SessionSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key{token, roomID}
	snap, ok := m.sessions[k]
	if !ok {
		return nil, ErrNotFound
	}
	if m.expired(snap) {
		delete(m.sessions, k)
		return nil, ErrNotFound
	}
	return &snap, nil
}

func (m *MemoryStore) Delete(_ context.Context, token, roomID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, key{token, roomID})
	return nil
}

func (m *MemoryStore) Sweep(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for k, snap := range m.sessions {
		if m.expired(snap) {
			delete(m.sessions, k)
			removed++
		}
	}
	return removed, nil
}

func (m *MemoryStore) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions), nil
}

func (m *MemoryStore) expired(snap models.SessionSnapshot) bool {
	return m.now().Sub(snap.DisconnectedAt) >= m.grace
}
