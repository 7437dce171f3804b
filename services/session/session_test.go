package session

import (
	"context"
	"testing"
	"time"

	"github.com/HenryKun55/multiwordle/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(token, room string, at time.Time) models.SessionSnapshot {
	p := models.NewPlayer(token, "Bia", at)
	return models.SessionSnapshot{Token: token, RoomID: room, Player: p.Clone(), DisconnectedAt: at}
}

func TestMemoryStoreGetWithinGrace(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1000, 0)
	s := NewMemoryStore(5 * time.Minute).WithClock(func() time.Time { return now })

	require.NoError(t, s.Save(ctx, snapshot("conn-1", "room-a", now)))
	require.NoError(t, s.Save(ctx, snapshot("conn-1", "room-b", now)))

	now = now.Add(4 * time.Minute)
	snap, err := s.Get(ctx, "conn-1", "room-a")
	require.NoError(t, err)
	assert.Equal(t, "room-a", snap.RoomID)
	assert.Equal(t, "Bia", snap.Player.Name)

	count, _ := s.Count(ctx)
	assert.Equal(t, 2, count, "one snapshot per room")
}

func TestMemoryStoreExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1000, 0)
	s := NewMemoryStore(5 * time.Minute).WithClock(func() time.Time { return now })

	require.NoError(t, s.Save(ctx, snapshot("conn-1", "room-a", now)))
	now = now.Add(5 * time.Minute)

	_, err := s.Get(ctx, "conn-1", "room-a")
	assert.ErrorIs(t, err, ErrNotFound)
	count, _ := s.Count(ctx)
	assert.Zero(t, count)
}

func TestMemoryStoreSweepAndDelete(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1000, 0)
	s := NewMemoryStore(5 * time.Minute).WithClock(func() time.Time { return now })

	require.NoError(t, s.Save(ctx, snapshot("old", "room-a", now)))
	now = now.Add(3 * time.Minute)
	require.NoError(t, s.Save(ctx, snapshot("new", "room-a", now)))
	require.NoError(t, s.Save(ctx, snapshot("gone", "room-a", now)))
	now = now.Add(3 * time.Minute)

	removed, err := s.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	require.NoError(t, s.Delete(ctx, "gone", "room-a"))
	_, err = s.Get(ctx, "gone", "room-a")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(ctx, "new", "room-a")
	assert.NoError(t, err)
}
