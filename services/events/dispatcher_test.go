package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsRunInOrder(t *testing.T) {
	d := NewDispatcher(16)
	var seen []string
	d.Handle("note", func(_ context.Context, evt Event) error {
		seen = append(seen, evt.Payload.(string))
		return nil
	})

	for _, s := range []string{"a", "b", "c"} {
		require.True(t, d.Post(Event{Name: "note", Payload: s}))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Run(ctx)

	require.NoError(t, d.Call(ctx, func(context.Context) {}))
	assert.Equal(t, []string{"a", "b", "c"}, seen)
}

func TestFailuresAreIsolated(t *testing.T) {
	d := NewDispatcher(4)
	var failed []string
	d.OnError(func(evt Event, err error) {
		failed = append(failed, evt.Name+": "+err.Error())
	})
	d.Handle("boom", func(context.Context, Event) error { panic("kaboom") })
	d.Handle("bad", func(context.Context, Event) error { return errors.New("nope") })
	ran := false
	d.Handle("ok", func(context.Context, Event) error { ran = true; return nil })

	ctx := context.Background()
	d.Process(ctx, Event{Name: "boom"})
	d.Process(ctx, Event{Name: "bad"})
	d.Process(ctx, Event{Name: "unknown"})
	d.Process(ctx, Event{Name: "ok"})

	require.Len(t, failed, 2)
	assert.Contains(t, failed[0], "kaboom")
	assert.Equal(t, "bad: nope", failed[1])
	assert.True(t, ran)
}

func TestPostAssignsID(t *testing.T) {
	d := NewDispatcher(1)
	require.True(t, d.Post(Event{Name: "x"}))
	evt := <-d.queue
	assert.NotEmpty(t, evt.ID)
}

func TestAfterAndEvery(t *testing.T) {
	d := NewDispatcher(8)
	var mu sync.Mutex
	counts := map[string]int{}
	handler := func(_ context.Context, evt Event) error {
		mu.Lock()
		counts[evt.Name]++
		mu.Unlock()
		return nil
	}
	d.Handle("later", handler)
	d.Handle("tick", handler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Run(ctx)

	d.After(10*time.Millisecond, Event{Name: "later"})
	d.Every(ctx, 5*time.Millisecond, Event{Name: "tick"})

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return counts["later"] == 1 && counts["tick"] >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestStoppedDispatcherRejects(t *testing.T) {
	d := NewDispatcher(1)
	d.Stop()
	d.Stop()
	assert.False(t, d.Post(Event{Name: "x"}))
	assert.ErrorIs(t, d.Call(context.Background(), func(context.Context) {}), ErrStopped)
}
