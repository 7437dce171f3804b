package socketio_types

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryAcquireRespectsCeiling(t *testing.T) {
	s := NewSocketServer(10)

	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.TryAcquire() {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, admitted)
	assert.Equal(t, int64(10), s.Count())
	assert.False(t, s.TryAcquire())

	s.Release()
	assert.True(t, s.TryAcquire())
}

func TestUnknownConnectionIsNoop(t *testing.T) {
	s := NewSocketServer(1)
	s.EmitTo("ghost", "room:error", nil)
	s.Join("ghost", "sala")
	s.Leave("ghost", "sala")
	s.Broadcast("sala", "game:updated", nil)

	_, ok := s.GetConnection("ghost")
	assert.False(t, ok)
}
