package handlers

import (
	"context"
	"testing"
	"time"

	game_constants "github.com/HenryKun55/multiwordle/constants/game"
	"github.com/HenryKun55/multiwordle/models"
	"github.com/HenryKun55/multiwordle/services/events"
	"github.com/HenryKun55/multiwordle/services/ratelimit"
	"github.com/HenryKun55/multiwordle/services/rooms"
	"github.com/HenryKun55/multiwordle/services/session"
	"github.com/HenryKun55/multiwordle/services/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emission struct {
	to      string // connection id, or "room:<id>" for broadcasts
	event   string
	payload any
}

type fakeTransport struct {
	sent    []emission
	members map[string]map[string]bool
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{members: map[string]map[string]bool{}}
}

func (f *fakeTransport) EmitTo(connID, event string, payload any) {
	f.sent = append(f.sent, emission{connID, event, payload})
}

func (f *fakeTransport) Broadcast(roomID, event string, payload any) {
	f.sent = append(f.sent, emission{"room:" + roomID, event, payload})
}

func (f *fakeTransport) Join(connID, roomID string) {
	if f.members[roomID] == nil {
		f.members[roomID] = map[string]bool{}
	}
	f.members[roomID][connID] = true
}

func (f *fakeTransport) Leave(connID, roomID string) {
	delete(f.members[roomID], connID)
}

func (f *fakeTransport) events() []string {
	out := make([]string, len(f.sent))
	for i, e := range f.sent {
		out[i] = e.to + " " + e.event
	}
	return out
}

func (f *fakeTransport) reset() { f.sent = nil }

type fakeScheduler struct {
	scheduled []events.Event
	delays    []time.Duration
}

func (f *fakeScheduler) After(delay time.Duration, evt events.Event) *time.Timer {
	f.scheduled = append(f.scheduled, evt)
	f.delays = append(f.delays, delay)
	return nil
}

type setup struct {
	reg       *rooms.Registry
	transport *fakeTransport
	sched     *fakeScheduler
	dispatch  *events.Dispatcher
	ctx       context.Context
}

func newSetup(t *testing.T, target string) *setup {
	t.Helper()
	dict, err := words.NewDictionary([]string{target}, []string{"TESTE", "PLANO", "TEMPO"})
	require.NoError(t, err)
	reg := rooms.NewRegistry(dict, ratelimit.New(100, time.Minute), session.NewMemoryStore(5*time.Minute), rooms.Options{})

	s := &setup{
		reg:       reg,
		transport: newFakeTransport(),
		sched:     &fakeScheduler{},
		dispatch:  events.NewDispatcher(8),
		ctx:       context.Background(),
	}
	Register(s.dispatch, reg, s.transport)
	s.dispatch.Handle(game_constants.EventDisconnect, HandleDisconnect(reg, s.transport, s.sched))
	return s
}

func (s *setup) send(name, conn string, payload any) {
	s.dispatch.Process(s.ctx, events.Event{ID: "evt", Name: name, ConnID: conn, Origin: "origin-" + conn, Payload: payload})
}

func (s *setup) join(t *testing.T, room, name, conn string) {
	t.Helper()
	s.send(game_constants.EventJoinRoom, conn, map[string]any{"roomId": room, "playerName": name})
	require.Contains(t, s.transport.members[room], conn)
}

func TestJoinEmitsJoinedThenUpdate(t *testing.T) {
	s := newSetup(t, "TERMO")
	s.join(t, "sala", "Ana", "a")

	assert.Equal(t, []string{"a room:joined", "room:sala game:updated"}, s.transport.events())
	joined := s.transport.sent[0].payload.(models.RoomJoined)
	assert.Equal(t, "a", joined.PlayerID)
	assert.False(t, joined.Reconnected)
	assert.Equal(t, "sala", joined.GameState.RoomID)
	assert.Len(t, joined.GameState.Players, 1)
}

func TestJoinErrors(t *testing.T) {
	s := newSetup(t, "TERMO")

	s.send(game_constants.EventJoinRoom, "a", "not an object")
	s.send(game_constants.EventJoinRoom, "a", map[string]any{"roomId": "x", "playerName": "Ana"})
	s.join(t, "sala", "Ana", "a")
	s.transport.reset()
	s.send(game_constants.EventJoinRoom, "b", map[string]any{"roomId": "sala", "playerName": "ana"})

	require.Len(t, s.transport.sent, 1)
	assert.Equal(t, models.RoomError{Message: game_constants.MsgNameTaken}, s.transport.sent[0].payload)
	assert.NotContains(t, s.transport.members["sala"], "b")
}

func TestWinningGuessEmissionOrder(t *testing.T) {
	s := newSetup(t, "TERMO")
	s.join(t, "sala", "Ana", "a")
	s.join(t, "sala", "Bia", "b")
	s.transport.reset()

	s.send(game_constants.EventGuess, "a", map[string]any{"roomId": "sala", "word": "TESTE"})
	assert.Equal(t, []string{"a game:guess:result", "room:sala game:updated"}, s.transport.events())

	s.transport.reset()
	s.send(game_constants.EventGuess, "a", map[string]any{"roomId": "sala", "word": "termo"})
	assert.Equal(t, []string{"room:sala game:ended", "a game:guess:result", "room:sala game:updated"}, s.transport.events())

	ended := s.transport.sent[0].payload.(models.GameEnded)
	assert.Equal(t, "TERMO", ended.Word)
	require.NotNil(t, ended.Winner)
	assert.Equal(t, "a", ended.Winner.ID)
	assert.True(t, ended.FinalState.Ended)
	for _, p := range ended.FinalState.Players {
		if p.ID == "b" {
			assert.Equal(t, models.StatusLost, p.Status)
		}
	}

	result := s.transport.sent[1].payload.(models.GuessResult)
	assert.True(t, result.IsValid)
	assert.Equal(t, "TERMO", result.Guess.Word)
}

func TestInvalidGuessRepliesToSenderOnly(t *testing.T) {
	s := newSetup(t, "TERMO")
	s.join(t, "sala", "Ana", "a")
	s.transport.reset()

	s.send(game_constants.EventGuess, "a", map[string]any{"roomId": "sala", "word": "ZZZZZ"})
	require.Len(t, s.transport.sent, 1)
	result := s.transport.sent[0].payload.(models.GuessResult)
	assert.False(t, result.IsValid)
	assert.Nil(t, result.Guess)
	assert.Equal(t, game_constants.MsgWordNotInList, result.Message)

	s.transport.reset()
	s.send(game_constants.EventGuess, "a", map[string]any{"roomId": "nope", "word": "TERMO"})
	assert.Equal(t, []string{"a room:error"}, s.transport.events())
	assert.Equal(t, models.RoomError{Message: game_constants.MsgRoomNotFound}, s.transport.sent[0].payload)
}

func TestLiveTypingBroadcasts(t *testing.T) {
	s := newSetup(t, "TERMO")
	s.join(t, "sala", "Ana", "a")
	s.transport.reset()

	s.send(game_constants.EventLetter, "a", map[string]any{"roomId": "sala", "letter": "te"})
	s.send(game_constants.EventBackspace, "a", map[string]any{"roomId": "sala"})
	s.send(game_constants.EventLetter, "ghost", map[string]any{"roomId": "sala", "letter": "x"})

	require.Len(t, s.transport.sent, 2)
	assert.Equal(t, models.PlayerUpdated{PlayerID: "a", CurrentGuess: "TE"}, s.transport.sent[0].payload)
	assert.Equal(t, models.PlayerUpdated{PlayerID: "a", CurrentGuess: "T"}, s.transport.sent[1].payload)
}

func TestDisconnectAndReconnect(t *testing.T) {
	s := newSetup(t, "TERMO")
	s.join(t, "sala", "Ana", "a")
	s.join(t, "sala", "Bia", "b")
	s.send(game_constants.EventGuess, "b", map[string]any{"roomId": "sala", "word": "PLANO"})
	s.transport.reset()

	s.send(game_constants.EventDisconnect, "b", nil)
	assert.Equal(t, []string{"room:sala game:updated"}, s.transport.events())
	assert.Empty(t, s.sched.scheduled)

	s.transport.reset()
	s.send(game_constants.EventJoinRoom, "b2", map[string]any{"roomId": "sala", "playerName": "Bia", "reconnectToken": "b"})
	joined := s.transport.sent[0].payload.(models.RoomJoined)
	assert.True(t, joined.Reconnected)
	assert.Equal(t, "b2", joined.PlayerID)

	s.send(game_constants.EventDisconnect, "a", nil)
	s.send(game_constants.EventDisconnect, "b2", nil)
	require.Len(t, s.sched.scheduled, 1)
	assert.Equal(t, game_constants.EventExpireRoom, s.sched.scheduled[0].Name)
	assert.Equal(t, 5*time.Minute, s.sched.delays[0])

	s.dispatch.Process(s.ctx, s.sched.scheduled[0])
	_, ok := s.reg.Room("sala")
	assert.True(t, ok, "grace has not elapsed on the real clock")
}

func TestSweepDetachesSockets(t *testing.T) {
	s := newSetup(t, "TERMO")
	s.join(t, "sala", "Ana", "a")

	s.dispatch.Process(s.ctx, events.Event{Name: game_constants.EventSweep})
	assert.Contains(t, s.transport.members["sala"], "a", "fresh rooms survive the sweep")
}

func TestHandlerPanicReportsGenericError(t *testing.T) {
	s := newSetup(t, "TERMO")
	s.dispatch.Handle("boom", func(context.Context, events.Event) error { panic("bad state") })

	s.send("boom", "a", nil)
	assert.Equal(t, []string{"a room:error"}, s.transport.events())
	assert.Equal(t, models.RoomError{Message: game_constants.MsgInternalError}, s.transport.sent[0].payload)

	s.transport.reset()
	s.join(t, "sala", "Ana", "a")
	assert.Len(t, s.transport.sent, 2, "later events are unaffected")
}
