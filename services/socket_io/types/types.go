package socketio_types

import (
	"sync"
	"sync/atomic"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer is a struct that contains the socket.io server and a map of socket connections.
// It also enforces the global connection ceiling.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track connection id -> socket connections
	Connections map[string]*socket.Socket
	mutex       sync.RWMutex

	active atomic.Int64
	max    int64
}

func NewSocketServer(maxConnections int64) *SocketServer {
	return &SocketServer{
		Connections: make(map[string]*socket.Socket),
		max:         maxConnections,
	}
}

// TryAcquire reserves a slot under the ceiling. Every successful call must be
// paired with Release.
func (s *SocketServer) TryAcquire() bool {
	for {
		cur := s.active.Load()
		if cur >= s.max {
			return false
		}
		if s.active.CompareAndSwap(cur, cur+1) {
			return true
		}
	}
}

func (s *SocketServer) Release() {
	s.active.Add(-1)
}

func (s *SocketServer) Count() int64 {
	return s.active.Load()
}

func (s *SocketServer) Max() int64 {
	return s.max
}

// Add methods to manage connections
func (s *SocketServer) AddConnection(connID string, socket *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.Connections[connID] = socket
}

func (s *SocketServer) RemoveConnection(connID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.Connections, connID)
}

func (s *SocketServer) GetConnection(connID string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	socket, exists := s.Connections[connID]
	return socket, exists
}

// EmitTo sends an event to a single connection, if it is still open
func (s *SocketServer) EmitTo(connID, event string, payload any) {
	if client, ok := s.GetConnection(connID); ok {
		client.Emit(event, payload)
	}
}

// Broadcast sends an event to every connection joined to roomID
func (s *SocketServer) Broadcast(roomID, event string, payload any) {
	if s.Sio_server == nil {
		return
	}
	s.Sio_server.To(socket.Room(roomID)).Emit(event, payload)
}

func (s *SocketServer) Join(connID, roomID string) {
	if client, ok := s.GetConnection(connID); ok {
		client.Join(socket.Room(roomID))
	}
}

func (s *SocketServer) Leave(connID, roomID string) {
	if client, ok := s.GetConnection(connID); ok {
		client.Leave(socket.Room(roomID))
	}
}
