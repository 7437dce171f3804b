package models

import "time"

// SessionSnapshot keeps a disconnected player's state for the reconnection
// grace window. Token is the connection id the player had when it left.
type SessionSnapshot struct {
	Token          string    `json:"token"`
	RoomID         string    `json:"roomId"`
	Player         Player    `json:"player"`
	DisconnectedAt time.Time `json:"disconnectedAt"`
}
