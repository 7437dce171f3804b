package models

// Inbound payloads

type JoinRoomPayload struct {
	RoomID         string `json:"roomId"`
	PlayerName     string `json:"playerName"`
	ReconnectToken string `json:"reconnectToken"`
	ReconnectID    string `json:"reconnectId"` // older clients
}

// Token returns whichever reconnect field the client sent
func (p JoinRoomPayload) Token() string {
	if p.ReconnectToken != "" {
		return p.ReconnectToken
	}
	return p.ReconnectID
}

type GuessPayload struct {
	RoomID string `json:"roomId"`
	Word   string `json:"word"`
}

type LetterPayload struct {
	RoomID string `json:"roomId"`
	Letter string `json:"letter"`
}

type BackspacePayload struct {
	RoomID string `json:"roomId"`
}

// Outbound payloads

type RoomJoined struct {
	PlayerID    string    `json:"playerId"`
	GameState   GameState `json:"gameState"`
	Reconnected bool      `json:"reconnected,omitempty"`
}

type RoomError struct {
	Message string `json:"message"`
}

type GuessResult struct {
	PlayerID string `json:"playerId"`
	Guess    *Guess `json:"guess"`
	IsValid  bool   `json:"isValid"`
	Message  string `json:"message,omitempty"`
}

type PlayerUpdated struct {
	PlayerID     string `json:"playerId"`
	CurrentGuess string `json:"currentGuess"`
}

type GameEnded struct {
	Winner     *Player   `json:"winner"`
	Word       string    `json:"word"`
	FinalState GameState `json:"finalState"`
}

type ServerFull struct {
	Message            string `json:"message"`
	CurrentConnections int64  `json:"currentConnections"`
	MaxConnections     int64  `json:"maxConnections"`
}
