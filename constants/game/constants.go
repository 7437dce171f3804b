package game_constants

import "time"

const MaxAttempts = 6
const WordLength = 5
const MaxInputLength = 100 // every user string is clipped to this before validation

// Name and room id limits
const (
	MinPlayerNameLength = 2
	MaxPlayerNameLength = 20
	MinRoomIDLength     = 3
	MaxRoomIDLength     = 30
)

// Defaults, overridable through config
const (
	DefaultMaxGlobalConnections = 100
	DefaultMaxPlayersPerRoom    = 1000
	DefaultRateLimitWindow      = 60 * time.Second
	DefaultRateLimitMax         = 100
	DefaultRoomIdleTimeout      = time.Hour
	DefaultEmptyRoomGrace       = 5 * time.Minute
	DefaultReconnectGrace       = 5 * time.Minute
	DefaultSweepInterval        = 10 * time.Minute
	ScorePerRemainingAttempt    = 100
)

// Inbound socket events
const (
	EventJoinRoom   = "join:room"
	EventGuess      = "game:guess"
	EventLetter     = "game:letter"
	EventBackspace  = "game:backspace"
	EventDisconnect = "disconnect"
	EventExpireRoom = "room:expire"  // internal, posted by timers
	EventSweep      = "server:sweep" // internal, posted by timers
)

// Outbound socket events
const (
	EventRoomJoined    = "room:joined"
	EventRoomError     = "room:error"
	EventGameUpdated   = "game:updated"
	EventGuessResult   = "game:guess:result"
	EventPlayerUpdated = "player:updated"
	EventGameEnded     = "game:ended"
	EventServerFull    = "server:full"
)

// User-facing messages. Clients display them verbatim.
const (
	MsgRateLimited     = "Muitas requisições. Aguarde um momento."
	MsgRoomFull        = "Sala cheia! Máximo de jogadores atingido."
	MsgNameTaken       = "Esse nome já está em uso nesta sala."
	MsgAlreadyInRoom   = "Você já está nesta sala."
	MsgRoomNotFound    = "Sala não encontrada"
	MsgPlayerNotFound  = "Jogador não encontrado"
	MsgGameEnded       = "O jogo já terminou!"
	MsgWordNotInList   = "Palavra não encontrada no dicionário"
	MsgWordLength      = "A palavra deve ter 5 letras"
	MsgWordLettersOnly = "A palavra deve conter apenas letras"
	MsgNameEmpty       = "Nome não pode estar vazio"
	MsgNameTooShort    = "Nome deve ter pelo menos 2 caracteres"
	MsgNameTooLong     = "Nome deve ter no máximo 20 caracteres"
	MsgNameInvalid     = "Nome contém caracteres inválidos"
	MsgRoomIDEmpty     = "ID da sala não pode estar vazio"
	MsgRoomIDTooShort  = "ID da sala deve ter pelo menos 3 caracteres"
	MsgRoomIDTooLong   = "ID da sala deve ter no máximo 30 caracteres"
	MsgRoomIDInvalid   = "ID da sala contém caracteres inválidos"
	MsgServerFull      = "Servidor cheio! Tente novamente em alguns minutos."
	MsgJoinFailed      = "Erro ao entrar na sala"
	MsgGuessFailed     = "Erro ao processar tentativa"
	MsgInvalidPayload  = "Dados inválidos"
	MsgInternalError   = "Erro interno do servidor"
)
