package socketio_utils

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zishang520/socket.io/v2/socket"
)

var ErrEmptyPayload = errors.New("empty payload")

// DecodePayload converts the generic value socket.io hands to listeners
// into a typed struct.
func DecodePayload(raw any, out any) error {
	if raw == nil {
		return ErrEmptyPayload
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding payload: %w", err)
	}
	return nil
}

// FirstArg returns the first listener argument, or nil
func FirstArg(args []any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

// ClientOrigin identifies the remote peer for rate limiting
func ClientOrigin(client *socket.Socket) string {
	if hs := client.Handshake(); hs != nil && hs.Address != "" {
		return hs.Address
	}
	return string(client.Id())
}
