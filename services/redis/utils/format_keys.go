package utils

/**
 * This file contains utility functions to format the keys for Redis
 * (key, value) pairs. It avoids having to call "fmt.Sprintf(...)"
 * with the same format string every time.
 */

import "fmt"

const SessionKeyPattern = "session:*"

func FormatSessionKey(roomID string, token string) string {
	return fmt.Sprintf("session:%s:%s", roomID, token)
}
