package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/HenryKun55/multiwordle/services/events"
	"github.com/HenryKun55/multiwordle/services/rooms"
	"github.com/HenryKun55/multiwordle/services/wordle"
	"github.com/gin-gonic/gin"
)

const queryTimeout = 2 * time.Second

// ConnectionCounter exposes the gateway's connection numbers
type ConnectionCounter interface {
	Count() int64
	Max() int64
}

// GameController serves read-only views of the registry. Reads go through
// the dispatcher so they never race with event handlers.
type GameController struct {
	Dispatcher  *events.Dispatcher
	Registry    *rooms.Registry
	Connections ConnectionCounter
}

// GetStats returns connection, room and player counts
func (gc *GameController) GetStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), queryTimeout)
	defer cancel()

	var stats rooms.Stats
	if err := gc.Dispatcher.Call(ctx, func(ctx context.Context) {
		stats = gc.Registry.Stats(ctx)
	}); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "server busy"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"connections": gin.H{
			"current": gc.Connections.Count(),
			"max":     gc.Connections.Max(),
		},
		"rooms":           stats.Rooms,
		"players":         stats.Players,
		"pendingSessions": stats.PendingSessions,
	})
}

// GetRoom returns the public summary of a room, never its target word
func (gc *GameController) GetRoom(c *gin.Context) {
	roomID := c.Param("roomId")
	if res := wordle.ValidateRoomID(roomID); !res.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": res.Message})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), queryTimeout)
	defer cancel()

	var (
		summary *rooms.Summary
		found   bool
	)
	if err := gc.Dispatcher.Call(ctx, func(context.Context) {
		summary, found = gc.Registry.Summary(roomID)
	}); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "server busy"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
