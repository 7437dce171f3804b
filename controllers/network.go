package controllers

import (
	"net/http"
	"time"

	"github.com/HenryKun55/multiwordle/services/words"
	"github.com/HenryKun55/multiwordle/utils"
	"github.com/gin-gonic/gin"
)

// Ping just answers, used by load balancers
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

type HealthInfo struct {
	Env       string
	StartedAt time.Time
	Words     func() words.Stats
}

// Healthz reports liveness, uptime and the loaded word lists
func Healthz(info HealthInfo) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := gin.H{
			"status":    "ok",
			"env":       info.Env,
			"uptime":    utils.FormatUptime(time.Since(info.StartedAt)),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}
		if info.Words != nil {
			resp["words"] = info.Words()
		}
		c.JSON(http.StatusOK, resp)
	}
}
