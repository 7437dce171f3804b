package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/HenryKun55/multiwordle/services/events"
	"github.com/HenryKun55/multiwordle/services/ratelimit"
	"github.com/HenryKun55/multiwordle/services/rooms"
	"github.com/HenryKun55/multiwordle/services/session"
	"github.com/HenryKun55/multiwordle/services/words"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedConnections struct{ current, max int64 }

func (f fixedConnections) Count() int64 { return f.current }
func (f fixedConnections) Max() int64   { return f.max }

func setupRouter(t *testing.T) (*gin.Engine, *rooms.Registry, *events.Dispatcher) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dict, err := words.NewDictionary([]string{"TERMO"}, nil)
	require.NoError(t, err)
	reg := rooms.NewRegistry(dict, ratelimit.New(100, time.Minute), session.NewMemoryStore(5*time.Minute), rooms.Options{})

	d := events.NewDispatcher(8)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go d.Run(ctx)

	gc := &GameController{Dispatcher: d, Registry: reg, Connections: fixedConnections{3, 100}}
	router := gin.New()
	router.GET("/ping", Ping)
	router.GET("/healthz", Healthz(HealthInfo{Env: "test", StartedAt: time.Now(), Words: dict.Stats}))
	router.GET("/stats", gc.GetStats)
	router.GET("/rooms/:roomId", gc.GetRoom)
	return router, reg, d
}

func get(router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]any
	json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestPing(t *testing.T) {
	router, _, _ := setupRouter(t)
	w, body := get(router, "/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", body["message"])
}

func TestHealthz(t *testing.T) {
	router, _, _ := setupRouter(t)
	w, body := get(router, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["env"])
	assert.Equal(t, float64(1), body["words"].(map[string]any)["targets"])
}

func TestStatsAndRoom(t *testing.T) {
	router, reg, d := setupRouter(t)

	var joinErr error
	require.NoError(t, d.Call(context.Background(), func(ctx context.Context) {
		_, joinErr = reg.JoinOrCreate(ctx, rooms.JoinRequest{RoomID: "sala", PlayerName: "Ana", ConnID: "a", Origin: "o"})
	}))
	require.NoError(t, joinErr)

	w, body := get(router, "/stats")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["rooms"])
	assert.Equal(t, float64(1), body["players"])
	assert.Equal(t, float64(3), body["connections"].(map[string]any)["current"])

	w, body = get(router, "/rooms/sala")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sala", body["id"])
	assert.Equal(t, float64(1), body["players"])
	assert.NotContains(t, w.Body.String(), "TERMO")

	w, _ = get(router, "/rooms/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, body = get(router, "/rooms/a_b")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, body["error"])
}
