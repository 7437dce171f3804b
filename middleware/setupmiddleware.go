package middleware

import (
	"net/http"
	"strings"

	"github.com/HenryKun55/multiwordle/config"
	"github.com/gin-contrib/cors"
	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
)

const socketPath = "/socket.io"

func SetUpMiddleware(r *gin.Engine, cfg *config.Config) {
	r.Use(RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CorsOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		ExposeHeaders:    []string{"X-Request-Id"},
		AllowCredentials: true,
	}))

	// socket.io polling frames are small and streamed
	r.Use(ginGzip.Gzip(ginGzip.DefaultCompression,
		ginGzip.WithExcludedPaths([]string{socketPath})))

	r.Use(NoStore())
}

// NoStore marks API responses as uncacheable. The socket.io transport sets
// its own headers.
func NoStore() gin.HandlerFunc {
	noStore := cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	})
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, socketPath) {
			c.Next()
			return
		}
		noStore(c)
	}
}
