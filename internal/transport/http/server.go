package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/salachat/salachat-server/internal/config"
	"github.com/salachat/salachat-server/internal/core"
)

// NewServer builds the HTTP server: health check, websocket endpoint,
// read-only listings, and optional static assets for the web client.
func NewServer(hub *core.Hub, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))

	router.GET("/health", healthHandler)
	router.GET("/ws", gin.WrapH(NewWSHandler(hub, logger)))

	api := NewAPIHandlers(hub, logger)
	router.GET("/api/rooms", api.ListRooms)
	router.GET("/api/users", api.ListUsers)

	if cfg.StaticDir != "" {
		router.Static("/app", cfg.StaticDir)
	}

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
