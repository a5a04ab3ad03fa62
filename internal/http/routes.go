package http

import (
	"tictactoe_arena/internal/config"
	"tictactoe_arena/internal/http/handlers"
	"tictactoe_arena/internal/http/middleware"
	"tictactoe_arena/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes wires the REST surface and the websocket endpoint.
// db may be nil; the hub then runs without match history.
func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config) *ws.Hub {
	var recorder ws.MatchRecorder
	h := handlers.NewHandler(db, nil, cfg.AllowedOrigin)
	if h.Matches != nil {
		recorder = h.Matches
	}

	hub := ws.NewHub(recorder, cfg.AllowedOrigin)
	h.Hub = hub

	healthHandler := handlers.NewHealthHandler(h, Version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	{
		v1.POST("/auth/guest", h.GuestAuth)
		v1.GET("/rooms/:code", h.RoomInfo)
		v1.GET("/players/:player_id/matches", h.MatchHistory)
	}

	// WebSocket for matches
	r.GET("/ws", h.WS())

	return hub
}

// Version is stamped at build time via -ldflags.
var Version = "dev"
