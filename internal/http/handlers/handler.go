package handlers

import (
	"tictactoe_arena/internal/repository"
	"tictactoe_arena/internal/ws"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB            *pgxpool.Pool // nil when persistence is disabled
	Hub           *ws.Hub
	Matches       *repository.MatchRepository
	AllowedOrigin string
}

func NewHandler(db *pgxpool.Pool, hub *ws.Hub, allowedOrigin string) *Handler {
	h := &Handler{
		DB:            db,
		Hub:           hub,
		AllowedOrigin: allowedOrigin,
	}
	if db != nil {
		h.Matches = repository.NewMatchRepository(db)
	}
	return h
}
