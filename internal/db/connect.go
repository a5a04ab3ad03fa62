package db

import (
	"context"

	"tictactoe_arena/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect builds the pool for match-history storage. Callers skip it
// entirely when no DSN is configured.
func Connect(dsn string) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		logger.Fatal("failed to ping database", "error", err)
	}

	logger.Info("database connected")
	return pool
}
