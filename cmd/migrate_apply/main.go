package main

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"tictactoe_arena/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// Applies every file in internal/migrations, in name order. Migrations
// are written to be idempotent so re-running is safe.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		logger.Fatal("failed to create pool", "error", err)
	}
	defer pool.Close()

	migDir := "internal/migrations"
	entries, err := os.ReadDir(migDir)
	if err != nil {
		logger.Fatal("failed to read migrations dir", "dir", migDir, "error", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		sql, err := os.ReadFile(filepath.Join(migDir, name))
		if err != nil {
			logger.Fatal("failed to read migration", "file", name, "error", err)
		}
		if _, err := pool.Exec(context.Background(), string(sql)); err != nil {
			logger.Fatal("failed to apply migration", "file", name, "error", err)
		}
		logger.Info("applied migration", "file", name)
	}
}
