package repository

import (
	"context"
	"time"

	"tictactoe_arena/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MatchRepository struct {
	db *pgxpool.Pool
}

func NewMatchRepository(db *pgxpool.Pool) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Record(ctx context.Context, m *domain.Match) error {
	var (
		id        int64
		createdAt time.Time
	)
	err := r.db.QueryRow(ctx,
		`INSERT INTO matches (room_id, player_x_id, player_x_name, player_o_id, player_o_name, winner, draw, moves)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		m.RoomID,
		m.PlayerXID,
		m.PlayerXName,
		m.PlayerOID,
		m.PlayerOName,
		m.Winner,
		m.Draw,
		m.Moves,
	).Scan(&id, &createdAt)
	if err != nil {
		return err
	}

	m.ID = id
	m.CreatedAt = createdAt
	return nil
}

func (r *MatchRepository) GetByPlayer(ctx context.Context, playerID string) ([]*domain.Match, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, room_id, player_x_id, player_x_name, player_o_id, player_o_name, winner, draw, moves, created_at
		 FROM matches
		 WHERE player_x_id = $1 OR player_o_id = $1
		 ORDER BY created_at DESC
		 LIMIT 100`,
		playerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Match
	for rows.Next() {
		m := &domain.Match{}
		if err := rows.Scan(
			&m.ID,
			&m.RoomID,
			&m.PlayerXID,
			&m.PlayerXName,
			&m.PlayerOID,
			&m.PlayerOName,
			&m.Winner,
			&m.Draw,
			&m.Moves,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		res = append(res, m)
	}

	return res, rows.Err()
}
