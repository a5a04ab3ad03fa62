package domain

import "time"

// Match is the durable record of one finished game. Only terminal
// matches are written; live session state never leaves memory.
type Match struct {
	ID          int64     `db:"id" json:"id"`
	RoomID      string    `db:"room_id" json:"room_id"`
	PlayerXID   string    `db:"player_x_id" json:"player_x_id"`
	PlayerXName string    `db:"player_x_name" json:"player_x_name"`
	PlayerOID   string    `db:"player_o_id" json:"player_o_id"`
	PlayerOName string    `db:"player_o_name" json:"player_o_name"`
	Winner      *string   `db:"winner" json:"winner,omitempty"` // "X" or "O"; nil on draw
	Draw        bool      `db:"draw" json:"draw"`
	Moves       int       `db:"moves" json:"moves"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
