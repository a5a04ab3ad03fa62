package ws

import "tictactoe_arena/internal/game"

// Message is the envelope for every frame in both directions.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// PlayerInfo describes one seat in a room.
type PlayerInfo struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Symbol game.Symbol `json:"symbol"`
}

// client -> server

type CreateGamePayload struct {
	DisplayName string `json:"display_name"`
}

type JoinGamePayload struct {
	RoomID      string `json:"room_id"`
	DisplayName string `json:"display_name"`
}

type MakeMovePayload struct {
	RoomID string      `json:"room_id"`
	Cell   int         `json:"cell"`
	Symbol game.Symbol `json:"symbol"`
}

type RestartGamePayload struct {
	RoomID string `json:"room_id"`
}

// server -> client

type GameCreatedPayload struct {
	RoomID   string     `json:"room_id"`
	Player   PlayerInfo `json:"player"`
	IsHost   bool       `json:"is_host"`
	ShareURL string     `json:"share_url,omitempty"`
}

type GameJoinedPayload struct {
	RoomID  string       `json:"room_id"`
	Players []PlayerInfo `json:"players"`
	IsHost  bool         `json:"is_host"`
}

type GameStartPayload struct {
	RoomID      string       `json:"room_id"`
	Players     []PlayerInfo `json:"players"`
	Board       [9]string    `json:"board"`
	CurrentTurn game.Symbol  `json:"current_turn"`
	Status      string       `json:"status"`
}

// Snapshot is the full authoritative state pushed on every update.
// Partial deltas are never sent.
type Snapshot struct {
	Board       [9]string   `json:"board"`
	CurrentTurn game.Symbol `json:"current_turn"`
	Status      string      `json:"status"`
	Winner      game.Symbol `json:"winner"`
	IsDraw      bool        `json:"is_draw"`
}

type PlayerLeftPayload struct {
	PlayerID string `json:"player_id"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func boardStrings(b game.Board) [9]string {
	var out [9]string
	for i, c := range b {
		out[i] = string(c)
	}
	return out
}
