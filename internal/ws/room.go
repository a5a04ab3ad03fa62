package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"tictactoe_arena/internal/domain"
	"tictactoe_arena/internal/game"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room is full")
)

// MatchRecorder persists finished matches. A nil recorder disables
// persistence; live sessions never touch storage.
type MatchRecorder interface {
	Record(ctx context.Context, m *domain.Match) error
}

// Room is one match instance. All session state is guarded by mu; every
// mutation happens under the write lock, which gives the room a single
// writer without serializing the whole server.
type Room struct {
	ID string

	mu      sync.RWMutex
	players []PlayerInfo
	clients map[string]*Client

	board   game.Board
	turn    game.Symbol
	status  string
	outcome game.Outcome
	moves   int

	createdAt time.Time
	matches   MatchRecorder
}

func NewRoom(id string, matches MatchRecorder) *Room {
	return &Room{
		ID:        id,
		clients:   make(map[string]*Client),
		turn:      game.X,
		status:    StatusWaiting,
		createdAt: time.Now(),
		matches:   matches,
	}
}

// AddCreator seats the creating player as X. Only called on a fresh room.
func (r *Room) AddCreator(c *Client, name string) PlayerInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := PlayerInfo{ID: c.ID, Name: name, Symbol: game.X}
	r.players = append(r.players, p)
	r.clients[c.ID] = c
	return p
}

// Join seats a second player and starts the match. The joiner takes
// whichever symbol is free so a rejoin after a disconnect never
// collides with the survivor's symbol.
func (r *Room) Join(c *Client, name string) (GameJoinedPayload, error) {
	r.mu.Lock()

	if len(r.players) >= 2 {
		r.mu.Unlock()
		return GameJoinedPayload{}, ErrRoomFull
	}

	symbol := game.X
	for _, p := range r.players {
		if p.Symbol == game.X {
			symbol = game.O
		}
	}

	p := PlayerInfo{ID: c.ID, Name: name, Symbol: symbol}
	r.players = append(r.players, p)
	r.clients[c.ID] = c

	if len(r.players) == 2 {
		if r.status == StatusFinished {
			// refilling a concluded room starts a fresh match; the old
			// result must not leak into the new pairing
			r.resetLocked()
		} else {
			r.status = StatusPlaying
		}
	}

	ack := GameJoinedPayload{
		RoomID:  r.ID,
		Players: append([]PlayerInfo(nil), r.players...),
		IsHost:  false,
	}

	r.broadcastLocked(Message{Type: MsgPlayerJoined, Payload: p})
	r.broadcastLocked(Message{Type: MsgGameStart, Payload: GameStartPayload{
		RoomID:      r.ID,
		Players:     ack.Players,
		Board:       boardStrings(r.board),
		CurrentTurn: r.turn,
		Status:      r.status,
	}})

	r.mu.Unlock()
	return ack, nil
}

// ApplyMove validates and applies one move. Invalid requests (wrong
// turn, occupied cell, match not running, sender not holding the
// claimed symbol) are dropped without a reply: stale and forged frames
// are noise, the broadcast state is the only truth clients get.
func (r *Room) ApplyMove(playerID string, cell int, symbol game.Symbol) {
	r.mu.Lock()

	if r.status != StatusPlaying || cell < 0 || cell > 8 || r.board[cell] != game.Empty || symbol != r.turn {
		r.mu.Unlock()
		return
	}
	if p, ok := r.playerLocked(playerID); !ok || p.Symbol != symbol {
		r.mu.Unlock()
		return
	}

	r.board[cell] = symbol
	r.turn = symbol.Other()
	r.moves++
	movesTotal.Inc()

	r.outcome = game.Evaluate(r.board)
	if r.outcome.Terminal() {
		r.status = StatusFinished
	}

	log.Printf("Room.ApplyMove: room=%s player=%s cell=%d symbol=%s status=%s", r.ID, playerID, cell, symbol, r.status)

	r.broadcastLocked(Message{Type: MsgGameUpdate, Payload: r.snapshotLocked()})

	finished := r.status == StatusFinished
	var record *domain.Match
	if finished {
		if r.outcome.Draw {
			matchesFinished.WithLabelValues("draw").Inc()
		} else {
			matchesFinished.WithLabelValues("win").Inc()
		}
		record = r.matchRecordLocked()
	}
	r.mu.Unlock()

	if finished && record != nil {
		r.saveResult(record)
	}
}

// Restart resets the board for the seated players. Unknown senders
// could not have reached this point; there is deliberately no check on
// which participant asked. A half-empty room stays as it is.
func (r *Room) Restart() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.players) != 2 {
		return
	}

	r.resetLocked()

	log.Printf("Room.Restart: room=%s", r.ID)

	r.broadcastLocked(Message{Type: MsgGameUpdate, Payload: r.snapshotLocked()})
}

// RemovePlayer drops a seat on disconnect. It reports whether the room
// is now empty (the caller deletes it); otherwise the remaining player
// gets a player_left notice and the match simply keeps running with an
// absent opponent.
func (r *Room) RemovePlayer(playerID string) (empty bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.clients, playerID)
	for i, p := range r.players {
		if p.ID == playerID {
			r.players = append(r.players[:i], r.players[i+1:]...)
			break
		}
	}

	if len(r.players) == 0 {
		return true
	}

	r.broadcastLocked(Message{Type: MsgPlayerLeft, Payload: PlayerLeftPayload{PlayerID: playerID}})
	return false
}

// Players returns a copy of the current seating.
func (r *Room) Players() []PlayerInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]PlayerInfo(nil), r.players...)
}

// Status returns the room's lifecycle state.
func (r *Room) Status() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status
}

// Snapshot returns the full authoritative state.
func (r *Room) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked()
}

func (r *Room) resetLocked() {
	r.board = game.Board{}
	r.turn = game.X
	r.outcome = game.Outcome{}
	r.status = StatusPlaying
	r.moves = 0
}

func (r *Room) playerLocked(id string) (PlayerInfo, bool) {
	for _, p := range r.players {
		if p.ID == id {
			return p, true
		}
	}
	return PlayerInfo{}, false
}

func (r *Room) snapshotLocked() Snapshot {
	return Snapshot{
		Board:       boardStrings(r.board),
		CurrentTurn: r.turn,
		Status:      r.status,
		Winner:      r.outcome.Winner,
		IsDraw:      r.outcome.Draw,
	}
}

// broadcastLocked pushes a frame to every connected member, in issue
// order. Sends are fire-and-forget: a client whose buffer is full
// misses the frame and resyncs on the next one.
func (r *Room) broadcastLocked(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Room.broadcast: marshal error: %v", err)
		return
	}

	for id, c := range r.clients {
		select {
		case c.Send <- data:
		default:
			log.Printf("Room.broadcast: room=%s dropping frame for slow client=%s type=%s", r.ID, id, msg.Type)
		}
	}
}

func (r *Room) matchRecordLocked() *domain.Match {
	if r.matches == nil {
		return nil
	}

	m := &domain.Match{
		RoomID: r.ID,
		Moves:  r.moves,
		Draw:   r.outcome.Draw,
	}
	if r.outcome.Winner != game.Empty {
		w := string(r.outcome.Winner)
		m.Winner = &w
	}
	for _, p := range r.players {
		switch p.Symbol {
		case game.X:
			m.PlayerXID, m.PlayerXName = p.ID, p.Name
		case game.O:
			m.PlayerOID, m.PlayerOName = p.ID, p.Name
		}
	}
	return m
}

func (r *Room) saveResult(m *domain.Match) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.matches.Record(ctx, m); err != nil {
			log.Printf("Room.saveResult: match store failed: %v", err)
		}
	}()
}
