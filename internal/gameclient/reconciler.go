// Package gameclient holds the client half of the protocol: a mirror of
// the authoritative room state for networked matches, and a fully local
// match against the built-in opponent.
package gameclient

import (
	"fmt"

	"tictactoe_arena/internal/game"
	"tictactoe_arena/internal/ws"
)

// Reconciler mirrors the last authoritative snapshot. It never applies
// a move locally and never runs the rule engine: for a networked match
// the server broadcast is the only truth, so local state is replaced
// wholesale on every frame.
type Reconciler struct {
	RoomID   string
	MySymbol game.Symbol
	IsHost   bool

	names  map[game.Symbol]string
	board  game.Board
	turn   game.Symbol
	status string
	winner game.Symbol
	draw   bool
}

func NewReconciler(roomID string, mySymbol game.Symbol, isHost bool) *Reconciler {
	return &Reconciler{
		RoomID:   roomID,
		MySymbol: mySymbol,
		IsHost:   isHost,
		names:    make(map[game.Symbol]string),
		turn:     game.X,
		status:   ws.StatusWaiting,
	}
}

// ApplyGameStart records the seating and the opening snapshot.
func (r *Reconciler) ApplyGameStart(p ws.GameStartPayload) {
	for _, pl := range p.Players {
		r.names[pl.Symbol] = pl.Name
	}
	r.board = parseBoard(p.Board)
	r.turn = p.CurrentTurn
	r.status = p.Status
	r.winner = game.Empty
	r.draw = false
}

// ApplySnapshot replaces the local view with the broadcast state.
// No merging: a stale mirror is simply overwritten.
func (r *Reconciler) ApplySnapshot(s ws.Snapshot) {
	r.board = parseBoard(s.Board)
	r.turn = s.CurrentTurn
	r.status = s.Status
	r.winner = s.Winner
	r.draw = s.IsDraw
}

// SelectCell turns a tap on a cell into a move request, or nothing.
// The guard is purely cosmetic; the server re-validates every move and
// silently drops anything this check would have let through.
func (r *Reconciler) SelectCell(cell int) (ws.MakeMovePayload, bool) {
	if cell < 0 || cell > 8 || r.board[cell] != game.Empty {
		return ws.MakeMovePayload{}, false
	}
	if r.status != ws.StatusPlaying || r.winner != game.Empty || r.draw {
		return ws.MakeMovePayload{}, false
	}
	if r.turn != r.MySymbol {
		return ws.MakeMovePayload{}, false
	}

	return ws.MakeMovePayload{
		RoomID: r.RoomID,
		Cell:   cell,
		Symbol: r.MySymbol,
	}, true
}

// Board returns the mirrored board.
func (r *Reconciler) Board() game.Board {
	return r.board
}

// Finished reports whether the mirrored match reached a terminal state.
func (r *Reconciler) Finished() bool {
	return r.winner != game.Empty || r.draw
}

// StatusText renders the display line for the current mirror.
func (r *Reconciler) StatusText() string {
	switch {
	case r.winner != game.Empty:
		return fmt.Sprintf("%s wins!", r.displayName(r.winner))
	case r.draw:
		return "It's a draw!"
	case r.status == ws.StatusWaiting:
		return "Waiting for an opponent..."
	case r.turn == r.MySymbol:
		return fmt.Sprintf("Your turn (%s)", r.MySymbol)
	default:
		return fmt.Sprintf("Waiting for %s...", r.displayName(r.turn))
	}
}

func (r *Reconciler) displayName(s game.Symbol) string {
	if name := r.names[s]; name != "" {
		return name
	}
	return string(s)
}

func parseBoard(cells [9]string) game.Board {
	var b game.Board
	for i, c := range cells {
		b[i] = game.Symbol(c)
	}
	return b
}
