package gameclient

import (
	"fmt"
	"sync"
	"time"

	"tictactoe_arena/internal/game"
)

// DefaultThinkDelay is the cosmetic pause before the computer answers.
const DefaultThinkDelay = 500 * time.Millisecond

// LocalState is the view handed to the update callback after every
// applied move.
type LocalState struct {
	Board    game.Board
	Turn     game.Symbol
	Outcome  game.Outcome
	Thinking bool
}

// LocalGame runs a single-process match against the built-in opponent.
// There is no remote authority here, so unlike the networked mirror it
// runs the rule engine itself after every move. The human always plays
// X and moves first.
type LocalGame struct {
	mu       sync.Mutex
	board    game.Board
	turn     game.Symbol
	outcome  game.Outcome
	thinking bool
	closed   bool

	delay    time.Duration
	timer    *time.Timer
	onUpdate func(LocalState)
}

const humanSymbol = game.X

func NewLocalGame(delay time.Duration, onUpdate func(LocalState)) *LocalGame {
	return &LocalGame{
		turn:     game.X,
		delay:    delay,
		onUpdate: onUpdate,
	}
}

// HumanMove applies the human's move and, if the match is still open,
// schedules the computer's answer after the thinking delay. Returns
// false when the move is not currently legal.
func (g *LocalGame) HumanMove(cell int) bool {
	g.mu.Lock()

	if g.closed || g.turn != humanSymbol || g.outcome.Terminal() {
		g.mu.Unlock()
		return false
	}
	if cell < 0 || cell > 8 || g.board[cell] != game.Empty {
		g.mu.Unlock()
		return false
	}

	g.applyLocked(cell, humanSymbol)

	answer := !g.outcome.Terminal()
	if answer {
		g.thinking = true
	}

	state := g.stateLocked()
	g.mu.Unlock()

	g.notify(state)

	// Arm the timer only after the human's update went out, so the
	// computer's update can never overtake it.
	if answer {
		g.mu.Lock()
		if !g.closed {
			g.timer = time.AfterFunc(g.delay, g.computerMove)
		}
		g.mu.Unlock()
	}
	return true
}

func (g *LocalGame) computerMove() {
	g.mu.Lock()

	if g.closed || g.outcome.Terminal() || g.turn == humanSymbol {
		g.thinking = false
		g.mu.Unlock()
		return
	}

	cell := game.FindBestMove(g.board, g.turn)
	if cell < 0 {
		g.thinking = false
		g.mu.Unlock()
		return
	}

	g.applyLocked(cell, g.turn)
	g.thinking = false

	state := g.stateLocked()
	g.mu.Unlock()

	g.notify(state)
}

// Reset clears the board for a rematch.
func (g *LocalGame) Reset() {
	g.mu.Lock()
	if g.timer != nil {
		g.timer.Stop()
	}
	g.board = game.Board{}
	g.turn = game.X
	g.outcome = game.Outcome{}
	g.thinking = false

	state := g.stateLocked()
	g.mu.Unlock()

	g.notify(state)
}

// Close cancels any pending computer move. The match cannot be used
// afterwards.
func (g *LocalGame) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	if g.timer != nil {
		g.timer.Stop()
	}
}

// State returns the current view.
func (g *LocalGame) State() LocalState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateLocked()
}

// StatusText renders the display line for the current state.
func (g *LocalGame) StatusText() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch {
	case g.outcome.Winner == humanSymbol:
		return "You win!"
	case g.outcome.Winner != game.Empty:
		return "Computer wins!"
	case g.outcome.Draw:
		return "It's a draw!"
	case g.thinking:
		return "Computer is thinking..."
	default:
		return fmt.Sprintf("Your turn (%s)", humanSymbol)
	}
}

func (g *LocalGame) applyLocked(cell int, s game.Symbol) {
	g.board[cell] = s
	g.turn = s.Other()
	g.outcome = game.Evaluate(g.board)
}

func (g *LocalGame) stateLocked() LocalState {
	return LocalState{
		Board:    g.board,
		Turn:     g.turn,
		Outcome:  g.outcome,
		Thinking: g.thinking,
	}
}

func (g *LocalGame) notify(state LocalState) {
	if g.onUpdate != nil {
		g.onUpdate(state)
	}
}
