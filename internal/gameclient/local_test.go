package gameclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tictactoe_arena/internal/game"
)

// zero delay keeps the computer's answer on a background timer but
// makes it arrive immediately
func newLocal(updates chan LocalState) *LocalGame {
	return NewLocalGame(0, func(s LocalState) { updates <- s })
}

func waitUpdate(t *testing.T, updates chan LocalState) LocalState {
	t.Helper()
	select {
	case s := <-updates:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for an update")
		return LocalState{}
	}
}

func TestHumanMoveThenComputerAnswers(t *testing.T) {
	updates := make(chan LocalState, 4)
	g := newLocal(updates)
	defer g.Close()

	require.True(t, g.HumanMove(0))

	s := waitUpdate(t, updates)
	require.Equal(t, game.X, s.Board[0])
	require.Equal(t, game.O, s.Turn)
	require.True(t, s.Thinking)

	s = waitUpdate(t, updates)
	require.False(t, s.Thinking)
	require.Equal(t, game.X, s.Turn)
	// the policy takes the free center after a corner opening
	require.Equal(t, game.O, s.Board[4])
}

func TestHumanMoveRejectsIllegal(t *testing.T) {
	updates := make(chan LocalState, 8)
	g := newLocal(updates)
	defer g.Close()

	require.False(t, g.HumanMove(-1))
	require.False(t, g.HumanMove(9))

	require.True(t, g.HumanMove(0))
	waitUpdate(t, updates) // human move applied
	waitUpdate(t, updates) // computer answered

	// occupied cells stay rejected
	require.False(t, g.HumanMove(0))
	require.False(t, g.HumanMove(4))
}

func TestHumanMoveRejectedWhileComputerThinks(t *testing.T) {
	updates := make(chan LocalState, 4)
	g := NewLocalGame(time.Hour, func(s LocalState) { updates <- s })
	defer g.Close()

	require.True(t, g.HumanMove(0))
	waitUpdate(t, updates)

	// turn belongs to the computer until its timer fires
	require.False(t, g.HumanMove(1))
}

func TestResetClearsBoard(t *testing.T) {
	updates := make(chan LocalState, 8)
	g := newLocal(updates)
	defer g.Close()

	require.True(t, g.HumanMove(0))
	waitUpdate(t, updates)
	waitUpdate(t, updates)

	g.Reset()
	s := waitUpdate(t, updates)
	require.Equal(t, game.Board{}, s.Board)
	require.Equal(t, game.X, s.Turn)
	require.False(t, s.Outcome.Terminal())
	require.Equal(t, "Your turn (X)", g.StatusText())
}

func TestCloseCancelsPendingComputerMove(t *testing.T) {
	updates := make(chan LocalState, 4)
	g := NewLocalGame(500*time.Millisecond, func(s LocalState) { updates <- s })

	require.True(t, g.HumanMove(0))
	waitUpdate(t, updates)

	g.Close()
	time.Sleep(700 * time.Millisecond)

	select {
	case s := <-updates:
		t.Fatalf("computer moved after Close: %+v", s)
	default:
	}
}

func TestStatusTextOutcomes(t *testing.T) {
	g := NewLocalGame(time.Hour, nil)
	defer g.Close()

	require.Equal(t, "Your turn (X)", g.StatusText())

	require.True(t, g.HumanMove(0))
	require.Equal(t, "Computer is thinking...", g.StatusText())
}
