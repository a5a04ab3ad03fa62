package game

import "testing"

func TestFindBestMoveTakesWin(t *testing.T) {
	// O can complete the top row at 2; blocking X at 6 must lose priority.
	b := boardOf(O, O, Empty, X, X, Empty, Empty, Empty, Empty)

	if got := FindBestMove(b, O); got != 2 {
		t.Fatalf("FindBestMove = %d; want winning cell 2", got)
	}
}

func TestFindBestMoveBlocksOpponent(t *testing.T) {
	// X threatens the left column at 6; O has no win of its own.
	b := boardOf(X, O, Empty, X, Empty, Empty, Empty, Empty, Empty)

	if got := FindBestMove(b, O); got != 6 {
		t.Fatalf("FindBestMove = %d; want blocking cell 6", got)
	}
}

func TestFindBestMovePrefersCenter(t *testing.T) {
	b := boardOf(X)

	if got := FindBestMove(b, O); got != 4 {
		t.Fatalf("FindBestMove = %d; want center 4", got)
	}
}

func TestFindBestMoveFallsBackToCorner(t *testing.T) {
	// Center taken, no threats on either side.
	b := boardOf(Empty, Empty, Empty, Empty, X)

	got := FindBestMove(b, O)
	switch got {
	case 0, 2, 6, 8:
	default:
		t.Fatalf("FindBestMove = %d; want a corner", got)
	}
}

func TestFindBestMoveFallsBackToEdge(t *testing.T) {
	// Center and every corner taken, edge 3 the only free cell, and no
	// line winnable through it for either player.
	b := boardOf(X, O, X, Empty, X, O, O, X, O)

	if got := FindBestMove(b, O); got != 3 {
		t.Fatalf("FindBestMove = %d; want last free edge 3", got)
	}
}

func TestFindBestMoveFullBoard(t *testing.T) {
	b := boardOf(X, O, X, X, O, O, O, X, X)

	if got := FindBestMove(b, X); got != -1 {
		t.Fatalf("FindBestMove on full board = %d; want -1", got)
	}
}
