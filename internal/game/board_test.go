package game

import "testing"

func boardOf(cells ...Symbol) Board {
	var b Board
	copy(b[:], cells)
	return b
}

func TestEvaluateOpenBoard(t *testing.T) {
	var b Board
	if out := Evaluate(b); out.Terminal() {
		t.Fatalf("empty board evaluated terminal: %+v", out)
	}

	b[0] = X
	b[4] = O
	if out := Evaluate(b); out.Terminal() {
		t.Fatalf("mid-game board evaluated terminal: %+v", out)
	}
}

func TestEvaluateWinners(t *testing.T) {
	cases := []struct {
		name  string
		cells [3]int
		want  Symbol
	}{
		{"top row", [3]int{0, 1, 2}, X},
		{"middle row", [3]int{3, 4, 5}, O},
		{"bottom row", [3]int{6, 7, 8}, X},
		{"left column", [3]int{0, 3, 6}, X},
		{"middle column", [3]int{1, 4, 7}, O},
		{"right column", [3]int{2, 5, 8}, O},
		{"diagonal", [3]int{0, 4, 8}, X},
		{"anti-diagonal", [3]int{2, 4, 6}, O},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b Board
			for _, i := range tc.cells {
				b[i] = tc.want
			}
			out := Evaluate(b)
			if out.Winner != tc.want {
				t.Fatalf("Evaluate(%v) winner = %q; want %q", b, out.Winner, tc.want)
			}
			if out.Draw {
				t.Fatalf("winning board flagged as draw")
			}
		})
	}
}

func TestEvaluateDraw(t *testing.T) {
	// X O X / X O O / O X X - full, no line
	b := boardOf(X, O, X, X, O, O, O, X, X)

	out := Evaluate(b)
	if !out.Draw {
		t.Fatalf("full board without a line should draw, got %+v", out)
	}
	if out.Winner != Empty {
		t.Fatalf("draw carried winner %q", out.Winner)
	}
}

func TestEvaluateColumnWinScenario(t *testing.T) {
	// X,O,_,X,O,_,X,_,_ - X completes the left column
	b := boardOf(X, O, Empty, X, O, Empty, X)

	out := Evaluate(b)
	if out.Winner != X {
		t.Fatalf("expected X win via column 0-3-6, got %+v", out)
	}
}

func TestBoardFull(t *testing.T) {
	var b Board
	if b.Full() {
		t.Fatal("empty board reported full")
	}
	for i := range b {
		b[i] = X
	}
	if !b.Full() {
		t.Fatal("occupied board reported not full")
	}
}

func TestSymbolOther(t *testing.T) {
	if X.Other() != O || O.Other() != X {
		t.Fatal("Other must flip between X and O")
	}
}
