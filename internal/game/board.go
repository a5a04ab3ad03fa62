package game

// Symbol is the mark a player places on the board.
type Symbol string

const (
	Empty Symbol = ""
	X     Symbol = "X"
	O     Symbol = "O"
)

// Other returns the opposing symbol.
func (s Symbol) Other() Symbol {
	if s == X {
		return O
	}
	return X
}

// Board is the 3x3 grid, indexed 0..8 row-major.
type Board [9]Symbol

// Full reports whether every cell is occupied.
func (b Board) Full() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// EmptyCells returns the indices of unoccupied cells.
func (b Board) EmptyCells() []int {
	cells := make([]int, 0, 9)
	for i, c := range b {
		if c == Empty {
			cells = append(cells, i)
		}
	}
	return cells
}

// Outcome is the terminal evaluation of a board. The zero value means
// the game is still open.
type Outcome struct {
	Winner Symbol `json:"winner"`
	Draw   bool   `json:"is_draw"`
}

// Terminal reports whether the outcome ends the match.
func (o Outcome) Terminal() bool {
	return o.Winner != Empty || o.Draw
}

// winLines lists every winning triple, in a fixed order so results are
// deterministic.
var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// Evaluate scans the board for a terminal state. It returns a winner if
// some line holds three equal non-empty symbols, a draw if the board is
// full with no winner, and the zero Outcome otherwise.
func Evaluate(b Board) Outcome {
	for _, line := range winLines {
		a, m, c := line[0], line[1], line[2]
		if b[a] != Empty && b[a] == b[m] && b[m] == b[c] {
			return Outcome{Winner: b[a]}
		}
	}
	if b.Full() {
		return Outcome{Draw: true}
	}
	return Outcome{}
}
