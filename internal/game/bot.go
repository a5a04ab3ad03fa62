package game

import "math/rand"

var (
	corners = [4]int{0, 2, 6, 8}
	edges   = [4]int{1, 3, 5, 7}
)

// FindBestMove picks a cell for mover using a fixed priority:
// win now, block the opponent's win, take the center, take a random
// free corner, take a random free edge. Returns -1 when the board is
// full.
func FindBestMove(b Board, mover Symbol) int {
	// Complete our own line
	for i := 0; i < 9; i++ {
		if b[i] != Empty {
			continue
		}
		trial := b
		trial[i] = mover
		if Evaluate(trial).Winner == mover {
			return i
		}
	}

	// Block the opponent's line
	opp := mover.Other()
	for i := 0; i < 9; i++ {
		if b[i] != Empty {
			continue
		}
		trial := b
		trial[i] = opp
		if Evaluate(trial).Winner == opp {
			return i
		}
	}

	if b[4] == Empty {
		return 4
	}

	if i := randomFree(b, corners); i >= 0 {
		return i
	}
	return randomFree(b, edges)
}

func randomFree(b Board, candidates [4]int) int {
	free := make([]int, 0, 4)
	for _, i := range candidates {
		if b[i] == Empty {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return -1
	}
	return free[rand.Intn(len(free))]
}
