package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"tictactoe_arena/internal/game"
	"tictactoe_arena/internal/gameclient"
)

// Terminal client for the offline vs-computer mode. You are X, cells
// are numbered 1-9 left to right, top to bottom.

func main() {
	updates := make(chan gameclient.LocalState, 8)
	match := gameclient.NewLocalGame(gameclient.DefaultThinkDelay, func(s gameclient.LocalState) {
		updates <- s
	})
	defer match.Close()

	fmt.Println("Tic-tac-toe vs computer. Enter a cell 1-9, r to restart, q to quit.")
	printBoard(match.State().Board)
	fmt.Println(match.StatusText())

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		line := strings.TrimSpace(in.Text())

		switch line {
		case "q", "quit":
			return
		case "r", "restart":
			match.Reset()
			<-updates
			printBoard(match.State().Board)
			fmt.Println(match.StatusText())
			continue
		case "":
			continue
		}

		cell, err := strconv.Atoi(line)
		if err != nil || cell < 1 || cell > 9 {
			fmt.Println("enter a cell number 1-9")
			continue
		}

		if !match.HumanMove(cell - 1) {
			fmt.Println("that move is not available")
			continue
		}

		// Our move, then the computer's answer unless the match ended.
		state := <-updates
		if !state.Outcome.Terminal() {
			state = <-updates
		}
		printBoard(state.Board)
		fmt.Println(match.StatusText())

		if state.Outcome.Terminal() {
			fmt.Println("Press r for a rematch or q to quit.")
		}
	}
}

func printBoard(b game.Board) {
	cell := func(i int) string {
		if b[i] == game.Empty {
			return strconv.Itoa(i + 1)
		}
		return string(b[i])
	}
	for row := 0; row < 3; row++ {
		i := row * 3
		fmt.Printf(" %s | %s | %s\n", cell(i), cell(i+1), cell(i+2))
		if row < 2 {
			fmt.Println("---+---+---")
		}
	}
}
