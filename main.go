package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/klemtek/ninesquare/internal/game"
)

// Local hot-seat front end: both players share the terminal, clicks are
// typed as "row col" (1-indexed), "end" closes a jump sequence.
func main() {
	e := game.NewEngine()
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Nine Square — move all nine units into the opposite corner.")
	fmt.Println("Commands: \"row col\" to click a square, \"end\" to stop jumping, \"quit\" to leave.")

	for !e.Over() {
		printBoard(e)
		if e.Jumping() {
			fmt.Printf("\nPlayer %s — continue jumping or type end\n", e.Current())
		} else {
			fmt.Printf("\nPlayer %s to move\n", e.Current())
		}

		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		switch {
		case len(parts) == 1 && parts[0] == "quit":
			return
		case len(parts) == 1 && parts[0] == "end":
			e.EndTurn()
		case len(parts) == 2:
			r, err1 := strconv.Atoi(parts[0])
			c, err2 := strconv.Atoi(parts[1])
			if err1 != nil || err2 != nil {
				fmt.Println("Format: row col (e.g. 3 1)")
				continue
			}
			e.Click(game.Position{Row: r - 1, Col: c - 1})
		default:
			fmt.Println("Format: row col (e.g. 3 1)")
		}
	}

	printBoard(e)
	fmt.Printf("\nPlayer %s wins!\n", e.Winner())
}

func printBoard(e *game.Engine) {
	b := e.Board()
	sel, hasSel := e.Selected()
	moves := e.Moves()
	jumps := e.Jumps()

	fmt.Println("\n    1 2 3 4 5 6 7 8")
	for r := 0; r < game.BoardSize; r++ {
		fmt.Printf("  %d ", r+1)
		for c := 0; c < game.BoardSize; c++ {
			pos := game.Position{Row: r, Col: c}
			fmt.Print(cellGlyph(b.At(pos), pos, sel, hasSel, moves, jumps), " ")
		}
		fmt.Println()
	}
}

func cellGlyph(p game.Player, pos, sel game.Position, hasSel bool, moves, jumps []game.Position) string {
	switch {
	case hasSel && pos == sel:
		return "*"
	case contains(moves, pos) || contains(jumps, pos):
		return "+"
	case p == game.PlayerOne:
		return "o"
	case p == game.PlayerTwo:
		return "x"
	}
	return "."
}

func contains(ps []game.Position, p game.Position) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}
