package game

// BoardSize is the side length of the square board.
const BoardSize = 8

// homeSize is the side length of each player's starting corner.
const homeSize = 3

type Player int

const (
	NoPlayer Player = iota
	PlayerOne
	PlayerTwo
)

func (p Player) Opponent() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	}
	return NoPlayer
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "one"
	case PlayerTwo:
		return "two"
	}
	return "none"
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board holds the occupant of every cell. The zero value is an empty board;
// NewBoard produces the starting layout.
type Board [BoardSize][BoardSize]Player

// NewBoard places PlayerOne's nine units in the top-left 3x3 corner and
// PlayerTwo's nine in the bottom-right 3x3 corner.
func NewBoard() Board {
	var b Board
	for r := 0; r < homeSize; r++ {
		for c := 0; c < homeSize; c++ {
			b[r][c] = PlayerOne
			b[BoardSize-1-r][BoardSize-1-c] = PlayerTwo
		}
	}
	return b
}

// InBounds reports whether p lies on the board.
func InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

func (b *Board) At(p Position) Player {
	return b[p.Row][p.Col]
}

// Units returns the positions of every unit owned by pl, scanning in
// row-major order.
func (b *Board) Units(pl Player) []Position {
	var out []Position
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b[r][c] == pl {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}
	return out
}
