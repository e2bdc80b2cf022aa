package game

// Orthogonal directions: north, south, east, west. No diagonal movement.
var directions = [4]Position{{-1, 0}, {1, 0}, {0, 1}, {0, -1}}

// SimpleMoves returns the empty orthogonal neighbors of from. Pure function
// of the board; results are stale after any mutation.
func SimpleMoves(b Board, from Position) []Position {
	var moves []Position
	for _, d := range directions {
		to := Position{Row: from.Row + d.Row, Col: from.Col + d.Col}
		if InBounds(to) && b.At(to) == NoPlayer {
			moves = append(moves, to)
		}
	}
	return moves
}

// JumpMoves returns the landing cells reachable by jumping from from: for
// each orthogonal direction the adjacent cell must hold a unit of either
// player and the cell beyond it must be empty. Jumping displaces the jumper
// only; the unit jumped over stays where it is.
func JumpMoves(b Board, from Position) []Position {
	var jumps []Position
	for _, d := range directions {
		over := Position{Row: from.Row + d.Row, Col: from.Col + d.Col}
		if !InBounds(over) || b.At(over) == NoPlayer {
			continue
		}
		land := Position{Row: over.Row + d.Row, Col: over.Col + d.Col}
		if InBounds(land) && b.At(land) == NoPlayer {
			jumps = append(jumps, land)
		}
	}
	return jumps
}

func containsPosition(ps []Position, p Position) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}
