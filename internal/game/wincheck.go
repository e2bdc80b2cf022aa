package game

// InTargetArea reports whether pos lies in pl's target area, the corner the
// opponent starts in.
func InTargetArea(pl Player, pos Position) bool {
	switch pl {
	case PlayerOne:
		return pos.Row >= BoardSize-homeSize && pos.Col >= BoardSize-homeSize
	case PlayerTwo:
		return pos.Row < homeSize && pos.Col < homeSize
	}
	return false
}

// Winner returns the player whose units all sit inside their target area, or
// NoPlayer. PlayerOne is checked first; the areas are disjoint so both
// conditions can never hold at once.
func Winner(b Board) Player {
	for _, pl := range [2]Player{PlayerOne, PlayerTwo} {
		won := true
		for _, pos := range b.Units(pl) {
			if !InTargetArea(pl, pos) {
				won = false
				break
			}
		}
		if won {
			return pl
		}
	}
	return NoPlayer
}
