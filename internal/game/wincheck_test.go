package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInTargetArea(t *testing.T) {
	tests := []struct {
		pl   Player
		pos  Position
		want bool
	}{
		{PlayerOne, Position{5, 5}, true},
		{PlayerOne, Position{7, 7}, true},
		{PlayerOne, Position{4, 7}, false},
		{PlayerOne, Position{7, 4}, false},
		{PlayerOne, Position{0, 0}, false},
		{PlayerTwo, Position{0, 0}, true},
		{PlayerTwo, Position{2, 2}, true},
		{PlayerTwo, Position{3, 0}, false},
		{PlayerTwo, Position{7, 7}, false},
		{NoPlayer, Position{0, 0}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InTargetArea(tt.pl, tt.pos), "InTargetArea(%v, %v)", tt.pl, tt.pos)
	}
}

func TestWinnerNoneOnInitialBoard(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, NoPlayer, Winner(b))
}

func TestWinnerPlayerOne(t *testing.T) {
	var b Board
	for r := 5; r <= 7; r++ {
		for c := 5; c <= 7; c++ {
			b[r][c] = PlayerOne
		}
	}
	b[3][3] = PlayerTwo
	assert.Equal(t, PlayerOne, Winner(b))
}

func TestWinnerPlayerTwo(t *testing.T) {
	var b Board
	for r := 0; r <= 2; r++ {
		for c := 0; c <= 2; c++ {
			b[r][c] = PlayerTwo
		}
	}
	b[6][6] = PlayerOne
	assert.Equal(t, PlayerTwo, Winner(b))
}

func TestWinnerOneStrayUnit(t *testing.T) {
	var b Board
	for r := 5; r <= 7; r++ {
		for c := 5; c <= 7; c++ {
			b[r][c] = PlayerOne
		}
	}
	b[7][7] = NoPlayer
	b[4][5] = PlayerOne // one unit short of the corner
	b[0][0] = PlayerTwo
	assert.Equal(t, NoPlayer, Winner(b))
}

// The two target areas share no cell, so a simultaneous win is geometrically
// impossible and the One-before-Two check order can never matter.
func TestTargetAreasDisjoint(t *testing.T) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			p := Position{r, c}
			assert.False(t, InTargetArea(PlayerOne, p) && InTargetArea(PlayerTwo, p),
				"target areas overlap at %v", p)
		}
	}
}
