package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectOwnUnit(t *testing.T) {
	e := NewEngine()

	ev := e.Click(Position{2, 2})
	require.NotNil(t, ev.Selected)
	assert.Equal(t, Position{2, 2}, *ev.Selected)
	assert.ElementsMatch(t, []Position{{3, 2}, {2, 3}}, ev.Moves)
	assert.Empty(t, ev.Jumps)
	assert.Equal(t, PlayerOne, ev.Current)
	assert.False(t, ev.Jumping)
}

func TestClickOpponentUnitIsNoop(t *testing.T) {
	e := NewEngine()

	ev := e.Click(Position{7, 7})
	assert.Nil(t, ev.Selected)
	assert.Empty(t, ev.Moves)
	assert.Empty(t, ev.Jumps)
	assert.Equal(t, PlayerOne, ev.Current)
}

func TestDeselectBySecondClick(t *testing.T) {
	e := NewEngine()

	e.Click(Position{2, 2})
	ev := e.Click(Position{2, 2})
	assert.Nil(t, ev.Selected)
	assert.Empty(t, ev.Moves)
	assert.Empty(t, ev.Jumps)
}

func TestSwitchSelection(t *testing.T) {
	e := NewEngine()

	e.Click(Position{0, 0})
	ev := e.Click(Position{2, 0})
	require.NotNil(t, ev.Selected)
	assert.Equal(t, Position{2, 0}, *ev.Selected)
	assert.ElementsMatch(t, []Position{{3, 0}}, ev.Moves)
}

func TestInvalidTargetDeselects(t *testing.T) {
	e := NewEngine()

	e.Click(Position{2, 2})
	ev := e.Click(Position{5, 5}) // opponent unit, not a destination
	assert.Nil(t, ev.Selected)
	assert.Equal(t, PlayerOne, ev.Current)
	assert.Equal(t, NewBoard(), e.Board())
}

func TestSimpleMoveEndsTurn(t *testing.T) {
	e := NewEngine()

	e.Click(Position{2, 2})
	ev := e.Click(Position{3, 2})

	b := e.Board()
	assert.Equal(t, PlayerOne, b.At(Position{3, 2}))
	assert.Equal(t, NoPlayer, b.At(Position{2, 2}))
	assert.Nil(t, ev.Selected)
	assert.Equal(t, PlayerTwo, ev.Current)
	assert.False(t, ev.Jumping)
	assert.Equal(t, NoPlayer, ev.Winner)
	assert.False(t, ev.Over)
}

func TestOutOfBoundsClickIsNoop(t *testing.T) {
	e := NewEngine()

	for _, p := range []Position{{-1, 0}, {0, -1}, {8, 3}, {3, 8}} {
		ev := e.Click(p)
		assert.Nil(t, ev.Selected)
		assert.Equal(t, PlayerOne, ev.Current)
	}
	assert.Equal(t, NewBoard(), e.Board())
}

// Only no-op clicks leave the board exactly as initialized.
func TestNoopClicksRoundTrip(t *testing.T) {
	e := NewEngine()

	e.Click(Position{4, 4})  // empty cell
	e.Click(Position{6, 6})  // opponent unit
	e.Click(Position{-1, 2}) // off the board
	e.Click(Position{1, 1})  // select...
	e.Click(Position{1, 1})  // ...deselect
	e.Click(Position{0, 0})  // select...
	e.Click(Position{4, 0})  // ...invalid target deselects

	assert.Equal(t, NewBoard(), e.Board())
	assert.Equal(t, PlayerOne, e.Current())
	assert.Equal(t, NoPlayer, e.Winner())
}

func TestChainJump(t *testing.T) {
	e := NewEngine()
	e.board = Board{}
	e.board[2][0] = PlayerOne // the jumper
	e.board[3][0] = PlayerTwo // first unit jumped over
	e.board[4][1] = PlayerOne // second unit jumped over
	e.board[7][7] = PlayerTwo

	ev := e.Click(Position{2, 0})
	require.NotNil(t, ev.Selected)
	assert.Contains(t, ev.Jumps, Position{4, 0})

	// First jump: over (3,0) to (4,0). A second jump over (4,1) exists, so
	// the unit stays selected and the chain continues.
	ev = e.Click(Position{4, 0})
	require.NotNil(t, ev.Selected)
	assert.Equal(t, Position{4, 0}, *ev.Selected)
	assert.True(t, ev.Jumping)
	assert.Empty(t, ev.Moves, "no simple moves mid chain")
	assert.Contains(t, ev.Jumps, Position{4, 2})
	assert.Equal(t, PlayerOne, ev.Current)

	// Second jump: over (4,1) to (4,2).
	ev = e.Click(Position{4, 2})
	assert.True(t, ev.Jumping)
	assert.Equal(t, PlayerOne, e.board[4][2], "jumper arrived")

	// Neither jumped-over unit moved.
	assert.Equal(t, PlayerTwo, e.board[3][0])
	assert.Equal(t, PlayerOne, e.board[4][1])
}

func TestChainingLockdown(t *testing.T) {
	e := NewEngine()
	e.board = Board{}
	e.board[2][0] = PlayerOne
	e.board[3][0] = PlayerTwo
	e.board[4][1] = PlayerOne
	e.board[7][7] = PlayerTwo

	e.Click(Position{2, 0})
	e.Click(Position{4, 0})
	require.True(t, e.Jumping())
	before := e.Board()

	// Clicking a friendly unit mid chain must not switch selection.
	ev := e.Click(Position{4, 1})
	require.NotNil(t, ev.Selected)
	assert.Equal(t, Position{4, 0}, *ev.Selected)
	assert.True(t, ev.Jumping)
	assert.Equal(t, before, e.Board())

	// Neither does an arbitrary empty cell.
	ev = e.Click(Position{0, 5})
	require.NotNil(t, ev.Selected)
	assert.Equal(t, Position{4, 0}, *ev.Selected)
	assert.True(t, ev.Jumping)
	assert.Equal(t, before, e.Board())

	// The chain ends only through EndTurn (or a further jump).
	ev = e.EndTurn()
	assert.Nil(t, ev.Selected)
	assert.False(t, ev.Jumping)
	assert.Equal(t, PlayerTwo, ev.Current)
}

func TestDeselectMidChainBySelectedUnit(t *testing.T) {
	e := NewEngine()
	e.board = Board{}
	e.board[2][0] = PlayerOne
	e.board[3][0] = PlayerTwo
	e.board[4][1] = PlayerOne
	e.board[7][7] = PlayerTwo

	e.Click(Position{2, 0})
	e.Click(Position{4, 0})
	require.True(t, e.Jumping())

	// Per the click protocol, clicking the selected unit itself deselects
	// and clears the jump flag even mid chain.
	ev := e.Click(Position{4, 0})
	assert.Nil(t, ev.Selected)
	assert.False(t, ev.Jumping)
	assert.Equal(t, PlayerOne, ev.Current, "deselecting does not end the turn")
}

func TestJumpWithoutContinuationEndsTurn(t *testing.T) {
	e := NewEngine()
	e.board = Board{}
	e.board[2][0] = PlayerOne
	e.board[3][0] = PlayerTwo
	e.board[7][7] = PlayerTwo

	e.Click(Position{2, 0})
	ev := e.Click(Position{4, 0})
	assert.Nil(t, ev.Selected)
	assert.False(t, ev.Jumping)
	assert.Equal(t, PlayerTwo, ev.Current)
	assert.Equal(t, PlayerTwo, e.board[3][0], "jumped-over unit stays put")
}

func TestEndTurnOutsideChainIsNoop(t *testing.T) {
	e := NewEngine()

	ev := e.EndTurn()
	assert.Equal(t, PlayerOne, ev.Current)

	e.Click(Position{2, 2})
	ev = e.EndTurn()
	require.NotNil(t, ev.Selected, "end turn outside a jump sequence must not clear selection")
	assert.Equal(t, PlayerOne, ev.Current)
}

func TestWinDetection(t *testing.T) {
	e := NewEngine()
	e.board = Board{}
	// Eight PlayerOne units already in the target corner, the ninth one
	// step away from the last free cell.
	for r := 5; r <= 7; r++ {
		for c := 5; c <= 7; c++ {
			e.board[r][c] = PlayerOne
		}
	}
	e.board[5][5] = NoPlayer
	e.board[5][4] = PlayerOne
	e.board[0][4] = PlayerTwo

	e.Click(Position{5, 4})
	ev := e.Click(Position{5, 5})

	assert.Equal(t, PlayerOne, ev.Winner)
	assert.True(t, ev.Over)
	assert.Equal(t, PlayerOne, ev.Current, "player does not flip once the game is decided")
	assert.Equal(t, PlayerOne, e.Winner())
	assert.True(t, e.Over())

	// Terminal state: every further input is inert.
	ev = e.Click(Position{0, 4})
	assert.Nil(t, ev.Selected)
	assert.Equal(t, PlayerOne, ev.Current)
	ev = e.EndTurn()
	assert.Equal(t, PlayerOne, ev.Winner)
}

func TestReset(t *testing.T) {
	e := NewEngine()
	e.Click(Position{2, 2})
	e.Click(Position{3, 2})

	e.Reset()
	assert.Equal(t, NewBoard(), e.Board())
	assert.Equal(t, PlayerOne, e.Current())
	assert.Equal(t, NoPlayer, e.Winner())
	assert.False(t, e.Over())
}

func TestSnapshotMatchesClickResult(t *testing.T) {
	e := NewEngine()
	ev := e.Click(Position{2, 0})
	assert.Equal(t, ev, e.Snapshot())
}
