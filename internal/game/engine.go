package game

// Engine is the game state machine. It owns the board, the turn, the current
// selection with its candidate destinations, and the outcome. It is not safe
// for concurrent use; callers serialize access (the room manager holds a
// room lock around every call).
type Engine struct {
	board    Board
	current  Player
	selected *Position
	moves    []Position
	jumps    []Position
	jumping  bool
	winner   Player
	over     bool
}

// Event is the snapshot returned by Click and EndTurn for the presentation
// layer to re-render from.
type Event struct {
	Selected *Position  `json:"selected,omitempty"`
	Moves    []Position `json:"moves"`
	Jumps    []Position `json:"jumps"`
	Current  Player     `json:"current"`
	Jumping  bool       `json:"jumping"`
	Winner   Player     `json:"winner"`
	Over     bool       `json:"over"`
}

func NewEngine() *Engine {
	return &Engine{
		board:   NewBoard(),
		current: PlayerOne,
	}
}

// Reset restores the engine to a fresh game.
func (e *Engine) Reset() {
	*e = Engine{board: NewBoard(), current: PlayerOne}
}

// Click feeds one board position into the state machine. Every input either
// matches a defined transition or is a deliberate no-op: out-of-bounds
// positions, clicks on the opponent's units, clicks on nothing, and any
// click after the game is decided all leave the state unchanged.
func (e *Engine) Click(p Position) Event {
	if e.over || !InBounds(p) {
		return e.event()
	}

	if e.selected == nil {
		if e.board.At(p) == e.current {
			e.selectUnit(p)
		}
		return e.event()
	}

	s := *e.selected
	switch {
	case p == s:
		e.deselect()

	case containsPosition(e.jumps, p):
		e.moveUnit(s, p)
		if next := JumpMoves(e.board, p); len(next) > 0 {
			// Chain continues: the unit stays selected and may only
			// keep jumping until the player ends the turn.
			e.selected = &Position{Row: p.Row, Col: p.Col}
			e.moves = nil
			e.jumps = next
			e.jumping = true
		} else {
			e.endTurn()
		}

	case !e.jumping && containsPosition(e.moves, p):
		e.moveUnit(s, p)
		e.endTurn()

	case !e.jumping && e.board.At(p) == e.current:
		e.selectUnit(p)

	case !e.jumping:
		e.deselect()

	default:
		// Mid-chain, anything but a further jump or the selected unit
		// itself is ignored.
	}
	return e.event()
}

// EndTurn ends the turn voluntarily mid jump sequence. Outside a jump
// sequence it is a no-op.
func (e *Engine) EndTurn() Event {
	if !e.over && e.jumping {
		e.endTurn()
	}
	return e.event()
}

func (e *Engine) selectUnit(p Position) {
	e.selected = &Position{Row: p.Row, Col: p.Col}
	e.moves = SimpleMoves(e.board, p)
	e.jumps = JumpMoves(e.board, p)
}

func (e *Engine) deselect() {
	e.selected = nil
	e.moves = nil
	e.jumps = nil
	e.jumping = false
}

// moveUnit relocates the unit at from to to. For jumps the cell in between
// keeps its occupant.
func (e *Engine) moveUnit(from, to Position) {
	e.board[to.Row][to.Col] = e.board[from.Row][from.Col]
	e.board[from.Row][from.Col] = NoPlayer
}

func (e *Engine) endTurn() {
	e.deselect()
	if w := Winner(e.board); w != NoPlayer {
		e.winner = w
		e.over = true
		return
	}
	e.current = e.current.Opponent()
}

func (e *Engine) event() Event {
	ev := Event{
		Moves:   append([]Position(nil), e.moves...),
		Jumps:   append([]Position(nil), e.jumps...),
		Current: e.current,
		Jumping: e.jumping,
		Winner:  e.winner,
		Over:    e.over,
	}
	if e.selected != nil {
		sel := *e.selected
		ev.Selected = &sel
	}
	return ev
}

// Snapshot returns the current state as an Event without applying any
// input. Used when rendering needs refreshing outside a click.
func (e *Engine) Snapshot() Event { return e.event() }

// Board returns a copy of the current board.
func (e *Engine) Board() Board { return e.board }

// Current returns the player to move.
func (e *Engine) Current() Player { return e.current }

// Winner returns the decided winner, or NoPlayer while play continues.
func (e *Engine) Winner() Player { return e.winner }

// Over reports whether the game is decided.
func (e *Engine) Over() bool { return e.over }

// Jumping reports whether a jump sequence is in progress, which is when an
// end-turn affordance should be offered.
func (e *Engine) Jumping() bool { return e.jumping }

// Selected returns the selected position, if any.
func (e *Engine) Selected() (Position, bool) {
	if e.selected == nil {
		return Position{}, false
	}
	return *e.selected, true
}

// Moves returns the simple-move candidates of the current selection.
func (e *Engine) Moves() []Position { return append([]Position(nil), e.moves...) }

// Jumps returns the jump candidates of the current selection.
func (e *Engine) Jumps() []Position { return append([]Position(nil), e.jumps...) }
