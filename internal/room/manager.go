package room

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/klemtek/ninesquare/internal/game"
)

var (
	ErrRoomFull    = errors.New("room already has two players")
	ErrNotPlaying  = errors.New("game has not started")
	ErrNotInRoom   = errors.New("player not in room")
	ErrNotYourTurn = errors.New("not your turn")
)

type Manager struct {
	store Store
	hub   Broadcaster
}

func NewManager(s Store, hub Broadcaster) *Manager {
	return &Manager{store: s, hub: hub}
}

// CreateRoom opens a lobby with the creator seated as PlayerOne.
func (m *Manager) CreateRoom(creatorName string) (*Room, *Player) {
	if creatorName == "" {
		creatorName = "Player"
	}
	r := &Room{
		ID:        uuid.NewString(),
		Code:      randCode(6),
		Status:    StatusLobby,
		CreatedAt: time.Now(),
		Engine:    game.NewEngine(),
	}
	r.Players = append(r.Players, Player{
		ID:   uuid.NewString(),
		Name: creatorName,
		Seat: game.PlayerOne,
	})
	m.store.SaveRoom(r)
	return r, &r.Players[0]
}

// Join seats a second player and starts the game.
func (m *Manager) Join(code, name string) (*Room, *Player, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, nil, errors.New("room not found")
	}
	if name == "" {
		name = "Player"
	}

	r.mu.Lock()
	if len(r.Players) >= 2 {
		r.mu.Unlock()
		return nil, nil, ErrRoomFull
	}
	r.Players = append(r.Players, Player{
		ID:   uuid.NewString(),
		Name: name,
		Seat: game.PlayerTwo,
	})
	r.Status = StatusPlaying
	joined := &r.Players[len(r.Players)-1]
	st := m.stateLocked(r)
	r.mu.Unlock()

	m.store.SaveRoom(r)
	m.hub.Broadcast(r.Code, "player-joined", st)
	return r, joined, nil
}

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

// Click feeds one board position into the room's engine on behalf of
// playerID. The engine itself treats any unexpected position as a no-op; the
// room layer only enforces that the game is running and that the caller
// holds the seat whose turn it is.
func (m *Manager) Click(r *Room, playerID string, pos game.Position) (game.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := m.checkTurn(r, playerID); err != nil {
		return r.Engine.Snapshot(), err
	}
	ev := r.Engine.Click(pos)
	m.afterMove(r, ev)
	return ev, nil
}

// EndTurn ends the caller's jump sequence voluntarily. Outside a jump
// sequence the engine ignores it.
func (m *Manager) EndTurn(r *Room, playerID string) (game.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := m.checkTurn(r, playerID); err != nil {
		return r.Engine.Snapshot(), err
	}
	ev := r.Engine.EndTurn()
	m.afterMove(r, ev)
	return ev, nil
}

// Reset starts a fresh game on the same room.
func (m *Manager) Reset(r *Room) game.Event {
	r.mu.Lock()
	r.Engine.Reset()
	ev := r.Engine.Snapshot()
	st := m.stateLocked(r)
	r.mu.Unlock()

	m.store.SaveRoom(r)
	m.hub.Broadcast(r.Code, "state-updated", st)
	return ev
}

// State returns a render snapshot of the room.
func (m *Manager) State(r *Room) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return m.stateLocked(r)
}

func (m *Manager) checkTurn(r *Room, playerID string) error {
	if r.Status != StatusPlaying {
		return ErrNotPlaying
	}
	var p *Player
	for i := range r.Players {
		if r.Players[i].ID == playerID {
			p = &r.Players[i]
			break
		}
	}
	if p == nil {
		return ErrNotInRoom
	}
	if p.Seat != r.Engine.Current() {
		return ErrNotYourTurn
	}
	return nil
}

func (m *Manager) afterMove(r *Room, ev game.Event) {
	m.store.SaveRoom(r)
	st := m.stateLocked(r)
	if ev.Over {
		m.hub.Broadcast(r.Code, "game-over", st)
		return
	}
	m.hub.Broadcast(r.Code, "state-updated", st)
}

func (m *Manager) stateLocked(r *Room) State {
	return State{
		Code:    r.Code,
		Board:   r.Engine.Board(),
		Players: append([]Player(nil), r.Players...),
		Status:  r.Status,
		Event:   r.Engine.Snapshot(),
	}
}
