package room

import (
	"math/rand"
	"sync"
	"time"

	"github.com/klemtek/ninesquare/internal/game"
)

const (
	StatusLobby   = "lobby"
	StatusPlaying = "playing"
)

type Player struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Seat game.Player `json:"seat"`
}

// Room pairs two players with one engine. The mutex serializes engine
// access so a full click transition (selection, move, turn end) is applied
// atomically before anything is broadcast.
type Room struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Players   []Player  `json:"players"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`

	Engine *game.Engine `json:"-"`
	mu     sync.Mutex
}

// State is the render snapshot sent to clients over HTTP and the hub.
type State struct {
	Code    string     `json:"code"`
	Board   game.Board `json:"board"`
	Players []Player   `json:"players"`
	Status  string     `json:"status"`
	Event   game.Event `json:"event"`
}

type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
}

type Broadcaster interface {
	Broadcast(roomCode string, action string, data interface{})
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
