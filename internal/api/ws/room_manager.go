package ws

import (
	"github.com/klemtek/ninesquare/internal/game"
	"github.com/klemtek/ninesquare/internal/room"
)

type RoomManager interface {
	Get(roomCode string) (*room.Room, bool)
	Click(r *room.Room, playerID string, pos game.Position) (game.Event, error)
	EndTurn(r *room.Room, playerID string) (game.Event, error)
}
