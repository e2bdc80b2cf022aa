package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/klemtek/ninesquare/internal/api/ws"
	"github.com/klemtek/ninesquare/internal/config"
	"github.com/klemtek/ninesquare/internal/game"
	"github.com/klemtek/ninesquare/internal/room"
)

func NewRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config) *gin.Engine {
	r := gin.Default()

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/create-room", CreateRoomHandler(rm))
	r.POST("/join-room", JoinRoomHandler(rm))

	// --- GAME ENDPOINTS ---
	r.GET("/room", RoomStateHandler(rm))
	r.GET("/possible-moves", PossibleMovesHandler(rm))
	r.POST("/click", ClickHandler(rm))
	r.POST("/end-turn", EndTurnHandler(rm))
	r.POST("/reset", ResetHandler(rm))

	// --- CONFIG ENDPOINTS ---
	r.GET("/config", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"boardSize":  game.BoardSize,
			"squareSize": cfg.SquareSize,
		})
	})

	return r
}
