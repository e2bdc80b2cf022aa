package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/klemtek/ninesquare/internal/game"
	"github.com/klemtek/ninesquare/internal/room"
)

// @Summary Create new room
// @Description Create a new room with the creator seated as player one
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.CreateRoomRequest true "Player info"
// @Success 200 {object} map[string]interface{}
// @Router /create-room [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName required"})
			return
		}
		rx, p := rm.CreateRoom(req.PlayerName)
		c.JSON(http.StatusOK, gin.H{
			"roomCode": rx.Code,
			"player":   p,
			"room":     rm.State(rx),
		})
	}
}

// @Summary Join a room
// @Description Seat the second player and start the game
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.JoinRoomRequest true "Room and player info"
// @Success 200 {object} map[string]interface{}
// @Router /join-room [post]
func JoinRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode required"})
			return
		}
		rx, p, err := rm.Join(req.RoomCode, req.PlayerName)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"player": p,
			"room":   rm.State(rx),
		})
	}
}

// @Summary Get room state
// @Description Returns the full render state of a room
// @Tags Game
// @Produce json
// @Param roomCode query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /room [get]
func RoomStateHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Query("roomCode"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rm.State(rx)})
	}
}

// @Summary Get possible moves for a unit
// @Description Returns simple-move and jump destinations for the unit at (row, col)
// @Tags Game
// @Produce json
// @Param roomCode query string true "Room Code"
// @Param row query int true "Row"
// @Param col query int true "Col"
// @Success 200 {object} map[string]interface{}
// @Router /possible-moves [get]
func PossibleMovesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Query("roomCode"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		row, err1 := strconv.Atoi(c.Query("row"))
		col, err2 := strconv.Atoi(c.Query("col"))
		pos := game.Position{Row: row, Col: col}
		if err1 != nil || err2 != nil || !game.InBounds(pos) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "row and col must be on the board"})
			return
		}
		b := rx.Engine.Board()
		if b.At(pos) == game.NoPlayer {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no unit at position"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"moves": game.SimpleMoves(b, pos),
			"jumps": game.JumpMoves(b, pos),
		})
	}
}

// @Summary Apply a board click
// @Description Feed one clicked position into the room's engine
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.ClickRequest true "Click data"
// @Success 200 {object} map[string]interface{}
// @Router /click [post]
func ClickHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ClickRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		ev, err := rm.Click(rx, req.PlayerID, game.Position{Row: req.Row, Col: req.Col})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":    true,
			"event": ev,
			"room":  rm.State(rx),
		})
	}
}

// @Summary End the turn during a jump sequence
// @Description Ends the caller's jump sequence without a further jump
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.EndTurnRequest true "End turn data"
// @Success 200 {object} map[string]interface{}
// @Router /end-turn [post]
func EndTurnHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EndTurnRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		ev, err := rm.EndTurn(rx, req.PlayerID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":    true,
			"event": ev,
			"room":  rm.State(rx),
		})
	}
}

// @Summary Reset a room's game
// @Description Restores the starting board and gives player one the move
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.ResetRequest true "Room code"
// @Success 200 {object} map[string]interface{}
// @Router /reset [post]
func ResetHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResetRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode required"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		ev := rm.Reset(rx)
		c.JSON(http.StatusOK, gin.H{
			"ok":    true,
			"event": ev,
			"room":  rm.State(rx),
		})
	}
}
