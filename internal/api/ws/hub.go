package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/klemtek/ninesquare/internal/game"
)

// Hub fans room updates out to every websocket subscribed to a room code.
type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*websocket.Conn]struct{}
	roomManager RoomManager
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*websocket.Conn]struct{}),
	}
}

// SetRoomManager wires the manager in after construction; hub and manager
// reference each other, so one side is set late.
func (h *Hub) SetRoomManager(rm RoomManager) {
	h.roomManager = rm
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[roomCode][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.rooms[roomCode], conn)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		var msg struct {
			Action string      `json:"action"`
			Data   interface{} `json:"data"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("Error reading WebSocket message: %v", err)
			break
		}

		switch msg.Action {
		case "click":
			h.handleClick(roomCode, msg.Data)
		case "end_turn":
			h.handleEndTurn(roomCode, msg.Data)
		default:
			log.Printf("Unknown action: %s", msg.Action)
		}
	}
}

func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.rooms[roomCode]
	if !ok {
		return
	}

	message := map[string]interface{}{
		"action": action,
		"data":   data,
	}
	for conn := range clients {
		if err := conn.WriteJSON(message); err != nil {
			log.Printf("Failed to send message: %v", err)
			conn.Close()
			delete(clients, conn)
		}
	}
}

func (h *Hub) handleClick(roomCode string, data interface{}) {
	var click struct {
		PlayerID string `json:"player_id"`
		Row      int    `json:"row"`
		Col      int    `json:"col"`
	}
	if !decode(data, &click) {
		return
	}

	r, ok := h.roomManager.Get(roomCode)
	if !ok {
		log.Printf("Room not found: %s", roomCode)
		return
	}
	if _, err := h.roomManager.Click(r, click.PlayerID, game.Position{Row: click.Row, Col: click.Col}); err != nil {
		log.Printf("Failed to apply click: %v", err)
	}
}

func (h *Hub) handleEndTurn(roomCode string, data interface{}) {
	var req struct {
		PlayerID string `json:"player_id"`
	}
	if !decode(data, &req) {
		return
	}

	r, ok := h.roomManager.Get(roomCode)
	if !ok {
		log.Printf("Room not found: %s", roomCode)
		return
	}
	if _, err := h.roomManager.EndTurn(r, req.PlayerID); err != nil {
		log.Printf("Failed to end turn: %v", err)
	}
}

func decode(data interface{}, out interface{}) bool {
	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("Failed to marshal message data: %v", err)
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("Invalid message data: %v", err)
		return false
	}
	return true
}
