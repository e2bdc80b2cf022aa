package http

// CreateRoomRequest represents the payload for /create-room.
type CreateRoomRequest struct {
	PlayerName string `json:"playerName"`
}

// JoinRoomRequest represents the payload for /join-room.
type JoinRoomRequest struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

// ClickRequest represents one board click from a player.
type ClickRequest struct {
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
}

// EndTurnRequest ends a jump sequence voluntarily.
type EndTurnRequest struct {
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
}

// ResetRequest restarts the game in a room.
type ResetRequest struct {
	RoomCode string `json:"roomCode"`
}
