package main

import (
	"log"

	httpapi "github.com/klemtek/ninesquare/internal/api/http"
	"github.com/klemtek/ninesquare/internal/api/ws"
	"github.com/klemtek/ninesquare/internal/config"
	"github.com/klemtek/ninesquare/internal/room"
	"github.com/klemtek/ninesquare/internal/store"
)

// @title Nine Square API
// @version 1.0
// @description REST + WebSocket API for the Nine Square board game (Go + Gin)
// @BasePath /
func main() {
	cfg := config.Load()
	mem := store.NewMemoryStore()
	hub := ws.NewHub()
	rm := room.NewManager(mem, hub)
	hub.SetRoomManager(rm)
	r := httpapi.NewRouter(rm, hub, cfg)

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
