// Package memory backs the repository ports with process-local maps. Used by
// tests and by dev mode when no database DSN is configured.
package memory

import (
	"sync"

	"primordia/internal/app/ports"
	"primordia/internal/domain/evolution"
)

type Store struct {
	mu    sync.RWMutex
	games map[string]evolution.Game
	rooms map[string]ports.RoomRecord
	log   map[string][]ports.ActionLogRecord
}

func NewStore() *Store {
	return &Store{
		games: make(map[string]evolution.Game),
		rooms: make(map[string]ports.RoomRecord),
		log:   make(map[string][]ports.ActionLogRecord),
	}
}

func (s *Store) SeedGame(game evolution.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game
}

func (s *Store) SeedRoom(room ports.RoomRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.RoomID] = room
}
