package memory

import (
	"context"

	"primordia/internal/app/ports"
)

type RoomRepo struct {
	store *Store
}

func NewRoomRepo(store *Store) RoomRepo {
	return RoomRepo{store: store}
}

func (r RoomRepo) Create(_ context.Context, room ports.RoomRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.rooms[room.RoomID]; ok {
		return ports.ErrConflict
	}
	r.store.rooms[room.RoomID] = room
	return nil
}

func (r RoomRepo) GetByID(_ context.Context, roomID string) (ports.RoomRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	room, ok := r.store.rooms[roomID]
	if !ok {
		return ports.RoomRecord{}, ports.ErrNotFound
	}
	return room, nil
}

func (r RoomRepo) Save(_ context.Context, room ports.RoomRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.rooms[room.RoomID] = room
	return nil
}
