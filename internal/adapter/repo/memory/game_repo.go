package memory

import (
	"context"

	"primordia/internal/app/ports"
	"primordia/internal/domain/evolution"
)

type GameRepo struct {
	store *Store
}

func NewGameRepo(store *Store) GameRepo {
	return GameRepo{store: store}
}

func (r GameRepo) GetByID(_ context.Context, gameID string) (evolution.Game, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	game, ok := r.store.games[gameID]
	if !ok {
		return evolution.Game{}, ports.ErrNotFound
	}
	return game, nil
}

func (r GameRepo) SaveWithVersion(_ context.Context, game evolution.Game, expectedVersion int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.games[game.ID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.games[game.ID] = game
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.games[game.ID] = game
	return nil
}
