package memory

import (
	"context"

	"primordia/internal/app/ports"
)

type ActionLogRepo struct {
	store *Store
}

func NewActionLogRepo(store *Store) ActionLogRepo {
	return ActionLogRepo{store: store}
}

func (r ActionLogRepo) Append(_ context.Context, gameID string, records []ports.ActionLogRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	seq := int64(len(r.store.log[gameID]))
	for _, record := range records {
		seq++
		record.Seq = seq
		r.store.log[gameID] = append(r.store.log[gameID], record)
	}
	return nil
}

func (r ActionLogRepo) ListByGameID(_ context.Context, gameID string, limit int) ([]ports.ActionLogRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	records := r.store.log[gameID]
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	out := make([]ports.ActionLogRecord, len(records))
	copy(out, records)
	return out, nil
}
