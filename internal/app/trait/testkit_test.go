package trait

import (
	"context"
	"time"

	"primordia/internal/app/ports"
	"primordia/internal/app/shared/wire"
	"primordia/internal/domain/evolution"
)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubGameRepo struct {
	byID map[string]evolution.Game
}

func (r *stubGameRepo) GetByID(_ context.Context, gameID string) (evolution.Game, error) {
	game, ok := r.byID[gameID]
	if !ok {
		return evolution.Game{}, ports.ErrNotFound
	}
	return game, nil
}

func (r *stubGameRepo) SaveWithVersion(_ context.Context, game evolution.Game, expectedVersion int64) error {
	current, ok := r.byID[game.ID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.byID[game.ID] = game
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.byID[game.ID] = game
	return nil
}

type stubRoomRepo struct {
	byID map[string]ports.RoomRecord
}

func (r *stubRoomRepo) Create(_ context.Context, room ports.RoomRecord) error {
	r.byID[room.RoomID] = room
	return nil
}

func (r *stubRoomRepo) GetByID(_ context.Context, roomID string) (ports.RoomRecord, error) {
	room, ok := r.byID[roomID]
	if !ok {
		return ports.RoomRecord{}, ports.ErrNotFound
	}
	return room, nil
}

func (r *stubRoomRepo) Save(_ context.Context, room ports.RoomRecord) error {
	r.byID[room.RoomID] = room
	return nil
}

type stubLogRepo struct {
	records []ports.ActionLogRecord
}

func (r *stubLogRepo) Append(_ context.Context, _ string, records []ports.ActionLogRecord) error {
	r.records = append(r.records, records...)
	return nil
}

func (r *stubLogRepo) ListByGameID(_ context.Context, gameID string, limit int) ([]ports.ActionLogRecord, error) {
	var out []ports.ActionLogRecord
	for _, rec := range r.records {
		if rec.GameID == gameID {
			out = append(out, rec)
		}
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type published struct {
	users  []string
	action wire.Action
}

type stubBroadcaster struct {
	sent []published
}

func (b *stubBroadcaster) Publish(_ context.Context, users []string, action wire.Action) error {
	b.sent = append(b.sent, published{users: users, action: action})
	return nil
}

type stubMetrics struct {
	successTypes   []string
	rejectionKinds []string
	failures       int
}

func (m *stubMetrics) RecordSuccess(actionType string) {
	m.successTypes = append(m.successTypes, actionType)
}

func (m *stubMetrics) RecordRejection(kind string) {
	m.rejectionKinds = append(m.rejectionKinds, kind)
}

func (m *stubMetrics) RecordFailure() {
	m.failures++
}

type testEnv struct {
	games     *stubGameRepo
	rooms     *stubRoomRepo
	log       *stubLogRepo
	broadcast *stubBroadcaster
	metrics   *stubMetrics
	uc        UseCase
}

func newTestEnv(game evolution.Game, room ports.RoomRecord) *testEnv {
	env := &testEnv{
		games:     &stubGameRepo{byID: map[string]evolution.Game{game.ID: game}},
		rooms:     &stubRoomRepo{byID: map[string]ports.RoomRecord{room.RoomID: room}},
		log:       &stubLogRepo{},
		broadcast: &stubBroadcaster{},
		metrics:   &stubMetrics{},
	}
	env.uc = UseCase{
		TxManager: stubTxManager{},
		Games:     env.games,
		Rooms:     env.rooms,
		Log:       env.log,
		Broadcast: env.broadcast,
		Metrics:   env.metrics,
		Catalog:   evolution.DefaultCatalog(),
		Now:       func() time.Time { return time.Unix(1700000000, 0) },
	}
	return env
}

// feedingGame seats two players in the feeding phase with alice to move.
// alice owns animal a-1, bob owns b-1.
func feedingGame() (evolution.Game, ports.RoomRecord) {
	game := evolution.Game{
		ID:     "g-1",
		RoomID: "r-1",
		Players: []evolution.Player{
			{UserID: "alice", Animals: []evolution.Animal{{ID: "a-1", OwnerID: "alice"}}},
			{UserID: "bob", Animals: []evolution.Animal{{ID: "b-1", OwnerID: "bob"}}},
		},
		Food:          10,
		Phase:         evolution.PhaseFeeding,
		CurrentPlayer: "alice",
		Round:         1,
		Version:       1,
	}
	room := ports.RoomRecord{RoomID: "r-1", Users: []string{"alice", "bob"}, Spectators: []string{"spectator-1"}}
	return game, room
}

func takeFoodAction(gameID, animalID string) wire.Action {
	action, err := wire.NewAction(wire.TypeTraitTakeFoodRequest, wire.TakeFoodRequestData{
		GameID:   gameID,
		AnimalID: animalID,
	}, nil)
	if err != nil {
		panic(err)
	}
	return action
}

func activateAction(gameID, animalID, traitType, targetID string) wire.Action {
	action, err := wire.NewAction(wire.TypeTraitActivateRequest, wire.ActivateRequestData{
		GameID:    gameID,
		AnimalID:  animalID,
		TraitType: traitType,
		TargetID:  targetID,
	}, nil)
	if err != nil {
		panic(err)
	}
	return action
}
