package round

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"primordia/internal/app/ports"
	"primordia/internal/app/shared/wire"
	"primordia/internal/app/trait"
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
	if current, ok := r.byID[game.ID]; ok && current.Version != expectedVersion {
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

func (r *stubLogRepo) ListByGameID(_ context.Context, _ string, _ int) ([]ports.ActionLogRecord, error) {
	return r.records, nil
}

type stubBroadcaster struct {
	sent []wire.Action
}

func (b *stubBroadcaster) Publish(_ context.Context, _ []string, action wire.Action) error {
	b.sent = append(b.sent, action)
	return nil
}

func newFixture() (UseCase, *stubGameRepo, *stubBroadcaster) {
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
	game = game.WithCooldowns(game.Cooldowns.Start(
		evolution.LinkEating, evolution.DurationRound, evolution.PlacePlayer, "alice"))

	games := &stubGameRepo{byID: map[string]evolution.Game{"g-1": game}}
	rooms := &stubRoomRepo{byID: map[string]ports.RoomRecord{
		"r-1": {RoomID: "r-1", Users: []string{"alice", "bob"}, Spectators: []string{"spectator-1"}},
	}}
	broadcast := &stubBroadcaster{}
	uc := UseCase{
		TxManager: stubTxManager{},
		Games:     games,
		Rooms:     rooms,
		Log:       &stubLogRepo{},
		Broadcast: broadcast,
		Now:       func() time.Time { return time.Unix(1700000000, 0) },
	}
	return uc, games, broadcast
}

func TestUseCase_EndTurnAdvancesWithoutWrap(t *testing.T) {
	uc, _, broadcast := newFixture()

	resp, err := uc.Execute(context.Background(), Request{UserID: "alice", GameID: "g-1"})
	if err != nil {
		t.Fatalf("end turn: %v", err)
	}
	if resp.Game.CurrentPlayer != "bob" {
		t.Fatalf("current = %s, want bob", resp.Game.CurrentPlayer)
	}
	if resp.Game.Round != 1 {
		t.Fatalf("round = %d, want 1", resp.Game.Round)
	}
	// cooldowns only tick on the wrap
	if !resp.Game.Cooldowns.CheckFor(evolution.LinkEating, evolution.PlacePlayer, "alice") {
		t.Fatal("cooldown must survive a mid-round handover")
	}

	if len(broadcast.sent) != 1 || broadcast.sent[0].Type != wire.TypeGameNextPlayer {
		t.Fatalf("unexpected broadcasts: %+v", broadcast.sent)
	}
	var data wire.NextPlayerData
	if err := json.Unmarshal(broadcast.sent[0].Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.UserID != "bob" || data.Round != 1 {
		t.Fatalf("unexpected payload: %+v", data)
	}
}

func TestUseCase_EndTurnWrapTicksCooldowns(t *testing.T) {
	uc, games, _ := newFixture()

	if _, err := uc.Execute(context.Background(), Request{UserID: "alice", GameID: "g-1"}); err != nil {
		t.Fatalf("first handover: %v", err)
	}
	resp, err := uc.Execute(context.Background(), Request{UserID: "bob", GameID: "g-1"})
	if err != nil {
		t.Fatalf("second handover: %v", err)
	}

	if resp.Game.Round != 2 {
		t.Fatalf("round = %d, want 2", resp.Game.Round)
	}
	if resp.Game.Cooldowns.CheckFor(evolution.LinkEating, evolution.PlacePlayer, "alice") {
		t.Fatal("round wrap must expire the one-round cooldown")
	}

	stored := games.byID["g-1"]
	if stored.Version != 3 {
		t.Fatalf("version = %d, want 3", stored.Version)
	}
}

func TestUseCase_EndTurnRejectsOutOfTurn(t *testing.T) {
	uc, _, broadcast := newFixture()

	_, err := uc.Execute(context.Background(), Request{UserID: "bob", GameID: "g-1"})
	if !errors.Is(err, trait.ErrOutOfTurn) {
		t.Fatalf("expected ErrOutOfTurn, got %v", err)
	}
	if len(broadcast.sent) != 0 {
		t.Fatal("rejection must not broadcast")
	}
}

func TestUseCase_EndTurnRejectsOutsider(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Execute(context.Background(), Request{UserID: "mallory", GameID: "g-1"})
	if !errors.Is(err, trait.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUseCase_EndTurnRejectsUnknownGame(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Execute(context.Background(), Request{UserID: "alice", GameID: "ghost"})
	if !errors.Is(err, trait.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
