package memory

import (
	"context"
	"errors"
	"testing"

	"primordia/internal/app/ports"
	"primordia/internal/domain/evolution"
)

func TestGameRepoOptimisticVersioning(t *testing.T) {
	store := NewStore()
	repo := NewGameRepo(store)
	ctx := context.Background()

	game := evolution.Game{ID: "g-1", Version: 1}
	if err := repo.SaveWithVersion(ctx, game, 0); err != nil {
		t.Fatalf("initial save: %v", err)
	}

	game.Version = 2
	if err := repo.SaveWithVersion(ctx, game, 1); err != nil {
		t.Fatalf("save v2: %v", err)
	}

	// a writer that read version 1 loses
	stale := game
	stale.Version = 2
	if err := repo.SaveWithVersion(ctx, stale, 1); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	got, err := repo.GetByID(ctx, "g-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Version != 2 {
		t.Fatalf("version = %d, want 2", got.Version)
	}
}

func TestGameRepoRejectsCreateOverExisting(t *testing.T) {
	store := NewStore()
	repo := NewGameRepo(store)
	ctx := context.Background()

	if err := repo.SaveWithVersion(ctx, evolution.Game{ID: "g-1", Version: 1}, 0); err != nil {
		t.Fatalf("initial save: %v", err)
	}
	if err := repo.SaveWithVersion(ctx, evolution.Game{ID: "g-1", Version: 1}, 0); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestGameRepoGetMissing(t *testing.T) {
	repo := NewGameRepo(NewStore())

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestActionLogRepoAssignsContinuousSeq(t *testing.T) {
	repo := NewActionLogRepo(NewStore())
	ctx := context.Background()

	first := []ports.ActionLogRecord{
		{GameID: "g-1", Type: "startCooldown"},
		{GameID: "g-1", Type: "executeFeeding"},
	}
	if err := repo.Append(ctx, "g-1", first); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Append(ctx, "g-1", []ports.ActionLogRecord{{GameID: "g-1", Type: "gameNextPlayer"}}); err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.ListByGameID(ctx, "g-1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	for i, rec := range records {
		if rec.Seq != int64(i+1) {
			t.Fatalf("record %d has seq %d", i, rec.Seq)
		}
	}

	limited, err := repo.ListByGameID(ctx, "g-1", 2)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("limited = %d, want 2", len(limited))
	}
}

func TestRoomRepoRoundTrip(t *testing.T) {
	repo := NewRoomRepo(NewStore())
	ctx := context.Background()

	room := ports.RoomRecord{RoomID: "r-1", Users: []string{"alice"}}
	if err := repo.Create(ctx, room); err != nil {
		t.Fatalf("create: %v", err)
	}

	room.Users = append(room.Users, "bob")
	if err := repo.Save(ctx, room); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetByID(ctx, "r-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Users) != 2 {
		t.Fatalf("users = %v", got.Users)
	}

	if _, err := repo.GetByID(ctx, "ghost"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
