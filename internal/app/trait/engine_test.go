package trait

import (
	"context"
	"errors"
	"testing"

	"primordia/internal/app/ports"
	"primordia/internal/app/shared/wire"
	"primordia/internal/domain/evolution"
)

func TestUseCase_ExecuteRejectsUnroutedActionType(t *testing.T) {
	game, room := feedingGame()
	env := newTestEnv(game, room)

	_, err := env.uc.Execute(context.Background(), Request{
		UserID: "alice",
		Action: wire.Action{Type: "gameDeployAnimalRequest", Data: []byte(`{"gameId":"g-1"}`)},
	})
	if !errors.Is(err, ErrNotRouted) {
		t.Fatalf("expected ErrNotRouted, got %v", err)
	}
}

func TestUseCase_ExecuteRejectsBlankUser(t *testing.T) {
	game, room := feedingGame()
	env := newTestEnv(game, room)

	_, err := env.uc.Execute(context.Background(), Request{
		UserID: "   ",
		Action: takeFoodAction("g-1", "a-1"),
	})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestUseCase_ExecuteRecordsMetrics(t *testing.T) {
	game, room := feedingGame()
	env := newTestEnv(game, room)

	if _, err := env.uc.Execute(context.Background(), Request{
		UserID: "alice",
		Action: takeFoodAction("g-1", "a-1"),
	}); err != nil {
		t.Fatalf("take food: %v", err)
	}
	if len(env.metrics.successTypes) != 1 || env.metrics.successTypes[0] != wire.TypeTraitTakeFoodRequest {
		t.Fatalf("unexpected success metrics: %v", env.metrics.successTypes)
	}

	if _, err := env.uc.Execute(context.Background(), Request{
		UserID: "bob",
		Action: takeFoodAction("g-1", "b-1"),
	}); err == nil {
		t.Fatal("expected out-of-turn rejection")
	}
	if len(env.metrics.rejectionKinds) != 1 || env.metrics.rejectionKinds[0] != "out_of_turn" {
		t.Fatalf("unexpected rejection metrics: %v", env.metrics.rejectionKinds)
	}
}

func TestUseCase_ExecuteSurfacesVersionConflict(t *testing.T) {
	game, room := feedingGame()
	env := newTestEnv(game, room)
	stale := game
	stale.Version = 7
	env.games.byID["g-1"] = stale

	// the handler loads version 7 but someone bumps it before persist
	env.uc.Games = conflictOnSave{inner: env.games}

	_, err := env.uc.Execute(context.Background(), Request{
		UserID: "alice",
		Action: takeFoodAction("g-1", "a-1"),
	})
	if !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if env.metrics.failures != 1 {
		t.Fatalf("conflict must count as failure, got %d", env.metrics.failures)
	}
	if len(env.broadcast.sent) != 0 {
		t.Fatalf("conflict must not broadcast, got %d", len(env.broadcast.sent))
	}
}

type conflictOnSave struct {
	inner *stubGameRepo
}

func (r conflictOnSave) GetByID(ctx context.Context, gameID string) (evolution.Game, error) {
	return r.inner.GetByID(ctx, gameID)
}

func (r conflictOnSave) SaveWithVersion(context.Context, evolution.Game, int64) error {
	return ports.ErrConflict
}
