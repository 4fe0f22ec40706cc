package trait

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"primordia/internal/app/ports"
	"primordia/internal/app/shared/wire"
	"primordia/internal/domain/evolution"
)

type UseCase struct {
	TxManager ports.TxManager
	Games     ports.GameRepository
	Rooms     ports.RoomRepository
	Log       ports.ActionLogRepository
	Broadcast ports.Broadcaster
	Metrics   ports.ActionMetrics
	Catalog   evolution.Catalog
	Now       func() time.Time
}

type requestInput struct {
	UserID string
	Action wire.Action
	NowAt  time.Time
}

type requestView struct {
	Game       evolution.Game
	Recipients []string
}

type requestPlan struct {
	Broadcasts []wire.Action
}

type requestContext struct {
	In   requestInput
	View requestView
	Plan requestPlan
}

// Execute runs one request action through validation and effect dispatch.
// Validation failures abort before any effect is applied; on success the
// updated snapshot is persisted and every produced effect is broadcast.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	handler, ok := clientToServer()[req.Action.Type]
	if !ok {
		return Response{}, fmt.Errorf("%w: %s", ErrNotRouted, req.Action.Type)
	}
	userID := strings.TrimSpace(req.UserID)
	if userID == "" || req.Action.Data == nil {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	rc := requestContext{In: requestInput{UserID: userID, Action: req.Action, NowAt: nowFn()}}

	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := handler(txCtx, u, &rc); err != nil {
			return err
		}
		return u.persist(txCtx, &rc)
	})
	if err != nil {
		u.recordError(err)
		return Response{}, err
	}

	if u.Broadcast != nil {
		for _, action := range rc.Plan.Broadcasts {
			if action.Meta == nil || len(action.Meta.Users) == 0 {
				continue
			}
			if err := u.Broadcast.Publish(ctx, action.Meta.Users, action); err != nil {
				return Response{}, err
			}
		}
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(req.Action.Type)
	}

	return Response{Game: rc.View.Game, Broadcasts: rc.Plan.Broadcasts}, nil
}

// loadGame resolves the game and its room roster. A missing game is the
// NotFound rejection of checkGameDefined.
func (u UseCase) loadGame(ctx context.Context, rc *requestContext, gameID, origin string) error {
	game, err := u.Games.GetByID(ctx, gameID)
	if errors.Is(err, ports.ErrNotFound) {
		return CheckGameDefined(origin, nil)
	}
	if err != nil {
		return err
	}
	if err := CheckGameDefined(origin, &game); err != nil {
		return err
	}
	room, err := u.Rooms.GetByID(ctx, game.RoomID)
	if errors.Is(err, ports.ErrNotFound) {
		return checkError(ErrNotFound, origin, "room %s not found", game.RoomID)
	}
	if err != nil {
		return err
	}
	rc.View.Game = game
	rc.View.Recipients = room.Recipients()
	return nil
}

func (u UseCase) persist(ctx context.Context, rc *requestContext) error {
	game := rc.View.Game
	expected := game.Version
	game.Version++
	game.UpdatedAt = rc.In.NowAt
	rc.View.Game = game

	if err := u.Games.SaveWithVersion(ctx, game, expected); err != nil {
		return err
	}
	if u.Log == nil || len(rc.Plan.Broadcasts) == 0 {
		return nil
	}
	records := make([]ports.ActionLogRecord, 0, len(rc.Plan.Broadcasts))
	for _, action := range rc.Plan.Broadcasts {
		records = append(records, ports.ActionLogRecord{
			GameID:    game.ID,
			Type:      action.Type,
			Payload:   action.Data,
			AppliedAt: rc.In.NowAt,
		})
	}
	return u.Log.Append(ctx, game.ID, records)
}

func (u UseCase) recordError(err error) {
	if u.Metrics == nil {
		return
	}
	var checkErr *ActionCheckError
	if errors.As(err, &checkErr) {
		u.Metrics.RecordRejection(KindLabel(err))
		return
	}
	u.Metrics.RecordFailure()
}
