// Package round advances the turn order. It is the external driver of
// cooldown expiry: cooldown entries count rounds and get decremented here,
// never inside the registry itself.
package round

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"primordia/internal/app/ports"
	"primordia/internal/app/shared/wire"
	"primordia/internal/app/trait"
	"primordia/internal/domain/evolution"
)

type UseCase struct {
	TxManager ports.TxManager
	Games     ports.GameRepository
	Rooms     ports.RoomRepository
	Log       ports.ActionLogRepository
	Broadcast ports.Broadcaster
	Now       func() time.Time
}

type Request struct {
	UserID string
	GameID string
}

type Response struct {
	Game      evolution.Game `json:"game"`
	Broadcast wire.Action    `json:"broadcast"`
}

// Execute ends the requesting player's turn. When the rotation wraps back to
// the first seat the round counter advances and every cooldown ticks down.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	origin := fmt.Sprintf("gameEndTurnRequest@Game(%s)", req.GameID)
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		game, err := u.Games.GetByID(txCtx, req.GameID)
		if errors.Is(err, ports.ErrNotFound) {
			return trait.CheckGameDefined(origin, nil)
		}
		if err != nil {
			return err
		}
		room, err := u.Rooms.GetByID(txCtx, game.RoomID)
		if err != nil {
			return err
		}
		if err := trait.CheckGameHasUser(origin, game, req.UserID); err != nil {
			return err
		}
		if err := trait.CheckPlayerTurnAndPhase(origin, game, req.UserID, evolution.PhaseFeeding); err != nil {
			return err
		}

		next, wrapped := game.NextPlayer()
		if wrapped {
			next.Round++
			next = next.WithCooldowns(next.Cooldowns.Tick())
		}

		expected := game.Version
		next.Version = expected + 1
		next.UpdatedAt = now
		if err := u.Games.SaveWithVersion(txCtx, next, expected); err != nil {
			return err
		}

		action, err := wire.NewAction(wire.TypeGameNextPlayer, wire.NextPlayerData{
			GameID: next.ID,
			UserID: next.CurrentPlayer,
			Round:  next.Round,
		}, &wire.Meta{Users: room.Recipients()})
		if err != nil {
			return err
		}
		if u.Log != nil {
			record := ports.ActionLogRecord{GameID: next.ID, Type: action.Type, Payload: json.RawMessage(action.Data), AppliedAt: now}
			if err := u.Log.Append(txCtx, next.ID, []ports.ActionLogRecord{record}); err != nil {
				return err
			}
		}
		out = Response{Game: next, Broadcast: action}
		return nil
	})
	if err != nil {
		return Response{}, err
	}

	if u.Broadcast != nil && out.Broadcast.Meta != nil {
		if err := u.Broadcast.Publish(ctx, out.Broadcast.Meta.Users, out.Broadcast); err != nil {
			return Response{}, err
		}
	}
	return out, nil
}
