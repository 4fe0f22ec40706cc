// Package replay lists the confirmed actions a game broadcast, in the order
// the server applied them. A client can rebuild its mirror by applying them
// to the initial snapshot.
package replay

import (
	"context"
	"errors"
	"strings"

	"primordia/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid replay request")

const defaultLimit = 500

type UseCase struct {
	Log ports.ActionLogRepository
}

type Request struct {
	GameID string
	Limit  int
}

type Response struct {
	GameID  string                  `json:"game_id"`
	Actions []ports.ActionLogRecord `json:"actions"`
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.GameID) == "" {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit <= 0 || limit > defaultLimit {
		limit = defaultLimit
	}
	records, err := u.Log.ListByGameID(ctx, req.GameID, limit)
	if err != nil {
		return Response{}, err
	}
	return Response{GameID: req.GameID, Actions: records}, nil
}
