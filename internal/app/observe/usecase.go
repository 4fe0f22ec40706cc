// Package observe serves the read-only game view a client needs to join or
// rejoin a match. The view is advisory: server broadcasts always win over it.
package observe

import (
	"context"
	"errors"
	"strings"

	"primordia/internal/app/ports"
	"primordia/internal/domain/evolution"
)

var (
	ErrInvalidRequest = errors.New("invalid observe request")
	ErrNotSpectating  = errors.New("user is not in the game's room")
)

type UseCase struct {
	Games ports.GameRepository
	Rooms ports.RoomRepository
}

type Request struct {
	UserID string
	GameID string
}

type Response struct {
	Game       evolution.Game `json:"game"`
	Recipients []string       `json:"recipients"`
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.GameID) == "" {
		return Response{}, ErrInvalidRequest
	}
	game, err := u.Games.GetByID(ctx, req.GameID)
	if err != nil {
		return Response{}, err
	}
	room, err := u.Rooms.GetByID(ctx, game.RoomID)
	if err != nil {
		return Response{}, err
	}
	for _, userID := range room.Recipients() {
		if userID == req.UserID {
			return Response{Game: game, Recipients: room.Recipients()}, nil
		}
	}
	return Response{}, ErrNotSpectating
}
