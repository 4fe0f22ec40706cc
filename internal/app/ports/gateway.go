package ports

import (
	"context"

	"primordia/internal/app/shared/wire"
	"primordia/internal/domain/evolution"
)

type ActionOutcome struct {
	Game       evolution.Game `json:"game"`
	Broadcasts []wire.Action  `json:"broadcasts"`
}

// ActionGateway is the single entry point for request actions. Every
// submission for the same game runs on one serialized stream, whatever
// transport it arrived on; the gateway is the server's ordering authority.
type ActionGateway interface {
	Submit(ctx context.Context, userID string, action wire.Action) (ActionOutcome, error)
}
