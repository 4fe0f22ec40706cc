package trait

import (
	"primordia/internal/app/shared/wire"
	"primordia/internal/domain/evolution"
)

type Request struct {
	UserID string
	Action wire.Action
}

type Response struct {
	Game       evolution.Game `json:"game"`
	Broadcasts []wire.Action  `json:"broadcasts"`
}
