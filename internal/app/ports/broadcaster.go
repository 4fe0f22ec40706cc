package ports

import (
	"context"

	"primordia/internal/app/shared/wire"
)

// Broadcaster delivers a confirmed action to the listed users. Delivery is
// fan-out per user session; the engine never addresses connections directly.
type Broadcaster interface {
	Publish(ctx context.Context, users []string, action wire.Action) error
}
