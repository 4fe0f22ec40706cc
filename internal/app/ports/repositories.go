package ports

import (
	"context"
	"encoding/json"
	"time"

	"primordia/internal/domain/evolution"
)

// RoomRecord is the membership roster replication targets are selected from:
// broadcasts go to every user and spectator of the game's room.
type RoomRecord struct {
	RoomID     string
	Users      []string
	Spectators []string
	CreatedAt  time.Time
}

func (r RoomRecord) Recipients() []string {
	out := make([]string, 0, len(r.Users)+len(r.Spectators))
	out = append(out, r.Users...)
	out = append(out, r.Spectators...)
	return out
}

// ActionLogRecord is one broadcast action as it went out, kept in order for
// replay.
type ActionLogRecord struct {
	GameID    string
	Seq       int64
	Type      string
	Payload   json.RawMessage
	AppliedAt time.Time
}

type GameRepository interface {
	GetByID(ctx context.Context, gameID string) (evolution.Game, error)
	// SaveWithVersion persists the snapshot iff the stored version still
	// equals expectedVersion; otherwise ErrConflict.
	SaveWithVersion(ctx context.Context, game evolution.Game, expectedVersion int64) error
}

type RoomRepository interface {
	Create(ctx context.Context, room RoomRecord) error
	GetByID(ctx context.Context, roomID string) (RoomRecord, error)
	Save(ctx context.Context, room RoomRecord) error
}

type ActionLogRepository interface {
	Append(ctx context.Context, gameID string, records []ActionLogRecord) error
	ListByGameID(ctx context.Context, gameID string, limit int) ([]ActionLogRecord, error)
}
