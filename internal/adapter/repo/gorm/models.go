package gormrepo

import "time"

// gameSnapshot stores the whole game aggregate as one JSON document. The
// engine always reads and writes the full snapshot, so a row per game with
// an optimistic version column is all the store needs.
type gameSnapshot struct {
	GameID    string `gorm:"primaryKey;column:game_id"`
	RoomID    string `gorm:"column:room_id;index"`
	Snapshot  []byte `gorm:"column:snapshot;type:jsonb"`
	Version   int64  `gorm:"column:version"`
	UpdatedAt time.Time
}

func (gameSnapshot) TableName() string { return "game_snapshots" }

type roomRow struct {
	RoomID     string `gorm:"primaryKey;column:room_id"`
	Users      []byte `gorm:"column:users;type:jsonb"`
	Spectators []byte `gorm:"column:spectators;type:jsonb"`
	CreatedAt  time.Time
}

func (roomRow) TableName() string { return "rooms" }

type actionLogRow struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	GameID    string `gorm:"column:game_id;index"`
	Seq       int64  `gorm:"column:seq"`
	Type      string `gorm:"column:type"`
	Payload   []byte `gorm:"column:payload;type:jsonb"`
	AppliedAt time.Time
}

func (actionLogRow) TableName() string { return "action_log" }
