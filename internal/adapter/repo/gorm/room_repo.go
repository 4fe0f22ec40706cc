package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"primordia/internal/app/ports"
)

type RoomRepo struct {
	db *gorm.DB
}

func NewRoomRepo(db *gorm.DB) RoomRepo {
	return RoomRepo{db: db}
}

func (r RoomRepo) Create(ctx context.Context, room ports.RoomRecord) error {
	row, err := toRoomRow(room)
	if err != nil {
		return err
	}
	return getDBFromCtx(ctx, r.db).Create(&row).Error
}

func (r RoomRepo) GetByID(ctx context.Context, roomID string) (ports.RoomRecord, error) {
	var row roomRow
	if err := getDBFromCtx(ctx, r.db).Where("room_id = ?", roomID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.RoomRecord{}, ports.ErrNotFound
		}
		return ports.RoomRecord{}, err
	}
	out := ports.RoomRecord{RoomID: row.RoomID, CreatedAt: row.CreatedAt}
	if len(row.Users) > 0 {
		if err := json.Unmarshal(row.Users, &out.Users); err != nil {
			return ports.RoomRecord{}, err
		}
	}
	if len(row.Spectators) > 0 {
		if err := json.Unmarshal(row.Spectators, &out.Spectators); err != nil {
			return ports.RoomRecord{}, err
		}
	}
	return out, nil
}

func (r RoomRepo) Save(ctx context.Context, room ports.RoomRecord) error {
	row, err := toRoomRow(room)
	if err != nil {
		return err
	}
	return getDBFromCtx(ctx, r.db).Model(&roomRow{}).
		Where("room_id = ?", room.RoomID).
		Updates(map[string]any{"users": row.Users, "spectators": row.Spectators}).Error
}

func toRoomRow(room ports.RoomRecord) (roomRow, error) {
	users, err := json.Marshal(room.Users)
	if err != nil {
		return roomRow{}, err
	}
	spectators, err := json.Marshal(room.Spectators)
	if err != nil {
		return roomRow{}, err
	}
	return roomRow{
		RoomID:     room.RoomID,
		Users:      users,
		Spectators: spectators,
		CreatedAt:  room.CreatedAt,
	}, nil
}
