package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"primordia/internal/app/ports"
	"primordia/internal/domain/evolution"
)

type GameRepo struct {
	db *gorm.DB
}

func NewGameRepo(db *gorm.DB) GameRepo {
	return GameRepo{db: db}
}

func (r GameRepo) GetByID(ctx context.Context, gameID string) (evolution.Game, error) {
	var row gameSnapshot
	if err := getDBFromCtx(ctx, r.db).Where("game_id = ?", gameID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return evolution.Game{}, ports.ErrNotFound
		}
		return evolution.Game{}, err
	}
	var game evolution.Game
	if err := json.Unmarshal(row.Snapshot, &game); err != nil {
		return evolution.Game{}, err
	}
	game.Version = row.Version
	return game, nil
}

func (r GameRepo) SaveWithVersion(ctx context.Context, game evolution.Game, expectedVersion int64) error {
	snapshot, err := json.Marshal(game)
	if err != nil {
		return err
	}
	db := getDBFromCtx(ctx, r.db)

	if expectedVersion == 0 {
		row := gameSnapshot{
			GameID:    game.ID,
			RoomID:    game.RoomID,
			Snapshot:  snapshot,
			Version:   game.Version,
			UpdatedAt: game.UpdatedAt,
		}
		return db.Create(&row).Error
	}

	res := db.Model(&gameSnapshot{}).
		Where("game_id = ? AND version = ?", game.ID, expectedVersion).
		Updates(map[string]any{
			"snapshot":   snapshot,
			"version":    game.Version,
			"updated_at": game.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}
