package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"primordia/internal/app/ports"
)

type ActionLogRepo struct {
	db *gorm.DB
}

func NewActionLogRepo(db *gorm.DB) ActionLogRepo {
	return ActionLogRepo{db: db}
}

func (r ActionLogRepo) Append(ctx context.Context, gameID string, records []ports.ActionLogRecord) error {
	if len(records) == 0 {
		return nil
	}
	db := getDBFromCtx(ctx, r.db)

	var lastSeq int64
	if err := db.Model(&actionLogRow{}).
		Where("game_id = ?", gameID).
		Select("COALESCE(MAX(seq), 0)").
		Scan(&lastSeq).Error; err != nil {
		return err
	}

	rows := make([]actionLogRow, 0, len(records))
	for i, record := range records {
		rows = append(rows, actionLogRow{
			GameID:    gameID,
			Seq:       lastSeq + int64(i) + 1,
			Type:      record.Type,
			Payload:   record.Payload,
			AppliedAt: record.AppliedAt,
		})
	}
	return db.Create(&rows).Error
}

func (r ActionLogRepo) ListByGameID(ctx context.Context, gameID string, limit int) ([]ports.ActionLogRecord, error) {
	var rows []actionLogRow
	q := getDBFromCtx(ctx, r.db).Where("game_id = ?", gameID).Order("seq ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.ActionLogRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, ports.ActionLogRecord{
			GameID:    row.GameID,
			Seq:       row.Seq,
			Type:      row.Type,
			Payload:   row.Payload,
			AppliedAt: row.AppliedAt,
		})
	}
	return out, nil
}
