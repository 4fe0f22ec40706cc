package gormrepo

import (
	"context"

	"gorm.io/gorm"
)

// TxManager wraps a submission in a database transaction and threads the
// transactional handle through the context, so the game, room and log repos
// of one action all write through the same tx.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return TxManager{db: db}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}
