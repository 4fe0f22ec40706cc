package gormrepo

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&gameSnapshot{}, &roomRow{}, &actionLogRow{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
