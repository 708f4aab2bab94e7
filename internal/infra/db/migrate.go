package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sk-api/internal/domain/entity"
)

// Models lists every mapped entity in dependency order.
func Models() []any {
	return []any{
		&entity.AppUser{},
		&entity.Photo{},
		&entity.Event{},
		&entity.UserEvent{},
		&entity.Discussion{},
		&entity.Article{},
		&entity.Post{},
		&entity.TestValue{},
	}
}

// Migrate creates or updates the schema for every entity. Columns, sizes,
// indexes and unique constraints come from the gorm tags on the entities.
func Migrate(ctx context.Context, gdb *gorm.DB) error {
	if err := gdb.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
