package database

import (
	"context"
	"fmt"

	"investments-api/src/model"
)

// EnsureCreated creates missing tables, columns, indexes and constraints.
// Existing data is never dropped.
func (d *Database) EnsureCreated(ctx context.Context) error {
	db, cancel := d.Session(ctx)
	defer cancel()

	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
