package store

import (
	"github.com/avasilcai/school-admin/migrations"
)

// Migrate applies all pending schema migrations to the connected database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
