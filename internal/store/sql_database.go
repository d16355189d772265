package store

import (
	"database/sql"

	"github.com/neurox/neurox2-client/internal/logger"
	"github.com/neurox/neurox2-client/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
