package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/daithanwa/dsi202-2025/internal/logging"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// OpenSQLite opens the database file, creating its directory, and applies the
// embedded migrations.
func OpenSQLite(dbPath string) (*gorm.DB, error) {
	return openSQLite(dbPath, nil)
}

func openSQLite(dbPath string, logger *logging.Logger) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	database, err := gorm.Open(sqlite.Open(dbPath+"?"+sqlitePragmas), &gorm.Config{Logger: newGormLogger(logger)})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}
	return database, nil
}
