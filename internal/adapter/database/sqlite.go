package database

import (
	"database/sql"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// NewSQLite opens a local sqlite store. Used for local runs and by the
// test helpers with a :memory: path.
func NewSQLite(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite3", path)

	if err != nil {
		return nil, err
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		sqlDB.Close()
		return nil, err
	}

	migrationsPath := os.Getenv("MIGRATIONS_PATH")

	if migrationsPath == "" {
		migrationsPath = "db/migrations"
	}

	if err := migrateUpSQLite(sqlDB, migrationsPath); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return newDB(sqlDB), nil
}
