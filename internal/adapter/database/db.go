package database

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
)

// DB is the request-scoped query surface shared by every repository.
// Both the pgx stdlib driver and sqlite satisfy it through
// database/sql, so repositories are written once.
type DB struct {
	*sql.DB
	QueryBuilder *squirrel.StatementBuilderType
}

// NewFromSQL wraps an already opened handle. The test helpers use it
// for :memory: sqlite databases they migrate themselves.
func NewFromSQL(sqlDB *sql.DB) *DB {
	return newDB(sqlDB)
}

func newDB(sqlDB *sql.DB) *DB {
	queryBuilder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	return &DB{
		DB:           sqlDB,
		QueryBuilder: &queryBuilder,
	}
}

// WithTx runs fn inside a transaction; rollback on error, commit
// otherwise. The transaction never outlives the call.
func (db *DB) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)

	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
