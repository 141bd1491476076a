package database

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	sqldblogger "github.com/simukti/sqldb-logger"
	"github.com/simukti/sqldb-logger/logadapter/zerologadapter"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"go.opentelemetry.io/otel"
)

// NewPostgres opens the production store through the pgx stdlib
// driver, wrapped with otel tracing and zerolog statement logging, and
// runs pending migrations.
func NewPostgres(url string) (*DB, error) {
	if url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	sqlDB, err := otelsql.Open("pgx", url,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName("pokereview"),
		otelsql.WithTracerProvider(otel.GetTracerProvider()),
	)

	if err != nil {
		return nil, err
	}

	// Only the traced driver is reused; the handle itself would
	// otherwise linger with its own pool.
	tracedDriver := sqlDB.Driver()

	if err := sqlDB.Close(); err != nil {
		return nil, err
	}

	logger := zerolog.New(os.Stdout)
	loggedDB := sqldblogger.OpenDriver(url, tracedDriver, zerologadapter.New(logger))

	loggedDB.SetMaxOpenConns(100)
	loggedDB.SetMaxIdleConns(5)
	loggedDB.SetConnMaxLifetime(5 * time.Minute)

	if err := loggedDB.PingContext(context.Background()); err != nil {
		loggedDB.Close()
		return nil, err
	}

	migrationsPath := os.Getenv("MIGRATIONS_PATH")

	if migrationsPath == "" {
		migrationsPath = "infra/migrations"
	}

	if err := runPostgresMigrations(url, migrationsPath); err != nil {
		loggedDB.Close()
		return nil, err
	}

	return newDB(loggedDB), nil
}

func runPostgresMigrations(url, migrationsPath string) error {
	migrationDB, err := sql.Open("pgx", url)

	if err != nil {
		return err
	}

	defer migrationDB.Close()

	return migrateUpPostgres(migrationDB, migrationsPath)
}
