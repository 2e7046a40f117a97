package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// Open connects to the record store and verifies the connection.
// SQLite is used as an embedded store and gets a single connection so that
// writers from the polling loops serialize instead of hitting SQLITE_BUSY.
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	return db, nil
}

// Migrate creates the records table and its indexes if they do not exist.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema(db.DriverName()) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func schema(driver string) []string {
	idColumn := "id INTEGER PRIMARY KEY AUTOINCREMENT"
	timeType := "TIMESTAMP"
	if driver == DriverPostgres {
		idColumn = "id BIGSERIAL PRIMARY KEY"
		timeType = "TIMESTAMPTZ"
	}

	return []string{
		`CREATE TABLE IF NOT EXISTS records (
			` + idColumn + `,
			type TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			url TEXT NOT NULL DEFAULT '',
			filename TEXT NOT NULL DEFAULT '',
			author TEXT NOT NULL DEFAULT '',
			incoming BOOLEAN NOT NULL DEFAULT FALSE,
			station_playing TEXT NOT NULL DEFAULT '',
			station_title TEXT NOT NULL DEFAULT '',
			station_title_sent TEXT NOT NULL DEFAULT '',
			created_at ` + timeType + ` NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS records_clip_filename ON records (filename) WHERE type = 'clip'`,
		`CREATE UNIQUE INDEX IF NOT EXISTS records_station_name ON records (name) WHERE type = 'station'`,
		`CREATE UNIQUE INDEX IF NOT EXISTS records_radio_singleton ON records (type) WHERE type = 'radio'`,
		`CREATE INDEX IF NOT EXISTS records_clip_url ON records (url) WHERE type = 'clip'`,
	}
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
