// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/migrations"
	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Dialects understood by the cache.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// DB is a database/sql connection bound to one dialect.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// dialectFromDSN picks the driver by DSN scheme. "postgres://" and
// "postgresql://" open PostgreSQL; a bare path or a "file:" URI opens
// SQLite.
func dialectFromDSN(dsn string) (dialect string, driver string, source string, err error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, "pgx", dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return DialectSQLite, "sqlite3", strings.TrimPrefix(dsn, "sqlite://"), nil
	case strings.Contains(dsn, "://"):
		return "", "", "", fmt.Errorf("%w: %s", ErrUnsupportedDSN, dsn[:strings.Index(dsn, "://")])
	default:
		return DialectSQLite, "sqlite3", dsn, nil
	}
}

// NewConnect opens the database named by cfg.DSN, pings it and applies
// pending migrations.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, driver, source, err := dialectFromDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	// establish connection
	conn, err := sql.Open(driver, source)
	if err != nil {
		log.Err(err).Str("dialect", dialect).Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	if dialect == DialectSQLite {
		// a single writer avoids SQLITE_BUSY between our own connections
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(4)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("dialect", dialect).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	db := newDB(conn, dialect, log)
	if err = db.Migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	log.Info().Str("dialect", dialect).Msg("connected to snapshot cache successfully")
	return db, nil
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:          conn,
		dialect:     dialect,
		placeholder: sq.Question,
		logger:      log,
	}

	if dialect == DialectPostgres {
		db.placeholder = sq.Dollar
		db.errorClassificator = NewPostgresErrorClassifier()
	} else {
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Migrate applies the embedded goose migrations for the connection dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
