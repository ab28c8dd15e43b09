// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-team-keeper/internal/config"
	"github.com/MKhiriev/go-team-keeper/internal/logger"
	"github.com/MKhiriev/go-team-keeper/migrations"
)

// maxTxAttempts bounds how many times WithinTx runs a transaction that
// failed with a retryable error (serialization failure, deadlock, busy db).
const maxTxAttempts = 3

// DBTX is the subset of *sql.DB and *sql.Tx the repositories run on, so the
// same repository works inside and outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// DB is a database connection pool together with its SQL dialect and the
// driver-specific error classification.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB connects to the database selected by cfg.Driver and applies the
// schema migrations.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate applies pending schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// WithinTx implements [Transactor]. Transactions failing with an error the
// driver classifies as retryable are re-run from scratch.
func (db *DB) WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	log := logger.FromContext(ctx)

	for attempt := 1; ; attempt++ {
		err := db.withTx(ctx, fn)
		if err == nil || attempt >= maxTxAttempts || db.errorClassificator.Classify(err) != Retryable {
			return err
		}
		if ctx.Err() != nil {
			return err
		}

		log.Warn().Err(err).Int("attempt", attempt).Str("func", "*DB.WithinTx").Msg("retrying transaction")
	}
}

func (db *DB) withTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
		}
	}()

	return fn(ctx, db.repositories(tx))
}

// repositories binds every repository to conn.
func (db *DB) repositories(conn DBTX) Repositories {
	return Repositories{
		Users:       &userRepository{db: db, conn: conn},
		Teams:       &teamRepository{db: db, conn: conn},
		Memberships: &membershipRepository{db: db, conn: conn},
		Credentials: &credentialRepository{db: db, conn: conn},
		Secrets:     &secretRepository{db: db, conn: conn},
	}
}
