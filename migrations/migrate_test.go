// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_ = mock // goose queries the db itself; every unexpected call fails

	err = Migrate(db, DialectPostgres)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "migration error"), "got: %v", err)
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectPostgres)
	require.ErrorIs(t, err, ErrNilDB)
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "oracle")
	require.ErrorIs(t, err, ErrUnsupportedDialect)
}

func TestMigrate_SQLiteCreatesSchema(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db, DialectSQLite))

	for _, table := range []string{"users", "teams", "team_memberships", "credentials", "credential_secrets"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s", table)
	}

	// applying twice is a no-op
	require.NoError(t, Migrate(db, DialectSQLite))
}

func TestMigrate_SQLiteGroupIsUniqueWhenSet(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db, DialectSQLite))

	_, err = db.Exec(`INSERT INTO credentials (group_name) VALUES (NULL), (NULL)`)
	require.NoError(t, err, "ungrouped credentials never collide")

	_, err = db.Exec(`INSERT INTO credentials (group_name) VALUES ('gmail')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO credentials (group_name) VALUES ('gmail')`)
	require.Error(t, err)
}
