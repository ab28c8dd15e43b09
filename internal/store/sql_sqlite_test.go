// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-team-keeper/internal/config"
	"github.com/MKhiriev/go-team-keeper/internal/logger"
	"github.com/MKhiriev/go-team-keeper/models"
)

func seedUser(t *testing.T, s *Storages, name string) models.User {
	t.Helper()
	u, err := s.Users.CreateUser(context.Background(), models.User{Username: name, PasswordHash: "h"})
	require.NoError(t, err)
	return u
}

func TestSQLite_WithinTxCommits(t *testing.T) {
	s := NewStorages(newSQLiteStore(t))
	ctx := context.Background()

	err := s.Transactor.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		_, err := repos.Users.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "h"})
		return err
	})
	require.NoError(t, err)

	u, err := s.Users.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
}

func TestSQLite_WithinTxRollsBack(t *testing.T) {
	s := NewStorages(newSQLiteStore(t))
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Transactor.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		if _, err := repos.Users.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "h"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Users.FindUserByUsername(ctx, "alice")
	require.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestSQLite_WithinTxRollsBackOnPanic(t *testing.T) {
	s := NewStorages(newSQLiteStore(t))
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = s.Transactor.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
			if _, err := repos.Users.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "h"}); err != nil {
				return err
			}
			panic("unexpected")
		})
	})

	_, err := s.Users.FindUserByUsername(ctx, "alice")
	require.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestSQLite_DuplicateUsername(t *testing.T) {
	s := NewStorages(newSQLiteStore(t))
	seedUser(t, s, "alice")

	_, err := s.Users.CreateUser(context.Background(), models.User{Username: "alice", PasswordHash: "x"})
	require.ErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestSQLite_Memberships(t *testing.T) {
	s := NewStorages(newSQLiteStore(t))
	ctx := context.Background()
	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")

	team, err := s.Teams.CreateTeam(ctx, models.Team{Name: "core", Code: "ABCDEF"})
	require.NoError(t, err)

	_, err = s.Teams.CreateTeam(ctx, models.Team{Name: "other", Code: "ABCDEF"})
	require.ErrorIs(t, err, ErrTeamCodeExists)

	require.NoError(t, s.Memberships.AddMembership(ctx, models.Membership{TeamID: team.TeamID, UserID: alice.UserID, Role: models.RoleAdmin}))
	require.NoError(t, s.Memberships.AddMembership(ctx, models.Membership{TeamID: team.TeamID, UserID: bob.UserID, Role: models.RoleAwaiting}))

	err = s.Memberships.AddMembership(ctx, models.Membership{TeamID: team.TeamID, UserID: bob.UserID, Role: models.RoleMember})
	require.ErrorIs(t, err, ErrMembershipExists)

	err = s.Memberships.AddMembership(ctx, models.Membership{TeamID: 999, UserID: bob.UserID, Role: models.RoleMember})
	require.ErrorIs(t, err, ErrTeamNotFound)

	err = s.Memberships.UpdateRole(ctx, team.TeamID, bob.UserID, models.RoleMember, models.RoleAdmin)
	require.ErrorIs(t, err, ErrMembershipNotFound)
	require.NoError(t, s.Memberships.UpdateRole(ctx, team.TeamID, bob.UserID, models.RoleAwaiting, models.RoleMember))

	members, err := s.Memberships.ListTeamUsers(ctx, team.TeamID, models.RoleMember)
	require.NoError(t, err)
	assert.Equal(t, []models.TeamUser{{UserID: bob.UserID, Username: "bob"}}, members)

	teams, err := s.Memberships.ListUserTeams(ctx, alice.UserID)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, models.RoleAdmin, teams[0].Role)

	err = s.Memberships.DeleteMembership(ctx, team.TeamID, alice.UserID, models.RoleMember)
	require.ErrorIs(t, err, ErrMembershipNotFound)
	require.NoError(t, s.Memberships.DeleteMembership(ctx, team.TeamID, bob.UserID))

	_, err = s.Memberships.FindMembership(ctx, team.TeamID, bob.UserID)
	require.ErrorIs(t, err, ErrMembershipNotFound)
}

func TestSQLite_CredentialGroupsAndOrphans(t *testing.T) {
	s := NewStorages(newSQLiteStore(t))
	ctx := context.Background()
	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")

	first, err := s.Credentials.CreateCredential(ctx, models.Credential{Login: "a", Group: "gmail"})
	require.NoError(t, err)

	_, err = s.Credentials.CreateCredential(ctx, models.Credential{Login: "b", Group: "gmail"})
	require.ErrorIs(t, err, ErrCredentialGroupExists)

	// ungrouped credentials never collide
	_, err = s.Credentials.CreateCredential(ctx, models.Credential{Login: "c"})
	require.NoError(t, err)
	_, err = s.Credentials.CreateCredential(ctx, models.Credential{Login: "d"})
	require.NoError(t, err)

	found, err := s.Credentials.FindCredentialByGroup(ctx, "gmail")
	require.NoError(t, err)
	assert.Equal(t, first.CredentialID, found.CredentialID)

	aliceSecret, err := s.Secrets.CreateSecret(ctx, models.CredentialSecret{CredentialID: first.CredentialID, UserID: alice.UserID, Password: "pa"})
	require.NoError(t, err)
	_, err = s.Secrets.CreateSecret(ctx, models.CredentialSecret{CredentialID: first.CredentialID, UserID: bob.UserID, Password: "pb"})
	require.NoError(t, err)

	_, err = s.Secrets.CreateSecret(ctx, models.CredentialSecret{CredentialID: first.CredentialID, UserID: alice.UserID, Password: "again"})
	require.ErrorIs(t, err, ErrSecretAlreadyExists)

	require.NoError(t, s.Secrets.DeleteSecret(ctx, aliceSecret.SecretID))
	deleted, err := s.Credentials.DeleteCredentialIfOrphaned(ctx, first.CredentialID)
	require.NoError(t, err)
	assert.False(t, deleted, "bob still holds a secret")

	n, err := s.Secrets.DeleteCredentialSecrets(ctx, first.CredentialID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	deleted, err = s.Credentials.DeleteCredentialIfOrphaned(ctx, first.CredentialID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = s.Credentials.FindCredentialByID(ctx, first.CredentialID)
	require.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestSQLite_ListSecretsByTeam(t *testing.T) {
	s := NewStorages(newSQLiteStore(t))
	ctx := context.Background()
	alice := seedUser(t, s, "alice")

	team, err := s.Teams.CreateTeam(ctx, models.Team{Name: "core", Code: "C0DE"})
	require.NoError(t, err)

	shared, err := s.Credentials.CreateCredential(ctx, models.Credential{Login: "shared", TeamID: &team.TeamID})
	require.NoError(t, err)
	own, err := s.Credentials.CreateCredential(ctx, models.Credential{Login: "own"})
	require.NoError(t, err)

	for _, c := range []models.Credential{shared, own} {
		_, err = s.Secrets.CreateSecret(ctx, models.CredentialSecret{CredentialID: c.CredentialID, UserID: alice.UserID, Password: "p"})
		require.NoError(t, err)
	}

	all, err := s.Secrets.ListUserSecrets(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	teamOnly, err := s.Secrets.ListUserTeamSecrets(ctx, alice.UserID, team.TeamID)
	require.NoError(t, err)
	require.Len(t, teamOnly, 1)
	assert.Equal(t, "shared", teamOnly[0].Credential.Login)
	assert.True(t, teamOnly[0].Credential.IsShared())
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	busy := sqlite3.Error{Code: sqlite3.ErrBusy}
	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	pk := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}
	fk := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}

	assert.Equal(t, Retryable, c.Classify(busy))
	assert.Equal(t, NonRetryable, c.Classify(unique))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))

	assert.True(t, c.IsUniqueViolation(unique))
	assert.True(t, c.IsUniqueViolation(pk))
	assert.False(t, c.IsUniqueViolation(fk))
	assert.True(t, c.IsForeignKeyViolation(fk))
	assert.False(t, c.IsForeignKeyViolation(errors.New("plain")))
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: ":memory:", want: ":memory:?_foreign_keys=on"},
		{dsn: "/var/lib/vault.db", want: "/var/lib/vault.db?_foreign_keys=on"},
		{dsn: "file:vault.db?cache=shared", want: "file:vault.db?cache=shared&_foreign_keys=on"},
		{dsn: "vault.db?_fk=1", want: "vault.db?_fk=1"},
		{dsn: "vault.db?mode=rw&_foreign_keys=off", want: "vault.db?mode=rw&_foreign_keys=off"},
	}
	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.dsn))
		})
	}
}

func TestSQLite_ForeignKeysOnEveryConnection(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "vault.db")

	db, err := NewDB(ctx, config.DB{Driver: config.DriverSQLite, DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// no idle connections: every query below runs on a fresh one
	db.SetMaxIdleConns(0)

	for range 3 {
		var enabled int
		require.NoError(t, db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled))
		assert.Equal(t, 1, enabled)
	}

	s := NewStorages(db)
	bob := seedUser(t, s, "bob")
	err = s.Memberships.AddMembership(ctx, models.Membership{TeamID: 999, UserID: bob.UserID, Role: models.RoleMember})
	require.ErrorIs(t, err, ErrTeamNotFound)
}
