// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-team-keeper/models"
)

var (
	userColumns       = []string{"user_id", "username", "password_hash", "public_key", "encrypted_private_key"}
	teamColumns       = []string{"team_id", "name", "code"}
	credentialColumns = []string{"credential_id", "login", "record_name", "url", "edited", "group_name", "team_id"}
	secretColumns     = []string{"secret_id", "password", "user_id", "credential_id"}

	// credentialWithSecretColumns is the column list of the credential/secret join.
	credentialWithSecretColumns = []string{
		"c.credential_id", "c.login", "c.record_name", "c.url", "c.edited", "c.group_name", "c.team_id",
		"s.secret_id", "s.password", "s.user_id", "s.credential_id",
	}
)

func buildFindUserQuery(qb sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	return qb.Select(userColumns...).From("users").Where(where).ToSql()
}

func buildListUsersQuery(qb sq.StatementBuilderType) (string, []any, error) {
	return qb.Select(userColumns...).From("users").OrderBy("user_id").ToSql()
}

func buildFindTeamQuery(qb sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	return qb.Select(teamColumns...).From("teams").Where(where).ToSql()
}

// buildListUserTeamsQuery selects the teams of userID with the role held in
// each, optionally filtered by role.
func buildListUserTeamsQuery(qb sq.StatementBuilderType, userID int64, roles []models.Role) (string, []any, error) {
	where := sq.And{sq.Eq{"m.user_id": userID}}
	if len(roles) > 0 {
		where = append(where, sq.Eq{"m.role": roleStrings(roles)})
	}

	return qb.Select("t.team_id", "t.name", "t.code", "m.role").
		From("teams t").
		Join("team_memberships m ON m.team_id = t.team_id").
		Where(where).
		OrderBy("t.team_id").
		ToSql()
}

// buildListTeamUsersQuery selects the users of teamID, optionally filtered by role.
func buildListTeamUsersQuery(qb sq.StatementBuilderType, teamID int64, roles []models.Role) (string, []any, error) {
	where := sq.And{sq.Eq{"m.team_id": teamID}}
	if len(roles) > 0 {
		where = append(where, sq.Eq{"m.role": roleStrings(roles)})
	}

	return qb.Select("u.user_id", "u.username").
		From("users u").
		Join("team_memberships m ON m.user_id = u.user_id").
		Where(where).
		OrderBy("u.user_id").
		ToSql()
}

func buildDeleteMembershipQuery(qb sq.StatementBuilderType, teamID, userID int64, roles []models.Role) (string, []any, error) {
	where := sq.And{sq.Eq{"team_id": teamID, "user_id": userID}}
	if len(roles) > 0 {
		where = append(where, sq.Eq{"role": roleStrings(roles)})
	}

	return qb.Delete("team_memberships").Where(where).ToSql()
}

func buildFindCredentialQuery(qb sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	return qb.Select(credentialColumns...).From("credentials").Where(where).ToSql()
}

// buildUpdateCredentialQuery rewrites every mutable metadata column of the credential.
func buildUpdateCredentialQuery(qb sq.StatementBuilderType, credential models.Credential) (string, []any, error) {
	return qb.Update("credentials").
		Set("login", credential.Login).
		Set("record_name", credential.RecordName).
		Set("url", credential.URL).
		Set("edited", credential.Edited).
		Set("group_name", nullableString(credential.Group)).
		Where(sq.Eq{"credential_id": credential.CredentialID}).
		ToSql()
}

// buildDeleteOrphanedCredentialQuery deletes the credential only when no
// secret references it.
func buildDeleteOrphanedCredentialQuery(qb sq.StatementBuilderType, credentialID int64) (string, []any, error) {
	return qb.Delete("credentials").
		Where(sq.Eq{"credential_id": credentialID}).
		Where("NOT EXISTS (SELECT 1 FROM credential_secrets s WHERE s.credential_id = credentials.credential_id)").
		ToSql()
}

// buildListSecretsQuery joins secrets of userID with their credentials,
// optionally restricted to credentials of teamID.
func buildListSecretsQuery(qb sq.StatementBuilderType, userID int64, teamID *int64) (string, []any, error) {
	where := sq.And{sq.Eq{"s.user_id": userID}}
	if teamID != nil {
		where = append(where, sq.Eq{"c.team_id": *teamID})
	}

	return qb.Select(credentialWithSecretColumns...).
		From("credential_secrets s").
		Join("credentials c ON c.credential_id = s.credential_id").
		Where(where).
		OrderBy("c.credential_id").
		ToSql()
}

func roleStrings(roles []models.Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}

// nullableString stores empty strings as NULL.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullableInt64(v *int64) sql.NullInt64 {
	if v == nil || *v == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	id := v.Int64
	return &id
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.Username, &u.PasswordHash, &u.PublicKey, &u.EncryptedPrivateKey)
	return u, err
}

func scanTeam(row rowScanner) (models.Team, error) {
	var t models.Team
	err := row.Scan(&t.TeamID, &t.Name, &t.Code)
	return t, err
}

func scanCredential(row rowScanner) (models.Credential, error) {
	var (
		c      models.Credential
		group  sql.NullString
		teamID sql.NullInt64
	)
	if err := row.Scan(&c.CredentialID, &c.Login, &c.RecordName, &c.URL, &c.Edited, &group, &teamID); err != nil {
		return models.Credential{}, err
	}
	c.Group = group.String
	c.TeamID = int64Ptr(teamID)

	return c, nil
}

func scanSecret(row rowScanner) (models.CredentialSecret, error) {
	var s models.CredentialSecret
	err := row.Scan(&s.SecretID, &s.Password, &s.UserID, &s.CredentialID)
	return s, err
}

func scanCredentialWithSecret(row rowScanner) (models.CredentialWithSecret, error) {
	var (
		cs     models.CredentialWithSecret
		group  sql.NullString
		teamID sql.NullInt64
	)
	c, s := &cs.Credential, &cs.Secret
	err := row.Scan(
		&c.CredentialID, &c.Login, &c.RecordName, &c.URL, &c.Edited, &group, &teamID,
		&s.SecretID, &s.Password, &s.UserID, &s.CredentialID,
	)
	if err != nil {
		return models.CredentialWithSecret{}, err
	}
	c.Group = group.String
	c.TeamID = int64Ptr(teamID)

	return cs, nil
}

// queryAll runs query and scans every row with scan.
func queryAll[T any](ctx context.Context, conn DBTX, query string, args []any, scan func(rowScanner) (T, error)) ([]T, error) {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// execAffecting runs a DML statement and returns the number of affected rows.
func execAffecting(ctx context.Context, conn DBTX, query string, args []any) (int64, error) {
	res, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n, nil
}
