package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-team-keeper/internal/logger"
	"github.com/MKhiriev/go-team-keeper/models"
)

// credentialRepository implements [CredentialRepository]. An empty group is
// stored as NULL so that only non-empty groups are subject to the unique
// index on group_name.
type credentialRepository struct {
	db   *DB
	conn DBTX
}

// CreateCredential inserts credential. A group already used by another
// credential yields [ErrCredentialGroupExists]; an unknown team yields
// [ErrTeamNotFound].
func (r *credentialRepository) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	query, args, err := r.db.builder.Insert("credentials").
		Columns("login", "record_name", "url", "edited", "group_name", "team_id").
		Values(
			credential.Login,
			credential.RecordName,
			credential.URL,
			credential.Edited,
			nullableString(credential.Group),
			nullableInt64(credential.TeamID),
		).
		Suffix("RETURNING credential_id").
		ToSql()
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.conn.QueryRowContext(ctx, query, args...).Scan(&credential.CredentialID); err != nil {
		switch {
		case r.db.errorClassificator.IsUniqueViolation(err):
			return models.Credential{}, ErrCredentialGroupExists
		case r.db.errorClassificator.IsForeignKeyViolation(err):
			return models.Credential{}, ErrTeamNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*credentialRepository.CreateCredential").Msg("error inserting credential")
		return models.Credential{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	credential.TeamID = int64Ptr(nullableInt64(credential.TeamID))

	return credential, nil
}

func (r *credentialRepository) FindCredentialByID(ctx context.Context, credentialID int64) (models.Credential, error) {
	return r.findCredential(ctx, sq.Eq{"credential_id": credentialID})
}

// FindCredentialByGroup resolves the single credential using group.
// The empty group never matches.
func (r *credentialRepository) FindCredentialByGroup(ctx context.Context, group string) (models.Credential, error) {
	if group == "" {
		return models.Credential{}, ErrCredentialNotFound
	}
	return r.findCredential(ctx, sq.Eq{"group_name": group})
}

func (r *credentialRepository) findCredential(ctx context.Context, where sq.Sqlizer) (models.Credential, error) {
	query, args, err := buildFindCredentialQuery(r.db.builder, where)
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	credential, err := scanCredential(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, ErrCredentialNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*credentialRepository.findCredential").Msg("error finding credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return credential, nil
}

// UpdateCredential writes the metadata columns of credential. Moving it to
// a group used by another credential yields [ErrCredentialGroupExists].
func (r *credentialRepository) UpdateCredential(ctx context.Context, credential models.Credential) error {
	query, args, err := buildUpdateCredentialQuery(r.db.builder, credential)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	n, err := execAffecting(ctx, r.conn, query, args)
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return ErrCredentialGroupExists
		}
		logger.FromContext(ctx).Err(err).Str("func", "*credentialRepository.UpdateCredential").Msg("error updating credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrCredentialNotFound
	}

	return nil
}

func (r *credentialRepository) DeleteCredentialIfOrphaned(ctx context.Context, credentialID int64) (bool, error) {
	query, args, err := buildDeleteOrphanedCredentialQuery(r.db.builder, credentialID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	n, err := execAffecting(ctx, r.conn, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*credentialRepository.DeleteCredentialIfOrphaned").Msg("error deleting credential")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return n > 0, nil
}
