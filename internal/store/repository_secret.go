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

// secretRepository implements [SecretRepository] over "credential_secrets".
type secretRepository struct {
	db   *DB
	conn DBTX
}

// CreateSecret inserts secret. A second secret of the same user for the
// same credential yields [ErrSecretAlreadyExists]; an unknown user yields
// [ErrNoUserWasFound].
func (r *secretRepository) CreateSecret(ctx context.Context, secret models.CredentialSecret) (models.CredentialSecret, error) {
	query, args, err := r.db.builder.Insert("credential_secrets").
		Columns("credential_id", "user_id", "password").
		Values(secret.CredentialID, secret.UserID, secret.Password).
		Suffix("RETURNING secret_id").
		ToSql()
	if err != nil {
		return models.CredentialSecret{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.conn.QueryRowContext(ctx, query, args...).Scan(&secret.SecretID); err != nil {
		switch {
		case r.db.errorClassificator.IsUniqueViolation(err):
			return models.CredentialSecret{}, ErrSecretAlreadyExists
		case r.db.errorClassificator.IsForeignKeyViolation(err):
			return models.CredentialSecret{}, ErrNoUserWasFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*secretRepository.CreateSecret").Msg("error inserting secret")
		return models.CredentialSecret{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return secret, nil
}

func (r *secretRepository) FindSecret(ctx context.Context, credentialID, userID int64) (models.CredentialSecret, error) {
	query, args, err := r.db.builder.Select(secretColumns...).
		From("credential_secrets").
		Where(sq.Eq{"credential_id": credentialID, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.CredentialSecret{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	secret, err := scanSecret(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.CredentialSecret{}, ErrSecretNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*secretRepository.FindSecret").Msg("error finding secret")
		return models.CredentialSecret{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return secret, nil
}

// ListUserSecrets returns every credential userID holds a secret for.
func (r *secretRepository) ListUserSecrets(ctx context.Context, userID int64) ([]models.CredentialWithSecret, error) {
	return r.listSecrets(ctx, userID, nil)
}

// ListUserTeamSecrets returns the secrets of userID on credentials of teamID.
func (r *secretRepository) ListUserTeamSecrets(ctx context.Context, userID, teamID int64) ([]models.CredentialWithSecret, error) {
	return r.listSecrets(ctx, userID, &teamID)
}

func (r *secretRepository) listSecrets(ctx context.Context, userID int64, teamID *int64) ([]models.CredentialWithSecret, error) {
	query, args, err := buildListSecretsQuery(r.db.builder, userID, teamID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	secrets, err := queryAll(ctx, r.conn, query, args, scanCredentialWithSecret)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*secretRepository.listSecrets").Msg("error listing secrets")
		return nil, err
	}

	return secrets, nil
}

func (r *secretRepository) UpdateSecretPassword(ctx context.Context, secretID int64, password string) error {
	query, args, err := r.db.builder.Update("credential_secrets").
		Set("password", password).
		Where(sq.Eq{"secret_id": secretID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	n, err := execAffecting(ctx, r.conn, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*secretRepository.UpdateSecretPassword").Msg("error updating secret")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrSecretNotFound
	}

	return nil
}

func (r *secretRepository) DeleteSecret(ctx context.Context, secretID int64) error {
	query, args, err := r.db.builder.Delete("credential_secrets").
		Where(sq.Eq{"secret_id": secretID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	n, err := execAffecting(ctx, r.conn, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*secretRepository.DeleteSecret").Msg("error deleting secret")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrSecretNotFound
	}

	return nil
}

// DeleteCredentialSecrets deletes every secret of the credential and
// returns how many were removed.
func (r *secretRepository) DeleteCredentialSecrets(ctx context.Context, credentialID int64) (int64, error) {
	query, args, err := r.db.builder.Delete("credential_secrets").
		Where(sq.Eq{"credential_id": credentialID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	n, err := execAffecting(ctx, r.conn, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*secretRepository.DeleteCredentialSecrets").Msg("error deleting secrets")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return n, nil
}
