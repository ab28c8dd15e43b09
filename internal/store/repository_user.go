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

// userRepository implements [UserRepository] over the "users" table.
type userRepository struct {
	db   *DB
	conn DBTX
}

// CreateUser inserts user and returns it with the assigned UserID.
// A taken username yields [ErrLoginAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Insert("users").
		Columns("username", "password_hash", "public_key", "encrypted_private_key").
		Values(user.Username, user.PasswordHash, user.PublicKey, user.EncryptedPrivateKey).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.conn.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.User{}, ErrLoginAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"username": username}, "*userRepository.FindUserByUsername")
}

func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"user_id": userID}, "*userRepository.FindUserByID")
}

func (r *userRepository) findUser(ctx context.Context, where sq.Sqlizer, funcName string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.db.builder, where)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	query, args, err := buildListUsersQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	users, err := queryAll(ctx, r.conn, query, args, scanUser)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, err
	}

	return users, nil
}

// UpdateUserPassword replaces the password hash and the re-wrapped private key.
func (r *userRepository) UpdateUserPassword(ctx context.Context, userID int64, passwordHash, encryptedPrivateKey string) error {
	return r.updateUser(ctx, userID, sq.Eq{
		"password_hash":         passwordHash,
		"encrypted_private_key": encryptedPrivateKey,
	}, "*userRepository.UpdateUserPassword")
}

func (r *userRepository) UpdateUserKeys(ctx context.Context, userID int64, publicKey, encryptedPrivateKey string) error {
	return r.updateUser(ctx, userID, sq.Eq{
		"public_key":            publicKey,
		"encrypted_private_key": encryptedPrivateKey,
	}, "*userRepository.UpdateUserKeys")
}

func (r *userRepository) updateUser(ctx context.Context, userID int64, set map[string]any, funcName string) error {
	query, args, err := r.db.builder.Update("users").
		SetMap(set).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	n, err := execAffecting(ctx, r.conn, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
