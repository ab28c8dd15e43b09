package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-team-keeper/internal/crypto"
	"github.com/MKhiriev/go-team-keeper/internal/logger"
	"github.com/MKhiriev/go-team-keeper/internal/store"
	"github.com/MKhiriev/go-team-keeper/internal/validators"
	"github.com/MKhiriev/go-team-keeper/models"
)

type userService struct {
	repos     store.Repositories
	hasher    crypto.PasswordHasher
	validator validators.Validator

	logger *logger.Logger
}

func NewUserService(storages *store.Storages, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		repos:     storages.Repositories,
		hasher:    hasher,
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}

func (s *userService) GetMe(ctx context.Context, user models.User) (models.UserPublic, error) {
	return s.public(ctx, user)
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (models.UserPublic, error) {
	user, err := s.repos.Users.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.UserPublic{}, ErrUserNotFound
	}
	if err != nil {
		return models.UserPublic{}, err
	}

	return s.public(ctx, user)
}

func (s *userService) GetAllUsers(ctx context.Context) ([]models.UserPublic, error) {
	users, err := s.repos.Users.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetAllUsers").Msg("error listing users")
		return nil, err
	}

	result := make([]models.UserPublic, 0, len(users))
	for _, user := range users {
		public, err := s.public(ctx, user)
		if err != nil {
			return nil, err
		}
		result = append(result, public)
	}
	return result, nil
}

// ChangePassword replaces the password hash and the re-wrapped private key
// in one statement once the old password is verified.
func (s *userService) ChangePassword(ctx context.Context, user models.User, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	stored, err := s.repos.Users.FindUserByID(ctx, user.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	ok, err := s.hasher.Verify(req.OldPassword, stored.PasswordHash)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Str("func", "*userService.ChangePassword").Msg("stored password hash is unreadable")
		return err
	}
	if !ok {
		return ErrWrongOldPassword
	}

	passwordHash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	err = s.repos.Users.UpdateUserPassword(ctx, user.UserID, passwordHash, req.EncryptedPrivateKey)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *userService) ChangeKeys(ctx context.Context, user models.User, req models.ChangeKeysRequest) (models.UserPublic, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.UserPublic{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	err := s.repos.Users.UpdateUserKeys(ctx, user.UserID, req.PublicKey, req.EncryptedPrivateKey)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.UserPublic{}, ErrUserNotFound
	}
	if err != nil {
		return models.UserPublic{}, err
	}

	user.PublicKey = req.PublicKey
	user.EncryptedPrivateKey = req.EncryptedPrivateKey
	return s.public(ctx, user)
}

// public builds the outbound view of user with the teams it is a member
// and an admin of.
func (s *userService) public(ctx context.Context, user models.User) (models.UserPublic, error) {
	teams, err := s.repos.Memberships.ListUserTeams(ctx, user.UserID, models.RoleMember, models.RoleAdmin)
	if err != nil {
		return models.UserPublic{}, err
	}

	var memberTeams, adminTeams []models.TeamPublic
	for _, team := range teams {
		if team.Role == models.RoleAdmin {
			adminTeams = append(adminTeams, team.Public())
		} else {
			memberTeams = append(memberTeams, team.Public())
		}
	}

	return models.NewUserPublic(user, memberTeams, adminTeams), nil
}
