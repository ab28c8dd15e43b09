// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-team-keeper/internal/logger"
	"github.com/MKhiriev/go-team-keeper/internal/store"
	"github.com/MKhiriev/go-team-keeper/models"
)

// maxGroupAttempts bounds how many times AddCredential re-runs when a
// concurrent request created the same group first.
const maxGroupAttempts = 3

// credentialService implements [CredentialService].
//
// Reads go straight to the pool-bound repositories; every operation that
// writes runs as one transaction through the Transactor and only uses the
// repositories handed to it.
type credentialService struct {
	repos      store.Repositories
	transactor store.Transactor

	logger *logger.Logger
}

func NewCredentialService(storages *store.Storages, logger *logger.Logger) CredentialService {
	return &credentialService{
		repos:      storages.Repositories,
		transactor: storages.Transactor,
		logger:     logger,
	}
}

func (s *credentialService) CanAdd(ctx context.Context, user models.User, teamID *int64) error {
	return canAdd(ctx, s.repos, user.UserID, teamID)
}

func (s *credentialService) CanDeleteOwn(ctx context.Context, user models.User, credentialID int64) (models.Credential, error) {
	credential, _, err := ownSecret(ctx, s.repos, user.UserID, credentialID)
	if errors.Is(err, ErrCredentialNotFound) {
		return models.Credential{}, ErrNotPermitted
	}
	return credential, err
}

func (s *credentialService) CanAdminGroup(ctx context.Context, user models.User, group string) (models.Credential, error) {
	return canAdminGroup(ctx, s.repos, user.UserID, group)
}

// AddCredential finds or creates the credential of data.Group and attaches
// a secret for data.UserID (the caller when unset).
//
// Two requests racing on a new group both miss the lookup; the loser's
// insert hits the unique index and its transaction is re-run, this time
// finding the winner's row.
func (s *credentialService) AddCredential(ctx context.Context, user models.User, data models.CredentialCreate) (models.CredentialPublic, error) {
	log := logger.FromContext(ctx)

	var result models.CredentialPublic
	for attempt := 1; attempt <= maxGroupAttempts; attempt++ {
		err := s.transactor.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
			var err error
			result, err = s.addCredential(ctx, repos, user, data)
			return err
		})
		if !errors.Is(err, store.ErrCredentialGroupExists) {
			if err != nil {
				log.Err(err).Str("func", "*credentialService.AddCredential").Msg("error adding credential")
			}
			return result, err
		}
		log.Warn().Str("group", data.Group).Int("attempt", attempt).
			Str("func", "*credentialService.AddCredential").Msg("group created concurrently, retrying")
	}

	return models.CredentialPublic{}, ErrGroupBusy
}

func (s *credentialService) addCredential(ctx context.Context, repos store.Repositories, user models.User, data models.CredentialCreate) (models.CredentialPublic, error) {
	if err := canAdd(ctx, repos, user.UserID, data.TeamID); err != nil {
		return models.CredentialPublic{}, err
	}

	credential, err := repos.Credentials.FindCredentialByGroup(ctx, data.Group)
	switch {
	case errors.Is(err, store.ErrCredentialNotFound):
		credential, err = repos.Credentials.CreateCredential(ctx, data.Credential())
		if errors.Is(err, store.ErrTeamNotFound) {
			return models.CredentialPublic{}, ErrNotPermitted
		}
		if err != nil {
			return models.CredentialPublic{}, err
		}
	case err != nil:
		return models.CredentialPublic{}, err
	}

	owner := user.UserID
	if data.UserID != nil {
		owner = *data.UserID
	}

	secret, err := repos.Secrets.CreateSecret(ctx, models.CredentialSecret{
		CredentialID: credential.CredentialID,
		UserID:       owner,
		Password:     data.Password,
	})
	switch {
	case errors.Is(err, store.ErrSecretAlreadyExists):
		return models.CredentialPublic{}, ErrSecretExists
	case errors.Is(err, store.ErrNoUserWasFound):
		return models.CredentialPublic{}, ErrUserNotFound
	case err != nil:
		return models.CredentialPublic{}, err
	}

	return models.NewCredentialPublic(credential, secret), nil
}

func (s *credentialService) GetByID(ctx context.Context, user models.User, credentialID int64) (models.CredentialPublic, error) {
	credential, secret, err := ownSecret(ctx, s.repos, user.UserID, credentialID)
	if err != nil {
		return models.CredentialPublic{}, err
	}
	return models.NewCredentialPublic(credential, secret), nil
}

// GetByGroup returns the caller's secrets under the team credential of group.
// Only admins of the credential's team may look groups up.
func (s *credentialService) GetByGroup(ctx context.Context, user models.User, group string) ([]models.CredentialPublic, error) {
	credential, err := canAdminGroup(ctx, s.repos, user.UserID, group)
	if err != nil {
		return nil, err
	}

	result := make([]models.CredentialPublic, 0, 1)
	secret, err := s.repos.Secrets.FindSecret(ctx, credential.CredentialID, user.UserID)
	switch {
	case errors.Is(err, store.ErrSecretNotFound):
		return result, nil
	case err != nil:
		return nil, err
	}

	return append(result, models.NewCredentialPublic(credential, secret)), nil
}

func (s *credentialService) GetMine(ctx context.Context, user models.User) ([]models.CredentialPublic, error) {
	items, err := s.repos.Secrets.ListUserSecrets(ctx, user.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*credentialService.GetMine").Msg("error listing credentials")
		return nil, err
	}

	result := make([]models.CredentialPublic, 0, len(items))
	for _, item := range items {
		result = append(result, models.NewCredentialPublic(item.Credential, item.Secret))
	}
	return result, nil
}

func (s *credentialService) UpdateOne(ctx context.Context, user models.User, credentialID int64, patch models.CredentialUpdate) (models.CredentialPublic, error) {
	var result models.CredentialPublic
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		var err error
		result, err = updateOne(ctx, repos, user, credentialID, patch)
		return err
	})
	return result, err
}

// UpdateGroup patches the secret of patch.UserID under the team credential
// of group. Only admins of the credential's team may do so.
func (s *credentialService) UpdateGroup(ctx context.Context, user models.User, group string, patch models.CredentialUpdate) (models.CredentialPublic, error) {
	if patch.UserID == nil {
		return models.CredentialPublic{}, ErrGroupUserRequired
	}

	var result models.CredentialPublic
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		credential, err := canAdminGroup(ctx, repos, user.UserID, group)
		if err != nil {
			return err
		}

		secret, err := repos.Secrets.FindSecret(ctx, credential.CredentialID, *patch.UserID)
		if errors.Is(err, store.ErrSecretNotFound) {
			return ErrSecretNotFound
		}
		if err != nil {
			return err
		}

		result, err = applyPatch(ctx, repos, credential, secret, patch)
		return err
	})
	return result, err
}

// UpdateBatch applies UpdateOne to every patch carrying an id, in order,
// within a single transaction: the first failure rolls the whole batch back.
func (s *credentialService) UpdateBatch(ctx context.Context, user models.User, patches []models.CredentialUpdate) ([]models.CredentialPublic, error) {
	result := make([]models.CredentialPublic, 0, len(patches))
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		result = result[:0]
		for _, patch := range patches {
			if patch.CredentialID == nil {
				continue
			}
			updated, err := updateOne(ctx, repos, user, *patch.CredentialID, patch)
			if err != nil {
				return err
			}
			result = append(result, updated)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *credentialService) DeleteOne(ctx context.Context, user models.User, credentialID int64) error {
	return s.transactor.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		_, secret, err := ownSecret(ctx, repos, user.UserID, credentialID)
		if errors.Is(err, ErrCredentialNotFound) {
			return ErrNotPermitted
		}
		if err != nil {
			return err
		}
		return deleteSecretAndCollect(ctx, repos, secret)
	})
}

func (s *credentialService) DeleteGroup(ctx context.Context, user models.User, group string) error {
	return s.transactor.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		credential, err := canAdminGroup(ctx, repos, user.UserID, group)
		if err != nil {
			return err
		}

		if _, err = repos.Secrets.DeleteCredentialSecrets(ctx, credential.CredentialID); err != nil {
			return err
		}
		_, err = repos.Credentials.DeleteCredentialIfOrphaned(ctx, credential.CredentialID)
		return err
	})
}

func (s *credentialService) PurgeCredentials(ctx context.Context, userID, teamID int64) error {
	return s.transactor.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		return purgeCredentials(ctx, repos, userID, teamID)
	})
}

func updateOne(ctx context.Context, repos store.Repositories, user models.User, credentialID int64, patch models.CredentialUpdate) (models.CredentialPublic, error) {
	credential, secret, err := ownSecret(ctx, repos, user.UserID, credentialID)
	if err != nil {
		return models.CredentialPublic{}, err
	}
	return applyPatch(ctx, repos, credential, secret, patch)
}

// applyPatch writes the metadata fields of patch to credential and its
// password to secret. UserID only selects the secret and is never written.
func applyPatch(ctx context.Context, repos store.Repositories, credential models.Credential, secret models.CredentialSecret, patch models.CredentialUpdate) (models.CredentialPublic, error) {
	if patch.ApplyTo(&credential) {
		err := repos.Credentials.UpdateCredential(ctx, credential)
		if errors.Is(err, store.ErrCredentialGroupExists) {
			return models.CredentialPublic{}, ErrGroupTaken
		}
		if err != nil {
			return models.CredentialPublic{}, err
		}
	}

	if patch.Password != nil {
		if err := repos.Secrets.UpdateSecretPassword(ctx, secret.SecretID, *patch.Password); err != nil {
			return models.CredentialPublic{}, err
		}
		secret.Password = *patch.Password
	}

	return models.NewCredentialPublic(credential, secret), nil
}
