package service

import (
	"github.com/MKhiriev/go-team-keeper/internal/config"
	"github.com/MKhiriev/go-team-keeper/internal/crypto"
	"github.com/MKhiriev/go-team-keeper/internal/logger"
	"github.com/MKhiriev/go-team-keeper/internal/store"
)

type Services struct {
	AuthService       AuthService
	UserService       UserService
	CredentialService CredentialService
	TeamService       TeamService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages.Health, logger)
	if err != nil {
		return nil, err
	}

	hasher := crypto.NewPasswordHasher(cfg.App.PasswordHashKey)

	credentialService := NewCredentialValidationService().Wrap(NewCredentialService(storages, logger))
	teamService := NewTeamValidationService().Wrap(NewTeamService(storages, crypto.NewTeamCodeGenerator(), logger))

	return &Services{
		AuthService:       NewAuthService(storages.Users, hasher, cfg.App, logger),
		UserService:       NewUserService(storages, hasher, logger),
		CredentialService: credentialService,
		TeamService:       teamService,
		AppInfoService:    appInfoService,
	}, nil
}
