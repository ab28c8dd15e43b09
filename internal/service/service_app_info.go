package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-team-keeper/internal/config"
	"github.com/MKhiriev/go-team-keeper/internal/logger"
	"github.com/MKhiriev/go-team-keeper/internal/store"
)

// storagePingTimeout bounds a single storage probe.
const storagePingTimeout = 2 * time.Second

type appInfoService struct {
	appVersion string
	health     store.HealthChecker

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, health store.HealthChecker, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		health:     health,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) CheckStorage(ctx context.Context) error {
	if s.health == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()

	if err := s.health.PingContext(ctx); err != nil {
		s.logger.Err(err).Str("func", "*appInfoService.CheckStorage").Msg("storage is unreachable")
		return err
	}
	return nil
}
