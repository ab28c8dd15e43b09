package http

import (
	"time"

	"github.com/MKhiriev/go-team-keeper/internal/config"
	"github.com/MKhiriev/go-team-keeper/internal/logger"
	"github.com/MKhiriev/go-team-keeper/internal/service"
	"github.com/MKhiriev/go-team-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	// hasher verifies request bodies; nil disables the integrity check.
	hasher         *utils.Hasher
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
	if cfg.App.HashKey != "" {
		h.hasher = utils.NewHasher(cfg.App.HashKey)
	}

	logger.Info().Bool("integrity_check", h.hasher != nil).Msg("http handler created")
	return h
}
