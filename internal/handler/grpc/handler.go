package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-team-keeper/internal/logger"
	"github.com/MKhiriev/go-team-keeper/internal/service"
)

// DefaultHealthInterval is how often [Handler.WatchStorage] probes the
// database.
const DefaultHealthInterval = 10 * time.Second

// Handler is the root gRPC transport handler.
//
// It serves the standard grpc.health.v1 protocol. The overall status ("")
// is SERVING while the database answers pings and NOT_SERVING otherwise.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The health status starts as
// NOT_SERVING until the first storage probe succeeds.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// CheckStorage probes the database once and publishes the resulting status.
func (h *Handler) CheckStorage(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.services.AppInfoService.CheckStorage(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.CheckStorage").Msg("storage is unavailable")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus("", status)
	return status
}

// WatchStorage probes the database every interval until ctx is done, then
// marks the server as shutting down so watchers see NOT_SERVING.
func (h *Handler) WatchStorage(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	h.CheckStorage(ctx)
	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
			h.CheckStorage(ctx)
		}
	}
}
