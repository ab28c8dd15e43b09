package server

import (
	"context"
	"fmt"
	"net"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	"github.com/MKhiriev/go-team-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-team-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-team-keeper/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	// healthCtx bounds the storage health watcher; stopHealth ends it.
	healthCtx  context.Context
	stopHealth context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen gRPC on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(handler.UnaryLoggingInterceptor),
	)
	handler.Register(server)

	healthCtx, stopHealth := context.WithCancel(context.Background())

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		healthCtx:       healthCtx,
		stopHealth:      stopHealth,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	go g.handler.WatchStorage(g.healthCtx, myGRPC.DefaultHealthInterval)

	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.stopHealth()
	g.server.GracefulStop()
}
