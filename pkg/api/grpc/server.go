package grpc

import (
	"context"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Server represents the gRPC health server
type Server struct {
	server      *grpc.Server
	listener    net.Listener
	health      *health.Server
	serviceName string
	logger      *zap.Logger
}

// Config holds gRPC server configuration
type Config struct {
	Port        int
	ServiceName string
	Logger      *zap.Logger
}

// NewServer creates a new gRPC server bound to the configured port
func NewServer(cfg *Config) (*Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return nil, fmt.Errorf("failed to create listener: %w", err)
	}

	return newServer(listener, cfg), nil
}

func newServer(listener net.Listener, cfg *Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()

	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	// The process itself is live as long as it serves; dependencies are reported separately.
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	if cfg.ServiceName != "" {
		healthServer.SetServingStatus(cfg.ServiceName, healthpb.HealthCheckResponse_SERVING)
	}

	return &Server{
		server:      grpcServer,
		listener:    listener,
		health:      healthServer,
		serviceName: cfg.ServiceName,
		logger:      logger,
	}
}

// Addr returns the bound listener address
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// SetDependencyStatus publishes the status of a monitored dependency
func (s *Server) SetDependencyStatus(name string, up bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if up {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(name, status)
}

// Start starts the gRPC server
func (s *Server) Start() error {
	s.logger.Info("starting gRPC server", zap.String("addr", s.listener.Addr().String()))

	if err := s.server.Serve(s.listener); err != nil {
		return fmt.Errorf("failed to serve gRPC: %w", err)
	}

	return nil
}

// Shutdown marks every service NOT_SERVING and stops the server gracefully.
// If ctx expires first, open streams are cut with a hard stop and the
// context error is returned.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down gRPC server")

	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.server.Stop()
		<-done
		s.logger.Warn("gRPC server forced to stop", zap.Error(ctx.Err()))
		return fmt.Errorf("gRPC server forced to stop: %w", ctx.Err())
	}

	s.logger.Info("gRPC server shut down complete")
	return nil
}
