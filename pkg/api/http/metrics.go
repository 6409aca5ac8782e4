package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MetricsServer serves Prometheus metrics and the OpenAPI document on a dedicated port
type MetricsServer struct {
	server *http.Server
	logger *zap.Logger
}

// MetricsConfig holds metrics server configuration
type MetricsConfig struct {
	Port    int
	Handler http.Handler
	OpenAPI *OpenAPIDocument
	Logger  *zap.Logger
}

// NewMetricsServer creates a new metrics server
func NewMetricsServer(cfg *MetricsConfig) *MetricsServer {
	gin.SetMode(gin.ReleaseMode)

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/metrics", gin.WrapH(cfg.Handler))
	if cfg.OpenAPI != nil {
		router.GET("/openapi.json", handleOpenAPI(cfg.OpenAPI))
	}

	return &MetricsServer{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: router,
		},
		logger: logger,
	}
}

// Handler returns the routing handler
func (m *MetricsServer) Handler() http.Handler {
	return m.server.Handler
}

// Start starts the metrics server
func (m *MetricsServer) Start() error {
	listener, err := net.Listen("tcp", m.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", m.server.Addr, err)
	}

	m.logger.Info("starting metrics server", zap.String("addr", listener.Addr().String()))

	if err := m.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the metrics server
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	if err := m.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown metrics server: %w", err)
	}
	return nil
}
