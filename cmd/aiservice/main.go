package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/venvelamakanni/ai-service-template/internal/application/health"
	"github.com/venvelamakanni/ai-service-template/internal/config"
	"github.com/venvelamakanni/ai-service-template/pkg/adapters/llm"
	"github.com/venvelamakanni/ai-service-template/pkg/adapters/metrics/prometheus"
	"github.com/venvelamakanni/ai-service-template/pkg/adapters/probes/redis"
	"github.com/venvelamakanni/ai-service-template/pkg/api/grpc"
	"github.com/venvelamakanni/ai-service-template/pkg/api/http"
)

var (
	// Version is set by build flags
	Version   = "0.1.0"
	BuildTime = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run starts every configured server and blocks until ctx is cancelled or a
// server fails. A nil return means a clean shutdown.
func run(ctx context.Context) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting AI service",
		zap.String("service", cfg.Service.Name),
		zap.String("description", cfg.Service.Description),
		zap.String("version", Version),
		zap.String("build_time", BuildTime))

	metricsCollector := prometheus.NewCollector()
	metricsCollector.SetBuildInfo(cfg.Service.Name, Version)

	// Dependency probes
	var probes []health.Probe
	var closers []io.Closer

	if cfg.RedisEnabled() {
		redisProbe := redis.NewProbe(redis.Options{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			MaxRetries:   cfg.Redis.MaxRetries,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		}, logger)
		probes = append(probes, redisProbe)
		closers = append(closers, redisProbe)
	}

	if cfg.LLMEnabled() {
		llmClient, err := llm.NewClient(&llm.Config{
			Provider: cfg.LLM.Provider,
			APIKey:   cfg.LLM.APIKey,
			BaseURL:  cfg.LLM.BaseURL,
			Logger:   logger,
		})
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		probes = append(probes, llm.NewProbe(llmClient))
	}

	// Initialize API servers
	httpServer := http.NewServer(&http.Config{
		Port:              cfg.HTTPPort,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		Metrics:           metricsCollector,
		Logger:            logger,
	})

	var grpcServer *grpc.Server
	if cfg.GRPCEnabled() {
		grpcServer, err = grpc.NewServer(&grpc.Config{
			Port:        cfg.GRPCPort,
			ServiceName: cfg.Service.Name,
			Logger:      logger,
		})
		if err != nil {
			return fmt.Errorf("failed to create gRPC server: %w", err)
		}
	}

	var metricsServer *http.MetricsServer
	if cfg.MetricsEnabled() {
		metricsServer = http.NewMetricsServer(&http.MetricsConfig{
			Port:    cfg.MetricsPort,
			Handler: metricsCollector.Handler(),
			OpenAPI: http.NewOpenAPIDocument(cfg.Service.Name, cfg.Service.Description, Version),
			Logger:  logger,
		})
	}

	monitorCfg := &health.Config{
		Probes:   probes,
		Interval: cfg.Health.CheckInterval,
		Timeout:  cfg.Health.CheckTimeout,
		Metrics:  metricsCollector,
		Logger:   logger,
	}
	if grpcServer != nil {
		monitorCfg.Sink = grpcServer
	}
	monitor := health.NewMonitor(monitorCfg)

	// Start servers
	errCh := make(chan error, 3)

	go func() {
		errCh <- httpServer.Start()
	}()

	if grpcServer != nil {
		go func() {
			errCh <- grpcServer.Start()
		}()
	}

	if metricsServer != nil {
		go func() {
			errCh <- metricsServer.Start()
		}()
	}

	monitor.Start()

	startedFields := []zap.Field{
		zap.String("http_addr", cfg.GetHTTPAddr()),
		zap.Int("dependency_probes", len(probes)),
	}
	if cfg.GRPCEnabled() {
		startedFields = append(startedFields, zap.String("grpc_addr", cfg.GetGRPCAddr()))
	}
	if cfg.MetricsEnabled() {
		startedFields = append(startedFields, zap.String("metrics_addr", cfg.GetMetricsAddr()))
	}
	logger.Info("AI service started", startedFields...)

	// Wait for interrupt signal or a server failure
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-errCh:
		if err == nil {
			err = fmt.Errorf("server exited unexpectedly")
		}
		logger.Error("server failed", zap.Error(err))
		runErr = err
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.ShutdownTimeout)
	defer cancel()

	monitor.Stop()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	if grpcServer != nil {
		if err := grpcServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("gRPC server shutdown error", zap.Error(err))
		}
	}

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown error", zap.Error(err))
		}
	}

	for _, c := range closers {
		if err := c.Close(); err != nil {
			logger.Error("probe close error", zap.Error(err))
		}
	}

	status := monitor.GetStatus()
	logger.Info("AI service shut down complete",
		zap.Bool("dependencies_healthy", status.Healthy),
		zap.Int("dependencies", len(status.Dependencies)))
	return runErr
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
