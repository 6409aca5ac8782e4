package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Name is the dependency name reported by the probe
const Name = "redis"

// Options holds Redis connection settings
type Options struct {
	Addr         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Probe checks Redis reachability with PING
type Probe struct {
	client *redis.Client
	addr   string
	logger *zap.Logger
}

// NewProbe creates a Redis probe with its own connection pool
func NewProbe(opts Options, logger *zap.Logger) *Probe {
	if logger == nil {
		logger = zap.NewNop()
	}

	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		PoolSize:     opts.PoolSize,
		MinIdleConns: opts.MinIdleConns,
		MaxRetries:   opts.MaxRetries,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	})

	return &Probe{
		client: client,
		addr:   opts.Addr,
		logger: logger,
	}
}

// Name returns the dependency name
func (p *Probe) Name() string {
	return Name
}

// Check pings Redis
func (p *Probe) Check(ctx context.Context) error {
	if err := p.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis at %s: %w", p.addr, err)
	}
	return nil
}

// Close releases the connection pool
func (p *Probe) Close() error {
	if err := p.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}
	p.logger.Debug("redis probe closed", zap.String("addr", p.addr))
	return nil
}
