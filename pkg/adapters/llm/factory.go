package llm

import (
	"context"
	"fmt"

	"github.com/venvelamakanni/ai-service-template/pkg/adapters/llm/anthropic"
	"go.uber.org/zap"
)

// Name is the dependency name reported by LLM probes
const Name = "llm"

// Client is the provider-neutral LLM client
type Client interface {
	// Provider returns the provider identifier
	Provider() string
	// ListModels returns the model IDs visible to the configured key
	ListModels(ctx context.Context) ([]string, error)
}

// Config holds LLM client configuration
type Config struct {
	Provider string
	APIKey   string
	BaseURL  string
	Logger   *zap.Logger
}

// NewClient creates a new LLM client based on provider
func NewClient(cfg *Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("LLM API key is required")
	}

	switch cfg.Provider {
	case "anthropic":
		return anthropic.NewClient(cfg.APIKey, cfg.BaseURL, cfg.Logger), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

// Probe reports LLM provider availability to the health monitor
type Probe struct {
	client Client
}

// NewProbe wraps a client as a dependency probe
func NewProbe(client Client) *Probe {
	return &Probe{client: client}
}

// Name returns the dependency name
func (p *Probe) Name() string {
	return Name
}

// Check lists models to verify reachability and credentials
func (p *Probe) Check(ctx context.Context) error {
	if _, err := p.client.ListModels(ctx); err != nil {
		return fmt.Errorf("%s provider unavailable: %w", p.client.Provider(), err)
	}
	return nil
}
