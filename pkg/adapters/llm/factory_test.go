package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubClient struct {
	err error
}

func (s stubClient) Provider() string { return "stub" }

func (s stubClient) ListModels(context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []string{"model-a"}, nil
}

func TestNewClient(t *testing.T) {
	c, err := NewClient(&Config{Provider: "anthropic", APIKey: "k"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if c.Provider() != "anthropic" {
		t.Fatalf("unexpected provider %q", c.Provider())
	}

	if _, err := NewClient(&Config{Provider: "openai", APIKey: "k"}); err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("expected unsupported provider error, got %v", err)
	}

	if _, err := NewClient(&Config{Provider: "anthropic"}); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestProbe(t *testing.T) {
	p := NewProbe(stubClient{})
	if p.Name() != "llm" {
		t.Fatalf("unexpected name %q", p.Name())
	}
	if err := p.Check(context.Background()); err != nil {
		t.Fatalf("expected healthy probe, got %v", err)
	}

	p = NewProbe(stubClient{err: errors.New("connection refused")})
	err := p.Check(context.Background())
	if err == nil || !strings.Contains(err.Error(), "stub provider unavailable") {
		t.Fatalf("unexpected error: %v", err)
	}
}
