package main

import (
	"context"
	"io"
	"net"
	nethttp "net/http"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

func TestInitLoggerLevels(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"unknown": zapcore.InfoLevel,
	}

	for level, want := range tests {
		logger := initLogger(level)
		if !logger.Core().Enabled(want) {
			t.Fatalf("%s: expected level %s enabled", level, want)
		}
		if want > zapcore.DebugLevel && logger.Core().Enabled(want-1) {
			t.Fatalf("%s: expected level %s disabled", level, want-1)
		}
	}
}

// setServiceEnv isolates run from the caller's environment.
func setServiceEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, key := range []string{"PORT", "GRPC_PORT", "METRICS_PORT", "LOG_LEVEL", "REDIS_ADDR", "LLM_API_KEY", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("LOG_LEVEL", "error")
	for key, value := range vars {
		t.Setenv(key, value)
	}
}

func freePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()
	return port
}

func TestRunFailsOnInvalidConfig(t *testing.T) {
	setServiceEnv(t, map[string]string{"LOG_LEVEL": "verbose"})

	err := run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "failed to load config") {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestRunFailsWhenPortInUse(t *testing.T) {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer listener.Close()

	port := listener.Addr().(*net.TCPAddr).Port
	setServiceEnv(t, map[string]string{"PORT": strconv.Itoa(port)})

	done := make(chan error, 1)
	go func() { done <- run(context.Background()) }()

	select {
	case err := <-done:
		if err == nil || !strings.Contains(err.Error(), "address already in use") {
			t.Fatalf("expected bind failure, got %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("run did not fail on a busy port")
	}
}

func TestRunServesUntilCancelled(t *testing.T) {
	port := freePort(t)
	setServiceEnv(t, map[string]string{"PORT": strconv.Itoa(port)})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx) }()

	url := "http://127.0.0.1:" + strconv.Itoa(port) + "/health"
	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := nethttp.Get(url)
		if err == nil {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			if resp.StatusCode != nethttp.StatusOK || string(body) != `{"status":"ok"}` {
				t.Fatalf("unexpected response: %d %s", resp.StatusCode, body)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server never became ready: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("run did not return after cancellation")
	}
}
