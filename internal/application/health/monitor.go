package health

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Probe checks a single dependency
type Probe interface {
	Name() string
	Check(ctx context.Context) error
}

// StatusSink receives per-dependency serving status
type StatusSink interface {
	SetDependencyStatus(name string, up bool)
}

// MetricsRecorder receives probe outcomes
type MetricsRecorder interface {
	RecordDependencyCheck(dependency string, up bool, duration time.Duration)
}

// DependencyStatus is the last known state of one dependency
type DependencyStatus struct {
	Name        string    `json:"name"`
	Up          bool      `json:"up"`
	LastError   string    `json:"last_error,omitempty"`
	LastChecked time.Time `json:"last_checked"`
}

// Status represents the health of all monitored dependencies
type Status struct {
	Dependencies []DependencyStatus `json:"dependencies"`
	Healthy      bool               `json:"healthy"`
	Timestamp    time.Time          `json:"timestamp"`
}

// Config holds monitor configuration
type Config struct {
	Probes   []Probe
	Interval time.Duration
	Timeout  time.Duration
	Sink     StatusSink
	Metrics  MetricsRecorder
	Logger   *zap.Logger
}

// Monitor periodically probes dependencies
type Monitor struct {
	probes   []Probe
	interval time.Duration
	timeout  time.Duration
	sink     StatusSink
	metrics  MetricsRecorder
	logger   *zap.Logger

	mu      sync.RWMutex
	results map[string]DependencyStatus
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewMonitor creates a new dependency monitor
func NewMonitor(cfg *Config) *Monitor {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Monitor{
		probes:   cfg.Probes,
		interval: cfg.Interval,
		timeout:  cfg.Timeout,
		sink:     cfg.Sink,
		metrics:  cfg.Metrics,
		logger:   logger,
		results:  make(map[string]DependencyStatus, len(cfg.Probes)),
	}
}

// Start runs an initial round of checks and then probes on every interval
func (m *Monitor) Start() {
	m.mu.Lock()
	if m.running || len(m.probes) == 0 {
		m.mu.Unlock()
		return
	}
	m.running = true
	stopCh, doneCh := make(chan struct{}), make(chan struct{})
	m.stopCh, m.doneCh = stopCh, doneCh
	m.mu.Unlock()

	m.logger.Info("starting dependency monitor",
		zap.Int("probes", len(m.probes)),
		zap.Duration("interval", m.interval))

	go m.run(stopCh, doneCh)
}

// Stop stops the monitor and waits for the loop to exit
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	stopCh, doneCh := m.stopCh, m.doneCh
	m.mu.Unlock()

	close(stopCh)
	<-doneCh
}

// run is the main monitoring loop
func (m *Monitor) run(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	m.CheckAll(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			m.CheckAll(ctx)
		}
	}
}

// CheckAll probes every dependency once
func (m *Monitor) CheckAll(ctx context.Context) {
	var wg sync.WaitGroup
	for _, probe := range m.probes {
		wg.Add(1)
		go func(p Probe) {
			defer wg.Done()
			m.check(ctx, p)
		}(probe)
	}
	wg.Wait()
}

// check probes one dependency and publishes the result
func (m *Monitor) check(ctx context.Context, probe Probe) {
	name := probe.Name()

	checkCtx := ctx
	if m.timeout > 0 {
		var cancel context.CancelFunc
		checkCtx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	start := time.Now()
	err := probe.Check(checkCtx)
	duration := time.Since(start)
	up := err == nil

	result := DependencyStatus{
		Name:        name,
		Up:          up,
		LastChecked: start,
	}
	if err != nil {
		result.LastError = err.Error()
	}

	m.mu.Lock()
	previous, seen := m.results[name]
	m.results[name] = result
	m.mu.Unlock()

	if m.sink != nil {
		m.sink.SetDependencyStatus(name, up)
	}
	if m.metrics != nil {
		m.metrics.RecordDependencyCheck(name, up, duration)
	}

	switch {
	case seen && previous.Up != up:
		m.logger.Info("dependency status changed",
			zap.String("dependency", name),
			zap.Bool("up", up),
			zap.Error(err))
	case !up:
		m.logger.Warn("dependency check failed",
			zap.String("dependency", name),
			zap.Duration("duration", duration),
			zap.Error(err))
	default:
		m.logger.Debug("dependency check succeeded",
			zap.String("dependency", name),
			zap.Duration("duration", duration))
	}
}

// GetStatus returns the current health status
func (m *Monitor) GetStatus() *Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	deps := make([]DependencyStatus, 0, len(m.results))
	healthy := true
	for _, result := range m.results {
		deps = append(deps, result)
		if !result.Up {
			healthy = false
		}
	}
	sort.Slice(deps, func(i, j int) bool { return deps[i].Name < deps[j].Name })

	return &Status{
		Dependencies: deps,
		Healthy:      healthy,
		Timestamp:    time.Now(),
	}
}

// IsHealthy returns true if every checked dependency is up
func (m *Monitor) IsHealthy() bool {
	return m.GetStatus().Healthy
}
