// Package monitor samples record-store health on a schedule so the health
// endpoint can answer without touching the store on every probe.
package monitor

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Store is the slice of the record store the monitor needs.
type Store interface {
	Count() (int, error)
}

type Monitor struct {
	store  Store
	cron   *cron.Cron
	logger *zap.Logger

	mu     sync.RWMutex
	status Status
}

func New(store Store, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval < time.Second {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Monitor{
		store:  store,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger,
	}
	schedule := fmt.Sprintf("@every %ds", int(interval.Seconds()))
	_, _ = m.cron.AddFunc(schedule, m.check)
	return m
}

// Start takes an immediate sample and then launches the scheduler.
func (m *Monitor) Start() {
	m.check()
	m.cron.Start()
}

// Stop halts the scheduler and waits for an in-flight sample to finish.
func (m *Monitor) Stop() {
	<-m.cron.Stop().Done()
}

// IsOnline reports whether the last sample could read the store.
func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Storage
}

// GetStatus returns a copy of the last sample.
func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) check() {
	count, err := m.store.Count()
	if err != nil {
		m.logger.Warn("storage health check failed", zap.Error(err))
	}

	m.mu.Lock()
	m.status = Status{
		Storage:   err == nil,
		TodoCount: count,
		LastCheck: time.Now().UTC(),
	}
	m.mu.Unlock()
}
