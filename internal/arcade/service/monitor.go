package service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// StorePinger is the part of store.Store the monitor needs.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// UpGauge receives the result of every ping; metrics.Recorder satisfies it.
type UpGauge interface {
	SetStoreUp(up bool)
}

// StoreMonitor periodically pings the store, publishes the result as a
// gauge and logs when the store goes down or comes back.
type StoreMonitor struct {
	Store    StorePinger
	Gauge    UpGauge
	Logger   *slog.Logger
	Interval time.Duration
	Timeout  time.Duration

	up       bool
	started  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewStoreMonitor creates a monitor. A non-positive interval defaults to 15s.
func NewStoreMonitor(s StorePinger, gauge UpGauge, logger *slog.Logger, interval time.Duration) *StoreMonitor {
	if interval <= 0 {
		interval = 15 * time.Second
	}

	return &StoreMonitor{
		Store:    s,
		Gauge:    gauge,
		Logger:   logger,
		Interval: interval,
		Timeout:  2 * time.Second,
		up:       true,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the monitor in the background until Stop is called. Calls
// after the first are no-ops.
func (m *StoreMonitor) Start() {
	if !m.started.CompareAndSwap(false, true) {
		return
	}
	go m.run()
	m.Logger.Info("store monitor started", "interval", m.Interval)
}

// Stop blocks until an in-flight ping has finished. It is safe to call more
// than once, and returns immediately if Start was never called.
func (m *StoreMonitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopCh)
		if !m.started.Load() {
			return
		}
		<-m.doneCh
		m.Logger.Info("store monitor stopped")
	})
}

func (m *StoreMonitor) run() {
	defer close(m.doneCh)

	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()

	m.check()

	for {
		select {
		case <-ticker.C:
			m.check()
		case <-m.stopCh:
			return
		}
	}
}

func (m *StoreMonitor) check() {
	ctx, cancel := context.WithTimeout(context.Background(), m.Timeout)
	defer cancel()

	err := m.Store.Ping(ctx)
	up := err == nil
	m.Gauge.SetStoreUp(up)

	switch {
	case !up && m.up:
		m.Logger.Error("store unreachable", "error", err)
	case up && !m.up:
		m.Logger.Info("store reachable again")
	}
	m.up = up
}
