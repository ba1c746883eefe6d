package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type flakyPinger struct {
	fail atomic.Bool
}

func (p *flakyPinger) Ping(context.Context) error {
	if p.fail.Load() {
		return errors.New("connection refused")
	}
	return nil
}

type gaugeSpy struct {
	mu   sync.Mutex
	seen []bool
}

func (g *gaugeSpy) SetStoreUp(up bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seen = append(g.seen, up)
}

func (g *gaugeSpy) last() (bool, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.seen) == 0 {
		return false, 0
	}
	return g.seen[len(g.seen)-1], len(g.seen)
}

func TestStoreMonitorReportsPingResult(t *testing.T) {
	t.Parallel()

	pinger := &flakyPinger{}
	gauge := &gaugeSpy{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	m := NewStoreMonitor(pinger, gauge, logger, 10*time.Millisecond)
	m.Start()

	require.Eventually(t, func() bool {
		up, n := gauge.last()
		return n > 0 && up
	}, time.Second, 5*time.Millisecond)

	pinger.fail.Store(true)
	require.Eventually(t, func() bool {
		up, _ := gauge.last()
		return !up
	}, time.Second, 5*time.Millisecond)

	pinger.fail.Store(false)
	require.Eventually(t, func() bool {
		up, _ := gauge.last()
		return up
	}, time.Second, 5*time.Millisecond)

	m.Stop()
}

func TestNewStoreMonitorDefaultsInterval(t *testing.T) {
	t.Parallel()

	m := NewStoreMonitor(&flakyPinger{}, &gaugeSpy{}, slog.Default(), 0)
	require.Equal(t, 15*time.Second, m.Interval)
}

func TestStoreMonitorStopWithoutStart(t *testing.T) {
	t.Parallel()

	m := NewStoreMonitor(&flakyPinger{}, &gaugeSpy{}, slog.New(slog.NewTextHandler(io.Discard, nil)), time.Hour)

	done := make(chan struct{})
	go func() {
		m.Stop()
		m.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on a monitor that never started")
	}

	// A stopped monitor does not come back.
	m.Start()
	m.Stop()
}

func TestStoreMonitorStopTwice(t *testing.T) {
	t.Parallel()

	gauge := &gaugeSpy{}
	m := NewStoreMonitor(&flakyPinger{}, gauge, slog.New(slog.NewTextHandler(io.Discard, nil)), time.Hour)
	m.Start()

	require.Eventually(t, func() bool {
		_, n := gauge.last()
		return n > 0
	}, time.Second, 5*time.Millisecond)

	require.NotPanics(t, func() {
		m.Stop()
		m.Stop()
	})
}
