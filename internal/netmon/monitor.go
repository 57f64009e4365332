// Package netmon owns the connectivity state consumed by the sync
// coordinator and the offline queue. Link-layer signals are treated as
// hints only; the monitor declares connected solely after an active
// reachability probe succeeds.
package netmon

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nvoronin/calcsync/internal/models"
)

const (
	defaultProbeInterval    = 30 * time.Second
	defaultFailureThreshold = 3
)

// Subscriber is notified on every transition into connected.
type Subscriber func(state models.NetworkState)

// Option configures a Monitor.
type Option func(*Monitor)

// WithProbeInterval overrides the periodic re-probe interval.
func WithProbeInterval(interval time.Duration) Option {
	return func(m *Monitor) {
		m.probeInterval = interval
	}
}

// WithFailureThreshold overrides how many consecutive probe failures move
// a connected monitor to unstable.
func WithFailureThreshold(n int) Option {
	return func(m *Monitor) {
		m.failureThreshold = n
	}
}

// Monitor tracks reachability as a small state machine:
//
//	disconnected -> connecting -> {connected | disconnected}
//	connected    -> unstable     after failureThreshold consecutive probe failures
//	unstable     -> connected    on a successful probe
//	unstable     -> disconnected if failures persist
//
// All transitions happen on the Run goroutine; State is safe to read from
// any goroutine.
type Monitor struct {
	prober  Prober
	logger  *slog.Logger
	linkCh  chan models.NetworkType
	subs    []Subscriber
	state   models.NetworkState
	stateMu sync.RWMutex
	subsMu  sync.Mutex

	probeInterval    time.Duration
	failureThreshold int
	failures         int
}

// NewMonitor creates a monitor in the disconnected state.
func NewMonitor(prober Prober, logger *slog.Logger, opts ...Option) *Monitor {
	m := &Monitor{
		prober:           prober,
		logger:           logger,
		linkCh:           make(chan models.NetworkType, 8),
		probeInterval:    defaultProbeInterval,
		failureThreshold: defaultFailureThreshold,
		state: models.NetworkState{
			Status: models.NetworkDisconnected,
			Type:   models.NetworkTypeNone,
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current connectivity snapshot.
func (m *Monitor) State() models.NetworkState {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()
	return m.state
}

// Subscribe registers a callback fired on every transition into connected.
// Callbacks run on the monitor goroutine and must not block.
func (m *Monitor) Subscribe(sub Subscriber) {
	m.subsMu.Lock()
	defer m.subsMu.Unlock()
	m.subs = append(m.subs, sub)
}

// SetLinkState reports a link-layer change (wifi up, cable out). The
// monitor probes before trusting any non-none link.
func (m *Monitor) SetLinkState(linkType models.NetworkType) {
	select {
	case m.linkCh <- linkType:
	default:
		// a burst of link flaps collapses onto the pending signal
	}
}

// Run drives the state machine until the context is canceled.
func (m *Monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.probeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case linkType := <-m.linkCh:
			m.handleLinkChange(ctx, linkType)
		case <-ticker.C:
			m.reprobe(ctx)
		}
	}
}

func (m *Monitor) handleLinkChange(ctx context.Context, linkType models.NetworkType) {
	if linkType == models.NetworkTypeNone {
		m.failures = 0
		m.transitionTo(models.NetworkDisconnected, linkType)
		return
	}

	m.transitionTo(models.NetworkConnecting, linkType)

	if err := m.prober.Probe(ctx); err != nil {
		m.logger.Warn("reachability probe failed after link change",
			"link_type", linkType, "error", err)
		m.failures = 0
		m.transitionTo(models.NetworkDisconnected, linkType)
		return
	}

	m.failures = 0
	m.transitionTo(models.NetworkConnected, linkType)
}

// reprobe re-validates connectivity on the periodic tick, catching silent
// degradation that produced no link-state change.
func (m *Monitor) reprobe(ctx context.Context) {
	state := m.State()
	if state.Type == models.NetworkTypeNone {
		return
	}

	if err := m.prober.Probe(ctx); err != nil {
		m.failures++
		m.logger.Warn("periodic reachability probe failed",
			"consecutive_failures", m.failures, "status", state.Status, "error", err)

		switch state.Status {
		case models.NetworkConnected:
			if m.failures >= m.failureThreshold {
				m.transitionTo(models.NetworkUnstable, state.Type)
			}
		case models.NetworkUnstable, models.NetworkConnecting, models.NetworkDisconnected:
			m.transitionTo(models.NetworkDisconnected, state.Type)
		}
		return
	}

	m.failures = 0
	// recovery from disconnected passes through connecting, the same path
	// a link-up takes
	if state.Status == models.NetworkDisconnected {
		m.transitionTo(models.NetworkConnecting, state.Type)
	}
	m.transitionTo(models.NetworkConnected, state.Type)
}

func (m *Monitor) transitionTo(status models.NetworkStatus, linkType models.NetworkType) {
	m.stateMu.Lock()
	prev := m.state
	next := models.NetworkState{Status: status, Type: linkType}
	m.state = next
	m.stateMu.Unlock()

	if prev == next {
		return
	}

	m.logger.Info("network state changed",
		"from", prev.Status, "to", next.Status, "link_type", linkType)

	if status == models.NetworkConnected && prev.Status != models.NetworkConnected {
		m.notify(next)
	}
}

func (m *Monitor) notify(state models.NetworkState) {
	m.subsMu.Lock()
	subs := make([]Subscriber, len(m.subs))
	copy(subs, m.subs)
	m.subsMu.Unlock()

	for _, sub := range subs {
		sub(state)
	}
}
