// Package monitor polls store machine readings on a fixed interval and keeps
// the latest health snapshot of every monitored store.
package monitor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zoobzio/clockz"

	"github.com/ridwanfathin/claw-dashboard-service/internal/domain"
	"github.com/ridwanfathin/claw-dashboard-service/internal/notify"
)

const (
	DefaultInterval     = 30 * time.Second
	DefaultOfflineAfter = 60 * time.Minute
	DefaultPlayPrice    = 10
)

// ErrNoSnapshot is returned for a store that has not been polled successfully yet
var ErrNoSnapshot = errors.New("no health snapshot for store")

// ReadingsSource returns the current machine readings of a store
type ReadingsSource interface {
	GetStoreReadings(ctx context.Context, storeID int) (*domain.StoreReadings, error)
}

// Config holds poller settings
type Config struct {
	StoreIDs     []int
	Interval     time.Duration
	OfflineAfter time.Duration
	PlayPrice    int
	Location     *time.Location
}

func (c *Config) applyDefaults() {
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.OfflineAfter <= 0 {
		c.OfflineAfter = DefaultOfflineAfter
	}
	if c.PlayPrice <= 0 {
		c.PlayPrice = DefaultPlayPrice
	}
	if c.Location == nil {
		c.Location = time.Local
	}
}

// Monitor polls machine readings and keeps the last good snapshot per store
type Monitor struct {
	source   ReadingsSource
	notifier notify.Notifier
	clock    clockz.Clock
	log      *logrus.Logger
	cfg      Config

	mu        sync.RWMutex
	snapshots map[int]*domain.HealthSnapshot

	polling atomic.Bool
	cycles  sync.WaitGroup

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a monitor. notifier may be nil.
func New(source ReadingsSource, notifier notify.Notifier, clock clockz.Clock, log *logrus.Logger, cfg Config) *Monitor {
	cfg.applyDefaults()
	if clock == nil {
		clock = clockz.RealClock
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Monitor{
		source:    source,
		notifier:  notifier,
		clock:     clock,
		log:       log,
		cfg:       cfg,
		snapshots: make(map[int]*domain.HealthSnapshot),
	}
}

// Start polls once immediately and then on every interval until Stop
func (m *Monitor) Start() {
	if m.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.done = make(chan struct{})

	go m.run(ctx)
	m.log.WithFields(logrus.Fields{
		"stores":   m.cfg.StoreIDs,
		"interval": m.cfg.Interval.String(),
	}).Info("machine monitor started")
}

// Stop ends polling and waits for the running cycle to finish
func (m *Monitor) Stop() {
	if m.cancel == nil {
		return
	}

	m.cancel()
	<-m.done
	m.cycles.Wait()
	m.cancel = nil
	m.done = nil
	m.log.Info("machine monitor stopped")
}

func (m *Monitor) run(ctx context.Context) {
	defer close(m.done)

	ticker := m.clock.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	m.PollOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			m.cycles.Add(1)
			go func() {
				defer m.cycles.Done()
				m.PollOnce(ctx)
			}()
		}
	}
}

// PollOnce polls every configured store. It returns false without polling
// when a previous cycle is still running.
func (m *Monitor) PollOnce(ctx context.Context) bool {
	if !m.polling.CompareAndSwap(false, true) {
		m.log.Debug("machine poll skipped, previous cycle still running")
		return false
	}
	defer m.polling.Store(false)

	for _, storeID := range m.cfg.StoreIDs {
		if ctx.Err() != nil {
			return true
		}
		m.pollStore(ctx, storeID)
	}
	return true
}

func (m *Monitor) pollStore(ctx context.Context, storeID int) {
	readings, err := m.source.GetStoreReadings(ctx, storeID)
	now := m.clock.Now()
	if err != nil {
		m.recordError(storeID, err, now)
		m.log.WithError(err).WithField("store_id", storeID).Warn("machine readings poll failed")
		return
	}
	if readings.StoreID == 0 {
		readings.StoreID = storeID
	}

	next := BuildSnapshot(readings, now, m.cfg)

	m.mu.Lock()
	prev, hadPrev := m.snapshots[storeID]
	m.snapshots[storeID] = &next
	m.mu.Unlock()

	m.log.WithFields(logrus.Fields{
		"store_id": storeID,
		"online":   next.OnlineCount,
		"offline":  next.OfflineCount,
	}).Debug("machine readings polled")

	if !hadPrev || m.notifier == nil {
		return
	}

	offline := wentOffline(*prev, next)
	if len(offline) == 0 {
		return
	}

	alert := notify.OfflineAlert{
		StoreID:    storeID,
		StoreName:  next.StoreName,
		Machines:   offline,
		DetectedAt: now,
	}
	if err := m.notifier.NotifyOffline(ctx, alert); err != nil {
		m.log.WithError(err).WithField("store_id", storeID).Warn("failed to deliver offline alert")
	}
}

// recordError keeps the previous snapshot and attaches the failure to it
func (m *Monitor) recordError(storeID int, err error, at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev, ok := m.snapshots[storeID]
	if !ok {
		return
	}
	updated := *prev
	updated.LastError = err.Error()
	updated.LastErrorAt = &at
	m.snapshots[storeID] = &updated
}

// Snapshot returns the latest snapshot of a store
func (m *Monitor) Snapshot(storeID int) (domain.HealthSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.snapshots[storeID]
	if !ok {
		return domain.HealthSnapshot{}, ErrNoSnapshot
	}
	return *s, nil
}

// StoreIDs returns the monitored store IDs
func (m *Monitor) StoreIDs() []int {
	return append([]int(nil), m.cfg.StoreIDs...)
}
