package schedulers

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"nginx-monitor/internal/collectors"
	"nginx-monitor/internal/models"
	"nginx-monitor/internal/publishers"
	"nginx-monitor/internal/shared/loggers"
	"nginx-monitor/internal/shared/ulid"
)

const (
	triggerInitial = "initial"
	triggerTick    = "tick"
	triggerManual  = "manual"

	outcomePublished = "published"
	outcomeDiscarded = "discarded"

	skipPaused = "paused"
	skipBusy   = "busy"
)

// RefreshScheduler drives collection cycles on a timer and publishes each resulting Snapshot.
//
// At most one cycle runs at a time. Ticks that fire while paused or while a cycle is in flight
// are skipped, and a tick cycle that completes after Pause is not published. Manual refreshes run
// regardless of state; one that arrives while a cycle is in flight runs right after it. Once Stop
// is called no cycle starts and no result is published.
//
//go:generate mockgen -source=refresh_scheduler.go -destination=./mocks/refresh_scheduler_mock.go -package=mocks
type RefreshScheduler interface {
	// Start runs an initial cycle immediately and then ticks every interval.
	Start(ctx context.Context)
	// Stop waits for the timer loop and any in-flight cycle to return.
	Stop()
	// Pause toggles between RUNNING and PAUSED and returns the new state.
	Pause() State
	// Resume switches to RUNNING and returns the new state.
	Resume() State
	// SetInterval changes the tick period; the next tick fires d after the call.
	SetInterval(d time.Duration) error
	// RefreshNow requests an out-of-band cycle without moving the next tick.
	RefreshNow()
	Status() Status
}

type refreshScheduler struct {
	collector collectors.Collector
	publisher publishers.Publisher
	logger    loggers.Logger

	mu              sync.Mutex
	ctx             context.Context
	state           State
	interval        time.Duration
	started         bool
	stopped         bool
	inFlight        bool
	pending         bool
	lastPublishedAt time.Time

	resetCh  chan time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewRefreshScheduler(collector collectors.Collector, publisher publishers.Publisher, interval time.Duration, initial State, logger loggers.Logger) RefreshScheduler {
	if initial != StatePaused {
		initial = StateRunning
	}
	return &refreshScheduler{
		collector: collector,
		publisher: publisher,
		logger:    logger,
		state:     initial,
		interval:  interval,
		resetCh:   make(chan time.Duration, 1),
		stopCh:    make(chan struct{}),
	}
}

func (s *refreshScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started || s.stopped {
		return
	}
	s.started = true
	s.ctx = ctx

	s.logger.Info().
		Str("state", string(s.state)).
		Dur("interval", s.interval).
		Msg("refresh scheduler started")

	s.launchLocked(triggerInitial)

	interval := s.interval
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.run(ctx, interval)
	}()
}

func (s *refreshScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped = true
		s.pending = false
		s.mu.Unlock()

		close(s.stopCh)
	})
	s.wg.Wait()
}

func (s *refreshScheduler) Pause() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.state.toggled()
	s.logger.Info().Str("state", string(s.state)).Msg("refresh state changed")
	return s.state
}

func (s *refreshScheduler) Resume() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		s.state = StateRunning
		s.logger.Info().Str("state", string(s.state)).Msg("refresh state changed")
	}
	return s.state
}

func (s *refreshScheduler) SetInterval(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, d)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.interval = d
	s.logger.Info().Dur("interval", d).Msg("refresh interval changed")

	// Senders hold mu and only run receives, so the send below never blocks.
	select {
	case <-s.resetCh:
	default:
	}
	s.resetCh <- d
	return nil
}

func (s *refreshScheduler) RefreshNow() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || s.stopped {
		return
	}
	if s.inFlight {
		s.pending = true
		return
	}
	s.launchLocked(triggerManual)
}

func (s *refreshScheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Status{
		State:           s.state,
		Interval:        s.interval,
		LastPublishedAt: s.lastPublishedAt,
		CycleInFlight:   s.inFlight,
	}
}

func (s *refreshScheduler) run(ctx context.Context, interval time.Duration) {
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case d := <-s.resetCh:
			timer.Reset(d)
		case <-timer.C:
			s.tick()
			timer.Reset(s.currentInterval())
		}
	}
}

func (s *refreshScheduler) currentInterval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.interval
}

func (s *refreshScheduler) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.stopped:
	case s.state == StatePaused:
		metricTicksSkippedTotal.WithLabelValues(skipPaused).Inc()
	case s.inFlight:
		metricTicksSkippedTotal.WithLabelValues(skipBusy).Inc()
	default:
		s.launchLocked(triggerTick)
	}
}

// launchLocked starts a cycle goroutine. The caller holds mu.
func (s *refreshScheduler) launchLocked(trigger string) {
	s.inFlight = true
	ctx := s.ctx

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.runCycle(ctx, trigger)
	}()
}

func (s *refreshScheduler) runCycle(ctx context.Context, trigger string) {
	ctx = s.logger.With().
		Str(loggers.FieldCycleID, ulid.NewULID()).
		Str(loggers.FieldTrigger, trigger).
		Logger().WithContext(ctx)

	snapshot := s.collect(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight = false
	if s.stopped || ctx.Err() != nil {
		metricCyclesTotal.WithLabelValues(trigger, outcomeDiscarded).Inc()
		loggers.Ctx(ctx).Debug().Msg("cycle result discarded")
		return
	}

	switch {
	case snapshot == nil:
		metricCyclesTotal.WithLabelValues(trigger, outcomeDiscarded).Inc()
	case trigger == triggerTick && s.state == StatePaused:
		// paused while the tick cycle was running
		metricCyclesTotal.WithLabelValues(trigger, outcomeDiscarded).Inc()
		loggers.Ctx(ctx).Debug().Msg("tick result discarded after pause")
	default:
		s.publisher.Publish(snapshot)
		s.lastPublishedAt = time.Now()
		metricCyclesTotal.WithLabelValues(trigger, outcomePublished).Inc()
	}

	if s.pending {
		s.pending = false
		s.launchLocked(triggerManual)
	}
}

// collect runs one Collect call and turns a panic into a nil Snapshot.
func (s *refreshScheduler) collect(ctx context.Context) (snapshot *models.Snapshot) {
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("collection cycle panic recovered: %v", r)
			snapshot = nil
		}
	}()

	return s.collector.Collect(ctx)
}
