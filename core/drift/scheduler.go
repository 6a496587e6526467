package drift

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// WarmupDelay is the fixed delay between Start and the first verification,
// giving the rest of the application time to finish booting.
const WarmupDelay = 10 * time.Second

// ErrRunInProgress is returned by VerifyNow when manual overlap is disabled
// and a verification run is already executing.
var ErrRunInProgress = errors.New("verification run already in progress")

// Scheduler drives the verification pipeline. It owns the warm-up tick, the
// fixed-delay periodic loop, the in-flight gate, and the manual entry point.
type Scheduler struct {
	cfg      Config
	repo     Repository
	detector *Detector
	queuer   *Queuer
	reporter *Reporter
	logger   *zap.Logger

	// warmup is WarmupDelay in production; tests shorten it.
	warmup time.Duration

	inFlight atomic.Bool
	started  atomic.Bool
	cancel   context.CancelFunc
}

// NewScheduler wires the pipeline from its collaborators. Zero config values
// fall back to the documented defaults.
func NewScheduler(cfg Config, repo Repository, gateway Gateway, queue Queue, logger *zap.Logger) *Scheduler {
	cfg = cfg.withDefaults()
	return &Scheduler{
		cfg:      cfg,
		repo:     repo,
		detector: NewDetector(repo, gateway, cfg.LocalLimit, logger),
		queuer:   NewQueuer(queue, cfg.ResyncLimit, logger),
		reporter: NewReporter(logger),
		logger:   logger,
		warmup:   WarmupDelay,
	}
}

// Start launches the warm-up tick and the periodic loop. A non-positive
// interval falls back to the configured one. Calling Start on a running
// scheduler logs and does nothing.
func (s *Scheduler) Start(interval time.Duration) {
	if !s.started.CompareAndSwap(false, true) {
		s.logger.Info("Verification scheduler already running")
		return
	}
	if interval <= 0 {
		interval = s.cfg.Interval
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.logger.Info("Verification scheduler started",
		zap.Duration("interval", interval),
		zap.Duration("warmup", s.warmup))

	// The warm-up runs in its own goroutine so a slow first verification
	// cannot shift the periodic schedule; the in-flight gate arbitrates
	// between the two.
	go func() {
		select {
		case <-ctx.Done():
		case <-time.After(s.warmup):
			s.tick(ctx)
		}
	}()

	go s.loop(ctx, interval)
}

// Stop cancels future runs. A verification already in progress finishes.
// Calling Stop on a stopped scheduler is a no-op.
func (s *Scheduler) Stop() {
	if !s.started.CompareAndSwap(true, false) {
		return
	}
	s.cancel()
	s.logger.Info("Verification scheduler stopped")
}

// Running reports whether the scheduler has been started.
func (s *Scheduler) Running() bool {
	return s.started.Load()
}

// InFlight reports whether a verification run is currently executing.
func (s *Scheduler) InFlight() bool {
	return s.inFlight.Load()
}

// VerifyNow runs the full pipeline synchronously and returns the per-store
// results. The results also go through the reporter, so manual checks leave
// the same log trail as scheduled ones. Depending on configuration a manual
// run either proceeds alongside an in-flight scheduled run or fails fast.
func (s *Scheduler) VerifyNow(ctx context.Context) ([]VerificationResult, error) {
	if !s.cfg.AllowManualOverlap {
		if !s.inFlight.CompareAndSwap(false, true) {
			return nil, ErrRunInProgress
		}
		defer s.inFlight.Store(false)
	}

	results, err := s.runOnce(ctx)
	if err != nil {
		return nil, err
	}
	s.reporter.Record(results)
	return results, nil
}

// loop runs ticks with a fixed delay: the timer is re-armed after each run
// completes, so slow verifications stretch the schedule instead of stacking.
func (s *Scheduler) loop(ctx context.Context, interval time.Duration) {
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			s.tick(ctx)
			timer.Reset(interval)
		}
	}
}

// tick runs one verification pass unless one is already in flight. The CAS
// gate collapses overlapping requests (warm-up vs periodic, or a long run vs
// the next tick) into a skip; the skipped work happens at the next tick.
func (s *Scheduler) tick(ctx context.Context) {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.logger.Info("Verification tick skipped, previous run still in progress")
		return
	}
	defer s.inFlight.Store(false)

	// Stop must not interrupt a running pass, only prevent future ones.
	runCtx := context.WithoutCancel(ctx)

	results, err := s.runOnce(runCtx)
	if err != nil {
		s.logger.Error("Verification run aborted", zap.Error(err))
		return
	}
	s.reporter.Record(results)
}

// runOnce executes one verification pass across every sync-enabled store.
// Store enumeration failure aborts the pass; everything after that is
// isolated per store.
func (s *Scheduler) runOnce(ctx context.Context) ([]VerificationResult, error) {
	stores, err := s.repo.ListSyncEnabledStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate stores: %w", err)
	}

	results := make([]VerificationResult, 0, len(stores))
	for _, store := range stores {
		results = append(results, s.runStore(ctx, store))
	}
	return results, nil
}

// runStore verifies a single store and queues corrective work for detected
// drift. Failures are folded into the result so one broken store cannot take
// down the rest of the pass.
func (s *Scheduler) runStore(ctx context.Context, store Store) VerificationResult {
	result, err := s.detector.Verify(ctx, store, EntityLabel)
	if err != nil {
		s.logger.Error("Store verification errored",
			zap.String("store", store.Code),
			zap.Error(err))
		result.Error = err.Error()
		result.Verified = false
		return result
	}

	if len(result.MissingInRemote) > 0 {
		queued := s.queuer.Submit(ctx, store, EntityLabel, result.MissingInRemote)
		if queued > 0 {
			s.logger.Info("Queued resync for drifted records",
				zap.String("store", store.Code),
				zap.Int("queued", queued))
		}
	}

	return result
}
