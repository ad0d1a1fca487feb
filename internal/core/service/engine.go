package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"hashcrack/internal/core/algorithm"
	"hashcrack/internal/core/domain"
	"hashcrack/internal/port"
)

// Engine drives one generate-hash-compare run. It is single use: Run moves it
// from Idle to Running and then to exactly one terminal state.
//
// Cancel and Snapshot may be called from any goroutine while Run is active.
// Cancellation is polled once per candidate, so an in-flight digest always
// completes before the engine stops.
type Engine struct {
	digests        port.DigestProvider
	logger         *zap.Logger
	reportInterval int64

	state     atomic.Value // domain.EngineState
	cancelled atomic.Bool
	attempts  atomic.Int64

	mu         sync.RWMutex
	startTime  time.Time
	endTime    time.Time
	mode       domain.AttackMode
	total      int64
	totalKnown bool
}

type EngineOption func(*Engine)

func WithLogger(logger *zap.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithReportInterval overrides the per-mode attempts between stats reports.
func WithReportInterval(n int64) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.reportInterval = n
		}
	}
}

func NewEngine(digests port.DigestProvider, opts ...EngineOption) *Engine {
	e := &Engine{
		digests: digests,
		logger:  zap.NewNop(),
	}
	e.state.Store(domain.StateIdle)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run enumerates src until a candidate's digest equals target, the source is
// exhausted, or cancellation is observed. The comparison is exact and case
// sensitive. An unsupported algorithm is rejected before any state changes.
// A source read failure ends the run in StateFailed and is returned together
// with the partial outcome, whose status is OutcomeFailed.
func (e *Engine) Run(
	ctx context.Context,
	src algorithm.Source,
	alg domain.HashAlgorithm,
	target string,
	sink port.StatsSink,
) (domain.AttackOutcome, error) {
	hasher, err := e.digests.Hasher(alg)
	if err != nil {
		return domain.AttackOutcome{}, err
	}
	if !e.state.CompareAndSwap(domain.StateIdle, domain.StateRunning) {
		return domain.AttackOutcome{}, domain.ErrEngineReused
	}

	if ctx.Err() != nil {
		e.Cancel()
	}
	stop := context.AfterFunc(ctx, e.Cancel)
	defer stop()

	e.reset(src)
	interval := e.reportInterval
	if interval <= 0 {
		interval = src.Name().ReportInterval()
	}

	e.logger.Debug("attack started",
		zap.String("mode", string(src.Name())),
		zap.String("algorithm", string(alg)),
		zap.Int64("total", e.total),
		zap.Bool("total_known", e.totalKnown),
	)

	for src.Next() {
		if e.cancelled.Load() {
			return e.finish(domain.StateCancelled, domain.OutcomeCancelled, ""), nil
		}

		candidate := src.Candidate()
		n := e.attempts.Add(1)
		if hasher.Digest(candidate) == target {
			return e.finish(domain.StateFound, domain.OutcomeFound, candidate), nil
		}

		if sink != nil && n%interval == 0 {
			sink.Report(e.Snapshot())
		}
	}

	if err := src.Err(); err != nil {
		outcome := e.finish(domain.StateFailed, domain.OutcomeFailed, "")
		e.logger.Error("attack aborted", zap.Error(err), zap.Int64("attempts", outcome.Attempts))
		return outcome, err
	}
	return e.finish(domain.StateExhausted, domain.OutcomeExhausted, ""), nil
}

func (e *Engine) reset(src algorithm.Source) {
	e.attempts.Store(0)
	total, known := src.Total()

	e.mu.Lock()
	e.startTime = time.Now()
	e.endTime = time.Time{}
	e.mode = src.Name()
	e.total = total
	e.totalKnown = known
	e.mu.Unlock()
}

func (e *Engine) finish(state domain.EngineState, status domain.OutcomeStatus, candidate string) domain.AttackOutcome {
	e.mu.Lock()
	e.endTime = time.Now()
	elapsed := e.endTime.Sub(e.startTime)
	e.mu.Unlock()
	e.state.Store(state)

	outcome := domain.AttackOutcome{
		Status:    status,
		Candidate: candidate,
		Attempts:  e.attempts.Load(),
		Elapsed:   elapsed,
	}
	e.logger.Debug("attack finished",
		zap.String("state", string(state)),
		zap.Int64("attempts", outcome.Attempts),
		zap.Duration("elapsed", elapsed),
	)
	return outcome
}

// Cancel requests that the run stop at its next poll. It is safe to call
// before Run, during it, or after it has finished.
func (e *Engine) Cancel() {
	e.cancelled.Store(true)
}

func (e *Engine) State() domain.EngineState {
	return e.state.Load().(domain.EngineState)
}

// Snapshot returns the current attempt statistics. Elapsed stops advancing
// once the run reaches a terminal state.
func (e *Engine) Snapshot() domain.StatsSnapshot {
	attempts := e.attempts.Load()

	e.mu.RLock()
	defer e.mu.RUnlock()

	var elapsed time.Duration
	switch {
	case e.startTime.IsZero():
	case e.endTime.IsZero():
		elapsed = time.Since(e.startTime)
	default:
		elapsed = e.endTime.Sub(e.startTime)
	}

	snap := domain.StatsSnapshot{
		Mode:       e.mode,
		Attempts:   attempts,
		Elapsed:    elapsed,
		Total:      e.total,
		TotalKnown: e.totalKnown,
	}
	if elapsed > 0 {
		snap.Rate = float64(attempts) / elapsed.Seconds()
	}
	return snap
}
