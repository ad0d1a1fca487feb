package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"hashcrack/internal/core/algorithm"
	"hashcrack/internal/core/digest"
	"hashcrack/internal/core/domain"
	"hashcrack/internal/pkg/concurrency"
	"hashcrack/internal/pkg/metrics"
	"hashcrack/internal/port"
	"hashcrack/internal/utils/random"
)

const (
	MaxConcurrentAttacks  = 6
	ResultBufferSize      = 10
	MetricsUpdateInterval = time.Second
)

// CrackingService turns an AttackConfig into a ready engine and source, and
// records what each run produced.
type CrackingService struct {
	digests   port.DigestProvider
	logger    *zap.Logger
	collector *metrics.Collector
	reporter  *metrics.Reporter
	intervals map[domain.AttackMode]int64
	workers   int
}

type Option func(*CrackingService)

func WithServiceLogger(logger *zap.Logger) Option {
	return func(s *CrackingService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithReporter records every finished run. The caller owns closing it.
func WithReporter(r *metrics.Reporter) Option {
	return func(s *CrackingService) { s.reporter = r }
}

func WithCollector(c *metrics.Collector) Option {
	return func(s *CrackingService) {
		if c != nil {
			s.collector = c
		}
	}
}

// WithReportIntervals sets the attempts between stats reports for dictionary
// and combinatorial sources. Non-positive values keep the defaults.
func WithReportIntervals(dictionary, combinatorial int64) Option {
	return func(s *CrackingService) {
		if dictionary > 0 {
			s.intervals[domain.ModeDictionary] = dictionary
		}
		if combinatorial > 0 {
			s.intervals[domain.ModeBruteForce] = combinatorial
			s.intervals[domain.ModeMask] = combinatorial
		}
	}
}

// WithWorkers bounds how many targets CrackAll attacks at once.
func WithWorkers(n int) Option {
	return func(s *CrackingService) {
		if n > 0 {
			s.workers = n
		}
	}
}

func NewCrackingService(digests port.DigestProvider, opts ...Option) *CrackingService {
	if digests == nil {
		digests = digest.Registry{}
	}
	s := &CrackingService{
		digests:   digests,
		logger:    zap.NewNop(),
		collector: metrics.NewCollector(MetricsUpdateInterval),
		intervals: map[domain.AttackMode]int64{
			domain.ModeDictionary: domain.ModeDictionary.ReportInterval(),
			domain.ModeBruteForce: domain.ModeBruteForce.ReportInterval(),
			domain.ModeMask:       domain.ModeMask.ReportInterval(),
		},
		workers: MaxConcurrentAttacks,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Collector returns the resource sampler attached to finished runs.
func (s *CrackingService) Collector() *metrics.Collector {
	return s.collector
}

// Attack is a validated, ready-to-run configuration with its own engine.
type Attack struct {
	ID     string
	Config domain.AttackConfig
	engine *Engine
	source algorithm.Source
	svc    *CrackingService
}

// Prepare validates cfg and builds its source and engine. Every
// configuration error surfaces here, before the engine can start.
func (s *CrackingService) Prepare(cfg domain.AttackConfig) (*Attack, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	hasher, err := s.digests.Hasher(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	if len(cfg.TargetDigest) != hasher.HexLength() {
		s.logger.Warn("target digest length does not match algorithm",
			zap.String("algorithm", string(cfg.Algorithm)),
			zap.Int("length", len(cfg.TargetDigest)),
			zap.Int("expected", hasher.HexLength()),
		)
	}

	src, err := NewSource(cfg)
	if err != nil {
		return nil, err
	}

	return &Attack{
		ID:     random.GenerateID(),
		Config: cfg,
		engine: NewEngine(s.digests,
			WithLogger(s.logger.With(zap.String("mode", string(cfg.Mode)))),
			WithReportInterval(s.intervals[cfg.Mode]),
		),
		source: src,
		svc:    s,
	}, nil
}

// NewSource builds the candidate source selected by cfg.Mode.
func NewSource(cfg domain.AttackConfig) (algorithm.Source, error) {
	switch cfg.Mode {
	case domain.ModeDictionary:
		return algorithm.NewDictionary(cfg.WordlistPath)
	case domain.ModeBruteForce:
		return algorithm.NewBruteForce(cfg.Charset, cfg.MinLength, cfg.MaxLength)
	case domain.ModeMask:
		return algorithm.NewMask(cfg.Mask), nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrNoAttackMode, cfg.Mode)
}

// Engine exposes the run's engine for Snapshot and Cancel.
func (a *Attack) Engine() *Engine {
	return a.engine
}

// Total reports the size of the candidate space, when known.
func (a *Attack) Total() (int64, bool) {
	return a.source.Total()
}

// Run executes the attack once and closes its source. Cancelling ctx cancels
// the engine cooperatively.
func (a *Attack) Run(ctx context.Context, sink port.StatsSink) (domain.CrackResult, error) {
	defer a.source.Close()

	result := domain.CrackResult{
		ID:        a.ID,
		Config:    a.Config,
		StartTime: time.Now(),
	}
	outcome, err := a.engine.Run(ctx, a.source, a.Config.Algorithm, a.Config.TargetDigest, sink)
	result.EndTime = time.Now()
	result.Outcome = outcome
	if a.svc.collector != nil {
		result.Resources = a.svc.collector.Sample()
	}
	if err != nil {
		result.Error = err.Error()
	}

	a.svc.finalize(result)
	return result, err
}

func (s *CrackingService) finalize(result domain.CrackResult) {
	fields := []zap.Field{
		zap.String("id", result.ID),
		zap.String("mode", string(result.Config.Mode)),
		zap.String("algorithm", string(result.Config.Algorithm)),
		zap.String("status", string(result.Outcome.Status)),
		zap.Int64("attempts", result.Outcome.Attempts),
		zap.Duration("elapsed", result.Outcome.Elapsed),
	}
	if result.Error != "" {
		s.logger.Error("attack failed", append(fields, zap.String("error", result.Error))...)
	} else {
		s.logger.Info("attack finished", fields...)
	}

	if s.reporter != nil {
		s.reporter.Record(result)
	}
}

// Crack prepares and runs a single attack.
func (s *CrackingService) Crack(ctx context.Context, cfg domain.AttackConfig, sink port.StatsSink) (domain.CrackResult, error) {
	attack, err := s.Prepare(cfg)
	if err != nil {
		return domain.CrackResult{Config: cfg, Error: err.Error()}, err
	}
	return attack.Run(ctx, sink)
}

// CrackAll attacks every config with its own engine, at most s.workers at a
// time. Results come back in input order; configuration errors are reported
// per entry and do not stop the others.
func (s *CrackingService) CrackAll(ctx context.Context, cfgs []domain.AttackConfig) ([]domain.CrackResult, error) {
	results := make([]domain.CrackResult, len(cfgs))
	if len(cfgs) == 0 {
		return results, nil
	}

	workers := s.workers
	if workers > len(cfgs) {
		workers = len(cfgs)
	}
	pool := concurrency.NewWorkerPool(workers, ResultBufferSize)
	pool.Start(ctx)

	go func() {
		for i, cfg := range cfgs {
			cfg := cfg
			pool.Submit(concurrency.Task{
				ID: strconv.Itoa(i),
				Function: func(ctx context.Context) (domain.CrackResult, error) {
					return s.Crack(ctx, cfg, nil)
				},
			})
		}
		pool.Stop()
	}()

	var errs []error
	for res := range pool.Results() {
		i, _ := strconv.Atoi(res.TaskID)
		results[i] = res.Value
		if res.Error != nil {
			errs = append(errs, fmt.Errorf("target %d: %w", i, res.Error))
		}
	}

	stats := pool.Stats()
	s.logger.Info("batch finished",
		zap.Int("targets", len(cfgs)),
		zap.Int("workers", workers),
		zap.Int64("completed", stats.CompletedTasks),
		zap.Int64("failed", stats.FailedTasks),
		zap.Duration("avg_latency", stats.AverageLatency),
	)
	return results, errors.Join(errs...)
}
