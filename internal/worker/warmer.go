// Package worker implements the buffered worker pool that keeps hot view
// caches warm. The scheduler enqueues a full warm cycle on an interval;
// shift edits enqueue targeted analytics rebuilds, coalesced per
// tournament so an editing session triggers one rebuild, not one per
// keystroke.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/logic"
)

var (
	warmJobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aqt_warm_jobs_total",
		Help: "Warm jobs processed by kind and outcome",
	}, []string{"kind", "status"})

	warmQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "aqt_warm_queue_depth",
		Help: "Current depth of the warm job queue",
	})

	warmDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aqt_warm_duration_seconds",
		Help:    "Duration of warm jobs",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})

	warmJobsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aqt_warm_jobs_dropped_total",
		Help: "Warm jobs dropped because the queue was full",
	})
)

type warmKind string

const (
	warmTournaments warmKind = "tournaments"
	warmTournament  warmKind = "tournament"
	warmAnalytics   warmKind = "analytics"
	warmStatistics  warmKind = "statistics"
)

// Job is one warm task. TournamentID is zero for site-wide kinds.
type Job struct {
	Kind         warmKind
	TournamentID int64
}

// PoolConfig configures the warm pool.
type PoolConfig struct {
	WorkerCount    int
	QueueSize      int
	WarmInterval   time.Duration
	DebounceWindow time.Duration
	// WarmDepth is how many recent tournaments a full cycle rebuilds.
	WarmDepth int

	Tournaments logic.TournamentService
	Teams       logic.TeamService
	Analytics   logic.AnalyticsService
	Statistics  logic.StatisticsService
	Logger      *zap.Logger
}

// Pool manages the warm workers and the edit-triggered debouncers.
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger

	mu         sync.Mutex
	debouncers map[int64]func(func())
}

func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.WarmInterval <= 0 {
		cfg.WarmInterval = 5 * time.Minute
	}
	if cfg.DebounceWindow <= 0 {
		cfg.DebounceWindow = 2 * time.Second
	}
	if cfg.WarmDepth <= 0 {
		cfg.WarmDepth = 3
	}
	return &Pool{
		config:     cfg,
		jobQueue:   make(chan Job, cfg.QueueSize),
		logger:     cfg.Logger.Sugar(),
		debouncers: make(map[int64]func(func())),
	}
}

// Start launches the worker goroutines and the warm scheduler.
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	go p.schedule()

	p.logger.Infow("Warm pool started",
		"workers", p.config.WorkerCount,
		"interval", p.config.WarmInterval,
	)
}

// Stop drains the queue and waits for in-flight jobs.
func (p *Pool) Stop() {
	p.logger.Info("Stopping warm pool...")
	p.cancel()
	close(p.jobQueue)
	p.wg.Wait()
	p.logger.Info("Warm pool stopped")
}

// Enqueue adds a warm job. A full queue drops the job: warming is an
// optimization, requests rebuild views on demand anyway.
func (p *Pool) Enqueue(job Job) bool {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warnw("Failed to enqueue warm job (pool stopped)", "error", r)
		}
	}()

	select {
	case p.jobQueue <- job:
		warmQueueDepth.Set(float64(len(p.jobQueue)))
		return true
	default:
		warmJobsDropped.Inc()
		return false
	}
}

// QueueDepth returns the current queue size.
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

// AnalyticsEdited schedules an analytics rebuild for a tournament,
// debounced so a burst of shift edits coalesces into a single job.
// Wired as the analytics service's edited callback.
func (p *Pool) AnalyticsEdited(tournamentID int64) {
	p.mu.Lock()
	d, ok := p.debouncers[tournamentID]
	if !ok {
		d = debounce.New(p.config.DebounceWindow)
		p.debouncers[tournamentID] = d
	}
	p.mu.Unlock()

	d(func() {
		p.Enqueue(Job{Kind: warmAnalytics, TournamentID: tournamentID})
	})
}

func (p *Pool) schedule() {
	// Warm once at startup, then on the interval
	p.enqueueCycle()

	ticker := time.NewTicker(p.config.WarmInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.enqueueCycle()
		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Pool) enqueueCycle() {
	p.Enqueue(Job{Kind: warmTournaments})
	p.Enqueue(Job{Kind: warmStatistics})
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for job := range p.jobQueue {
		start := time.Now()
		err := p.process(job)
		warmDuration.WithLabelValues(string(job.Kind)).Observe(time.Since(start).Seconds())
		warmQueueDepth.Set(float64(len(p.jobQueue)))

		if err != nil {
			warmJobs.WithLabelValues(string(job.Kind), "error").Inc()
			p.logger.Warnw("Warm job failed",
				"worker", id,
				"kind", job.Kind,
				"tournament_id", job.TournamentID,
				"error", err,
			)
			continue
		}
		warmJobs.WithLabelValues(string(job.Kind), "ok").Inc()
	}
}

func (p *Pool) process(job Job) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch job.Kind {
	case warmTournaments:
		view, err := p.config.Tournaments.Tournaments(ctx)
		if err != nil {
			return err
		}
		// Fan out per-tournament warms for the most recent ones
		depth := p.config.WarmDepth
		if depth > len(view.Tournaments) {
			depth = len(view.Tournaments)
		}
		for _, t := range view.Tournaments[:depth] {
			p.Enqueue(Job{Kind: warmTournament, TournamentID: t.ID})
		}
		return nil

	case warmTournament:
		if _, err := p.config.Tournaments.Standings(ctx, job.TournamentID); err != nil {
			return err
		}
		_, err := p.config.Teams.Teams(ctx, job.TournamentID)
		return err

	case warmAnalytics:
		_, err := p.config.Analytics.View(ctx, job.TournamentID, logic.DefaultAlgorithm)
		return err

	case warmStatistics:
		if _, err := p.config.Statistics.History(ctx); err != nil {
			return err
		}
		_, err := p.config.Statistics.Overall(ctx)
		return err
	}
	return nil
}
