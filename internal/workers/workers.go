package workers

import (
	"time"

	"github.com/brightsmile/membership-api/internal/config"
	"github.com/brightsmile/membership-api/internal/logger"
	"github.com/brightsmile/membership-api/internal/ratelimit"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers of the service. Today that is
// a single limiter-prune worker; the aggregate keeps the entrypoint stable
// as workers are added.
func NewWorkers(limiter *ratelimit.Limiter, cfg config.RateLimit, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newLimiterPruneWorker(limiter, cfg.PruneInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// limiterPruneWorker periodically evicts expired rate-limit windows so the
// counter table does not grow unboundedly from one-shot identities.
type limiterPruneWorker struct {
	limiter  *ratelimit.Limiter
	interval time.Duration

	logger *logger.Logger
}

const defaultPruneInterval = 5 * time.Minute

func newLimiterPruneWorker(limiter *ratelimit.Limiter, interval time.Duration, logger *logger.Logger) *limiterPruneWorker {
	if interval <= 0 {
		interval = defaultPruneInterval
	}

	return &limiterPruneWorker{
		limiter:  limiter,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the prune loop in its own goroutine and returns immediately.
// The loop lives for the remainder of the process; pruning is idempotent and
// needs no shutdown coordination.
func (p *limiterPruneWorker) Run() {
	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for range ticker.C {
			removed := p.limiter.Prune()
			if removed > 0 {
				p.logger.Debug().Int("removed", removed).Msg("pruned expired rate-limit windows")
			}
		}
	}()
}
