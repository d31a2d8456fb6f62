package simulation

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tuannvm/ultratech/internal/clock"
)

// DefaultDelay is how long a simulation appears to run.
const DefaultDelay = 800 * time.Millisecond

// ErrBusy is returned when a simulation is triggered while another is pending.
var ErrBusy = errors.New("simulation already running")

// Runner delivers collaboration results after a fixed delay. The inputs are
// captured when the simulation is triggered; later registry changes do not
// affect a pending result.
type Runner struct {
	clock  clock.Clock
	delay  time.Duration
	detail DetailFunc
	logger *zap.Logger

	mu      sync.Mutex
	pending bool
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithClock injects the clock driving the delay.
func WithClock(c clock.Clock) RunnerOption {
	return func(r *Runner) {
		if c != nil {
			r.clock = c
		}
	}
}

// WithDelay sets the presentational delay. Negative values are treated as zero.
func WithDelay(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d < 0 {
			d = 0
		}
		r.delay = d
	}
}

// WithDetail sets the function rendering result details.
func WithDetail(fn DetailFunc) RunnerOption {
	return func(r *Runner) {
		if fn != nil {
			r.detail = fn
		}
	}
}

// WithLogger sets the runner's logger.
func WithLogger(logger *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a Runner using the real clock and DefaultDelay.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		clock:  clock.Real(),
		delay:  DefaultDelay,
		detail: DefaultDetail,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Delay returns the configured delay.
func (r *Runner) Delay() time.Duration { return r.delay }

// Pending reports whether a triggered simulation has not resolved yet.
func (r *Runner) Pending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

// Trigger starts a simulation over the given inputs. The returned channel
// receives exactly one Result after the delay and is never closed.
// There is no cancellation: once triggered, the simulation always resolves.
func (r *Runner) Trigger(agentCount, totalRank int) (<-chan Result, error) {
	r.mu.Lock()
	if r.pending {
		r.mu.Unlock()
		return nil, ErrBusy
	}
	r.pending = true
	r.mu.Unlock()

	r.logger.Debug("simulation triggered",
		zap.Int("agents", agentCount),
		zap.Int("total_rank", totalRank),
		zap.Duration("delay", r.delay))

	results := make(chan Result, 1)
	r.clock.AfterFunc(r.delay, func() {
		res := evaluate(agentCount, totalRank, r.detail)

		r.mu.Lock()
		r.pending = false
		r.mu.Unlock()

		r.logger.Debug("simulation resolved", zap.Stringer("outcome", res.Outcome))
		results <- res
	})
	return results, nil
}

// Run triggers a simulation and waits for its result. ctx only bounds the
// wait; the simulation itself still resolves if ctx ends first.
func (r *Runner) Run(ctx context.Context, agentCount, totalRank int) (Result, error) {
	results, err := r.Trigger(agentCount, totalRank)
	if err != nil {
		return Result{}, err
	}

	select {
	case res := <-results:
		return res, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
