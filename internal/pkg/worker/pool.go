// Package worker provides goroutine pool management.
//
// Naked goroutines are forbidden in this codebase: all concurrency goes
// through a pool with context propagation.
package worker

import (
	"context"
	"errors"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"procureflow.io/procureflow/internal/pkg/logger"
)

// ErrPoolClosed is returned when submitting to a closed pool.
var ErrPoolClosed = errors.New("worker pool is closed")

// Task is a context-aware task function.
type Task func(ctx context.Context)

// Pool wraps ants.Pool with context-aware submission.
type Pool struct {
	pool *ants.Pool
	name string
}

// Pools is the worker pool collection.
type Pools struct {
	// General serves short-lived background work (notification fan-out,
	// audit writes).
	General *Pool

	// serviceCtx is the service lifecycle context for detached tasks.
	serviceCtx    context.Context
	serviceCancel context.CancelFunc
}

// PoolConfig contains worker pool configuration.
type PoolConfig struct {
	GeneralPoolSize int
}

// DefaultPoolConfig returns default configuration.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{GeneralPoolSize: 100}
}

// NewPools creates the worker pool collection.
func NewPools(ctx context.Context, cfg PoolConfig) (*Pools, error) {
	serviceCtx, serviceCancel := context.WithCancel(ctx)

	// Unified panic recovery.
	panicHandler := func(p interface{}) {
		logger.Error("Worker panic recovered",
			zap.Any("panic", p),
			zap.Stack("stack"),
		)
	}

	generalAnts, err := ants.NewPool(cfg.GeneralPoolSize,
		ants.WithPanicHandler(panicHandler),
		ants.WithNonblocking(false),
		ants.WithExpiryDuration(10*time.Second), // Purge idle workers (ants best practice)
	)
	if err != nil {
		serviceCancel()
		return nil, err
	}

	return &Pools{
		General:       &Pool{pool: generalAnts, name: "general"},
		serviceCtx:    serviceCtx,
		serviceCancel: serviceCancel,
	}, nil
}

// Submit submits a context-aware task.
// The task receives the caller's context and SHOULD check ctx.Done() at
// blocking points. If the context is already cancelled, Submit returns
// ctx.Err() without submitting.
func (p *Pool) Submit(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	return p.pool.Submit(func() {
		// The context may have been cancelled while the task was queued.
		select {
		case <-ctx.Done():
			logger.Debug("Task skipped: context cancelled",
				zap.String("pool", p.name),
				zap.Error(ctx.Err()),
			)
			return
		default:
		}
		task(ctx)
	})
}

// SubmitDetached submits a task bound to the service lifecycle context rather
// than the caller's request context. Use for fire-and-forget work that must
// survive the originating HTTP request.
func (ps *Pools) SubmitDetached(pool *Pool, task Task) error {
	if pool == nil {
		return ErrPoolClosed
	}
	return pool.Submit(ps.serviceCtx, task)
}

// Running returns the number of currently running workers.
func (p *Pool) Running() int {
	return p.pool.Running()
}

// Shutdown releases all pools and cancels detached tasks.
func (ps *Pools) Shutdown() {
	ps.serviceCancel()
	if ps.General != nil {
		ps.General.pool.Release()
	}
	logger.Info("Worker pools released")
}
