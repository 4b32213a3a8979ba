package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"procureflow.io/procureflow/internal/pkg/logger"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

func TestNewPools(t *testing.T) {
	ctx := context.Background()
	pools, err := NewPools(ctx, DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	if pools.General == nil {
		t.Error("General pool is nil")
	}
}

func TestPool_Submit(t *testing.T) {
	ctx := context.Background()
	pools, err := NewPools(ctx, PoolConfig{GeneralPoolSize: 10})
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	var executed atomic.Bool
	var wg sync.WaitGroup
	wg.Add(1)

	err = pools.General.Submit(ctx, func(ctx context.Context) {
		executed.Store(true)
		wg.Done()
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	wg.Wait()
	if !executed.Load() {
		t.Error("Task was not executed")
	}
}

func TestPool_Submit_CancelledContext(t *testing.T) {
	ctx := context.Background()
	pools, err := NewPools(ctx, DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	cancelledCtx, cancel := context.WithCancel(ctx)
	cancel() // Cancel immediately

	err = pools.General.Submit(cancelledCtx, func(ctx context.Context) {
		t.Error("Task should not execute with cancelled context")
	})
	if err != context.Canceled {
		t.Errorf("Submit() error = %v, want context.Canceled", err)
	}
}

func TestPools_SubmitDetached(t *testing.T) {
	ctx := context.Background()
	pools, err := NewPools(ctx, DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}

	var executed atomic.Bool
	var wg sync.WaitGroup
	wg.Add(1)

	err = pools.SubmitDetached(pools.General, func(ctx context.Context) {
		executed.Store(true)
		wg.Done()
	})
	if err != nil {
		t.Fatalf("SubmitDetached() error = %v", err)
	}

	wg.Wait()
	pools.Shutdown()

	if !executed.Load() {
		t.Error("SubmitDetached task was not executed")
	}
}

func TestPools_SubmitDetached_NilPool(t *testing.T) {
	ctx := context.Background()
	pools, err := NewPools(ctx, DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	if err := pools.SubmitDetached(nil, func(ctx context.Context) {}); err != ErrPoolClosed {
		t.Errorf("SubmitDetached(nil) error = %v, want ErrPoolClosed", err)
	}
}

func TestPools_Shutdown_CancelsDetachedTasks(t *testing.T) {
	ctx := context.Background()
	pools, err := NewPools(ctx, PoolConfig{GeneralPoolSize: 2})
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}

	started := make(chan struct{})
	done := make(chan struct{})
	err = pools.SubmitDetached(pools.General, func(taskCtx context.Context) {
		close(started)
		<-taskCtx.Done()
		close(done)
	})
	if err != nil {
		t.Fatalf("SubmitDetached() error = %v", err)
	}

	<-started
	pools.Shutdown()
	<-done
}
