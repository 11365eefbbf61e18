package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/DailyGarden_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool_ProcessesEveryJob(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	var executed int32
	pool := NewPool(2, 10)
	pool.Start()

	job := &testJob{executed: &executed}
	for i := 0; i < 5; i++ {
		assert.True(t, pool.Enqueue(job))
	}

	pool.Stop()
	assert.Equal(t, int32(5), atomic.LoadInt32(&executed))
	checker.Check(0)
}

func TestNewPool_AtLeastOneWorker(t *testing.T) {
	pool := NewPool(0, 1)
	assert.Equal(t, 1, pool.workers)
}

func TestPool_TryEnqueueDropsWhenFull(t *testing.T) {
	pool := NewPool(1, 1)

	var executed int32
	job := &testJob{executed: &executed}

	// not started, so the single slot stays occupied
	assert.True(t, pool.TryEnqueue(job))
	assert.False(t, pool.TryEnqueue(job))
	assert.Equal(t, int64(1), pool.Dropped())

	pool.Start()
	pool.Stop()
	assert.Equal(t, int32(1), atomic.LoadInt32(&executed), "queued job drains on stop")
}

func TestPool_RejectsAfterStop(t *testing.T) {
	pool := NewPool(1, 4)
	pool.Start()
	pool.Stop()
	pool.Stop()

	var executed int32
	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}))
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}))
	assert.Zero(t, atomic.LoadInt32(&executed))
}

func TestPool_FailingJobDoesNotStopWorker(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	pool := NewPool(1, 4)
	pool.Start()

	done := make(chan struct{})
	pool.Enqueue(JobFunc(func(ctx context.Context) error { return errors.New("disk full") }))
	pool.Enqueue(JobFunc(func(ctx context.Context) error { close(done); return nil }))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second job never ran")
	}
	pool.Stop()
	checker.Check(0)
}
