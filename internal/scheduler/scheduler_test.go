package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/DailyGarden_Go/internal/testing/leaktest"
	"github.com/osse101/DailyGarden_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount atomic.Int32
	Done     chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	m.RunCount.Add(1)
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{
		Done: make(chan struct{}, 10),
	}

	sched.Schedule("mock", 10*time.Millisecond, job)

	timeout := time.After(time.Second)
	runCount := 0

	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestScheduler_StopReleasesGoroutines(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	pool := worker.NewPool(1, 1)
	pool.Start()
	sched := New(pool)
	sched.Schedule("a", 5*time.Millisecond, &MockJob{Done: make(chan struct{}, 1)})
	sched.Schedule("b", 7*time.Millisecond, &MockJob{Done: make(chan struct{}, 1)})

	time.Sleep(30 * time.Millisecond)
	sched.Stop()
	sched.Stop()
	pool.Stop()

	checker.Check(0)
}
