package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DailyGarden_Go/internal/store"
	"github.com/osse101/DailyGarden_Go/internal/worker"
)

// MockStore is a hand-written testify mock of store.Store
type MockStore struct {
	mock.Mock
	mu sync.Mutex
}

func (m *MockStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockStore) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Called(ctx, key).Error(0)
}

func (m *MockStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Called(ctx).Error(0)
}

func (m *MockStore) Close() error {
	return nil
}

func TestSaver_WritesInBackground(t *testing.T) {
	mem := store.NewMemory()
	pool := worker.NewPool(1, 4)
	pool.Start()

	saver := store.NewSaver(mem, pool)
	assert.True(t, saver.Save(store.Snapshot{store.KeyPlayer: `{"coins":1}`, store.KeyGarden: `{}`}))
	pool.Stop()

	v, ok, err := mem.Get(context.Background(), store.KeyPlayer)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"coins":1}`, v)
	assert.Equal(t, 2, mem.Len())
}

func TestSaver_FailedKeyDoesNotStopOthers(t *testing.T) {
	ms := &MockStore{}
	ms.On("Set", mock.Anything, store.KeyGarden, "g").Return(errors.New("disk full"))
	ms.On("Set", mock.Anything, store.KeyPlayer, "p").Return(nil)

	saver := store.NewSaver(ms, worker.NewPool(1, 1))
	err := saver.SaveNow(context.Background(), store.Snapshot{store.KeyGarden: "g", store.KeyPlayer: "p"})
	assert.EqualError(t, err, "disk full")
	ms.AssertExpectations(t)
}

func TestSaver_DropsWhenQueueFull(t *testing.T) {
	pool := worker.NewPool(1, 1)
	saver := store.NewSaver(store.NewMemory(), pool)

	// pool not started: first save fills the only slot
	assert.True(t, saver.Save(store.Snapshot{store.KeyPlayer: "1"}))
	assert.False(t, saver.Save(store.Snapshot{store.KeyPlayer: "2"}))
	assert.True(t, saver.Save(nil), "empty snapshot is a no-op")

	done := make(chan struct{})
	go func() {
		pool.Start()
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pool did not drain")
	}

	v, _, _ := saver.Store().Get(context.Background(), store.KeyPlayer)
	assert.Equal(t, "1", v)
}
