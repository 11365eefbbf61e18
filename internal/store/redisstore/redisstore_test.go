package redisstore

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/DailyGarden_Go/internal/store"
	"github.com/osse101/DailyGarden_Go/internal/store/storetest"
)

// Integration test: runs only when REDIS_ADDR points at a disposable Redis
func TestStoreContract(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("Skipping integration test: REDIS_ADDR not set")
	}

	n := 0
	storetest.Run(t, func(t *testing.T) store.Store {
		n++
		s, err := Open(context.Background(), Options{
			Addr:    addr,
			HashKey: fmt.Sprintf("dailygarden:test:%d:%d", time.Now().UnixNano(), n),
		})
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = s.Clear(context.Background())
			_ = s.Close()
		})
		return s
	})
}

func TestOpenRequiresAddr(t *testing.T) {
	_, err := Open(context.Background(), Options{})
	require.Error(t, err)
}
