// Package storetest holds the behavior every store backend must share.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DailyGarden_Go/internal/store"
)

// Run exercises the Store contract against a fresh, empty store from newStore
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Helper()

	t.Run("missing key", func(t *testing.T) {
		s := newStore(t)
		v, ok, err := s.Get(context.Background(), store.KeyPlayer)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("set get overwrite", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, store.KeyGarden, `{"level":1}`))
		v, ok, err := s.Get(ctx, store.KeyGarden)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"level":1}`, v)

		require.NoError(t, s.Set(ctx, store.KeyGarden, `{"level":2,"name":"Schäfer"}`))
		v, _, err = s.Get(ctx, store.KeyGarden)
		require.NoError(t, err)
		assert.Equal(t, `{"level":2,"name":"Schäfer"}`, v)
	})

	t.Run("empty value is stored", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Set(ctx, store.KeyLastSaveTime, ""))
		_, ok, err := s.Get(ctx, store.KeyLastSaveTime)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("remove", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Set(ctx, store.KeyLeaderboard, "[]"))
		require.NoError(t, s.Remove(ctx, store.KeyLeaderboard))
		require.NoError(t, s.Remove(ctx, store.KeyLeaderboard), "removing an absent key is not an error")

		_, ok, err := s.Get(ctx, store.KeyLeaderboard)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("clear", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		for _, key := range store.AllKeys {
			require.NoError(t, s.Set(ctx, key, key))
		}
		require.NoError(t, s.Clear(ctx))
		for _, key := range store.AllKeys {
			_, ok, err := s.Get(ctx, key)
			require.NoError(t, err)
			assert.False(t, ok, key)
		}
	})

	t.Run("large value", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		big := make([]byte, 256*1024)
		for i := range big {
			big[i] = byte('a' + i%26)
		}
		require.NoError(t, s.Set(ctx, store.KeyGarden, string(big)))
		v, ok, err := s.Get(ctx, store.KeyGarden)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, string(big), v)
	})
}
