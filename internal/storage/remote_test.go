package storage_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Tiliavir/punch-clock/internal/config"
	"github.com/Tiliavir/punch-clock/internal/model"
	"github.com/Tiliavir/punch-clock/internal/storage"
)

// The remote backends need a live server. Point PUNCH_TEST_REDIS_ADDR or
// PUNCH_TEST_POSTGRES_DSN at a scratch instance to run them.

func TestRedisBackendRoundTrip(t *testing.T) {
	addr := os.Getenv("PUNCH_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("PUNCH_TEST_REDIS_ADDR not set")
	}
	exerciseRemote(t, config.StorageConfig{
		Backend:     "redis",
		Key:         "test-" + t.Name(),
		RedisAddr:   addr,
		RedisPrefix: "punch-test:",
	})
}

func TestPostgresBackendRoundTrip(t *testing.T) {
	dsn := os.Getenv("PUNCH_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("PUNCH_TEST_POSTGRES_DSN not set")
	}
	exerciseRemote(t, config.StorageConfig{
		Backend:     "postgres",
		Key:         "test-" + t.Name(),
		PostgresDSN: dsn,
	})
}

func exerciseRemote(t *testing.T, cfg config.StorageConfig) {
	t.Helper()
	ctx := context.Background()

	store, err := storage.Open(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Clear(ctx))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.EmptyState(), got)

	want := sampleState()
	require.NoError(t, store.Save(ctx, want))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	backend, err := storage.OpenBackend(ctx, cfg)
	require.NoError(t, err)
	defer backend.Close()
	require.NoError(t, backend.Put(ctx, cfg.Key, []byte("{not json")))

	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.EmptyState(), got)
	_, err = backend.Get(ctx, cfg.Key)
	assert.ErrorIs(t, err, storage.ErrNotFound, "corrupt blob is deleted")

	require.NoError(t, store.Clear(ctx))
}
