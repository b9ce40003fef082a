package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/postgres"
	"github.com/jhoicas/carry-ledger-api/pkg/config"
)

// Requiere una base real: TEST_DATABASE_URL=postgres://... go test ./internal/infrastructure/postgres/
func TestKVStore_PutGet(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	defer pool.Close()

	store := postgres.NewKVStore(pool, "kv_store_test")
	require.NoError(t, store.EnsureSchema(ctx))

	_, ok, err := store.Get(ctx, "missing-"+time.Now().Format(time.RFC3339Nano))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put(ctx, "k", []byte(`[{"id":"1"}]`)))
	require.NoError(t, store.Put(ctx, "k", []byte(`[{"id":"2"}]`)))

	got, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"2"}]`, string(got))
}
