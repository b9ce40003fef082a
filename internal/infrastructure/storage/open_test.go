package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/memory"
	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/storage"
	"github.com/jhoicas/carry-ledger-api/pkg/config"
	"github.com/jhoicas/carry-ledger-api/pkg/logger"
)

func TestOpen_Memoria(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.StoreMemory, Namespace: "sr_storage", Version: 2}}

	store, closeFn, err := storage.Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer closeFn()

	assert.IsType(t, &memory.Store{}, store)
	assert.Equal(t, "sr_storage_v2_movements", storage.Keyspace(cfg.Store).Key(kvstore.KindMovements))
}

func TestOpen_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "sqlite"}}

	_, _, err := storage.Open(context.Background(), cfg, logger.Nop())
	assert.ErrorContains(t, err, "sqlite")
}
