// Package storage elige el backend clave-valor según STORE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/memory"
	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/carry-ledger-api/internal/infrastructure/redis"
	"github.com/jhoicas/carry-ledger-api/pkg/config"
	"github.com/jhoicas/carry-ledger-api/pkg/logger"
)

// Open abre el backend configurado. La función devuelta libera las conexiones.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (kvstore.Store, func(), error) {
	log = log.Component("storage")
	switch cfg.Store.Driver {
	case config.StoreMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return memory.NewStore(), func() {}, nil

	case config.StoreRedis:
		rdb, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("address", cfg.Redis.Address).Int("db", cfg.Redis.DB).Msg("almacenamiento en Redis")
		return infraredis.NewStore(rdb), func() { _ = rdb.Close() }, nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		kv := postgres.NewKVStore(pool, postgres.DefaultTable)
		if err := kv.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Str("table", postgres.DefaultTable).Msg("almacenamiento en PostgreSQL")
		return kv, pool.Close, nil
	}
	return nil, nil, fmt.Errorf("storage: driver %q no soportado", cfg.Store.Driver)
}

// Keyspace espacio de claves configurado.
func Keyspace(cfg config.StoreConfig) kvstore.Keyspace {
	return kvstore.Keyspace{Namespace: cfg.Namespace, Version: cfg.Version}
}
