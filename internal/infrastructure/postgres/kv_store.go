package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/kvstore"
)

var _ kvstore.Store = (*KVStore)(nil)

// DefaultTable tabla clave-valor por defecto.
const DefaultTable = "kv_store"

// KVStore backend clave-valor sobre una tabla (key TEXT PK, value JSONB).
type KVStore struct {
	pool    *pgxpool.Pool
	table   string
	builder squirrel.StatementBuilderType
}

type kvRow struct {
	Value string `db:"value"`
}

// NewKVStore construye el store sobre el pool. table vacío = DefaultTable.
func NewKVStore(pool *pgxpool.Pool, table string) *KVStore {
	if table == "" {
		table = DefaultTable
	}
	return &KVStore{
		pool:    pool,
		table:   table,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// EnsureSchema crea la tabla si no existe.
func (s *KVStore) EnsureSchema(ctx context.Context) error {
	ddl := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, pgxIdent(s.table))
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("crear tabla %s: %w", s.table, err)
	}
	return nil
}

// Get lee el valor; ok=false si la clave no existe.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	sql, args, err := s.builder.
		Select("value::text AS value").
		From(pgxIdent(s.table)).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build select: %w", err)
	}
	var row kvRow
	if err := pgxscan.Get(ctx, s.pool, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(row.Value), true, nil
}

// Put inserta o reemplaza el valor completo de la clave.
func (s *KVStore) Put(ctx context.Context, key string, value []byte) error {
	sql, args, err := s.builder.
		Insert(pgxIdent(s.table)).
		Columns("key", "value", "updated_at").
		Values(key, squirrel.Expr("?::jsonb", string(value)), squirrel.Expr("now()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}
	if _, err := s.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func pgxIdent(name string) string {
	return pgx.Identifier{name}.Sanitize()
}
