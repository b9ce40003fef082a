package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jhoicas/carry-ledger-api/pkg/logger"
)

// Store puerto clave-valor sobre el que se persisten las colecciones completas.
// Get devuelve ok=false si la clave no existe.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Put(ctx context.Context, key string, value []byte) error
}

// Nombres de colección.
const (
	KindMovements = "movements"
	KindCustomers = "customers"
	KindProducts  = "products"
)

// Keyspace espacio de claves versionado: <Namespace>_v<Version>_<kind>.
// Cambiar la versión deja los datos anteriores inaccesibles (sin migración).
type Keyspace struct {
	Namespace string
	Version   int
}

// Key clave física de una colección.
func (k Keyspace) Key(kind string) string {
	return fmt.Sprintf("%s_v%d_%s", k.Namespace, k.Version, kind)
}

// collection arreglo JSON completo bajo una clave. Cada escritura reescribe el arreglo entero.
type collection[T any] struct {
	mu    sync.Mutex
	store Store
	key   string
	log   *logger.Logger
}

func newCollection[T any](store Store, key string, log *logger.Logger) *collection[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &collection[T]{store: store, key: key, log: log}
}

// load lee la colección. Clave ausente o JSON ilegible ⇒ colección vacía (esto último se registra).
func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", c.key, err)
	}
	if !ok || len(raw) == 0 {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.Warn().Err(err).Str("key", c.key).Msg("colección ilegible, se usa vacía")
		return nil, nil
	}
	return items, nil
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("serializar %s: %w", c.key, err)
	}
	if err := c.store.Put(ctx, c.key, raw); err != nil {
		return fmt.Errorf("escribir %s: %w", c.key, err)
	}
	return nil
}

// Repositories agrupa los repositorios montados sobre un mismo Store.
type Repositories struct {
	Movements *MovementRepo
	Customers *CustomerRepo
	Products  *ProductRepo
}

// NewRepositories construye los tres repositorios sobre store con el keyspace dado.
func NewRepositories(store Store, ks Keyspace, log *logger.Logger) *Repositories {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("kvstore")
	return &Repositories{
		Movements: NewMovementRepository(store, ks, log),
		Customers: NewCustomerRepository(store, ks, log),
		Products:  NewProductRepository(store, ks, log),
	}
}
