package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/kvstore"
)

var _ kvstore.Store = (*Store)(nil)

// Store backend clave-valor en proceso. Los datos se pierden al reiniciar.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get devuelve una copia del valor guardado.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Put reemplaza el valor de la clave.
func (s *Store) Put(_ context.Context, key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	s.mu.Lock()
	s.data[key] = v
	s.mu.Unlock()
	return nil
}

// Keys claves presentes (diagnóstico y tests).
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.data))
	for k := range s.data {
		out = append(out, k)
	}
	return out
}
