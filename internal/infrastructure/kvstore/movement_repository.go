package kvstore

import (
	"context"

	"github.com/jhoicas/carry-ledger-api/internal/domain"
	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
	"github.com/jhoicas/carry-ledger-api/internal/domain/repository"
	"github.com/jhoicas/carry-ledger-api/pkg/logger"
)

var _ repository.StockMovementRepository = (*MovementRepo)(nil)

// MovementRepo colección de movimientos, lo más reciente primero.
type MovementRepo struct {
	c *collection[movementRecord]
}

// NewMovementRepository construye el repositorio sobre store.
func NewMovementRepository(store Store, ks Keyspace, log *logger.Logger) *MovementRepo {
	return &MovementRepo{c: newCollection[movementRecord](store, ks.Key(KindMovements), log)}
}

// List devuelve todos los movimientos en orden de almacenamiento.
func (r *MovementRepo) List(ctx context.Context) ([]*entity.StockMovement, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	recs, err := r.c.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.StockMovement, 0, len(recs))
	for _, rec := range recs {
		if m, ok := r.decode(rec); ok {
			out = append(out, m)
		}
	}
	return out, nil
}

// GetByID devuelve nil, nil si no existe.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	recs, err := r.c.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		if rec.ID == id {
			if m, ok := r.decode(rec); ok {
				return m, nil
			}
			return nil, nil
		}
	}
	return nil, nil
}

// ListByCustomer movimientos de un cliente en orden de almacenamiento.
func (r *MovementRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.StockMovement, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*entity.StockMovement
	for _, m := range all {
		if m.CustomerID == customerID {
			out = append(out, m)
		}
	}
	return out, nil
}

// Append antepone el movimiento y reescribe la colección.
func (r *MovementRepo) Append(ctx context.Context, movement *entity.StockMovement) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	recs, err := r.c.load(ctx)
	if err != nil {
		return err
	}
	updated := make([]movementRecord, 0, len(recs)+1)
	updated = append(updated, toMovementRecord(movement))
	updated = append(updated, recs...)
	return r.c.save(ctx, updated)
}

// Update aplica el patch sobre el registro con ese id.
// Si no existe devuelve domain.ErrNotFound y no escribe nada.
func (r *MovementRepo) Update(ctx context.Context, id string, patch entity.MovementPatch) (*entity.StockMovement, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	recs, err := r.c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i, rec := range recs {
		if rec.ID != id {
			continue
		}
		current, ok := r.decode(rec)
		if !ok {
			return nil, domain.ErrNotFound
		}
		merged := patch.Apply(*current)
		recs[i] = toMovementRecord(&merged)
		if err := r.c.save(ctx, recs); err != nil {
			return nil, err
		}
		return &merged, nil
	}
	return nil, domain.ErrNotFound
}

// decode descarta (con aviso) los registros cuyo tipo no es IN ni OUT.
func (r *MovementRepo) decode(rec movementRecord) (*entity.StockMovement, bool) {
	m, ok := rec.toEntity()
	if !ok {
		r.c.log.Warn().Str("id", rec.ID).Str("type", rec.Type).Msg("movimiento con tipo inválido, se omite")
	}
	return m, ok
}
