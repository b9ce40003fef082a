package kvstore

import (
	"context"

	"github.com/jhoicas/carry-ledger-api/internal/domain"
	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
	"github.com/jhoicas/carry-ledger-api/internal/domain/repository"
	"github.com/jhoicas/carry-ledger-api/pkg/logger"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo colección de clientes en orden de alta.
type CustomerRepo struct {
	c *collection[customerRecord]
}

// NewCustomerRepository construye el repositorio sobre store.
func NewCustomerRepository(store Store, ks Keyspace, log *logger.Logger) *CustomerRepo {
	return &CustomerRepo{c: newCollection[customerRecord](store, ks.Key(KindCustomers), log)}
}

// List devuelve todos los clientes.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	recs, err := r.c.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Customer, 0, len(recs))
	for _, rec := range recs {
		out = append(out, &entity.Customer{ID: rec.ID, Name: rec.Name})
	}
	return out, nil
}

// GetByID devuelve nil, nil si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range all {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

// Create agrega el cliente al final de la colección.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	recs, err := r.c.load(ctx)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if rec.ID == customer.ID {
			return domain.ErrDuplicate
		}
	}
	return r.c.save(ctx, append(recs, customerRecord{ID: customer.ID, Name: customer.Name}))
}

// Update reemplaza el nombre del cliente; domain.ErrNotFound si no existe.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	recs, err := r.c.load(ctx)
	if err != nil {
		return err
	}
	for i := range recs {
		if recs[i].ID == customer.ID {
			recs[i].Name = customer.Name
			return r.c.save(ctx, recs)
		}
	}
	return domain.ErrNotFound
}

// Delete quita el cliente; sus movimientos quedan intactos. domain.ErrNotFound si no existe.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	recs, err := r.c.load(ctx)
	if err != nil {
		return err
	}
	for i := range recs {
		if recs[i].ID == id {
			out := append(recs[:i:i], recs[i+1:]...)
			return r.c.save(ctx, out)
		}
	}
	return domain.ErrNotFound
}
