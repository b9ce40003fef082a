package kvstore

import (
	"context"

	"github.com/jhoicas/carry-ledger-api/internal/domain"
	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
	"github.com/jhoicas/carry-ledger-api/internal/domain/repository"
	"github.com/jhoicas/carry-ledger-api/pkg/logger"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo colección del catálogo de productos.
type ProductRepo struct {
	c *collection[productRecord]
}

// NewProductRepository construye el repositorio sobre store.
func NewProductRepository(store Store, ks Keyspace, log *logger.Logger) *ProductRepo {
	return &ProductRepo{c: newCollection[productRecord](store, ks.Key(KindProducts), log)}
}

// List devuelve todos los productos en orden de alta.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	recs, err := r.c.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0, len(recs))
	for _, rec := range recs {
		out = append(out, &entity.Product{
			ID:           rec.ID,
			Name:         rec.Name,
			Category:     rec.Category,
			Unit:         rec.Unit,
			CurrentStock: rec.CurrentStock,
			CreatedAt:    rec.CreatedAt,
		})
	}
	return out, nil
}

// GetByID devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// Create agrega el producto al final del catálogo.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	recs, err := r.c.load(ctx)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if rec.ID == product.ID {
			return domain.ErrDuplicate
		}
	}
	return r.c.save(ctx, append(recs, productRecord{
		ID:           product.ID,
		Name:         product.Name,
		Category:     product.Category,
		Unit:         product.Unit,
		CurrentStock: product.CurrentStock,
		CreatedAt:    product.CreatedAt,
	}))
}
