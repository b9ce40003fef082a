package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/carry-ledger-api/internal/application/dto"
	"github.com/jhoicas/carry-ledger-api/internal/domain"
	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
	"github.com/jhoicas/carry-ledger-api/internal/domain/repository"
)

// ProductUseCase catálogo de productos. No participa en los balances de movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto con stock 0. Nombre y categoría en mayúsculas; unidad por defecto PCS.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := entity.NormalizeName(in.Name)
	category := entity.NormalizeName(in.Category)
	if name == "" || category == "" {
		return nil, domain.ErrInvalidInput
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = entity.DefaultUnit
	}
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  category,
		Unit:      unit,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	return &out, nil
}

// List lista productos; search filtra por nombre o categoría.
func (uc *ProductUseCase) List(ctx context.Context, search string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToUpper(strings.TrimSpace(search))
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		if q != "" && !strings.Contains(p.Name, q) && !strings.Contains(p.Category, q) {
			continue
		}
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Unit:         p.Unit,
		CurrentStock: p.CurrentStock,
	}
}
