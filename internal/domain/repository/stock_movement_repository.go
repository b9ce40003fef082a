package repository

import (
	"context"

	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para movimientos (DIP).
// List devuelve el orden de almacenamiento: lo más reciente primero.
type StockMovementRepository interface {
	List(ctx context.Context) ([]*entity.StockMovement, error)
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.StockMovement, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.StockMovement, error)
	// Append antepone el movimiento a la colección.
	Append(ctx context.Context, movement *entity.StockMovement) error
	// Update aplica el patch; domain.ErrNotFound si el id no existe (colección sin cambios).
	Update(ctx context.Context, id string, patch entity.MovementPatch) (*entity.StockMovement, error)
}
