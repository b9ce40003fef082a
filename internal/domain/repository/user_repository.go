package repository

import (
	"context"

	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
)

// UserRepository define el puerto de lectura de cuentas configuradas.
type UserRepository interface {
	// FindByUsername devuelve nil, nil si no existe.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)
	List(ctx context.Context) ([]*entity.Account, error)
}
