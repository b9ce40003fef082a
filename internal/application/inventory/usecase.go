// Package inventory contiene los casos de uso de registro y consulta de movimientos
// (carry in / carry out) y el historial filtrado.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/carry-ledger-api/internal/application/dto"
	"github.com/jhoicas/carry-ledger-api/internal/domain"
	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
	domaininv "github.com/jhoicas/carry-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/carry-ledger-api/internal/domain/repository"
)

// MovementUseCase registra, corrige y consulta movimientos.
type MovementUseCase struct {
	movRepo      repository.StockMovementRepository
	customerRepo repository.CustomerRepository
	now          func() time.Time
}

// NewMovementUseCase construye el caso de uso. now nil = time.Now.
func NewMovementUseCase(movRepo repository.StockMovementRepository, customerRepo repository.CustomerRepository, now func() time.Time) *MovementUseCase {
	if now == nil {
		now = time.Now
	}
	return &MovementUseCase{movRepo: movRepo, customerRepo: customerRepo, now: now}
}

// CarryIn registra una entrada.
func (uc *MovementUseCase) CarryIn(ctx context.Context, session *entity.Session, in dto.MovementRequest) (*dto.MovementResponse, error) {
	return uc.record(ctx, session, entity.MovementTypeIN, in)
}

// CarryOut registra una salida.
func (uc *MovementUseCase) CarryOut(ctx context.Context, session *entity.Session, in dto.MovementRequest) (*dto.MovementResponse, error) {
	return uc.record(ctx, session, entity.MovementTypeOUT, in)
}

func (uc *MovementUseCase) record(ctx context.Context, session *entity.Session, typ entity.MovementType, in dto.MovementRequest) (*dto.MovementResponse, error) {
	if session == nil {
		return nil, domain.ErrUnauthorized
	}
	if _, err := time.Parse(entity.DateLayout, in.Date); err != nil {
		return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, in.Date)
	}
	category, err := resolveCategory(in.Category, in.CustomCategory)
	if err != nil {
		return nil, err
	}
	if in.Nos < 0 {
		return nil, fmt.Errorf("%w: nos negativo", domain.ErrInvalidInput)
	}
	if err := checkNonNegative(in.Weight, in.Amount); err != nil {
		return nil, err
	}
	names, err := uc.resolver(ctx)
	if err != nil {
		return nil, err
	}
	if in.CustomerID != "" {
		if _, ok := names[in.CustomerID]; !ok {
			return nil, fmt.Errorf("%w: cliente %s no existe", domain.ErrInvalidInput, in.CustomerID)
		}
	}

	m := &entity.StockMovement{
		ID:         uuid.New().String(),
		Date:       in.Date,
		Type:       typ,
		Category:   category,
		CustomerID: in.CustomerID,
		Nos:        in.Nos,
		Weight:     in.Weight,
		Amount:     in.Amount,
		Remarks:    entity.NormalizeName(in.Remarks),
		CreatedAt:  uc.now().UTC(),
		CreatedBy:  session.UserID,
	}
	if err := uc.movRepo.Append(ctx, m); err != nil {
		return nil, err
	}
	out := ToMovementResponse(m, names)
	return &out, nil
}

// Update corrige los campos editables de un movimiento. domain.ErrNotFound si no existe.
func (uc *MovementUseCase) Update(ctx context.Context, id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	patch, err := toPatch(in)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: nada que actualizar", domain.ErrInvalidInput)
	}
	names, err := uc.resolver(ctx)
	if err != nil {
		return nil, err
	}
	if patch.CustomerID != nil && *patch.CustomerID != "" {
		if _, ok := names[*patch.CustomerID]; !ok {
			return nil, fmt.Errorf("%w: cliente %s no existe", domain.ErrInvalidInput, *patch.CustomerID)
		}
	}
	m, err := uc.movRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	out := ToMovementResponse(m, names)
	return &out, nil
}

// GetByID devuelve el movimiento o domain.ErrNotFound.
func (uc *MovementUseCase) GetByID(ctx context.Context, id string) (*dto.MovementResponse, error) {
	m, err := uc.movRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	names, err := uc.resolver(ctx)
	if err != nil {
		return nil, err
	}
	out := ToMovementResponse(m, names)
	return &out, nil
}

// History filtra y ordena (fecha descendente) y pagina. Stats cubre todo el conjunto filtrado.
func (uc *MovementUseCase) History(ctx context.Context, q dto.HistoryQuery) (*dto.HistoryResponse, error) {
	movs, err := uc.movRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names, err := uc.resolver(ctx)
	if err != nil {
		return nil, err
	}
	filtered := domaininv.SortByDateDesc(HistoryFilter(q).Apply(movs, names))
	totals := domaininv.Summarize(filtered)

	page := dto.PageRequest{Limit: q.Limit, Offset: q.Offset}
	page.DefaultPage()
	start := min(page.Offset, len(filtered))
	end := min(start+page.Limit, len(filtered))

	items := make([]dto.MovementResponse, 0, end-start)
	for _, m := range filtered[start:end] {
		items = append(items, ToMovementResponse(m, names))
	}
	return &dto.HistoryResponse{
		Items: items,
		Stats: dto.FlowStats{In: totals.In, Out: totals.Out},
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(filtered)},
	}, nil
}

// Categories opciones del formulario y categorías libres ya usadas.
func (uc *MovementUseCase) Categories(ctx context.Context) (*dto.CategoriesResponse, error) {
	movs, err := uc.movRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	known := entity.KnownCategories()
	out := &dto.CategoriesResponse{
		Known:   make([]string, 0, len(known)),
		Options: entity.CategoryOptions(),
		Custom:  []string{},
	}
	for _, c := range known {
		out.Known = append(out.Known, c.Name())
	}
	for _, f := range domaininv.CategoryRollup(movs) {
		if !entity.ParseCategory(f.Category).IsKnown() {
			out.Custom = append(out.Custom, f.Category)
		}
	}
	return out, nil
}

func (uc *MovementUseCase) resolver(ctx context.Context) (domaininv.NameResolver, error) {
	customers, err := uc.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domaininv.NewNameResolver(customers), nil
}
