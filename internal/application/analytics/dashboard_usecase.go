// Package analytics contiene el caso de uso del dashboard: balances por categoría,
// flujo del día y últimos movimientos.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/carry-ledger-api/internal/application/dto"
	"github.com/jhoicas/carry-ledger-api/internal/application/inventory"
	"github.com/jhoicas/carry-ledger-api/internal/domain"
	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
	domaininv "github.com/jhoicas/carry-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/carry-ledger-api/internal/domain/repository"
)

const dashboardRecent = 5 // movimientos en el widget "recientes"

// DashboardUseCase genera el resumen del dashboard.
// El reloj se lee en cada llamada: el periodo TODAY/WEEK/... siempre es relativo al momento de la consulta.
type DashboardUseCase struct {
	movRepo      repository.StockMovementRepository
	customerRepo repository.CustomerRepository
	loc          *time.Location
	now          func() time.Time
}

// NewDashboardUseCase construye el caso de uso. now nil = time.Now.
func NewDashboardUseCase(movRepo repository.StockMovementRepository, customerRepo repository.CustomerRepository, loc *time.Location, now func() time.Time) *DashboardUseCase {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &DashboardUseCase{movRepo: movRepo, customerRepo: customerRepo, loc: loc, now: now}
}

// GetSummary balances del periodo/modo pedidos más la tarjeta del día.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, period, mode string) (*dto.DashboardSummaryDTO, error) {
	p, ok := domaininv.ParsePeriod(period)
	if !ok {
		return nil, fmt.Errorf("%w: periodo %q", domain.ErrInvalidInput, period)
	}
	m, ok := domaininv.ParseBalanceMode(mode)
	if !ok {
		return nil, fmt.Errorf("%w: modo %q", domain.ErrInvalidInput, mode)
	}

	movs, err := uc.movRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := uc.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := domaininv.NewNameResolver(customers)
	now := uc.now().In(uc.loc)
	known := entity.KnownCategories()

	// ── Balances ────────────────────────────────────────────────────────────
	balances := domaininv.FilteredCategoryBalances(movs, known, p, m, now)
	out := &dto.DashboardSummaryDTO{
		Period:     string(p),
		Mode:       string(m),
		TotalStock: balances.Total(),
	}
	for _, b := range balances.Sorted(known) {
		out.Balances = append(out.Balances, dto.CategoryBalanceDTO{Category: b.Category, Nos: b.Nos})
	}

	// ── Hoy y recientes ─────────────────────────────────────────────────────
	today := domaininv.TodayFlow(movs, now)
	out.Today = dto.TodayFlowDTO{Date: today.Date, In: today.In, Out: today.Out, Net: today.Net}

	recent := domaininv.SortByDateDesc(movs)
	if len(recent) > dashboardRecent {
		recent = recent[:dashboardRecent]
	}
	out.Recent = make([]dto.MovementResponse, 0, len(recent))
	for _, mv := range recent {
		out.Recent = append(out.Recent, inventory.ToMovementResponse(mv, names))
	}
	return out, nil
}
