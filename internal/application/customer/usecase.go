// Package customer contiene los casos de uso del directorio de partners y su ledger.
package customer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/carry-ledger-api/internal/application/dto"
	"github.com/jhoicas/carry-ledger-api/internal/application/inventory"
	"github.com/jhoicas/carry-ledger-api/internal/domain"
	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
	domaininv "github.com/jhoicas/carry-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/carry-ledger-api/internal/domain/repository"
)

// CustomerUseCase casos de uso de partners.
type CustomerUseCase struct {
	repo    repository.CustomerRepository
	movRepo repository.StockMovementRepository
	loc     *time.Location
	now     func() time.Time
}

// NewCustomerUseCase construye el caso de uso. now nil = time.Now.
func NewCustomerUseCase(repo repository.CustomerRepository, movRepo repository.StockMovementRepository, loc *time.Location, now func() time.Time) *CustomerUseCase {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &CustomerUseCase{repo: repo, movRepo: movRepo, loc: loc, now: now}
}

// Create crea un partner. El nombre se guarda en mayúsculas y no puede repetirse.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := entity.NormalizeName(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.ensureUniqueName(ctx, "", name); err != nil {
		return nil, err
	}
	c := &entity.Customer{ID: uuid.New().String(), Name: name}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return &dto.CustomerResponse{ID: c.ID, Name: c.Name}, nil
}

// List lista partners ordenados por nombre; search filtra por subcadena sin distinguir mayúsculas.
func (uc *CustomerUseCase) List(ctx context.Context, search string) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToUpper(strings.TrimSpace(search))
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		if q != "" && !strings.Contains(c.Name, q) {
			continue
		}
		out = append(out, dto.CustomerResponse{ID: c.ID, Name: c.Name})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Rename cambia el nombre de un partner; el id no cambia.
func (uc *CustomerUseCase) Rename(ctx context.Context, id string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := entity.NormalizeName(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.ensureUniqueName(ctx, id, name); err != nil {
		return nil, err
	}
	existing.Name = name
	if err := uc.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return &dto.CustomerResponse{ID: existing.ID, Name: existing.Name}, nil
}

// Delete elimina el partner. Sus movimientos se conservan y pasan a mostrarse con el id crudo.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Ledger totales y movimientos (fecha descendente) de un partner.
func (uc *CustomerUseCase) Ledger(ctx context.Context, id string) (*dto.LedgerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	movs, err := uc.movRepo.ListByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	names := domaininv.NewNameResolver([]*entity.Customer{c})
	totals := domaininv.Summarize(movs)
	out := &dto.LedgerResponse{
		Customer:  dto.CustomerResponse{ID: c.ID, Name: c.Name},
		Totals:    ToTotalsDTO(totals),
		Movements: make([]dto.MovementResponse, 0, len(movs)),
	}
	for _, m := range domaininv.SortByDateDesc(movs) {
		out.Movements = append(out.Movements, inventory.ToMovementResponse(m, names))
	}
	return out, nil
}

// Directory cantidad de partners y cuántos tuvieron movimientos hoy.
func (uc *CustomerUseCase) Directory(ctx context.Context) (*dto.DirectoryResponse, error) {
	customers, err := uc.List(ctx, "")
	if err != nil {
		return nil, err
	}
	movs, err := uc.movRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	today := uc.now().In(uc.loc).Format(entity.DateLayout)
	return &dto.DirectoryResponse{
		Partners:    len(customers),
		ActiveToday: domaininv.ActiveCustomers(movs, today),
		Customers:   customers,
	}, nil
}

func (uc *CustomerUseCase) ensureUniqueName(ctx context.Context, selfID, name string) error {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range list {
		if c.ID != selfID && c.Name == name {
			return fmt.Errorf("%w: partner %s", domain.ErrDuplicate, name)
		}
	}
	return nil
}

// ToTotalsDTO proyecta los totales.
func ToTotalsDTO(t domaininv.Totals) dto.TotalsDTO {
	return dto.TotalsDTO{In: t.In, Out: t.Out, Net: t.Net, Amount: t.Amount}
}
