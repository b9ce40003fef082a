package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carry-ledger-api/internal/application/dto"
	"github.com/jhoicas/carry-ledger-api/internal/domain"
	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
	domaininv "github.com/jhoicas/carry-ledger-api/internal/domain/inventory"
)

// ToMovementResponse proyecta el movimiento con el nombre de cliente resuelto.
func ToMovementResponse(m *entity.StockMovement, names domaininv.NameResolver) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		Date:          m.Date,
		Type:          string(m.Type),
		Category:      m.Category.Name(),
		CategoryKnown: m.Category.IsKnown(),
		CustomerID:    m.CustomerID,
		CustomerName:  names.Name(m.CustomerID),
		Nos:           m.Nos,
		Weight:        m.Weight,
		Amount:        m.Amount,
		Remarks:       m.Remarks,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

// HistoryFilter traduce la query del historial al filtro de dominio. ALL = sin restricción.
func HistoryFilter(q dto.HistoryQuery) domaininv.Filter {
	f := domaininv.Filter{
		Search:     q.Search,
		CustomerID: q.CustomerID,
		From:       q.From,
		To:         q.To,
	}
	if t := strings.ToUpper(q.Type); t != "" && t != "ALL" {
		f.Type = entity.MovementType(t)
	}
	if c := strings.TrimSpace(q.Category); c != "" && !strings.EqualFold(c, "ALL") {
		f.Category = c
	}
	if strings.EqualFold(f.CustomerID, "ALL") {
		f.CustomerID = ""
	}
	return f
}

// resolveCategory con OTHERS el operador escribe el texto libre en custom.
func resolveCategory(category, custom string) (entity.Category, error) {
	if strings.EqualFold(strings.TrimSpace(category), entity.CategoryOthers) {
		c := entity.CustomCategory(custom)
		if c.IsZero() {
			return entity.Category{}, fmt.Errorf("%w: categoría OTHERS sin texto", domain.ErrInvalidInput)
		}
		return c, nil
	}
	c := entity.ParseCategory(category)
	if c.IsZero() {
		return entity.Category{}, fmt.Errorf("%w: categoría requerida", domain.ErrInvalidInput)
	}
	return c, nil
}

func checkNonNegative(values ...*decimal.Decimal) error {
	for _, v := range values {
		if v != nil && v.IsNegative() {
			return fmt.Errorf("%w: peso e importe no pueden ser negativos", domain.ErrInvalidInput)
		}
	}
	return nil
}

func toPatch(in dto.UpdateMovementRequest) (entity.MovementPatch, error) {
	var p entity.MovementPatch
	if in.Date != nil {
		if _, err := time.Parse(entity.DateLayout, *in.Date); err != nil {
			return p, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, *in.Date)
		}
		p.Date = in.Date
	}
	if in.Category != nil {
		c, err := resolveCategory(*in.Category, in.CustomCategory)
		if err != nil {
			return p, err
		}
		p.Category = &c
	}
	if in.CustomerID != nil {
		id := strings.TrimSpace(*in.CustomerID)
		p.CustomerID = &id
	}
	if in.Nos != nil {
		if *in.Nos < 0 {
			return p, fmt.Errorf("%w: nos negativo", domain.ErrInvalidInput)
		}
		p.Nos = in.Nos
	}
	if err := checkNonNegative(in.Weight, in.Amount); err != nil {
		return p, err
	}
	p.Weight = in.Weight
	p.Amount = in.Amount
	if in.Remarks != nil {
		r := entity.NormalizeName(*in.Remarks)
		p.Remarks = &r
	}
	return p, nil
}
