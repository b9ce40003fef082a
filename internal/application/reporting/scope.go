package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/carry-ledger-api/internal/domain"
	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
	domaininv "github.com/jhoicas/carry-ledger-api/internal/domain/inventory"
)

// ScopeKind pestaña del centro de reportes.
type ScopeKind string

const (
	ScopeToday    ScopeKind = "TODAY"
	ScopeMonthly  ScopeKind = "MONTHLY"
	ScopeCustomer ScopeKind = "CUSTOMER"
	ScopeCategory ScopeKind = "CATEGORY"
	ScopeType     ScopeKind = "TYPE"
	ScopeCustom   ScopeKind = "CUSTOM"
	ScopeHistory  ScopeKind = "HISTORY" // filtro libre del historial
)

// Scope alcance de un reporte. Solo se usan los campos de su Kind.
// CUSTOMER y CATEGORY sin selección abarcan todos los movimientos.
type Scope struct {
	Kind       ScopeKind
	Year       int
	Month      time.Month
	CustomerID string
	Category   string
	Type       entity.MovementType
	From       string
	To         string
	Filter     domaininv.Filter
}

// Validate revisa que el alcance tenga los datos que su Kind necesita.
func (s Scope) Validate() error {
	switch s.Kind {
	case ScopeToday, ScopeCustomer, ScopeCategory, ScopeHistory:
		return nil
	case ScopeMonthly:
		if s.Year <= 0 || s.Month < time.January || s.Month > time.December {
			return fmt.Errorf("%w: MONTHLY requiere año y mes", domain.ErrInvalidInput)
		}
		return nil
	case ScopeType:
		if !s.Type.Valid() {
			return fmt.Errorf("%w: TYPE requiere IN u OUT", domain.ErrInvalidInput)
		}
		return nil
	case ScopeCustom:
		if s.From != "" && s.To != "" && s.From > s.To {
			return fmt.Errorf("%w: rango de fechas invertido", domain.ErrInvalidInput)
		}
		return nil
	}
	return fmt.Errorf("%w: alcance %q", domain.ErrInvalidInput, s.Kind)
}

// Match indica si el movimiento entra en el alcance. now define "hoy" y su zona.
func (s Scope) Match(m *entity.StockMovement, names domaininv.NameResolver, now time.Time) bool {
	switch s.Kind {
	case ScopeToday:
		return m.Date == now.Format(entity.DateLayout)
	case ScopeMonthly:
		d, err := m.ParseDate(now.Location())
		return err == nil && d.Year() == s.Year && d.Month() == s.Month
	case ScopeCustomer:
		return domaininv.Filter{CustomerID: s.CustomerID}.Match(m, names)
	case ScopeCategory:
		return domaininv.Filter{Category: s.Category}.Match(m, names)
	case ScopeType:
		return m.Type == s.Type
	case ScopeCustom:
		return domaininv.Filter{From: s.From, To: s.To}.Match(m, names)
	case ScopeHistory:
		return s.Filter.Match(m, names)
	}
	return false
}

// Tag etiqueta corta usada en nombres de archivo.
func (s Scope) Tag() string { return string(s.Kind) }

// Label descripción legible del alcance para la cabecera del reporte.
func (s Scope) Label(names domaininv.NameResolver, now time.Time) string {
	switch s.Kind {
	case ScopeToday:
		return now.Format(entity.DateLayout)
	case ScopeMonthly:
		return strings.ToUpper(fmt.Sprintf("%s %d", s.Month, s.Year))
	case ScopeCustomer:
		if s.CustomerID == "" {
			return "ALL PARTIES"
		}
		return names.Name(s.CustomerID)
	case ScopeCategory:
		if s.Category == "" {
			return "ALL CATEGORIES"
		}
		return entity.ParseCategory(s.Category).Name()
	case ScopeType:
		if s.Type == entity.MovementTypeIN {
			return "CARRY IN"
		}
		return "CARRY OUT"
	case ScopeCustom:
		return rangeLabel(s.From, s.To)
	case ScopeHistory:
		f := s.Filter
		cat := "ALL CATEGORIES"
		if f.Category != "" {
			cat = entity.ParseCategory(f.Category).Name()
		}
		party := "ALL PARTIES"
		if f.CustomerID != "" {
			party = names.Name(f.CustomerID)
		}
		return cat + " | " + party
	}
	return string(s.Kind)
}

func rangeLabel(from, to string) string {
	switch {
	case from == "" && to == "":
		return "ALL DATES"
	case from == "":
		return "UNTIL " + to
	case to == "":
		return "FROM " + from
	}
	return from + " TO " + to
}
