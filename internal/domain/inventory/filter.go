package inventory

import (
	"strings"

	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
)

// Filter criterios del historial. Todos se combinan con AND; un campo vacío no restringe.
// From y To son fechas YYYY-MM-DD inclusivas.
type Filter struct {
	Search     string
	Type       entity.MovementType
	Category   string
	CustomerID string
	From       string
	To         string
}

// Match indica si el movimiento cumple todos los criterios.
// La búsqueda es por subcadena, sin distinguir mayúsculas, sobre categoría o nombre del cliente.
func (f Filter) Match(m *entity.StockMovement, names NameResolver) bool {
	if f.Type != "" && m.Type != f.Type {
		return false
	}
	if f.Category != "" && m.Category.Name() != entity.ParseCategory(f.Category).Name() {
		return false
	}
	if f.CustomerID != "" && m.CustomerID != f.CustomerID {
		return false
	}
	if f.From != "" && m.Date < f.From {
		return false
	}
	if f.To != "" && m.Date > f.To {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(m.Category.Name()), q) &&
			!strings.Contains(strings.ToLower(names.Name(m.CustomerID)), q) {
			return false
		}
	}
	return true
}

// Apply devuelve los movimientos que cumplen el filtro, en el orden recibido.
func (f Filter) Apply(movs []*entity.StockMovement, names NameResolver) []*entity.StockMovement {
	out := make([]*entity.StockMovement, 0, len(movs))
	for _, m := range movs {
		if f.Match(m, names) {
			out = append(out, m)
		}
	}
	return out
}

// IsEmpty indica si el filtro no restringe nada.
func (f Filter) IsEmpty() bool {
	return f == Filter{}
}
