package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tipo de movimiento: carry in (entrada) o carry out (salida).
type MovementType string

const (
	MovementTypeIN  MovementType = "IN"
	MovementTypeOUT MovementType = "OUT"
)

// DateLayout formato de fecha de calendario de los movimientos (sin hora).
const DateLayout = "2006-01-02"

// Valid indica si el tipo es IN u OUT.
func (t MovementType) Valid() bool {
	return t == MovementTypeIN || t == MovementTypeOUT
}

// StockMovement representa un movimiento de piezas (nos) de una categoría.
// CustomerID vacío = movimiento interno. Weight y Amount son opcionales (nil = no aplica).
type StockMovement struct {
	ID         string
	Date       string // YYYY-MM-DD, lo indica el operador
	Type       MovementType
	Category   Category
	CustomerID string
	Nos        int // piezas; única cantidad que se agrega en balances
	Weight     *decimal.Decimal
	Amount     *decimal.Decimal
	Remarks    string
	CreatedAt  time.Time
	CreatedBy  string // UserID de la sesión
}

// IsInternal indica si el movimiento no tiene cliente asociado.
func (m *StockMovement) IsInternal() bool { return m.CustomerID == "" }

// SignedNos devuelve +nos para IN, -nos para OUT y 0 para un tipo desconocido.
func (m *StockMovement) SignedNos() int {
	switch m.Type {
	case MovementTypeIN:
		return m.Nos
	case MovementTypeOUT:
		return -m.Nos
	}
	return 0
}

// AmountOrZero devuelve el importe o cero si no aplica.
func (m *StockMovement) AmountOrZero() decimal.Decimal {
	if m.Amount == nil {
		return decimal.Zero
	}
	return *m.Amount
}

// ParseDate interpreta la fecha de calendario del movimiento en la zona indicada.
func (m *StockMovement) ParseDate(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateLayout, m.Date, loc)
}

// MovementPatch campos editables de un movimiento. nil = sin cambio.
// ID, Type, CreatedAt y CreatedBy no son editables.
type MovementPatch struct {
	Date       *string
	Category   *Category
	CustomerID *string // "" convierte el movimiento en interno
	Nos        *int
	Weight     *decimal.Decimal
	Amount     *decimal.Decimal
	Remarks    *string
}

// IsEmpty indica si el patch no modifica ningún campo.
func (p MovementPatch) IsEmpty() bool {
	return p.Date == nil && p.Category == nil && p.CustomerID == nil && p.Nos == nil &&
		p.Weight == nil && p.Amount == nil && p.Remarks == nil
}

// Apply devuelve una copia de base con los campos del patch aplicados (el patch tiene prioridad).
func (p MovementPatch) Apply(base StockMovement) StockMovement {
	out := base
	if p.Date != nil {
		out.Date = *p.Date
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.CustomerID != nil {
		out.CustomerID = *p.CustomerID
	}
	if p.Nos != nil {
		out.Nos = *p.Nos
	}
	if p.Weight != nil {
		w := *p.Weight
		out.Weight = &w
	}
	if p.Amount != nil {
		a := *p.Amount
		out.Amount = &a
	}
	if p.Remarks != nil {
		out.Remarks = *p.Remarks
	}
	return out
}
