package kvstore

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
)

// movementRecord forma persistida de un movimiento. qty replica nos por compatibilidad.
type movementRecord struct {
	ID         string           `json:"id"`
	Date       string           `json:"date"`
	Type       string           `json:"type"`
	Category   string           `json:"category"`
	CustomerID string           `json:"customer_id,omitempty"`
	Qty        int              `json:"qty"`
	Nos        int              `json:"nos"`
	Weight     *decimal.Decimal `json:"weight,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Remarks    string           `json:"remarks,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	CreatedBy  string           `json:"created_by,omitempty"`
}

func toMovementRecord(m *entity.StockMovement) movementRecord {
	return movementRecord{
		ID:         m.ID,
		Date:       m.Date,
		Type:       string(m.Type),
		Category:   m.Category.Name(),
		CustomerID: m.CustomerID,
		Qty:        m.Nos,
		Nos:        m.Nos,
		Weight:     m.Weight,
		Amount:     m.Amount,
		Remarks:    m.Remarks,
		CreatedAt:  m.CreatedAt,
		CreatedBy:  m.CreatedBy,
	}
}

// toEntity normaliza el tipo a mayúsculas; ok=false si no es IN ni OUT.
func (r movementRecord) toEntity() (*entity.StockMovement, bool) {
	typ := entity.MovementType(strings.ToUpper(strings.TrimSpace(r.Type)))
	if !typ.Valid() {
		return nil, false
	}
	nos := r.Nos
	if nos == 0 {
		nos = r.Qty
	}
	return &entity.StockMovement{
		ID:         r.ID,
		Date:       r.Date,
		Type:       typ,
		Category:   entity.ParseCategory(r.Category),
		CustomerID: r.CustomerID,
		Nos:        nos,
		Weight:     r.Weight,
		Amount:     r.Amount,
		Remarks:    r.Remarks,
		CreatedAt:  r.CreatedAt,
		CreatedBy:  r.CreatedBy,
	}, true
}

type customerRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type productRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Unit         string    `json:"unit"`
	CurrentStock int       `json:"current_stock"`
	CreatedAt    time.Time `json:"created_at"`
}
