package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementRequest body de carry-in / carry-out.
// Category es un valor de la lista fija o OTHERS; con OTHERS se usa CustomCategory.
type MovementRequest struct {
	Date           string           `json:"date" validate:"required,datetime=2006-01-02"`
	Category       string           `json:"category" validate:"required"`
	CustomCategory string           `json:"custom_category"`
	CustomerID     string           `json:"customer_id"`
	Nos            int              `json:"nos" validate:"min=0"`
	Weight         *decimal.Decimal `json:"weight,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	Remarks        string           `json:"remarks"`
}

// UpdateMovementRequest body de PATCH /api/movements/:id. Campos ausentes no cambian.
type UpdateMovementRequest struct {
	Date           *string          `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Category       *string          `json:"category,omitempty"`
	CustomCategory string           `json:"custom_category,omitempty"`
	CustomerID     *string          `json:"customer_id,omitempty"`
	Nos            *int             `json:"nos,omitempty" validate:"omitempty,min=0"`
	Weight         *decimal.Decimal `json:"weight,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	Remarks        *string          `json:"remarks,omitempty"`
}

// MovementResponse movimiento con el nombre del cliente resuelto.
type MovementResponse struct {
	ID            string           `json:"id"`
	Date          string           `json:"date"`
	Type          string           `json:"type"`
	Category      string           `json:"category"`
	CategoryKnown bool             `json:"category_known"`
	CustomerID    string           `json:"customer_id,omitempty"`
	CustomerName  string           `json:"customer_name"`
	Nos           int              `json:"nos"`
	Weight        *decimal.Decimal `json:"weight,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Remarks       string           `json:"remarks,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	CreatedBy     string           `json:"created_by,omitempty"`
}

// HistoryQuery filtros del historial (query string). Type y Category aceptan ALL.
type HistoryQuery struct {
	Search     string `query:"search"`
	Type       string `query:"type" validate:"omitempty,oneof=ALL IN OUT"`
	Category   string `query:"category"`
	CustomerID string `query:"customer_id"`
	From       string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To         string `query:"to" validate:"omitempty,datetime=2006-01-02"`
	Limit      int    `query:"limit" validate:"min=0,max=500"`
	Offset     int    `query:"offset" validate:"min=0"`
}

// FlowStats entradas y salidas de un conjunto de movimientos.
type FlowStats struct {
	In  int `json:"in"`
	Out int `json:"out"`
}

// HistoryResponse página del historial más estadísticas del conjunto filtrado completo.
type HistoryResponse struct {
	Items []MovementResponse `json:"items"`
	Stats FlowStats          `json:"stats"`
	Page  PageResponse       `json:"page"`
}

// CategoriesResponse opciones del formulario de movimientos.
type CategoriesResponse struct {
	Known   []string `json:"known"`
	Options []string `json:"options"` // incluye OTHERS
	Custom  []string `json:"custom"`  // categorías libres ya usadas
}
