package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body de POST/PUT /api/customers.
type CreateCustomerRequest struct {
	Name string `json:"name" validate:"required"`
}

// CustomerResponse partner.
type CustomerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TotalsDTO totales de un conjunto de movimientos.
type TotalsDTO struct {
	In     int             `json:"in"`
	Out    int             `json:"out"`
	Net    int             `json:"net"`
	Amount decimal.Decimal `json:"amount"`
}

// LedgerResponse ledger de un cliente.
type LedgerResponse struct {
	Customer  CustomerResponse   `json:"customer"`
	Totals    TotalsDTO          `json:"totals"`
	Movements []MovementResponse `json:"movements"`
}

// DirectoryResponse directorio de partners con tarjetas de resumen.
type DirectoryResponse struct {
	Partners    int                `json:"partners"`
	ActiveToday int                `json:"active_today"`
	Customers   []CustomerResponse `json:"customers"`
}
