package dto

import "time"

// ReportQuery selección del alcance del reporte (query string).
type ReportQuery struct {
	Scope      string `query:"scope" validate:"required,oneof=TODAY MONTHLY CUSTOMER CATEGORY TYPE CUSTOM"`
	Month      string `query:"month" validate:"omitempty,datetime=2006-01"`
	CustomerID string `query:"customer_id"`
	Category   string `query:"category"`
	Type       string `query:"type" validate:"omitempty,oneof=IN OUT"`
	From       string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To         string `query:"to" validate:"omitempty,datetime=2006-01-02"`
	Format     string `query:"format" validate:"omitempty,oneof=pdf xlsx"`
}

// StatementRowDTO fila del estado de cuenta.
type StatementRowDTO struct {
	Date     string `json:"date"`
	Type     string `json:"type"`
	Customer string `json:"customer"`
	Category string `json:"category"`
	In       int    `json:"in"`
	Out      int    `json:"out"`
	Weight   string `json:"weight"`
	Amount   string `json:"amount"`
	Remarks  string `json:"remarks"`
}

// CategoryFlowDTO fila del resumen por categoría.
type CategoryFlowDTO struct {
	Category string `json:"category"`
	In       int    `json:"in"`
	Out      int    `json:"out"`
	Net      int    `json:"net"`
}

// StatementPreviewResponse vista previa del reporte.
type StatementPreviewResponse struct {
	Title       string            `json:"title"`
	Scope       string            `json:"scope"`
	ScopeLabel  string            `json:"scope_label"`
	GeneratedAt time.Time         `json:"generated_at"`
	Rows        []StatementRowDTO `json:"rows"`
	Totals      TotalsDTO         `json:"totals"`
	Categories  []CategoryFlowDTO `json:"categories"`
}
