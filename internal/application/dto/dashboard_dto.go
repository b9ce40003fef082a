package dto

// CategoryBalanceDTO balance de una categoría.
type CategoryBalanceDTO struct {
	Category string `json:"category"`
	Nos      int    `json:"nos"`
}

// TodayFlowDTO tarjeta de flujo del día.
type TodayFlowDTO struct {
	Date string `json:"date"`
	In   int    `json:"in"`
	Out  int    `json:"out"`
	Net  int    `json:"net"`
}

// DashboardSummaryDTO resumen del dashboard para un periodo y modo.
type DashboardSummaryDTO struct {
	Period     string               `json:"period"`
	Mode       string               `json:"mode"`
	Balances   []CategoryBalanceDTO `json:"balances"`
	TotalStock int                  `json:"total_stock"`
	Today      TodayFlowDTO         `json:"today"`
	Recent     []MovementResponse   `json:"recent"`
}
