package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
)

// Totals acumulados de un conjunto de movimientos. Net = In - Out.
type Totals struct {
	In     int
	Out    int
	Net    int
	Amount decimal.Decimal
}

// Summarize suma nos por tipo e importes (importe ausente = 0). Vacío ⇒ todo en cero.
func Summarize(movs []*entity.StockMovement) Totals {
	t := Totals{Amount: decimal.Zero}
	for _, m := range movs {
		switch m.Type {
		case entity.MovementTypeIN:
			t.In += m.Nos
		case entity.MovementTypeOUT:
			t.Out += m.Nos
		}
		t.Amount = t.Amount.Add(m.AmountOrZero())
	}
	t.Net = t.In - t.Out
	return t
}

// CustomerLedger totales de los movimientos de un cliente.
func CustomerLedger(movs []*entity.StockMovement, customerID string) Totals {
	return Summarize(ByCustomer(movs, customerID))
}

// ByCustomer movimientos de un cliente, conservando el orden recibido.
func ByCustomer(movs []*entity.StockMovement, customerID string) []*entity.StockMovement {
	var out []*entity.StockMovement
	for _, m := range movs {
		if m.CustomerID == customerID {
			out = append(out, m)
		}
	}
	return out
}

// DayFlow entradas y salidas de un día.
type DayFlow struct {
	Date string
	In   int
	Out  int
	Net  int
}

// TodayFlow entradas/salidas con fecha igual al día de now.
func TodayFlow(movs []*entity.StockMovement, now time.Time) DayFlow {
	day := now.Format(entity.DateLayout)
	f := DayFlow{Date: day}
	for _, m := range movs {
		if m.Date != day {
			continue
		}
		switch m.Type {
		case entity.MovementTypeIN:
			f.In += m.Nos
		case entity.MovementTypeOUT:
			f.Out += m.Nos
		}
	}
	f.Net = f.In - f.Out
	return f
}

// ActiveCustomers cantidad de clientes distintos con algún movimiento en day (YYYY-MM-DD).
// Los movimientos internos no cuentan.
func ActiveCustomers(movs []*entity.StockMovement, day string) int {
	seen := make(map[string]struct{})
	for _, m := range movs {
		if m.Date == day && !m.IsInternal() {
			seen[m.CustomerID] = struct{}{}
		}
	}
	return len(seen)
}
