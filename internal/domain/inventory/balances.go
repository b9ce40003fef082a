package inventory

import (
	"sort"
	"time"

	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
)

// Period ventana de tiempo sobre la que se calculan balances.
type Period string

const (
	PeriodAll   Period = "ALL"
	PeriodToday Period = "TODAY"
	PeriodWeek  Period = "WEEK"
	PeriodMonth Period = "MONTH"
	PeriodYear  Period = "YEAR"
)

// ParsePeriod convierte el valor recibido; ok=false si no es un periodo válido.
func ParsePeriod(s string) (Period, bool) {
	switch p := Period(s); p {
	case PeriodAll, PeriodToday, PeriodWeek, PeriodMonth, PeriodYear:
		return p, true
	case "":
		return PeriodAll, true
	}
	return "", false
}

// BalanceMode BOTH = neto con signo; IN / OUT = suma bruta de un solo tipo.
type BalanceMode string

const (
	ModeBoth BalanceMode = "BOTH"
	ModeIn   BalanceMode = "IN"
	ModeOut  BalanceMode = "OUT"
)

// ParseBalanceMode convierte el valor recibido; ok=false si no es un modo válido.
func ParseBalanceMode(s string) (BalanceMode, bool) {
	switch m := BalanceMode(s); m {
	case ModeBoth, ModeIn, ModeOut:
		return m, true
	case "":
		return ModeBoth, true
	}
	return "", false
}

// Balances nos por nombre de categoría.
type Balances map[string]int

// CategoryBalance entrada ordenada de Balances.
type CategoryBalance struct {
	Category string
	Nos      int
}

// CategoryBalances balance neto por categoría. Toda categoría de categories arranca en 0;
// las categorías libres aparecen solo si algún movimiento las referencia.
func CategoryBalances(movs []*entity.StockMovement, categories []entity.Category) Balances {
	out := seed(categories)
	for _, m := range movs {
		out[m.Category.Name()] += m.SignedNos()
	}
	return out
}

// FilteredCategoryBalances restringe los movimientos al periodo (respecto de now) y al modo.
// En modo IN u OUT se suman solo los nos de ese tipo, sin signo.
func FilteredCategoryBalances(movs []*entity.StockMovement, categories []entity.Category, period Period, mode BalanceMode, now time.Time) Balances {
	out := seed(categories)
	for _, m := range movs {
		if !InPeriod(m, period, now) {
			continue
		}
		switch mode {
		case ModeIn, ModeOut:
			if string(m.Type) != string(mode) {
				continue
			}
			out[m.Category.Name()] += m.Nos
		default:
			out[m.Category.Name()] += m.SignedNos()
		}
	}
	return out
}

// InPeriod indica si la fecha del movimiento cae en el periodo. Fechas ilegibles solo entran en ALL.
func InPeriod(m *entity.StockMovement, period Period, now time.Time) bool {
	if period == PeriodAll || period == "" {
		return true
	}
	d, err := m.ParseDate(now.Location())
	if err != nil {
		return false
	}
	switch period {
	case PeriodToday:
		return m.Date == now.Format(entity.DateLayout)
	case PeriodWeek:
		return !d.Before(WeekStart(now))
	case PeriodMonth:
		return d.Year() == now.Year() && d.Month() == now.Month()
	case PeriodYear:
		return d.Year() == now.Year()
	}
	return false
}

// WeekStart medianoche del domingo más reciente (inclusive hoy) en la zona de now.
func WeekStart(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// Sorted devuelve los balances en orden de presentación: primero las categorías dadas,
// luego las demás alfabéticamente.
func (b Balances) Sorted(categories []entity.Category) []CategoryBalance {
	out := make([]CategoryBalance, 0, len(b))
	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		if v, ok := b[c.Name()]; ok && !seen[c.Name()] {
			out = append(out, CategoryBalance{Category: c.Name(), Nos: v})
			seen[c.Name()] = true
		}
	}
	var rest []string
	for name := range b {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		out = append(out, CategoryBalance{Category: name, Nos: b[name]})
	}
	return out
}

// Total suma de todos los balances.
func (b Balances) Total() int {
	t := 0
	for _, v := range b {
		t += v
	}
	return t
}

func seed(categories []entity.Category) Balances {
	out := make(Balances, len(categories))
	for _, c := range categories {
		out[c.Name()] = 0
	}
	return out
}
