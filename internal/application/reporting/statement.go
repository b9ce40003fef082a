// Package reporting arma los estados de cuenta (filas, totales y resumen por categoría)
// que luego se renderizan a PDF u hoja de cálculo.
package reporting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
	domaininv "github.com/jhoicas/carry-ledger-api/internal/domain/inventory"
)

// Títulos del documento.
const (
	TitleStock   = "STOCK STATEMENT"
	TitleAccount = "ACCOUNT STATEMENT"
	Subtitle     = "INVENTORY AUDIT SYSTEM"
)

// Row proyección de un movimiento, común a PDF y hoja de cálculo.
// In/Out valen 0 cuando no aplican; Weight es nil si no se registró.
type Row struct {
	Date     string
	Type     entity.MovementType
	Customer string
	Category string
	In       int
	Out      int
	Weight   *decimal.Decimal
	Amount   decimal.Decimal
	Remarks  string
}

// Statement datos completos de un reporte. Filas, totales y resumen se calculan una vez
// y los comparten ambos renderizadores.
type Statement struct {
	OrgName     string
	Title       string
	Subtitle    string
	Scope       Scope
	ScopeLabel  string
	GeneratedAt time.Time
	Rows        []Row
	Totals      domaininv.Totals
	Categories  []domaininv.CategoryFlow
}

// IsEmpty indica si no hay filas.
func (s *Statement) IsEmpty() bool { return len(s.Rows) == 0 }

// ProjectRow proyecta un movimiento a fila.
func ProjectRow(m *entity.StockMovement, names domaininv.NameResolver) Row {
	r := Row{
		Date:     m.Date,
		Type:     m.Type,
		Customer: names.Name(m.CustomerID),
		Category: m.Category.Name(),
		Weight:   m.Weight,
		Amount:   m.AmountOrZero(),
		Remarks:  m.Remarks,
	}
	switch m.Type {
	case entity.MovementTypeIN:
		r.In = m.Nos
	case entity.MovementTypeOUT:
		r.Out = m.Nos
	}
	return r
}

// BuildStatement filtra por alcance, ordena por fecha descendente y calcula totales y resumen.
func BuildStatement(orgName string, movs []*entity.StockMovement, names domaininv.NameResolver, scope Scope, now time.Time) *Statement {
	selected := make([]*entity.StockMovement, 0, len(movs))
	for _, m := range movs {
		if scope.Match(m, names, now) {
			selected = append(selected, m)
		}
	}
	selected = domaininv.SortByDateDesc(selected)

	title := TitleStock
	if scope.Kind == ScopeCustomer && scope.CustomerID != "" {
		title = TitleAccount
	}
	st := &Statement{
		OrgName:     orgName,
		Title:       title,
		Subtitle:    Subtitle,
		Scope:       scope,
		ScopeLabel:  scope.Label(names, now),
		GeneratedAt: now,
		Rows:        make([]Row, 0, len(selected)),
		Totals:      domaininv.Summarize(selected),
		Categories:  domaininv.CategoryRollup(selected),
	}
	for _, m := range selected {
		st.Rows = append(st.Rows, ProjectRow(m, names))
	}
	return st
}

// Paginate reparte las filas en páginas: first en la primera (deja sitio a la cabecera)
// y per en las siguientes. Ninguna fila se pierde ni se parte.
func Paginate(rows []Row, first, per int) [][]Row {
	if first <= 0 {
		first = 1
	}
	if per <= 0 {
		per = first
	}
	if len(rows) == 0 {
		return [][]Row{{}}
	}
	var pages [][]Row
	size := first
	for start := 0; start < len(rows); {
		end := min(start+size, len(rows))
		pages = append(pages, rows[start:end])
		start = end
		size = per
	}
	return pages
}
