// Package excel genera el estado de cuenta en formato XLSX con excelize.
package excel

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/carry-ledger-api/internal/application/reporting"
	domaininv "github.com/jhoicas/carry-ledger-api/internal/domain/inventory"
)

// SheetName nombre de la única hoja del libro.
const SheetName = "Statement"

// HeaderRow fila (1-based) de la cabecera de columnas; los movimientos empiezan debajo.
const HeaderRow = 7

// Columns cabecera de la tabla de movimientos.
var Columns = []string{
	"DATE", "TYPE", "CUSTOMER", "CATEGORY", "IN (+)", "OUT (-)", "WEIGHT_KG", "AMOUNT_INR", "REMARKS",
}

var _ reporting.SheetRenderer = (*StatementSheet)(nil)

// StatementSheet implementa reporting.SheetRenderer.
type StatementSheet struct{}

// NewStatementSheet construye el renderizador.
func NewStatementSheet() *StatementSheet { return &StatementSheet{} }

// styles ids de estilo registrados en el libro.
type styles struct {
	band, bold, header, amount, totals, totalsAmount, positive, negative int
}

// RenderXLSX genera el libro completo y devuelve sus bytes.
func (s *StatementSheet) RenderXLSX(st *reporting.Statement) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	sty, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	w := &writer{f: f, sty: sty}
	w.titleBlock(st)
	w.table(st.Rows)
	next := w.totals(HeaderRow+len(st.Rows)+1, st.Totals)
	w.summary(next+2, st.Categories)
	w.columnWidths()
	if w.err != nil {
		return nil, fmt.Errorf("excel: escribir hoja: %w", w.err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

func newStyles(f *excelize.File) (styles, error) {
	var sty styles
	defs := []struct {
		id    *int
		style *excelize.Style
	}{
		{&sty.band, &excelize.Style{
			Font: &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"EF4444"}},
		}},
		{&sty.bold, &excelize.Style{Font: &excelize.Font{Bold: true}}},
		{&sty.header, &excelize.Style{
			Font: &excelize.Font{Bold: true, Color: "475569"},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F1F5F9"}},
		}},
		{&sty.amount, &excelize.Style{NumFmt: 4}},
		{&sty.totals, &excelize.Style{
			Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1E293B"}},
		}},
		{&sty.totalsAmount, &excelize.Style{
			Font:   &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1E293B"}},
			NumFmt: 4,
		}},
		{&sty.positive, &excelize.Style{Font: &excelize.Font{Bold: true, Color: "10B981"}}},
		{&sty.negative, &excelize.Style{Font: &excelize.Font{Bold: true, Color: "E11D48"}}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return sty, fmt.Errorf("excel: registrar estilo: %w", err)
		}
		*d.id = id
	}
	return sty, nil
}

// ── writer ────────────────────────────────────────────────────────────────────

// writer acumula el primer error para no comprobar cada celda.
type writer struct {
	f   *excelize.File
	sty styles
	err error
}

func (w *writer) row(r int, values ...any) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetSheetRow(SheetName, cell(1, r), &values)
}

func (w *writer) style(fromCol, toCol, r, id int) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellStyle(SheetName, cell(fromCol, r), cell(toCol, r), id)
}

func (w *writer) titleBlock(st *reporting.Statement) {
	last := len(Columns)
	w.row(1, st.OrgName)
	w.style(1, last, 1, w.sty.band)
	if w.err == nil {
		w.err = w.f.MergeCell(SheetName, cell(1, 1), cell(last, 1))
	}
	w.row(2, st.Title, "", st.Subtitle)
	w.style(1, 1, 2, w.sty.bold)
	w.row(3, "REPORT TYPE:", st.Scope.Tag())
	w.row(4, "GENERATED:", st.GeneratedAt.Format("02/01/2006 15:04:05"))
	w.row(5, "SCOPE:", st.ScopeLabel)
	w.style(1, 1, 3, w.sty.bold)
	w.style(1, 1, 4, w.sty.bold)
	w.style(1, 1, 5, w.sty.bold)
}

func (w *writer) table(rows []reporting.Row) {
	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	w.row(HeaderRow, header...)
	w.style(1, len(Columns), HeaderRow, w.sty.header)

	for i, r := range rows {
		n := HeaderRow + 1 + i
		w.row(n, r.Date, string(r.Type), r.Customer, r.Category, r.In, r.Out,
			weightValue(r.Weight), money(r.Amount), r.Remarks)
		w.style(8, 8, n, w.sty.amount)
	}
}

// totals escribe la fila OVERALL TOTALS (con el neto IN - OUT) y devuelve su número de fila.
func (w *writer) totals(r int, t domaininv.Totals) int {
	w.row(r, "OVERALL TOTALS", "", reporting.NetText(t.Net), "", t.In, t.Out, "", money(t.Amount), "")
	w.style(1, len(Columns), r, w.sty.totals)
	w.style(8, 8, r, w.sty.totalsAmount)
	return r
}

func (w *writer) summary(r int, flows []domaininv.CategoryFlow) {
	w.row(r, "SUMMARY BY CATEGORY")
	w.style(1, 1, r, w.sty.bold)
	w.row(r+1, "CATEGORY", "TOTAL IN", "TOTAL OUT", "NET BALANCE")
	w.style(1, 4, r+1, w.sty.header)
	for i, fl := range flows {
		n := r + 2 + i
		w.row(n, fl.Category, fl.In, fl.Out, fl.Net())
		id := w.sty.positive
		if fl.Sign() == domaininv.SignNegative {
			id = w.sty.negative
		}
		w.style(4, 4, n, id)
	}
}

func (w *writer) columnWidths() {
	widths := map[string]float64{"A": 14, "B": 8, "C": 28, "D": 18, "E": 10, "F": 10, "G": 12, "H": 14, "I": 32}
	for c, width := range widths {
		if w.err != nil {
			return
		}
		w.err = w.f.SetColWidth(SheetName, c, c, width)
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func weightValue(w *decimal.Decimal) any {
	if w == nil {
		return ""
	}
	return w.InexactFloat64()
}
