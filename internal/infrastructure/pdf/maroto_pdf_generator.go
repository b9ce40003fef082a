// Package pdf genera el estado de cuenta imprimible con Maroto v2.
//
// Layout de cada página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  BANDA ROJA: Organización + subtítulo │ Título del reporte  │
//	│  META: tipo de reporte, generado, alcance   (solo página 1) │
//	│  CABECERA: DATE | CUSTOMER | CATEGORY | IN | OUT | ...      │
//	│  FILAS                                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  OVERALL TOTALS + SUMMARY BY CATEGORY       (última página) │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/carry-ledger-api/internal/application/reporting"
	domaininv "github.com/jhoicas/carry-ledger-api/internal/domain/inventory"
)

// Filas por página: la primera deja sitio a la meta del reporte.
const (
	rowsFirstPage = 30
	rowsPerPage   = 36
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorBrand    = &props.Color{Red: 239, Green: 68, Blue: 68}
	colorDark     = &props.Color{Red: 30, Green: 41, Blue: 59}
	colorHeaderBg = &props.Color{Red: 241, Green: 245, Blue: 249}
	colorHeaderFg = &props.Color{Red: 71, Green: 85, Blue: 105}
	colorMuted    = &props.Color{Red: 203, Green: 213, Blue: 225}
	colorIn       = &props.Color{Red: 16, Green: 185, Blue: 129}
	colorOut      = &props.Color{Red: 225, Green: 29, Blue: 72}
	colorWhite    = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reporting.PDFRenderer = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa reporting.PDFRenderer usando Maroto v2.
type MarotoPDFGenerator struct {
	printer *message.Printer
}

// NewMarotoPDFGenerator construye el generador. Los importes se agrupan al estilo en-IN.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{printer: message.NewPrinter(language.MustParse("en-IN"))}
}

// RenderPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) RenderPDF(st *reporting.Statement) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 7}).
		WithTitle(st.Title, true).
		WithAuthor(st.OrgName, true).
		Build()

	m := maroto.New(cfg)

	pages := reporting.Paginate(st.Rows, rowsFirstPage, rowsPerPage)
	for i, chunk := range pages {
		p := page.New().Add(bandRow(st))
		if i == 0 {
			p.Add(metaRow(st))
		}
		p.Add(tableHeaderRow())
		for _, r := range chunk {
			p.Add(g.detailRow(r))
		}
		if i == len(pages)-1 {
			p.Add(line.NewRow(2))
			p.Add(g.totalsRow(st.Totals))
			p.Add(summaryRows(st.Categories)...)
		}
		m.AddPages(p)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// bandRow: organización y subtítulo (izq), título del reporte (der) sobre fondo rojo.
func bandRow(st *reporting.Statement) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(nonEmpty(st.OrgName, "INVENTORY"), props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorWhite, Top: 3, Left: 4,
			}),
			text.New(st.Subtitle, props.Text{
				Size: 7, Color: colorWhite, Top: 12, Left: 4,
			}),
		),
		col.New(5).Add(
			text.New(st.Title, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorWhite, Top: 7, Right: 4,
			}),
		),
	).WithStyle(&props.Cell{BackgroundColor: colorBrand})
}

// metaRow: tipo de reporte, fecha de generación y alcance.
func metaRow(st *reporting.Statement) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorDark, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 8, Color: colorDark, Top: top})
	}
	return row.New(18).Add(
		col.New(3).Add(
			label("REPORT TYPE:", 4),
			label("GENERATED:", 9),
			label("SCOPE:", 14),
		),
		col.New(9).Add(
			value(st.Scope.Tag(), 4),
			value(st.GeneratedAt.Format("02/01/2006 15:04:05"), 9),
			value(st.ScopeLabel, 14),
		),
	)
}

// tableHeaderRow: cabecera de columnas, se repite en cada página.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Color: colorHeaderFg, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("DATE", 2, align.Left),
		h("CUSTOMER", 2, align.Left),
		h("CATEGORY / REMARKS", 3, align.Left),
		h("IN (+)", 1, align.Right),
		h("OUT (-)", 1, align.Right),
		h("WEIGHT", 1, align.Right),
		h("AMOUNT (INR)", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorHeaderBg})
}

// detailRow: una fila por movimiento. IN en verde, OUT en rojo, "-" si no aplica.
func (g *MarotoPDFGenerator) detailRow(r reporting.Row) core.Row {
	cell := func(s string, size int, a align.Type, c *props.Color) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 7, Align: a, Color: c, Top: 1, Left: 1, Right: 1}))
	}
	qty := func(n int, c *props.Color) (string, *props.Color) {
		if n == 0 {
			return "-", colorMuted
		}
		return strconv.Itoa(n), c
	}
	inText, inColor := qty(r.In, colorIn)
	outText, outColor := qty(r.Out, colorOut)

	return row.New(6).Add(
		cell(r.Date, 2, align.Left, colorDark),
		cell(truncate(r.Customer, 16), 2, align.Left, colorDark),
		cell(truncate(reporting.CategoryText(r), 28), 3, align.Left, colorDark),
		cell(inText, 1, align.Right, inColor),
		cell(outText, 1, align.Right, outColor),
		cell(nonEmpty(reporting.WeightText(r), "-"), 1, align.Right, colorDark),
		cell(g.money(r.Amount), 2, align.Right, colorDark),
	)
}

// totalsRow: OVERALL TOTALS sobre fondo oscuro.
func (g *MarotoPDFGenerator) totalsRow(t domaininv.Totals) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(9).Add(
		cell("OVERALL TOTALS", 4, align.Left),
		cell(reporting.NetText(t.Net), 3, align.Left),
		cell(strconv.Itoa(t.In), 1, align.Right),
		cell(strconv.Itoa(t.Out), 1, align.Right),
		col.New(1),
		cell(g.money(t.Amount), 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorDark})
}

// summaryRows: SUMMARY BY CATEGORY con el neto coloreado por signo.
func summaryRows(flows []domaininv.CategoryFlow) []core.Row {
	rows := []core.Row{
		row.New(12).Add(col.New(12).Add(text.New("SUMMARY BY CATEGORY", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorDark, Top: 5,
		}))),
	}
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Color: colorHeaderFg, Top: 2, Left: 2, Right: 2,
		}))
	}
	rows = append(rows, row.New(8).Add(
		h("CATEGORY", 6, align.Left),
		h("TOTAL IN", 2, align.Right),
		h("TOTAL OUT", 2, align.Right),
		h("NET BALANCE", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorHeaderBg}))

	for _, f := range flows {
		netColor := colorIn
		if f.Sign() == domaininv.SignNegative {
			netColor = colorOut
		}
		c := func(s string, size int, a align.Type, clr *props.Color, style fontstyle.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{
				Size: 7, Align: a, Color: clr, Style: style, Top: 1, Left: 2, Right: 2,
			}))
		}
		rows = append(rows, row.New(6).Add(
			c(f.Category, 6, align.Left, colorDark, fontstyle.Normal),
			c(strconv.Itoa(f.In), 2, align.Right, colorDark, fontstyle.Normal),
			c(strconv.Itoa(f.Out), 2, align.Right, colorDark, fontstyle.Normal),
			c(strconv.Itoa(f.Net()), 2, align.Right, netColor, fontstyle.Bold),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) money(d decimal.Decimal) string {
	return g.printer.Sprintf("%.2f", d.InexactFloat64())
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// truncate corta a n runas.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
