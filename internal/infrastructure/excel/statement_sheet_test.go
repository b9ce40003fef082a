package excel_test

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/carry-ledger-api/internal/application/reporting"
	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
	domaininv "github.com/jhoicas/carry-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/excel"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func buildStatement(t *testing.T) *reporting.Statement {
	t.Helper()
	movs := []*entity.StockMovement{
		{ID: "m1", Date: "2024-05-10", Type: entity.MovementTypeIN, Category: entity.ParseCategory("LAPTOP"),
			CustomerID: "c1", Nos: 10, Weight: dec("2.5"), Amount: dec("1500"), Remarks: "LOTE A"},
		{ID: "m2", Date: "2024-05-12", Type: entity.MovementTypeOUT, Category: entity.ParseCategory("LAPTOP"),
			CustomerID: "c1", Nos: 4},
		{ID: "m3", Date: "2024-05-11", Type: entity.MovementTypeOUT, Category: entity.ParseCategory("CPU"), Nos: 3},
	}
	names := domaininv.NameResolver{"c1": "ACME TRADERS"}
	now := time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)
	return reporting.BuildStatement("SR INFOTECH", movs, names, reporting.Scope{Kind: reporting.ScopeCustom}, now)
}

func openSheet(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestRenderXLSX_CabeceraYFilas(t *testing.T) {
	out, err := excel.NewStatementSheet().RenderXLSX(buildStatement(t))
	require.NoError(t, err)

	f := openSheet(t, out)
	assert.Equal(t, []string{excel.SheetName}, f.GetSheetList())

	rows, err := f.GetRows(excel.SheetName)
	require.NoError(t, err)
	require.Greater(t, len(rows), excel.HeaderRow+3)

	assert.Equal(t, "SR INFOTECH", rows[0][0])
	assert.Equal(t, excel.Columns, rows[excel.HeaderRow-1])

	// Orden por fecha descendente.
	first := rows[excel.HeaderRow]
	assert.Equal(t, "2024-05-12", first[0])
	assert.Equal(t, "OUT", first[1])
	assert.Equal(t, "ACME TRADERS", first[2])
	assert.Equal(t, "0", first[4])
	assert.Equal(t, "4", first[5])

	internal := rows[excel.HeaderRow+1]
	assert.Equal(t, "INTERNAL", internal[2])
	assert.Equal(t, "CPU", internal[3])

	last := rows[excel.HeaderRow+2]
	assert.Equal(t, "LOTE A", last[8])
}

func TestRenderXLSX_TotalesYResumen(t *testing.T) {
	out, err := excel.NewStatementSheet().RenderXLSX(buildStatement(t))
	require.NoError(t, err)
	f := openSheet(t, out)

	totalsRow := excel.HeaderRow + 3 + 1
	label, err := f.GetCellValue(excel.SheetName, "A"+strconv.Itoa(totalsRow))
	require.NoError(t, err)
	assert.Equal(t, "OVERALL TOTALS", label)

	in, _ := f.GetCellValue(excel.SheetName, "E"+strconv.Itoa(totalsRow))
	outQty, _ := f.GetCellValue(excel.SheetName, "F"+strconv.Itoa(totalsRow))
	assert.Equal(t, "10", in)
	assert.Equal(t, "7", outQty)

	net, _ := f.GetCellValue(excel.SheetName, "C"+strconv.Itoa(totalsRow))
	assert.Equal(t, "NET: 3", net)
	amount, _ := f.GetCellValue(excel.SheetName, "H"+strconv.Itoa(totalsRow))
	assert.Equal(t, "1,500.00", amount)

	summary := totalsRow + 2
	title, _ := f.GetCellValue(excel.SheetName, "A"+strconv.Itoa(summary))
	assert.Equal(t, "SUMMARY BY CATEGORY", title)

	// Primera aparición tras ordenar: LAPTOP (05-12), luego CPU.
	cat, _ := f.GetCellValue(excel.SheetName, "A"+strconv.Itoa(summary+2))
	laptopNet, _ := f.GetCellValue(excel.SheetName, "D"+strconv.Itoa(summary+2))
	assert.Equal(t, "LAPTOP", cat)
	assert.Equal(t, "6", laptopNet)

	cpuNet, _ := f.GetCellValue(excel.SheetName, "D"+strconv.Itoa(summary+3))
	assert.Equal(t, "-3", cpuNet)
}
