package reporting

// Format formato de exportación.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// Content types de las descargas.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// PDFRenderer genera el documento imprimible del estado de cuenta.
type PDFRenderer interface {
	RenderPDF(st *Statement) ([]byte, error)
}

// SheetRenderer genera la hoja de cálculo del estado de cuenta.
type SheetRenderer interface {
	RenderXLSX(st *Statement) ([]byte, error)
}
