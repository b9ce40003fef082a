package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/carry-ledger-api/internal/application/dto"
	"github.com/jhoicas/carry-ledger-api/internal/domain"
	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
	domaininv "github.com/jhoicas/carry-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/carry-ledger-api/internal/domain/repository"
)

// Options datos de la organización para cabecera y nombres de archivo.
type Options struct {
	OrgName  string
	OrgTag   string
	Location *time.Location
}

// StatementUseCase vista previa y exportación de estados de cuenta.
type StatementUseCase struct {
	movRepo      repository.StockMovementRepository
	customerRepo repository.CustomerRepository
	pdf          PDFRenderer
	sheet        SheetRenderer
	opts         Options
	now          func() time.Time
}

// NewStatementUseCase construye el caso de uso. now nil = time.Now.
func NewStatementUseCase(
	movRepo repository.StockMovementRepository,
	customerRepo repository.CustomerRepository,
	pdf PDFRenderer,
	sheet SheetRenderer,
	opts Options,
	now func() time.Time,
) *StatementUseCase {
	if now == nil {
		now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &StatementUseCase{movRepo: movRepo, customerRepo: customerRepo, pdf: pdf, sheet: sheet, opts: opts, now: now}
}

// Now hora actual en la zona del reporte.
func (uc *StatementUseCase) Now() time.Time { return uc.now().In(uc.opts.Location) }

// Build arma el estado de cuenta del alcance.
func (uc *StatementUseCase) Build(ctx context.Context, scope Scope) (*Statement, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	movs, err := uc.movRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := uc.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.Now()
	return BuildStatement(uc.opts.OrgName, movs, domaininv.NewNameResolver(customers), scope, now), nil
}

// Preview filas y totales del alcance para la vista del centro de reportes.
func (uc *StatementUseCase) Preview(ctx context.Context, scope Scope) (*dto.StatementPreviewResponse, error) {
	st, err := uc.Build(ctx, scope)
	if err != nil {
		return nil, err
	}
	return ToPreview(st), nil
}

// Export renderiza el alcance en el formato pedido. Sin filas devuelve domain.ErrEmptyStatement.
func (uc *StatementUseCase) Export(ctx context.Context, scope Scope, format Format) (*dto.FileResult, error) {
	st, err := uc.Build(ctx, scope)
	if err != nil {
		return nil, err
	}
	content, err := uc.Render(st, format)
	if err != nil {
		return nil, err
	}
	return &dto.FileResult{
		Filename:    ScopeFilename(uc.opts.OrgTag, scope, format, st.GeneratedAt),
		ContentType: format.ContentType(),
		Content:     content,
	}, nil
}

// CustomerStatement estado de cuenta completo de un partner.
func (uc *StatementUseCase) CustomerStatement(ctx context.Context, customerID string, format Format) (*dto.FileResult, error) {
	c, err := uc.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	st, err := uc.Build(ctx, Scope{Kind: ScopeCustomer, CustomerID: customerID})
	if err != nil {
		return nil, err
	}
	content, err := uc.Render(st, format)
	if err != nil {
		return nil, err
	}
	return &dto.FileResult{
		Filename:    CustomerFilename(uc.opts.OrgTag, c.Name, format),
		ContentType: format.ContentType(),
		Content:     content,
	}, nil
}

// Render genera los bytes del estado de cuenta en el formato pedido.
func (uc *StatementUseCase) Render(st *Statement, format Format) ([]byte, error) {
	if st.IsEmpty() {
		return nil, domain.ErrEmptyStatement
	}
	switch format {
	case FormatPDF:
		out, err := uc.pdf.RenderPDF(st)
		if err != nil {
			return nil, fmt.Errorf("render pdf: %w", err)
		}
		return out, nil
	case FormatXLSX:
		out, err := uc.sheet.RenderXLSX(st)
		if err != nil {
			return nil, fmt.Errorf("render xlsx: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: formato %q", domain.ErrInvalidInput, format)
}

// ParseFormat pdf (por defecto) o xlsx.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatPDF:
		return FormatPDF, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: formato %q", domain.ErrInvalidInput, s)
}

// ScopeFromQuery traduce la query del centro de reportes. MONTHLY sin mes usa el mes en curso.
func ScopeFromQuery(q dto.ReportQuery, now time.Time) (Scope, error) {
	s := Scope{Kind: ScopeKind(strings.ToUpper(q.Scope))}
	switch s.Kind {
	case ScopeMonthly:
		s.Year, s.Month = now.Year(), now.Month()
		if q.Month != "" {
			t, err := time.Parse("2006-01", q.Month)
			if err != nil {
				return s, fmt.Errorf("%w: mes %q", domain.ErrInvalidInput, q.Month)
			}
			s.Year, s.Month = t.Year(), t.Month()
		}
	case ScopeCustomer:
		s.CustomerID = q.CustomerID
	case ScopeCategory:
		s.Category = q.Category
	case ScopeType:
		s.Type = entity.MovementType(strings.ToUpper(q.Type))
	case ScopeCustom:
		s.From, s.To = q.From, q.To
	}
	return s, s.Validate()
}

// ToPreview proyecta el estado de cuenta a la respuesta JSON.
func ToPreview(st *Statement) *dto.StatementPreviewResponse {
	out := &dto.StatementPreviewResponse{
		Title:       st.Title,
		Scope:       st.Scope.Tag(),
		ScopeLabel:  st.ScopeLabel,
		GeneratedAt: st.GeneratedAt,
		Rows:        make([]dto.StatementRowDTO, 0, len(st.Rows)),
		Totals: dto.TotalsDTO{
			In: st.Totals.In, Out: st.Totals.Out, Net: st.Totals.Net, Amount: st.Totals.Amount,
		},
		Categories: make([]dto.CategoryFlowDTO, 0, len(st.Categories)),
	}
	for _, r := range st.Rows {
		out.Rows = append(out.Rows, dto.StatementRowDTO{
			Date:     r.Date,
			Type:     string(r.Type),
			Customer: r.Customer,
			Category: r.Category,
			In:       r.In,
			Out:      r.Out,
			Weight:   WeightText(r),
			Amount:   r.Amount.StringFixed(2),
			Remarks:  r.Remarks,
		})
	}
	for _, c := range st.Categories {
		out.Categories = append(out.Categories, dto.CategoryFlowDTO{Category: c.Category, In: c.In, Out: c.Out, Net: c.Net()})
	}
	return out
}

// WeightText peso como texto; vacío si no se registró.
func WeightText(r Row) string {
	if r.Weight == nil {
		return ""
	}
	return r.Weight.String()
}

// NetText neto de la fila de totales (IN - OUT).
func NetText(net int) string {
	return fmt.Sprintf("NET: %d", net)
}

// CategoryText categoría con las observaciones a continuación, si las hay.
func CategoryText(r Row) string {
	if r.Remarks == "" {
		return r.Category
	}
	return r.Category + " / " + r.Remarks
}
