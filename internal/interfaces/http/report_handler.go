package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carry-ledger-api/internal/application/dto"
	"github.com/jhoicas/carry-ledger-api/internal/application/reporting"
)

// ReportHandler centro de reportes: vista previa y exportación.
type ReportHandler struct {
	uc *reporting.StatementUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.StatementUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) scope(c *fiber.Ctx) (reporting.Scope, *dto.ReportQuery, bool, error) {
	var q dto.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return reporting.Scope{}, nil, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	q.Scope = strings.ToUpper(strings.TrimSpace(q.Scope))
	q.Type = strings.ToUpper(strings.TrimSpace(q.Type))
	q.Format = strings.ToLower(strings.TrimSpace(q.Format))
	if ok, err := checkStruct(c, &q); !ok {
		return reporting.Scope{}, nil, false, err
	}
	s, err := reporting.ScopeFromQuery(q, h.uc.Now())
	if err != nil {
		return reporting.Scope{}, nil, false, respondError(c, err)
	}
	return s, &q, true, nil
}

// Preview godoc
// @Summary      Vista previa del reporte
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        scope        query  string  true   "TODAY | MONTHLY | CUSTOMER | CATEGORY | TYPE | CUSTOM"
// @Param        month        query  string  false  "YYYY-MM (MONTHLY)"
// @Param        customer_id  query  string  false  "Cliente (CUSTOMER)"
// @Param        category     query  string  false  "Categoría (CATEGORY)"
// @Param        type         query  string  false  "IN | OUT (TYPE)"
// @Param        from         query  string  false  "Desde (CUSTOM)"
// @Param        to           query  string  false  "Hasta (CUSTOM)"
// @Success      200  {object}  dto.StatementPreviewResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Preview(c *fiber.Ctx) error {
	scope, _, ok, err := h.scope(c)
	if !ok {
		return err
	}
	out, err := h.uc.Preview(c.UserContext(), scope)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar reporte
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        scope   query  string  true   "Alcance"
// @Param        format  query  string  false  "pdf | xlsx"
// @Success      200
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/reports/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	scope, q, ok, err := h.scope(c)
	if !ok {
		return err
	}
	format, err := reporting.ParseFormat(q.Format)
	if err != nil {
		return respondError(c, err)
	}
	file, err := h.uc.Export(c.UserContext(), scope, format)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}
