package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carry-ledger-api/internal/application/analytics"
)

// DashboardHandler resumen de stock por categoría.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "ALL | TODAY | WEEK | MONTH | YEAR"
// @Param        mode    query  string  false  "BOTH | IN | OUT"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.UserContext(), c.Query("period"), c.Query("mode"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
