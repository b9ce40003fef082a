package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carry-ledger-api/internal/application/dto"
	"github.com/jhoicas/carry-ledger-api/internal/application/inventory"
	"github.com/jhoicas/carry-ledger-api/internal/application/reporting"
)

// InventoryHandler carry in / carry out, historial y categorías.
type InventoryHandler struct {
	uc      *inventory.MovementUseCase
	reports *reporting.StatementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.MovementUseCase, reports *reporting.StatementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, reports: reports}
}

// CarryIn godoc
// @Summary      Registrar entrada (carry in)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements/carry-in [post]
func (h *InventoryHandler) CarryIn(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.CarryIn(c.UserContext(), GetSession(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CarryOut godoc
// @Summary      Registrar salida (carry out)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements/carry-out [post]
func (h *InventoryHandler) CarryOut(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.CarryOut(c.UserContext(), GetSession(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Corregir un movimiento
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.UpdateMovementRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.MovementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [patch]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMovementRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        search       query  string  false  "Categoría o cliente"
// @Param        type         query  string  false  "ALL | IN | OUT"
// @Param        category     query  string  false  "Categoría o ALL"
// @Param        customer_id  query  string  false  "Cliente"
// @Param        from         query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to           query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {object}  dto.HistoryResponse
// @Router       /api/movements [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	q, ok, err := historyQuery(c)
	if !ok {
		return err
	}
	out, err := h.uc.History(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportHistory godoc
// @Summary      Exportar el historial filtrado
// @Tags         movements
// @Security     Bearer
// @Produce      application/pdf
// @Param        format  query  string  false  "pdf | xlsx"
// @Success      200
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/movements/export [get]
func (h *InventoryHandler) ExportHistory(c *fiber.Ctx) error {
	q, ok, err := historyQuery(c)
	if !ok {
		return err
	}
	format, err := reporting.ParseFormat(c.Query("format"))
	if err != nil {
		return respondError(c, err)
	}
	scope := reporting.Scope{Kind: reporting.ScopeHistory, Filter: inventory.HistoryFilter(q)}
	file, err := h.reports.Export(c.UserContext(), scope, format)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}

// Categories godoc
// @Summary      Categorías del formulario
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CategoriesResponse
// @Router       /api/categories [get]
func (h *InventoryHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// historyQuery lee los filtros del historial; type se normaliza a mayúsculas antes de validar.
func historyQuery(c *fiber.Ctx) (dto.HistoryQuery, bool, error) {
	var q dto.HistoryQuery
	if err := c.QueryParser(&q); err != nil {
		return q, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	q.Type = strings.ToUpper(strings.TrimSpace(q.Type))
	ok, err := checkStruct(c, &q)
	return q, ok, err
}
