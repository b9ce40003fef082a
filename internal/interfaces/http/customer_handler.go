package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carry-ledger-api/internal/application/customer"
	"github.com/jhoicas/carry-ledger-api/internal/application/dto"
	"github.com/jhoicas/carry-ledger-api/internal/application/reporting"
)

// CustomerHandler partners, su ledger y su estado de cuenta.
type CustomerHandler struct {
	uc      *customer.CustomerUseCase
	reports *reporting.StatementUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *customer.CustomerUseCase, reports *reporting.StatementUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, reports: reports}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Nombre"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar clientes
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Nombre"
// @Success      200  {array}  dto.CustomerResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Rename godoc
// @Summary      Renombrar cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  dto.CreateCustomerRequest  true  "Nombre"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Rename(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Rename(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         customers
// @Security     Bearer
// @Param        id   path  string  true  "ID del cliente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Directory godoc
// @Summary      Directorio de partners
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DirectoryResponse
// @Router       /api/customers/directory [get]
func (h *CustomerHandler) Directory(c *fiber.Ctx) error {
	out, err := h.uc.Directory(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Ledger godoc
// @Summary      Ledger del cliente
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.LedgerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/ledger [get]
func (h *CustomerHandler) Ledger(c *fiber.Ctx) error {
	out, err := h.uc.Ledger(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Statement godoc
// @Summary      Estado de cuenta del cliente
// @Tags         customers
// @Security     Bearer
// @Produce      application/pdf
// @Param        id      path   string  true   "ID del cliente"
// @Param        format  query  string  false  "pdf | xlsx"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/statement [get]
func (h *CustomerHandler) Statement(c *fiber.Ctx) error {
	format, err := reporting.ParseFormat(c.Query("format"))
	if err != nil {
		return respondError(c, err)
	}
	file, err := h.reports.CustomerStatement(c.UserContext(), c.Params("id"), format)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}
