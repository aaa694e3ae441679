package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/panaderia-api/internal/application/dto"
	"github.com/tu-usuario/panaderia-api/internal/application/rates"
)

// RateHandler maneja las peticiones HTTP del motor de tarifas (protegido).
// El usuario del token queda registrado como autor de cada mutación.
type RateHandler struct {
	uc *rates.RateUseCase
}

// NewRateHandler construye el handler.
func NewRateHandler(uc *rates.RateUseCase) *RateHandler {
	return &RateHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tarifa de venta
// @Description  Si la tarifa nace activa, las tarifas activas del par cuya vigencia se solapa se cierran en cascada (effective_to = effective_from de la nueva).
// @Tags         sales-rates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSalesRateRequest  true  "Datos de la tarifa"
// @Success      201   {object}  dto.SalesRateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales-rates [post]
func (h *RateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalesRateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tarifa por ID
// @Tags         sales-rates
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la tarifa"
// @Success      200  {object}  dto.SalesRateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales-rates/{id} [get]
func (h *RateHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tarifas
// @Tags         sales-rates
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalesRateListResponse
// @Router       /api/sales-rates [get]
func (h *RateHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListByCustomer godoc
// @Summary      Listar tarifas de un cliente
// @Tags         sales-rates
// @Security     Bearer
// @Produce      json
// @Param        customerId  path  string  true  "ID del cliente"
// @Success      200  {object}  dto.SalesRateListResponse
// @Router       /api/sales-rates/customer/{customerId} [get]
func (h *RateHandler) ListByCustomer(c *fiber.Ctx) error {
	customerID := c.Params("customerId")
	if customerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "customerId es requerido"})
	}
	out, err := h.uc.ListByCustomer(customerID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListByItem godoc
// @Summary      Listar tarifas de un artículo
// @Tags         sales-rates
// @Security     Bearer
// @Produce      json
// @Param        itemId  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.SalesRateListResponse
// @Router       /api/sales-rates/item/{itemId} [get]
func (h *RateHandler) ListByItem(c *fiber.Ctx) error {
	itemID := c.Params("itemId")
	if itemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "itemId es requerido"})
	}
	out, err := h.uc.ListByItem(itemID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tarifa
// @Description  Cambiar is_active o effective_from dispara las cascadas correctivas: desactivar cierra la vigencia a hoy; reactivar cierra la activa actual del par; mover effective_from cierra las activas solapadas.
// @Tags         sales-rates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarifa"
// @Param        body  body  dto.UpdateSalesRateRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SalesRateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales-rates/{id} [put]
func (h *RateHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateSalesRateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), id, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tarifa
// @Description  Si la tarifa era la activa del par, la inactiva más reciente se reactiva con vigencia reabierta antes de borrar.
// @Tags         sales-rates
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la tarifa"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales-rates/{id} [delete]
func (h *RateHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), GetUserID(c), id); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
