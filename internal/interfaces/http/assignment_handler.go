package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/panaderia-api/internal/application/assignment"
	"github.com/tu-usuario/panaderia-api/internal/application/dto"
)

// AssignmentHandler maneja las peticiones HTTP de asignaciones de stock (protegido).
type AssignmentHandler struct {
	uc *assignment.AssignmentUseCase
}

// NewAssignmentHandler construye el handler.
func NewAssignmentHandler(uc *assignment.AssignmentUseCase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

// Create godoc
// @Summary      Asignar stock a un cliente
// @Description  La fuente de precio es exactamente una: manual_rate, sales_rate_id, o ninguna (se resuelve la tarifa activa en assignment_date). El precio queda congelado en la asignación.
// @Tags         stock-assignments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockAssignmentRequest  true  "Datos de la asignación"
// @Success      201   {object}  dto.StockAssignmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-assignments [post]
func (h *AssignmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener asignación por ID
// @Tags         stock-assignments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la asignación"
// @Success      200  {object}  dto.StockAssignmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-assignments/{id} [get]
func (h *AssignmentHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar asignaciones
// @Tags         stock-assignments
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockAssignmentListResponse
// @Router       /api/stock-assignments [get]
func (h *AssignmentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListByCustomer godoc
// @Summary      Listar asignaciones de un cliente
// @Tags         stock-assignments
// @Security     Bearer
// @Produce      json
// @Param        customerId  path  string  true  "ID del cliente"
// @Success      200  {object}  dto.StockAssignmentListResponse
// @Router       /api/stock-assignments/customer/{customerId} [get]
func (h *AssignmentHandler) ListByCustomer(c *fiber.Ctx) error {
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
// @Summary      Listar asignaciones de un artículo
// @Tags         stock-assignments
// @Security     Bearer
// @Produce      json
// @Param        itemId  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.StockAssignmentListResponse
// @Router       /api/stock-assignments/item/{itemId} [get]
func (h *AssignmentHandler) ListByItem(c *fiber.Ctx) error {
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
// @Summary      Corregir asignación
// @Description  Corrección manual de cantidad o tarifa; fijar tarifa desvincula la asignación de su tarifa de origen.
// @Tags         stock-assignments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la asignación"
// @Param        body  body  dto.UpdateStockAssignmentRequest  true  "Campos a corregir"
// @Success      200   {object}  dto.StockAssignmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-assignments/{id} [put]
func (h *AssignmentHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateStockAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar asignación
// @Tags         stock-assignments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la asignación"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-assignments/{id} [delete]
func (h *AssignmentHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
