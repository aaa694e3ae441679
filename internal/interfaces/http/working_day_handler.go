package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/panaderia-api/internal/application/dto"
	"github.com/tu-usuario/panaderia-api/internal/application/usecase"
)

// WorkingDayHandler maneja las peticiones HTTP del calendario laboral (protegido).
type WorkingDayHandler struct {
	uc *usecase.WorkingDayUseCase
}

// NewWorkingDayHandler construye el handler.
func NewWorkingDayHandler(uc *usecase.WorkingDayUseCase) *WorkingDayHandler {
	return &WorkingDayHandler{uc: uc}
}

// Create godoc
// @Summary      Crear jornada
// @Tags         working-days
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorkingDayRequest  true  "Datos de la jornada"
// @Success      201   {object}  dto.WorkingDayResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/working-days [post]
func (h *WorkingDayHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkingDayRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener jornada por ID
// @Tags         working-days
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la jornada"
// @Success      200  {object}  dto.WorkingDayResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/working-days/{id} [get]
func (h *WorkingDayHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar jornadas
// @Tags         working-days
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WorkingDayListResponse
// @Router       /api/working-days [get]
func (h *WorkingDayHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar jornada
// @Tags         working-days
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la jornada"
// @Param        body  body  dto.UpdateWorkingDayRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.WorkingDayResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/working-days/{id} [put]
func (h *WorkingDayHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateWorkingDayRequest
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
// @Summary      Eliminar jornada
// @Tags         working-days
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la jornada"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/working-days/{id} [delete]
func (h *WorkingDayHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
