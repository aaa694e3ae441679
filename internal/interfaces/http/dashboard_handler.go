package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/tu-usuario/panaderia-api/internal/application/analytics"
	"github.com/tu-usuario/panaderia-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los totales globales del back-office.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_users, total_items, total_sales_rates,
// total_stock_assignments, total_production, total_working_days).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}

// GetProductionSummary devuelve la producción acumulada por artículo.
// GET /api/dashboard/production
func (h *DashboardHandler) GetProductionSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetProductionSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(out)
}

// GetSalesSummary devuelve la tarifa promedio por cliente (tarifas activas).
// GET /api/dashboard/sales
func (h *DashboardHandler) GetSalesSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSalesSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(out)
}

// GetStockSummary devuelve el stock asignado acumulado por cliente.
// GET /api/dashboard/stock
func (h *DashboardHandler) GetStockSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetStockSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(out)
}
