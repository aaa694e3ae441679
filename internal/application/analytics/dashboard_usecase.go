// Package analytics contiene los casos de uso de reportes del back-office.
package analytics

import (
	"context"

	"github.com/tu-usuario/panaderia-api/internal/application/dto"
	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

// DashboardUseCase genera los resúmenes del dashboard.
// Fuente de datos: DashboardRepository (consultas read-only); no toca tablas
// directamente ni muta nada.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetSummary devuelve los totales globales por entidad.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	counts, err := uc.repo.GetCounts(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardSummaryDTO{
		TotalUsers:            counts.TotalUsers,
		TotalItems:            counts.TotalItems,
		TotalSalesRates:       counts.TotalSalesRates,
		TotalStockAssignments: counts.TotalStockAssignments,
		TotalProduction:       counts.TotalProduction,
		TotalWorkingDays:      counts.TotalWorkingDays,
	}, nil
}

// GetProductionSummary devuelve la producción acumulada por artículo.
func (uc *DashboardUseCase) GetProductionSummary(ctx context.Context) ([]dto.ProductionSummaryDTO, error) {
	rows, err := uc.repo.GetProductionSummary(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductionSummaryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProductionSummaryDTO{
			ItemID:          r.ItemID,
			ItemName:        r.ItemName,
			TotalQuantity:   r.TotalQuantity,
			ProductionCount: r.ProductionCount,
		})
	}
	return out, nil
}

// GetSalesSummary devuelve la tarifa promedio por cliente.
func (uc *DashboardUseCase) GetSalesSummary(ctx context.Context) ([]dto.SalesSummaryDTO, error) {
	rows, err := uc.repo.GetSalesSummary(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesSummaryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SalesSummaryDTO{
			CustomerID:   r.CustomerID,
			CustomerName: r.CustomerName,
			AvgRate:      r.AvgRate,
			RateCount:    r.RateCount,
		})
	}
	return out, nil
}

// GetStockSummary devuelve el stock asignado acumulado por cliente.
func (uc *DashboardUseCase) GetStockSummary(ctx context.Context) ([]dto.StockSummaryDTO, error) {
	rows, err := uc.repo.GetStockSummary(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockSummaryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockSummaryDTO{
			CustomerID:      r.CustomerID,
			CustomerName:    r.CustomerName,
			TotalStock:      r.TotalStock,
			AssignmentCount: r.AssignmentCount,
		})
	}
	return out, nil
}
