package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardCounts totales globales por entidad del back-office.
type DashboardCounts struct {
	TotalUsers            int
	TotalItems            int
	TotalSalesRates       int
	TotalStockAssignments int
	TotalProduction       int
	TotalWorkingDays      int
}

// ProductionSummaryResult resultado crudo de producción agrupada por artículo.
type ProductionSummaryResult struct {
	ItemID          string
	ItemName        string
	TotalQuantity   int
	ProductionCount int
}

// SalesSummaryResult resultado crudo de tarifas agrupadas por cliente.
type SalesSummaryResult struct {
	CustomerID   string
	CustomerName string
	AvgRate      decimal.Decimal
	RateCount    int
}

// StockSummaryResult resultado crudo de stock asignado agrupado por cliente.
type StockSummaryResult struct {
	CustomerID      string
	CustomerName    string
	TotalStock      int
	AssignmentCount int
}

// DashboardRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type DashboardRepository interface {
	GetCounts(ctx context.Context) (*DashboardCounts, error)
	GetProductionSummary(ctx context.Context) ([]ProductionSummaryResult, error)
	GetSalesSummary(ctx context.Context) ([]SalesSummaryResult, error)
	GetStockSummary(ctx context.Context) ([]StockSummaryResult, error)
}
