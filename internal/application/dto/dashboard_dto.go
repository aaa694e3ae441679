package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO totales globales del back-office.
type DashboardSummaryDTO struct {
	TotalUsers            int `json:"total_users"`
	TotalItems            int `json:"total_items"`
	TotalSalesRates       int `json:"total_sales_rates"`
	TotalStockAssignments int `json:"total_stock_assignments"`
	TotalProduction       int `json:"total_production"`
	TotalWorkingDays      int `json:"total_working_days"`
}

// ProductionSummaryDTO producción acumulada por artículo.
type ProductionSummaryDTO struct {
	ItemID          string `json:"item_id"`
	ItemName        string `json:"item_name"`
	TotalQuantity   int    `json:"total_quantity"`
	ProductionCount int    `json:"production_count"`
}

// SalesSummaryDTO tarifa promedio por cliente.
type SalesSummaryDTO struct {
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	AvgRate      decimal.Decimal `json:"avg_rate"`
	RateCount    int             `json:"rate_count"`
}

// StockSummaryDTO stock asignado acumulado por cliente.
type StockSummaryDTO struct {
	CustomerID      string `json:"customer_id"`
	CustomerName    string `json:"customer_name"`
	TotalStock      int    `json:"total_stock"`
	AssignmentCount int    `json:"assignment_count"`
}
