package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas de solo lectura para el dashboard.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de dashboard.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// GetCounts totales por entidad en una sola consulta.
func (r *DashboardRepo) GetCounts(ctx context.Context) (*repository.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM items),
			(SELECT COUNT(*) FROM sales_rates),
			(SELECT COUNT(*) FROM stock_assignments),
			(SELECT COUNT(*) FROM production),
			(SELECT COUNT(*) FROM working_days)`
	var c repository.DashboardCounts
	err := r.q.QueryRow(ctx, query).Scan(
		&c.TotalUsers, &c.TotalItems, &c.TotalSalesRates,
		&c.TotalStockAssignments, &c.TotalProduction, &c.TotalWorkingDays,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &c, nil
}

// GetProductionSummary producción total agrupada por artículo.
func (r *DashboardRepo) GetProductionSummary(ctx context.Context) ([]repository.ProductionSummaryResult, error) {
	query := `
		SELECT p.item_id, i.name, COALESCE(SUM(p.quantity), 0), COUNT(p.id)
		FROM production p
		JOIN items i ON i.id = p.item_id
		GROUP BY p.item_id, i.name
		ORDER BY SUM(p.quantity) DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("production summary: %w", err)
	}
	defer rows.Close()
	var out []repository.ProductionSummaryResult
	for rows.Next() {
		var s repository.ProductionSummaryResult
		if err := rows.Scan(&s.ItemID, &s.ItemName, &s.TotalQuantity, &s.ProductionCount); err != nil {
			return nil, fmt.Errorf("scan production summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetSalesSummary tarifa media por cliente sobre tarifas activas.
func (r *DashboardRepo) GetSalesSummary(ctx context.Context) ([]repository.SalesSummaryResult, error) {
	query := `
		SELECT sr.customer_id, u.name, COALESCE(AVG(sr.rate), 0)::numeric, COUNT(sr.id)
		FROM sales_rates sr
		JOIN users u ON u.id = sr.customer_id
		WHERE sr.is_active = TRUE
		GROUP BY sr.customer_id, u.name
		ORDER BY u.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}
	defer rows.Close()
	var out []repository.SalesSummaryResult
	for rows.Next() {
		var s repository.SalesSummaryResult
		if err := rows.Scan(&s.CustomerID, &s.CustomerName, &s.AvgRate, &s.RateCount); err != nil {
			return nil, fmt.Errorf("scan sales summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetStockSummary stock asignado agrupado por cliente.
func (r *DashboardRepo) GetStockSummary(ctx context.Context) ([]repository.StockSummaryResult, error) {
	query := `
		SELECT sa.customer_id, u.name, COALESCE(SUM(sa.quantity), 0), COUNT(sa.id)
		FROM stock_assignments sa
		JOIN users u ON u.id = sa.customer_id
		GROUP BY sa.customer_id, u.name
		ORDER BY SUM(sa.quantity) DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stock summary: %w", err)
	}
	defer rows.Close()
	var out []repository.StockSummaryResult
	for rows.Next() {
		var s repository.StockSummaryResult
		if err := rows.Scan(&s.CustomerID, &s.CustomerName, &s.TotalStock, &s.AssignmentCount); err != nil {
			return nil, fmt.Errorf("scan stock summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
