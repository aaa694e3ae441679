package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

var _ repository.StockAssignmentRepository = (*StockAssignmentRepo)(nil)

// StockAssignmentRepo implementación de StockAssignmentRepository sobre PostgreSQL (usable con pool o tx).
type StockAssignmentRepo struct {
	q Querier
}

// NewStockAssignmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockAssignmentRepository(q Querier) *StockAssignmentRepo {
	return &StockAssignmentRepo{q: q}
}

// Create persiste una asignación de stock con su tarifa congelada.
func (r *StockAssignmentRepo) Create(a *entity.StockAssignment) error {
	query := `
		INSERT INTO stock_assignments (id, customer_id, item_id, quantity, assignment_date, sales_rate_id, rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.CustomerID, a.ItemID, a.Quantity, a.AssignmentDate,
		a.SalesRateID, a.Rate, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock assignment: %w", err)
	}
	return nil
}

// GetByID obtiene una asignación por ID con nombres de cliente y artículo.
func (r *StockAssignmentRepo) GetByID(id string) (*entity.StockAssignment, error) {
	query := assignmentSelect + ` WHERE sa.id = $1`
	a, err := scanAssignment(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock assignment: %w", err)
	}
	return a, nil
}

// Update persiste cantidad, tarifa y referencia de tarifa.
func (r *StockAssignmentRepo) Update(a *entity.StockAssignment) error {
	query := `
		UPDATE stock_assignments
		SET quantity = $2, sales_rate_id = $3, rate = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Quantity, a.SalesRateID, a.Rate, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock assignment: %w", err)
	}
	return nil
}

// Delete elimina una asignación por ID.
func (r *StockAssignmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock assignment: %w", err)
	}
	return nil
}

// List lista todas las asignaciones, más recientes primero.
func (r *StockAssignmentRepo) List() ([]*entity.StockAssignment, error) {
	return r.queryAssignments(assignmentSelect + ` ORDER BY sa.assignment_date DESC`)
}

// ListByCustomer lista las asignaciones de un cliente.
func (r *StockAssignmentRepo) ListByCustomer(customerID string) ([]*entity.StockAssignment, error) {
	return r.queryAssignments(assignmentSelect+` WHERE sa.customer_id = $1 ORDER BY sa.assignment_date DESC`, customerID)
}

// ListByItem lista las asignaciones de un artículo.
func (r *StockAssignmentRepo) ListByItem(itemID string) ([]*entity.StockAssignment, error) {
	return r.queryAssignments(assignmentSelect+` WHERE sa.item_id = $1 ORDER BY sa.assignment_date DESC`, itemID)
}

const assignmentSelect = `
	SELECT sa.id, sa.customer_id, sa.item_id, sa.quantity, sa.assignment_date,
	       sa.sales_rate_id, sa.rate, sa.created_at, sa.updated_at,
	       COALESCE(u.name, ''), COALESCE(i.name, '')
	FROM stock_assignments sa
	LEFT JOIN users u ON u.id = sa.customer_id
	LEFT JOIN items i ON i.id = sa.item_id`

func (r *StockAssignmentRepo) queryAssignments(query string, args ...any) ([]*entity.StockAssignment, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock assignments: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock assignment: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func scanAssignment(row pgx.Row) (*entity.StockAssignment, error) {
	var a entity.StockAssignment
	if err := row.Scan(
		&a.ID, &a.CustomerID, &a.ItemID, &a.Quantity, &a.AssignmentDate,
		&a.SalesRateID, &a.Rate, &a.CreatedAt, &a.UpdatedAt,
		&a.CustomerName, &a.ItemName,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
