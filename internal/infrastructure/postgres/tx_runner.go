package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/panaderia-api/internal/application/assignment"
	"github.com/tu-usuario/panaderia-api/internal/application/rates"
	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

var _ rates.TxRunner = (*TxRunner)(nil)
var _ assignment.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// El motor temporal depende de esto: la lectura de tarifas solapadas y las
// escrituras de la cascada quedan en la misma tx, todo o nada.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con el repo de tarifas atado a la tx
// y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(rateRepo repository.SalesRateRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewSalesRateRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAssignment inicia una transacción con repos de tarifas y asignaciones
// (resolución de precio + inserción atómicas).
func (r *TxRunner) RunAssignment(ctx context.Context, fn func(
	rateRepo repository.SalesRateRepository,
	assignmentRepo repository.StockAssignmentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewSalesRateRepository(tx), NewStockAssignmentRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
