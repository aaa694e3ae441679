package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

var _ repository.SalesRateRepository = (*SalesRateRepo)(nil)

// SalesRateRepo implementación de SalesRateRepository sobre PostgreSQL
// (usable con pool o tx). Las consultas del motor temporal leen la tabla
// desnuda; las de lectura para respuestas hacen join con users e items.
type SalesRateRepo struct {
	q Querier
}

// NewSalesRateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesRateRepository(q Querier) *SalesRateRepo {
	return &SalesRateRepo{q: q}
}

const salesRateColumns = `id, customer_id, item_id, rate, effective_from, effective_to, is_active, created_by, updated_by, created_at, updated_at`

// Create persiste una tarifa nueva.
func (r *SalesRateRepo) Create(rate *entity.SalesRate) error {
	query := `
		INSERT INTO sales_rates (` + salesRateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		rate.ID, rate.CustomerID, rate.ItemID, rate.Rate,
		rate.EffectiveFrom, rate.EffectiveTo, rate.IsActive,
		nullable(rate.CreatedBy), nullable(rate.UpdatedBy),
		rate.CreatedAt, rate.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sales rate: %w", err)
	}
	return nil
}

// GetByID obtiene una tarifa por ID con nombres de cliente y artículo.
func (r *SalesRateRepo) GetByID(id string) (*entity.SalesRate, error) {
	query := `
		SELECT sr.id, sr.customer_id, sr.item_id, sr.rate, sr.effective_from, sr.effective_to,
		       sr.is_active, sr.created_by, sr.updated_by, sr.created_at, sr.updated_at,
		       COALESCE(u.name, ''), COALESCE(i.name, '')
		FROM sales_rates sr
		LEFT JOIN users u ON u.id = sr.customer_id
		LEFT JOIN items i ON i.id = sr.item_id
		WHERE sr.id = $1`
	rate, err := scanSalesRateWithNames(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales rate: %w", err)
	}
	return rate, nil
}

// Update persiste todos los campos mutables de la tarifa.
func (r *SalesRateRepo) Update(rate *entity.SalesRate) error {
	query := `
		UPDATE sales_rates
		SET rate = $2, effective_from = $3, effective_to = $4, is_active = $5, updated_by = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rate.ID, rate.Rate, rate.EffectiveFrom, rate.EffectiveTo,
		rate.IsActive, nullable(rate.UpdatedBy), rate.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sales rate: %w", err)
	}
	return nil
}

// Delete elimina una tarifa por ID.
func (r *SalesRateRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sales_rates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sales rate: %w", err)
	}
	return nil
}

// FindActiveOn devuelve las tarifas activas del par cuya vigencia contiene asOf
// (ambos extremos inclusive, effective_to NULL = abierta).
func (r *SalesRateRepo) FindActiveOn(customerID, itemID string, asOf time.Time) ([]*entity.SalesRate, error) {
	query := `
		SELECT ` + salesRateColumns + `
		FROM sales_rates
		WHERE customer_id = $1 AND item_id = $2 AND is_active = TRUE
		  AND effective_from <= $3
		  AND (effective_to IS NULL OR effective_to >= $3)`
	return r.queryRates(query, customerID, itemID, entity.DateOnly(asOf))
}

// FindCurrentActive devuelve la tarifa activa vigente hoy para el par, excluyendo excludeID.
func (r *SalesRateRepo) FindCurrentActive(customerID, itemID, excludeID string) (*entity.SalesRate, error) {
	query := `
		SELECT ` + salesRateColumns + `
		FROM sales_rates
		WHERE customer_id = $1 AND item_id = $2 AND id <> $3 AND is_active = TRUE
		  AND effective_from <= CURRENT_DATE
		  AND (effective_to IS NULL OR effective_to >= CURRENT_DATE)
		LIMIT 1`
	rate, err := scanSalesRate(r.q.QueryRow(context.Background(), query, customerID, itemID, excludeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find current active rate: %w", err)
	}
	return rate, nil
}

// FindOverlappingActive devuelve las activas del par que se solapan con una
// vigencia que empieza en from: arrancan en o antes de from y siguen abiertas
// o terminan en/después de from.
func (r *SalesRateRepo) FindOverlappingActive(customerID, itemID string, from time.Time) ([]*entity.SalesRate, error) {
	query := `
		SELECT ` + salesRateColumns + `
		FROM sales_rates
		WHERE customer_id = $1 AND item_id = $2 AND is_active = TRUE
		  AND effective_from <= $3
		  AND (effective_to IS NULL OR effective_to >= $3)`
	return r.queryRates(query, customerID, itemID, entity.DateOnly(from))
}

// FindMostRecentInactive devuelve la inactiva más reciente del par
// (effective_from descendente), excluyendo excludeID.
func (r *SalesRateRepo) FindMostRecentInactive(customerID, itemID, excludeID string) (*entity.SalesRate, error) {
	query := `
		SELECT ` + salesRateColumns + `
		FROM sales_rates
		WHERE customer_id = $1 AND item_id = $2 AND id <> $3 AND is_active = FALSE
		ORDER BY effective_from DESC
		LIMIT 1`
	rate, err := scanSalesRate(r.q.QueryRow(context.Background(), query, customerID, itemID, excludeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find most recent inactive rate: %w", err)
	}
	return rate, nil
}

// List lista todas las tarifas con nombres, más recientes primero.
func (r *SalesRateRepo) List() ([]*entity.SalesRate, error) {
	return r.queryRatesWithNames(`ORDER BY sr.effective_from DESC`)
}

// ListByCustomer lista las tarifas de un cliente.
func (r *SalesRateRepo) ListByCustomer(customerID string) ([]*entity.SalesRate, error) {
	return r.queryRatesWithNames(`WHERE sr.customer_id = $1 ORDER BY sr.effective_from DESC`, customerID)
}

// ListByItem lista las tarifas de un artículo.
func (r *SalesRateRepo) ListByItem(itemID string) ([]*entity.SalesRate, error) {
	return r.queryRatesWithNames(`WHERE sr.item_id = $1 ORDER BY sr.effective_from DESC`, itemID)
}

func (r *SalesRateRepo) queryRates(query string, args ...any) ([]*entity.SalesRate, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sales rates: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesRate
	for rows.Next() {
		rate, err := scanSalesRate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sales rate: %w", err)
		}
		list = append(list, rate)
	}
	return list, rows.Err()
}

func (r *SalesRateRepo) queryRatesWithNames(tail string, args ...any) ([]*entity.SalesRate, error) {
	query := `
		SELECT sr.id, sr.customer_id, sr.item_id, sr.rate, sr.effective_from, sr.effective_to,
		       sr.is_active, sr.created_by, sr.updated_by, sr.created_at, sr.updated_at,
		       COALESCE(u.name, ''), COALESCE(i.name, '')
		FROM sales_rates sr
		LEFT JOIN users u ON u.id = sr.customer_id
		LEFT JOIN items i ON i.id = sr.item_id
		` + tail
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales rates: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesRate
	for rows.Next() {
		rate, err := scanSalesRateWithNames(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sales rate: %w", err)
		}
		list = append(list, rate)
	}
	return list, rows.Err()
}

func scanSalesRate(row pgx.Row) (*entity.SalesRate, error) {
	var sr entity.SalesRate
	var createdBy, updatedBy *string
	if err := row.Scan(
		&sr.ID, &sr.CustomerID, &sr.ItemID, &sr.Rate, &sr.EffectiveFrom, &sr.EffectiveTo,
		&sr.IsActive, &createdBy, &updatedBy, &sr.CreatedAt, &sr.UpdatedAt,
	); err != nil {
		return nil, err
	}
	sr.CreatedBy = deref(createdBy)
	sr.UpdatedBy = deref(updatedBy)
	return &sr, nil
}

func scanSalesRateWithNames(row pgx.Row) (*entity.SalesRate, error) {
	var sr entity.SalesRate
	var createdBy, updatedBy *string
	if err := row.Scan(
		&sr.ID, &sr.CustomerID, &sr.ItemID, &sr.Rate, &sr.EffectiveFrom, &sr.EffectiveTo,
		&sr.IsActive, &createdBy, &updatedBy, &sr.CreatedAt, &sr.UpdatedAt,
		&sr.CustomerName, &sr.ItemName,
	); err != nil {
		return nil, err
	}
	sr.CreatedBy = deref(createdBy)
	sr.UpdatedBy = deref(updatedBy)
	return &sr, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
