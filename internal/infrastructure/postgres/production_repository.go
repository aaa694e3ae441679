package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo implementación de ProductionRepository sobre PostgreSQL (usable con pool o tx).
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

// Create persiste un registro de producción.
func (r *ProductionRepo) Create(p *entity.Production) error {
	query := `
		INSERT INTO production (id, item_id, quantity, production_date, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ItemID, p.Quantity, p.ProductionDate, nullable(p.Note), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert production: %w", err)
	}
	return nil
}

// GetByID obtiene un registro con el nombre del artículo.
func (r *ProductionRepo) GetByID(id string) (*entity.Production, error) {
	query := productionSelect + ` WHERE p.id = $1`
	p, err := scanProduction(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production: %w", err)
	}
	return p, nil
}

// Update persiste cantidad, fecha y nota.
func (r *ProductionRepo) Update(p *entity.Production) error {
	query := `
		UPDATE production SET quantity = $2, production_date = $3, note = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Quantity, p.ProductionDate, nullable(p.Note), p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update production: %w", err)
	}
	return nil
}

// List lista todos los registros, más recientes primero.
func (r *ProductionRepo) List() ([]*entity.Production, error) {
	return r.queryProduction(productionSelect + ` ORDER BY p.production_date DESC`)
}

// ListByItem lista la producción de un artículo.
func (r *ProductionRepo) ListByItem(itemID string) ([]*entity.Production, error) {
	return r.queryProduction(productionSelect+` WHERE p.item_id = $1 ORDER BY p.production_date DESC`, itemID)
}

// Delete elimina un registro por ID.
func (r *ProductionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM production WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete production: %w", err)
	}
	return nil
}

const productionSelect = `
	SELECT p.id, p.item_id, p.quantity, p.production_date, p.note, p.created_at, p.updated_at,
	       COALESCE(i.name, '')
	FROM production p
	LEFT JOIN items i ON i.id = p.item_id`

func (r *ProductionRepo) queryProduction(query string, args ...any) ([]*entity.Production, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list production: %w", err)
	}
	defer rows.Close()
	var list []*entity.Production
	for rows.Next() {
		p, err := scanProduction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan production: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduction(row pgx.Row) (*entity.Production, error) {
	var p entity.Production
	var note *string
	if err := row.Scan(&p.ID, &p.ItemID, &p.Quantity, &p.ProductionDate, &note, &p.CreatedAt, &p.UpdatedAt, &p.ItemName); err != nil {
		return nil, err
	}
	p.Note = deref(note)
	return &p, nil
}
