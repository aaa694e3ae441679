package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/panaderia-api/internal/domain"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

var _ repository.WorkingDayRepository = (*WorkingDayRepo)(nil)

// WorkingDayRepo implementación de WorkingDayRepository sobre PostgreSQL (usable con pool o tx).
type WorkingDayRepo struct {
	q Querier
}

// NewWorkingDayRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkingDayRepository(q Querier) *WorkingDayRepo {
	return &WorkingDayRepo{q: q}
}

// Create persiste una jornada. La fecha lleva constraint único.
func (r *WorkingDayRepo) Create(day *entity.WorkingDay) error {
	query := `
		INSERT INTO working_days (id, date, status, is_working, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		day.ID, day.Date, day.Status, day.IsWorking, day.CreatedAt, day.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert working day: %w", err)
	}
	return nil
}

// GetByID obtiene una jornada por ID.
func (r *WorkingDayRepo) GetByID(id string) (*entity.WorkingDay, error) {
	return r.getOne(`WHERE id = $1`, id)
}

// GetByDate obtiene la jornada de una fecha.
func (r *WorkingDayRepo) GetByDate(date time.Time) (*entity.WorkingDay, error) {
	return r.getOne(`WHERE date = $1`, entity.DateOnly(date))
}

// Update persiste estado y bandera is_working.
func (r *WorkingDayRepo) Update(day *entity.WorkingDay) error {
	query := `UPDATE working_days SET status = $2, is_working = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, day.ID, day.Status, day.IsWorking, day.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update working day: %w", err)
	}
	return nil
}

// List lista todas las jornadas, más recientes primero.
func (r *WorkingDayRepo) List() ([]*entity.WorkingDay, error) {
	query := `
		SELECT id, date, status, is_working, created_at, updated_at
		FROM working_days ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list working days: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkingDay
	for rows.Next() {
		var d entity.WorkingDay
		if err := rows.Scan(&d.ID, &d.Date, &d.Status, &d.IsWorking, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan working day: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete elimina una jornada por ID.
func (r *WorkingDayRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM working_days WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete working day: %w", err)
	}
	return nil
}

func (r *WorkingDayRepo) getOne(where string, arg any) (*entity.WorkingDay, error) {
	query := `
		SELECT id, date, status, is_working, created_at, updated_at
		FROM working_days ` + where
	var d entity.WorkingDay
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&d.ID, &d.Date, &d.Status, &d.IsWorking, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get working day: %w", err)
	}
	return &d, nil
}
