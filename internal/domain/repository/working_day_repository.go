package repository

import (
	"time"

	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
)

// WorkingDayRepository define el puerto de persistencia para WorkingDay (DIP).
// La fecha es única: Create devuelve domain.ErrDuplicate si ya existe jornada ese día.
type WorkingDayRepository interface {
	Create(day *entity.WorkingDay) error
	GetByID(id string) (*entity.WorkingDay, error)
	GetByDate(date time.Time) (*entity.WorkingDay, error)
	Update(day *entity.WorkingDay) error
	List() ([]*entity.WorkingDay, error)
	Delete(id string) error
}
