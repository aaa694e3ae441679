package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/panaderia-api/internal/application/dto"
	"github.com/tu-usuario/panaderia-api/internal/domain"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

// WorkingDayUseCase casos de uso CRUD para el calendario laboral.
type WorkingDayUseCase struct {
	repo repository.WorkingDayRepository
}

// NewWorkingDayUseCase construye el caso de uso.
func NewWorkingDayUseCase(repo repository.WorkingDayRepository) *WorkingDayUseCase {
	return &WorkingDayUseCase{repo: repo}
}

// Create crea una jornada. La fecha es única en el calendario.
func (uc *WorkingDayUseCase) Create(in dto.CreateWorkingDayRequest) (*dto.WorkingDayResponse, error) {
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByDate(date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	status := in.Status
	if status == "" {
		status = entity.WorkingDayOpen
	}
	isWorking := true
	if in.IsWorking != nil {
		isWorking = *in.IsWorking
	}
	now := time.Now()
	day := &entity.WorkingDay{
		ID:        uuid.New().String(),
		Date:      entity.DateOnly(date),
		Status:    status,
		IsWorking: isWorking,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(day); err != nil {
		return nil, err
	}
	return toWorkingDayResponse(day), nil
}

// GetByID obtiene una jornada por ID.
func (uc *WorkingDayUseCase) GetByID(id string) (*dto.WorkingDayResponse, error) {
	day, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, domain.ErrNotFound
	}
	return toWorkingDayResponse(day), nil
}

// Update actualiza estado o bandera is_working de una jornada.
func (uc *WorkingDayUseCase) Update(id string, in dto.UpdateWorkingDayRequest) (*dto.WorkingDayResponse, error) {
	day, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != nil {
		day.Status = *in.Status
	}
	if in.IsWorking != nil {
		day.IsWorking = *in.IsWorking
	}
	day.UpdatedAt = time.Now()
	if err := uc.repo.Update(day); err != nil {
		return nil, err
	}
	return toWorkingDayResponse(day), nil
}

// List lista todas las jornadas.
func (uc *WorkingDayUseCase) List() (*dto.WorkingDayListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.WorkingDayResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toWorkingDayResponse(d))
	}
	return &dto.WorkingDayListResponse{Items: items}, nil
}

// Delete elimina una jornada por ID.
func (uc *WorkingDayUseCase) Delete(id string) error {
	day, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if day == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toWorkingDayResponse(d *entity.WorkingDay) *dto.WorkingDayResponse {
	if d == nil {
		return nil
	}
	return &dto.WorkingDayResponse{
		ID:        d.ID,
		Date:      d.Date.Format(dto.DateLayout),
		Status:    d.Status,
		IsWorking: d.IsWorking,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
