package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/panaderia-api/internal/application/dto"
	"github.com/tu-usuario/panaderia-api/internal/domain"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

// ProductionUseCase casos de uso CRUD para registros de producción.
type ProductionUseCase struct {
	repo     repository.ProductionRepository
	itemRepo repository.ItemRepository
}

// NewProductionUseCase construye el caso de uso.
func NewProductionUseCase(repo repository.ProductionRepository, itemRepo repository.ItemRepository) *ProductionUseCase {
	return &ProductionUseCase{repo: repo, itemRepo: itemRepo}
}

// Create registra producción de un artículo existente.
func (uc *ProductionUseCase) Create(in dto.CreateProductionRequest) (*dto.ProductionResponse, error) {
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	prodDate, err := dto.ParseDate(in.ProductionDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	prod := &entity.Production{
		ID:             uuid.New().String(),
		ItemID:         in.ItemID,
		Quantity:       in.Quantity,
		ProductionDate: entity.DateOnly(prodDate),
		Note:           in.Note,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(prod); err != nil {
		return nil, err
	}
	return uc.GetByID(prod.ID)
}

// GetByID obtiene un registro de producción con el nombre del artículo.
func (uc *ProductionUseCase) GetByID(id string) (*dto.ProductionResponse, error) {
	prod, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prod == nil {
		return nil, domain.ErrNotFound
	}
	return toProductionResponse(prod), nil
}

// Update corrige cantidad, fecha o nota de un registro.
func (uc *ProductionUseCase) Update(id string, in dto.UpdateProductionRequest) (*dto.ProductionResponse, error) {
	prod, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prod == nil {
		return nil, domain.ErrNotFound
	}
	if in.Quantity != nil {
		prod.Quantity = *in.Quantity
	}
	if in.ProductionDate != nil {
		d, err := dto.ParseDate(*in.ProductionDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		prod.ProductionDate = entity.DateOnly(d)
	}
	if in.Note != nil {
		prod.Note = *in.Note
	}
	prod.UpdatedAt = time.Now()
	if err := uc.repo.Update(prod); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// List lista todos los registros de producción.
func (uc *ProductionUseCase) List() (*dto.ProductionListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toProductionList(list), nil
}

// ListByItem lista la producción de un artículo.
func (uc *ProductionUseCase) ListByItem(itemID string) (*dto.ProductionListResponse, error) {
	list, err := uc.repo.ListByItem(itemID)
	if err != nil {
		return nil, err
	}
	return toProductionList(list), nil
}

// Delete elimina un registro de producción por ID.
func (uc *ProductionUseCase) Delete(id string) error {
	prod, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if prod == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductionResponse(p *entity.Production) *dto.ProductionResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductionResponse{
		ID:             p.ID,
		ItemID:         p.ItemID,
		ItemName:       p.ItemName,
		Quantity:       p.Quantity,
		ProductionDate: p.ProductionDate.Format(dto.DateLayout),
		Note:           p.Note,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toProductionList(list []*entity.Production) *dto.ProductionListResponse {
	items := make([]dto.ProductionResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductionResponse(p))
	}
	return &dto.ProductionListResponse{Items: items}
}
