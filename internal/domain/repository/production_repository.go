package repository

import "github.com/tu-usuario/panaderia-api/internal/domain/entity"

// ProductionRepository define el puerto de persistencia para Production (DIP).
type ProductionRepository interface {
	Create(production *entity.Production) error
	GetByID(id string) (*entity.Production, error)
	Update(production *entity.Production) error
	List() ([]*entity.Production, error)
	ListByItem(itemID string) ([]*entity.Production, error)
	Delete(id string) error
}
