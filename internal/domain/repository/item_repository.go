package repository

import "github.com/tu-usuario/panaderia-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetByName(name string) (*entity.Item, error)
	Update(item *entity.Item) error
	List() ([]*entity.Item, error)
	Delete(id string) error
}
