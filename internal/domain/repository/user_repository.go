package repository

import "github.com/tu-usuario/panaderia-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByName(name string) (*entity.User, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
	Delete(id string) error
}
