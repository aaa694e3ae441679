package repository

import "github.com/tu-usuario/panaderia-api/internal/domain/entity"

// StockAssignmentRepository define el puerto de persistencia para StockAssignment (DIP).
type StockAssignmentRepository interface {
	Create(assignment *entity.StockAssignment) error
	GetByID(id string) (*entity.StockAssignment, error)
	Update(assignment *entity.StockAssignment) error
	Delete(id string) error
	List() ([]*entity.StockAssignment, error)
	ListByCustomer(customerID string) ([]*entity.StockAssignment, error)
	ListByItem(itemID string) ([]*entity.StockAssignment, error)
}
