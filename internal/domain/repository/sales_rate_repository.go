package repository

import (
	"time"

	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
)

// SalesRateRepository define el puerto de persistencia para SalesRate (DIP).
// Es el único componente que escribe filas de sales_rates; el motor temporal
// y el resolutor leen y mutan solo a través de él. Todas las consultas están
// acotadas a un par (cliente, artículo), pares distintos son independientes.
type SalesRateRepository interface {
	Create(rate *entity.SalesRate) error
	GetByID(id string) (*entity.SalesRate, error)
	Update(rate *entity.SalesRate) error
	Delete(id string) error

	// FindActiveOn devuelve las tarifas activas del par cuya vigencia contiene asOf.
	// Bajo el invariante hay a lo sumo una; el slice permite el desempate defensivo.
	FindActiveOn(customerID, itemID string, asOf time.Time) ([]*entity.SalesRate, error)
	// FindCurrentActive devuelve la tarifa activa vigente hoy para el par, excluyendo excludeID.
	FindCurrentActive(customerID, itemID, excludeID string) (*entity.SalesRate, error)
	// FindOverlappingActive devuelve las activas del par que se solapan con una vigencia que empieza en from.
	FindOverlappingActive(customerID, itemID string, from time.Time) ([]*entity.SalesRate, error)
	// FindMostRecentInactive devuelve la inactiva más reciente del par (effective_from desc), excluyendo excludeID.
	FindMostRecentInactive(customerID, itemID, excludeID string) (*entity.SalesRate, error)

	// Enumeración de solo lectura para colaboradores de reporte.
	List() ([]*entity.SalesRate, error)
	ListByCustomer(customerID string) ([]*entity.SalesRate, error)
	ListByItem(itemID string) ([]*entity.SalesRate, error)
}
