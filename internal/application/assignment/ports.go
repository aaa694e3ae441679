package assignment

import (
	"context"

	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de tarifas y asignaciones atados a esa tx, para que la
// resolución de tarifa y la inserción de la asignación sean atómicas.
type TxRunner interface {
	RunAssignment(ctx context.Context, fn func(
		rateRepo repository.SalesRateRepository,
		assignmentRepo repository.StockAssignmentRepository,
	) error) error
}
