package rates

import (
	"context"

	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de tarifas atado a esa tx. Cada Create/Update/Delete del motor
// temporal corre completo dentro de una transacción: la secuencia
// leer-solapadas → cascada → escribir queda aislada de mutaciones concurrentes
// sobre el mismo par (cliente, artículo).
type TxRunner interface {
	Run(ctx context.Context, fn func(rateRepo repository.SalesRateRepository) error) error
}
