package rates

import (
	"context"
	"time"

	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
	domrates "github.com/tu-usuario/panaderia-api/internal/domain/rates"
)

// Resolve devuelve la tarifa activa del par vigente en asOf, o nil si ninguna
// aplica. Si el invariante está roto y más de una activa cubre la fecha, gana
// la de effective_from más reciente y se registra una advertencia de
// integridad; es el único error que el motor recupera localmente.
func (uc *RateUseCase) Resolve(ctx context.Context, customerID, itemID string, asOf time.Time) (*entity.SalesRate, error) {
	candidates, err := uc.rateRepo.FindActiveOn(customerID, itemID, asOf)
	if err != nil {
		return nil, err
	}
	match, conflict := domrates.Resolve(candidates, asOf)
	if conflict {
		uc.log.Warn().
			Str("customer_id", customerID).
			Str("item_id", itemID).
			Str("as_of", asOf.Format("2006-01-02")).
			Int("candidates", len(candidates)).
			Msg("más de una tarifa activa cubre la fecha: invariante roto, se resuelve por effective_from más reciente")
	}
	return match, nil
}
