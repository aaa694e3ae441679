package rates

import (
	"time"

	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
)

// Resolve devuelve la tarifa activa cuya vigencia contiene asOf. Bajo el
// invariante del motor califica a lo sumo una; si hay más de una (datos
// corruptos) gana la de effective_from más reciente y conflict=true para que
// el caller lo registre como advertencia de integridad.
func Resolve(all []*entity.SalesRate, asOf time.Time) (match *entity.SalesRate, conflict bool) {
	for _, r := range all {
		if !r.IsActive || !r.Covers(asOf) {
			continue
		}
		if match == nil {
			match = r
			continue
		}
		conflict = true
		if r.EffectiveFrom.After(match.EffectiveFrom) {
			match = r
		}
	}
	return match, conflict
}
