// Package rates contiene la lógica temporal de tarifas como funciones puras
// sobre el conjunto de tarifas vigente de un par (cliente, artículo).
// Los casos de uso aplican estas funciones dentro de una transacción y
// persisten los resultados; aquí no hay I/O.
package rates

import (
	"sort"
	"time"

	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
)

// Deactivate cierra las tarifas activas cuya vigencia se solapa con una nueva
// vigencia que empieza en from: is_active=false y effective_to=from (la fecha
// frontera pertenece a la tarifa nueva). Muta los elementos recibidos y devuelve
// los modificados para que el caller los persista.
func Deactivate(overlapping []*entity.SalesRate, from time.Time, actorID string, now time.Time) []*entity.SalesRate {
	cutoff := entity.DateOnly(from)
	changed := make([]*entity.SalesRate, 0, len(overlapping))
	for _, prev := range overlapping {
		end := cutoff
		prev.IsActive = false
		prev.EffectiveTo = &end
		prev.UpdatedBy = actorID
		prev.UpdatedAt = now
		changed = append(changed, prev)
	}
	return changed
}

// Close desactiva una tarifa cerrando su vigencia hoy, sin importar si el
// caller pidió otro effective_to.
func Close(rate *entity.SalesRate, actorID string, now time.Time) {
	today := entity.DateOnly(now)
	rate.IsActive = false
	rate.EffectiveTo = &today
	rate.UpdatedBy = actorID
	rate.UpdatedAt = now
}

// Reopen reactiva una tarifa con vigencia abierta hacia adelante
// (effective_to=nil). Se usa al reactivar la predecesora tras borrar la activa.
func Reopen(rate *entity.SalesRate, actorID string, now time.Time) {
	rate.IsActive = true
	rate.EffectiveTo = nil
	rate.UpdatedBy = actorID
	rate.UpdatedAt = now
}

// Overlapping filtra las tarifas activas del par cuya vigencia contiene o
// arranca antes de from y sigue abierta o termina en/después de from.
// Es el predicado de la cascada de desactivación.
func Overlapping(all []*entity.SalesRate, from time.Time) []*entity.SalesRate {
	cutoff := entity.DateOnly(from)
	var out []*entity.SalesRate
	for _, r := range all {
		if !r.IsActive {
			continue
		}
		if entity.DateOnly(r.EffectiveFrom).After(cutoff) {
			continue
		}
		if r.EffectiveTo != nil && entity.DateOnly(*r.EffectiveTo).Before(cutoff) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// MostRecentInactive devuelve la tarifa inactiva más reciente del par por
// effective_from descendente, excluyendo excludeID. nil si no hay ninguna.
func MostRecentInactive(all []*entity.SalesRate, excludeID string) *entity.SalesRate {
	var candidates []*entity.SalesRate
	for _, r := range all {
		if r.IsActive || r.ID == excludeID {
			continue
		}
		candidates = append(candidates, r)
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].EffectiveFrom.After(candidates[j].EffectiveFrom)
	})
	return candidates[0]
}

// ValidRange valida que effective_to (si existe) no sea anterior a effective_from.
func ValidRange(from time.Time, to *time.Time) bool {
	if to == nil {
		return true
	}
	return !entity.DateOnly(*to).Before(entity.DateOnly(from))
}
