package assignment

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-api/internal/application/dto"
	"github.com/tu-usuario/panaderia-api/internal/domain"
)

// PriceSource es la variante etiquetada de la fuente de precio de una
// asignación: tarifa manual, tarifa referenciada por ID, o resolución
// automática por fecha. Reemplaza el par de campos opcionales con exclusión
// mutua en runtime.
type PriceSource struct {
	kind   priceKind
	manual decimal.Decimal
	rateID string
}

type priceKind int

const (
	autoResolve priceKind = iota
	manualPrice
	referencedRate
)

// ManualPrice fuente de precio: monto manual.
func ManualPrice(amount decimal.Decimal) PriceSource {
	return PriceSource{kind: manualPrice, manual: amount}
}

// ReferencedRate fuente de precio: tarifa existente por ID.
func ReferencedRate(rateID string) PriceSource {
	return PriceSource{kind: referencedRate, rateID: rateID}
}

// AutoResolve fuente de precio: buscar la tarifa activa en la fecha de asignación.
func AutoResolve() PriceSource {
	return PriceSource{kind: autoResolve}
}

// priceSourceFromRequest clasifica la entrada HTTP en una variante.
// manual_rate y sales_rate_id juntos son entrada ambigua y se rechazan.
func priceSourceFromRequest(in dto.CreateStockAssignmentRequest) (PriceSource, error) {
	switch {
	case in.ManualRate != nil && in.SalesRateID != nil:
		return PriceSource{}, domain.ErrAmbiguousPrice
	case in.ManualRate != nil:
		return ManualPrice(*in.ManualRate), nil
	case in.SalesRateID != nil:
		return ReferencedRate(*in.SalesRateID), nil
	default:
		return AutoResolve(), nil
	}
}
