// Package rates implementa el motor temporal de tarifas: las mutaciones que
// preservan el invariante de una sola tarifa activa por par (cliente, artículo)
// y por fecha. Las cascadas correctivas viven como funciones puras en
// internal/domain/rates; aquí se orquestan dentro de una transacción.
package rates

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-api/internal/application/dto"
	"github.com/tu-usuario/panaderia-api/internal/domain"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
	domrates "github.com/tu-usuario/panaderia-api/internal/domain/rates"
	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
	"github.com/tu-usuario/panaderia-api/pkg/logger"
)

// RateUseCase casos de uso del motor temporal de tarifas.
// txRunner para mutaciones (Create/Update/Delete); rateRepo (atado al pool)
// para lecturas fuera de transacción.
type RateUseCase struct {
	txRunner TxRunner
	rateRepo repository.SalesRateRepository
	log      *logger.Logger
	now      func() time.Time
}

// NewRateUseCase construye el caso de uso.
func NewRateUseCase(txRunner TxRunner, rateRepo repository.SalesRateRepository, log *logger.Logger) *RateUseCase {
	return &RateUseCase{txRunner: txRunner, rateRepo: rateRepo, log: log, now: time.Now}
}

// WithClock reemplaza el reloj del motor (tests).
func (uc *RateUseCase) WithClock(now func() time.Time) *RateUseCase {
	uc.now = now
	return uc
}

// Create inserta una tarifa nueva. Si nace activa, primero cierra en cascada
// las tarifas activas del par cuya vigencia se solapa con la nueva
// (is_active=false, effective_to=effective_from de la nueva): la fecha
// frontera pertenece a la tarifa entrante. Todo dentro de una transacción.
func (uc *RateUseCase) Create(ctx context.Context, actorID string, in dto.CreateSalesRateRequest) (*dto.SalesRateResponse, error) {
	from, err := dto.ParseDate(in.EffectiveFrom)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	var to *time.Time
	if in.EffectiveTo != nil {
		parsed, err := dto.ParseDate(*in.EffectiveTo)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		to = &parsed
	}
	if !domrates.ValidRange(from, to) {
		return nil, domain.ErrInvalidRange
	}
	if !in.Rate.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	now := uc.now()
	rate := &entity.SalesRate{
		ID:            uuid.New().String(),
		CustomerID:    in.CustomerID,
		ItemID:        in.ItemID,
		Rate:          in.Rate,
		EffectiveFrom: entity.DateOnly(from),
		EffectiveTo:   to,
		IsActive:      isActive,
		CreatedBy:     actorID,
		UpdatedBy:     actorID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.txRunner.Run(ctx, func(rateRepo repository.SalesRateRepository) error {
		if isActive {
			overlapping, err := rateRepo.FindOverlappingActive(in.CustomerID, in.ItemID, from)
			if err != nil {
				return err
			}
			for _, prev := range domrates.Deactivate(overlapping, from, actorID, now) {
				if err := rateRepo.Update(prev); err != nil {
					return err
				}
			}
		}
		return rateRepo.Create(rate)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(rate.ID)
}

// Update aplica un parche sobre una tarifa. Las cascadas leen el estado previo
// al parche y los campos se aplican después:
//   - is_active pasa a false → effective_to=hoy, aunque el parche traiga otro valor.
//   - is_active pasa a true → se cierra la activa actual del par (effective_to=hoy)
//     y esta reabre su vigencia salvo que el parche fije un effective_to.
//   - cambio de effective_from en tarifa activa → se repite la cascada de
//     solapamiento con la nueva fecha de inicio.
func (uc *RateUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateSalesRateRequest) (*dto.SalesRateResponse, error) {
	var newFrom *time.Time
	if in.EffectiveFrom != nil {
		parsed, err := dto.ParseDate(*in.EffectiveFrom)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		parsed = entity.DateOnly(parsed)
		newFrom = &parsed
	}
	var newTo *time.Time
	if in.EffectiveTo != nil {
		parsed, err := dto.ParseDate(*in.EffectiveTo)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		parsed = entity.DateOnly(parsed)
		newTo = &parsed
	}
	if in.Rate != nil && !in.Rate.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	err := uc.txRunner.Run(ctx, func(rateRepo repository.SalesRateRepository) error {
		rate, err := rateRepo.GetByID(id)
		if err != nil {
			return err
		}
		if rate == nil {
			return domain.ErrNotFound
		}

		wasActive := rate.IsActive
		deactivating := in.IsActive != nil && !*in.IsActive && wasActive
		activating := in.IsActive != nil && *in.IsActive && !wasActive

		// Cascada de reactivación: cerrar la activa actual del par antes de
		// reabrir esta.
		if activating {
			other, err := rateRepo.FindCurrentActive(rate.CustomerID, rate.ItemID, id)
			if err != nil {
				return err
			}
			if other != nil {
				domrates.Close(other, actorID, now)
				if err := rateRepo.Update(other); err != nil {
					return err
				}
			}
		}

		// Cascada de solapamiento al mover effective_from de una tarifa que es
		// (o queda) activa. La propia tarifa no se cierra a sí misma.
		if newFrom != nil && !deactivating && (wasActive || activating) {
			overlapping, err := rateRepo.FindOverlappingActive(rate.CustomerID, rate.ItemID, *newFrom)
			if err != nil {
				return err
			}
			siblings := overlapping[:0]
			for _, r := range overlapping {
				if r.ID != id {
					siblings = append(siblings, r)
				}
			}
			for _, prev := range domrates.Deactivate(siblings, *newFrom, actorID, now) {
				if err := rateRepo.Update(prev); err != nil {
					return err
				}
			}
		}

		// Aplicar el parche después de las cascadas.
		if in.Rate != nil {
			rate.Rate = *in.Rate
		}
		if newFrom != nil {
			rate.EffectiveFrom = *newFrom
		}
		switch {
		case deactivating:
			domrates.Close(rate, actorID, now)
		case activating:
			rate.IsActive = true
			rate.EffectiveTo = newTo // nil reabre la vigencia
		default:
			if newTo != nil {
				rate.EffectiveTo = newTo
			}
		}
		if !domrates.ValidRange(rate.EffectiveFrom, rate.EffectiveTo) {
			return domain.ErrInvalidRange
		}
		rate.UpdatedBy = actorID
		rate.UpdatedAt = now
		return rateRepo.Update(rate)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete elimina una tarifa. Si era la activa del par, reactiva la inactiva
// más reciente con vigencia reabierta (effective_to=nil) antes de borrar.
func (uc *RateUseCase) Delete(ctx context.Context, actorID, id string) error {
	now := uc.now()
	return uc.txRunner.Run(ctx, func(rateRepo repository.SalesRateRepository) error {
		rate, err := rateRepo.GetByID(id)
		if err != nil {
			return err
		}
		if rate == nil {
			return domain.ErrNotFound
		}
		if rate.IsActive {
			prev, err := rateRepo.FindMostRecentInactive(rate.CustomerID, rate.ItemID, id)
			if err != nil {
				return err
			}
			if prev != nil {
				domrates.Reopen(prev, actorID, now)
				if err := rateRepo.Update(prev); err != nil {
					return err
				}
			}
		}
		return rateRepo.Delete(id)
	})
}

// GetByID obtiene una tarifa por ID con nombres de cliente y artículo.
func (uc *RateUseCase) GetByID(id string) (*dto.SalesRateResponse, error) {
	rate, err := uc.rateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, domain.ErrNotFound
	}
	return toSalesRateResponse(rate), nil
}

// List lista todas las tarifas.
func (uc *RateUseCase) List() (*dto.SalesRateListResponse, error) {
	list, err := uc.rateRepo.List()
	if err != nil {
		return nil, err
	}
	return toSalesRateList(list), nil
}

// ListByCustomer enumeración de solo lectura para reportes por cliente.
func (uc *RateUseCase) ListByCustomer(customerID string) (*dto.SalesRateListResponse, error) {
	list, err := uc.rateRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return toSalesRateList(list), nil
}

// ListByItem enumeración de solo lectura para reportes por artículo.
func (uc *RateUseCase) ListByItem(itemID string) (*dto.SalesRateListResponse, error) {
	list, err := uc.rateRepo.ListByItem(itemID)
	if err != nil {
		return nil, err
	}
	return toSalesRateList(list), nil
}

func toSalesRateResponse(r *entity.SalesRate) *dto.SalesRateResponse {
	if r == nil {
		return nil
	}
	return &dto.SalesRateResponse{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		CustomerName:  r.CustomerName,
		ItemID:        r.ItemID,
		ItemName:      r.ItemName,
		Rate:          r.Rate,
		EffectiveFrom: r.EffectiveFrom.Format(dto.DateLayout),
		EffectiveTo:   dto.FormatDate(r.EffectiveTo),
		IsActive:      r.IsActive,
		CreatedBy:     r.CreatedBy,
		UpdatedBy:     r.UpdatedBy,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toSalesRateList(list []*entity.SalesRate) *dto.SalesRateListResponse {
	items := make([]dto.SalesRateResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toSalesRateResponse(r))
	}
	return &dto.SalesRateListResponse{Items: items}
}
