// Package assignment implementa la asignación de stock a clientes y su
// tarificación: al crear la asignación se resuelve exactamente una fuente de
// precio (manual, tarifa referenciada o búsqueda automática) y el valor queda
// congelado; ninguna mutación posterior de tarifas la altera.
package assignment

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

// AssignmentUseCase casos de uso de asignaciones de stock.
type AssignmentUseCase struct {
	txRunner       TxRunner
	assignmentRepo repository.StockAssignmentRepository
	log            *logger.Logger
}

// NewAssignmentUseCase construye el caso de uso.
func NewAssignmentUseCase(txRunner TxRunner, assignmentRepo repository.StockAssignmentRepository, log *logger.Logger) *AssignmentUseCase {
	return &AssignmentUseCase{txRunner: txRunner, assignmentRepo: assignmentRepo, log: log}
}

// Create tarifica y persiste una asignación en una sola transacción.
//   - manual_rate → se usa tal cual, sales_rate_id queda nil.
//   - sales_rate_id → la tarifa debe existir y pertenecer al mismo par
//     (cliente, artículo) de la asignación.
//   - ninguno → se resuelve la tarifa activa en assignment_date; sin tarifa
//     activa ni manual la petición se rechaza.
func (uc *AssignmentUseCase) Create(ctx context.Context, in dto.CreateStockAssignmentRequest) (*dto.StockAssignmentResponse, error) {
	assignDate, err := dto.ParseDate(in.AssignmentDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	source, err := priceSourceFromRequest(in)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	asg := &entity.StockAssignment{
		ID:             uuid.New().String(),
		CustomerID:     in.CustomerID,
		ItemID:         in.ItemID,
		Quantity:       in.Quantity,
		AssignmentDate: entity.DateOnly(assignDate),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = uc.txRunner.RunAssignment(ctx, func(
		rateRepo repository.SalesRateRepository,
		assignmentRepo repository.StockAssignmentRepository,
	) error {
		switch source.kind {
		case manualPrice:
			if !source.manual.GreaterThan(decimal.Zero) {
				return domain.ErrInvalidInput
			}
			asg.Rate = source.manual
			asg.SalesRateID = nil

		case referencedRate:
			rate, err := rateRepo.GetByID(source.rateID)
			if err != nil {
				return err
			}
			if rate == nil {
				return domain.ErrNotFound
			}
			if rate.CustomerID != in.CustomerID || rate.ItemID != in.ItemID {
				return domain.ErrRateMismatch
			}
			asg.Rate = rate.Rate
			asg.SalesRateID = &rate.ID

		case autoResolve:
			candidates, err := rateRepo.FindActiveOn(in.CustomerID, in.ItemID, assignDate)
			if err != nil {
				return err
			}
			rate, conflict := domrates.Resolve(candidates, assignDate)
			if conflict {
				uc.log.Warn().
					Str("customer_id", in.CustomerID).
					Str("item_id", in.ItemID).
					Str("as_of", in.AssignmentDate).
					Msg("más de una tarifa activa cubre la fecha de asignación: invariante roto")
			}
			if rate == nil {
				return domain.ErrNoActiveRate
			}
			asg.Rate = rate.Rate
			asg.SalesRateID = &rate.ID
		}
		return assignmentRepo.Create(asg)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(asg.ID)
}

// GetByID obtiene una asignación con nombres de cliente y artículo.
func (uc *AssignmentUseCase) GetByID(id string) (*dto.StockAssignmentResponse, error) {
	asg, err := uc.assignmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asg == nil {
		return nil, domain.ErrNotFound
	}
	return toAssignmentResponse(asg), nil
}

// List lista todas las asignaciones.
func (uc *AssignmentUseCase) List() (*dto.StockAssignmentListResponse, error) {
	list, err := uc.assignmentRepo.List()
	if err != nil {
		return nil, err
	}
	return toAssignmentList(list), nil
}

// ListByCustomer lista las asignaciones de un cliente.
func (uc *AssignmentUseCase) ListByCustomer(customerID string) (*dto.StockAssignmentListResponse, error) {
	list, err := uc.assignmentRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return toAssignmentList(list), nil
}

// ListByItem lista las asignaciones de un artículo.
func (uc *AssignmentUseCase) ListByItem(itemID string) (*dto.StockAssignmentListResponse, error) {
	list, err := uc.assignmentRepo.ListByItem(itemID)
	if err != nil {
		return nil, err
	}
	return toAssignmentList(list), nil
}

// Update corrige cantidad o tarifa de una asignación existente.
// Es una corrección manual directa, no una re-tarificación: no consulta tarifas.
func (uc *AssignmentUseCase) Update(id string, in dto.UpdateStockAssignmentRequest) (*dto.StockAssignmentResponse, error) {
	asg, err := uc.assignmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asg == nil {
		return nil, domain.ErrNotFound
	}
	if in.Quantity != nil {
		asg.Quantity = *in.Quantity
	}
	if in.Rate != nil {
		if !in.Rate.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		asg.Rate = *in.Rate
		asg.SalesRateID = nil // la tarifa pasa a ser manual
	}
	asg.UpdatedAt = time.Now()
	if err := uc.assignmentRepo.Update(asg); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete elimina una asignación por ID.
func (uc *AssignmentUseCase) Delete(id string) error {
	asg, err := uc.assignmentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if asg == nil {
		return domain.ErrNotFound
	}
	return uc.assignmentRepo.Delete(id)
}

func toAssignmentResponse(a *entity.StockAssignment) *dto.StockAssignmentResponse {
	if a == nil {
		return nil
	}
	return &dto.StockAssignmentResponse{
		ID:             a.ID,
		CustomerID:     a.CustomerID,
		CustomerName:   a.CustomerName,
		ItemID:         a.ItemID,
		ItemName:       a.ItemName,
		Quantity:       a.Quantity,
		AssignmentDate: a.AssignmentDate.Format(dto.DateLayout),
		SalesRateID:    a.SalesRateID,
		Rate:           a.Rate,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func toAssignmentList(list []*entity.StockAssignment) *dto.StockAssignmentListResponse {
	items := make([]dto.StockAssignmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAssignmentResponse(a))
	}
	return &dto.StockAssignmentListResponse{Items: items}
}
