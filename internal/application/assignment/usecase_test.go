package assignment_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/panaderia-api/internal/application/assignment"
	"github.com/tu-usuario/panaderia-api/internal/application/dto"
	"github.com/tu-usuario/panaderia-api/internal/domain"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
	"github.com/tu-usuario/panaderia-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El repo de tarifas solo necesita GetByID y FindActiveOn:
// el resto de métodos no participa en la tarificación de asignaciones.
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCustomer = "00000000-0000-0000-0000-000000000001"
	testItem     = "00000000-0000-0000-0000-000000000002"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

type memRateRepo struct {
	rows map[string]entity.SalesRate
}

func (m *memRateRepo) add(r entity.SalesRate) string {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	m.rows[r.ID] = r
	return r.ID
}

func (m *memRateRepo) Create(r *entity.SalesRate) error { m.rows[r.ID] = *r; return nil }
func (m *memRateRepo) GetByID(id string) (*entity.SalesRate, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := r
	return &cp, nil
}
func (m *memRateRepo) Update(r *entity.SalesRate) error { m.rows[r.ID] = *r; return nil }
func (m *memRateRepo) Delete(id string) error           { delete(m.rows, id); return nil }

func (m *memRateRepo) FindActiveOn(customerID, itemID string, asOf time.Time) ([]*entity.SalesRate, error) {
	var out []*entity.SalesRate
	for _, r := range m.rows {
		if r.CustomerID == customerID && r.ItemID == itemID && r.IsActive && r.Covers(asOf) {
			cp := r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memRateRepo) FindCurrentActive(string, string, string) (*entity.SalesRate, error) {
	return nil, nil
}
func (m *memRateRepo) FindOverlappingActive(string, string, time.Time) ([]*entity.SalesRate, error) {
	return nil, nil
}
func (m *memRateRepo) FindMostRecentInactive(string, string, string) (*entity.SalesRate, error) {
	return nil, nil
}
func (m *memRateRepo) List() ([]*entity.SalesRate, error)                 { return nil, nil }
func (m *memRateRepo) ListByCustomer(string) ([]*entity.SalesRate, error) { return nil, nil }
func (m *memRateRepo) ListByItem(string) ([]*entity.SalesRate, error)     { return nil, nil }

type memAssignmentRepo struct {
	rows map[string]entity.StockAssignment
}

func (m *memAssignmentRepo) Create(a *entity.StockAssignment) error { m.rows[a.ID] = *a; return nil }
func (m *memAssignmentRepo) GetByID(id string) (*entity.StockAssignment, error) {
	a, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := a
	return &cp, nil
}
func (m *memAssignmentRepo) Update(a *entity.StockAssignment) error { m.rows[a.ID] = *a; return nil }
func (m *memAssignmentRepo) Delete(id string) error                 { delete(m.rows, id); return nil }
func (m *memAssignmentRepo) List() ([]*entity.StockAssignment, error) {
	var out []*entity.StockAssignment
	for _, a := range m.rows {
		cp := a
		out = append(out, &cp)
	}
	return out, nil
}
func (m *memAssignmentRepo) ListByCustomer(customerID string) ([]*entity.StockAssignment, error) {
	var out []*entity.StockAssignment
	for _, a := range m.rows {
		if a.CustomerID == customerID {
			cp := a
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (m *memAssignmentRepo) ListByItem(itemID string) ([]*entity.StockAssignment, error) {
	var out []*entity.StockAssignment
	for _, a := range m.rows {
		if a.ItemID == itemID {
			cp := a
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memTxRunner struct {
	rateRepo       repository.SalesRateRepository
	assignmentRepo repository.StockAssignmentRepository
}

func (t *memTxRunner) RunAssignment(_ context.Context, fn func(
	rateRepo repository.SalesRateRepository,
	assignmentRepo repository.StockAssignmentRepository,
) error) error {
	return fn(t.rateRepo, t.assignmentRepo)
}

func newUseCase() (*assignment.AssignmentUseCase, *memRateRepo) {
	rateRepo := &memRateRepo{rows: make(map[string]entity.SalesRate)}
	assignmentRepo := &memAssignmentRepo{rows: make(map[string]entity.StockAssignment)}
	uc := assignment.NewAssignmentUseCase(
		&memTxRunner{rateRepo: rateRepo, assignmentRepo: assignmentRepo},
		assignmentRepo,
		logger.Nop(),
	)
	return uc, rateRepo
}

func activeRate(from string, to *time.Time, value float64) entity.SalesRate {
	return entity.SalesRate{
		CustomerID:    testCustomer,
		ItemID:        testItem,
		Rate:          decimal.NewFromFloat(value),
		EffectiveFrom: day(from),
		EffectiveTo:   to,
		IsActive:      true,
	}
}

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func strPtr(s string) *string { return &s }

func baseRequest() dto.CreateStockAssignmentRequest {
	return dto.CreateStockAssignmentRequest{
		CustomerID:     testCustomer,
		ItemID:         testItem,
		Quantity:       12,
		AssignmentDate: "2026-03-10",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — resolución automática de tarifa
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AutoResuelve_TarifaActivaEnLaFecha(t *testing.T) {
	uc, rateRepo := newUseCase()
	rateID := rateRepo.add(activeRate("2026-01-01", nil, 10.50))

	out, err := uc.Create(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.True(t, decimal.NewFromFloat(10.50).Equal(out.Rate))
	require.NotNil(t, out.SalesRateID)
	assert.Equal(t, rateID, *out.SalesRateID, "la asignación referencia la tarifa resuelta")
	assert.Equal(t, 12, out.Quantity)
	assert.Equal(t, "2026-03-10", out.AssignmentDate)
}

func TestCreate_AutoResuelve_SinTarifaActiva_Rechaza(t *testing.T) {
	uc, rateRepo := newUseCase()
	// Tarifa que terminó antes de la fecha de asignación.
	end := day("2026-02-01")
	rateRepo.add(activeRate("2026-01-01", &end, 10.50))

	_, err := uc.Create(context.Background(), baseRequest())
	assert.ErrorIs(t, err, domain.ErrNoActiveRate,
		"sin tarifa activa en assignment_date y sin precio manual la petición se rechaza")
}

func TestCreate_AutoResuelve_UsaLaFechaDeAsignacionNoHoy(t *testing.T) {
	uc, rateRepo := newUseCase()
	end := day("2026-01-31")
	january := rateRepo.add(activeRate("2026-01-01", &end, 8.00))
	rateRepo.add(activeRate("2026-02-01", nil, 9.00))

	in := baseRequest()
	in.AssignmentDate = "2026-01-15"
	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromFloat(8.00).Equal(out.Rate),
		"la búsqueda es sobre assignment_date, no sobre la fecha actual")
	assert.Equal(t, january, *out.SalesRateID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — precio manual y tarifa referenciada
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_PrecioManual_NoConsultaTarifas(t *testing.T) {
	uc, _ := newUseCase() // sin tarifas en el repo

	in := baseRequest()
	in.ManualRate = decPtr(7.25)
	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromFloat(7.25).Equal(out.Rate))
	assert.Nil(t, out.SalesRateID, "precio manual no referencia ninguna tarifa")
}

func TestCreate_PrecioManualNoPositivo_Rechaza(t *testing.T) {
	uc, _ := newUseCase()

	in := baseRequest()
	in.ManualRate = decPtr(0)
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_TarifaReferenciada_CongelaSuValor(t *testing.T) {
	uc, rateRepo := newUseCase()
	// La referenciada no necesita estar vigente en assignment_date.
	end := day("2026-02-01")
	rateID := rateRepo.add(activeRate("2026-01-01", &end, 11.00))

	in := baseRequest()
	in.SalesRateID = strPtr(rateID)
	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromFloat(11.00).Equal(out.Rate))
	assert.Equal(t, rateID, *out.SalesRateID)
}

func TestCreate_TarifaReferenciadaInexistente(t *testing.T) {
	uc, _ := newUseCase()

	in := baseRequest()
	in.SalesRateID = strPtr(uuid.New().String())
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_TarifaReferenciadaDeOtroPar_Rechaza(t *testing.T) {
	uc, rateRepo := newUseCase()
	other := activeRate("2026-01-01", nil, 11.00)
	other.CustomerID = "00000000-0000-0000-0000-000000000099"
	rateID := rateRepo.add(other)

	in := baseRequest()
	in.SalesRateID = strPtr(rateID)
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrRateMismatch,
		"la tarifa referenciada debe pertenecer al mismo par cliente/artículo")
}

func TestCreate_ManualYReferenciada_Ambiguo(t *testing.T) {
	uc, rateRepo := newUseCase()
	rateID := rateRepo.add(activeRate("2026-01-01", nil, 11.00))

	in := baseRequest()
	in.SalesRateID = strPtr(rateID)
	in.ManualRate = decPtr(7.25)
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrAmbiguousPrice,
		"manual_rate y sales_rate_id a la vez es ambiguo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Precio congelado — mutaciones de tarifas no tocan asignaciones existentes
// ──────────────────────────────────────────────────────────────────────────────

func TestPrecioCongelado_CambioDeTarifaNoAfectaAsignacion(t *testing.T) {
	uc, rateRepo := newUseCase()
	rateID := rateRepo.add(activeRate("2026-01-01", nil, 10.50))

	out, err := uc.Create(context.Background(), baseRequest())
	require.NoError(t, err)

	// La tarifa sube después de crear la asignación.
	r, _ := rateRepo.GetByID(rateID)
	r.Rate = decimal.NewFromFloat(99.99)
	require.NoError(t, rateRepo.Update(r))

	got, err := uc.GetByID(out.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(10.50).Equal(got.Rate),
		"el precio congelado en la asignación no cambia retroactivamente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_CorreccionManualDesvinculaLaTarifa(t *testing.T) {
	uc, rateRepo := newUseCase()
	rateRepo.add(activeRate("2026-01-01", nil, 10.50))

	out, err := uc.Create(context.Background(), baseRequest())
	require.NoError(t, err)
	require.NotNil(t, out.SalesRateID)

	updated, err := uc.Update(out.ID, dto.UpdateStockAssignmentRequest{Rate: decPtr(6.00)})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromFloat(6.00).Equal(updated.Rate))
	assert.Nil(t, updated.SalesRateID, "fijar tarifa manual desvincula la asignación de su tarifa")
}

func TestUpdate_SoloCantidad_MantieneLaReferencia(t *testing.T) {
	uc, rateRepo := newUseCase()
	rateRepo.add(activeRate("2026-01-01", nil, 10.50))

	out, err := uc.Create(context.Background(), baseRequest())
	require.NoError(t, err)

	qty := 30
	updated, err := uc.Update(out.ID, dto.UpdateStockAssignmentRequest{Quantity: &qty})
	require.NoError(t, err)

	assert.Equal(t, 30, updated.Quantity)
	assert.NotNil(t, updated.SalesRateID, "corregir solo cantidad no toca la referencia de tarifa")
}

func TestUpdate_NoExiste(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Update("no-existe", dto.UpdateStockAssignmentRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	uc, rateRepo := newUseCase()
	rateRepo.add(activeRate("2026-01-01", nil, 10.50))

	out, err := uc.Create(context.Background(), baseRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(out.ID))
	_, err = uc.GetByID(out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Delete(out.ID), domain.ErrNotFound)
}
