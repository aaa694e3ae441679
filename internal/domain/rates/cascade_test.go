package rates_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
	"github.com/tu-usuario/panaderia-api/internal/domain/rates"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testActor    = "00000000-0000-0000-0000-0000000000aa"
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

func dayPtr(s string) *time.Time {
	d := day(s)
	return &d
}

func rate(id, from string, to *time.Time, active bool) *entity.SalesRate {
	return &entity.SalesRate{
		ID:            id,
		CustomerID:    testCustomer,
		ItemID:        testItem,
		Rate:          decimal.NewFromFloat(12.50),
		EffectiveFrom: day(from),
		EffectiveTo:   to,
		IsActive:      active,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Deactivate — cascada de cierre por solapamiento
// ──────────────────────────────────────────────────────────────────────────────

// La tarifa activa abierta se cierra con effective_to = from de la entrante:
// la fecha frontera pertenece a la tarifa nueva.
func TestDeactivate_CierraActivaAbiertaEnLaFrontera(t *testing.T) {
	prev := rate("r1", "2026-01-01", nil, true)
	now := day("2026-03-10")

	changed := rates.Deactivate([]*entity.SalesRate{prev}, day("2026-03-01"), testActor, now)

	require.Len(t, changed, 1)
	assert.False(t, prev.IsActive, "la tarifa solapada debe quedar inactiva")
	require.NotNil(t, prev.EffectiveTo)
	assert.Equal(t, day("2026-03-01"), *prev.EffectiveTo,
		"effective_to debe ser el effective_from de la tarifa entrante")
	assert.Equal(t, testActor, prev.UpdatedBy)
	assert.Equal(t, now, prev.UpdatedAt)
}

func TestDeactivate_VariasSolapadas_TodasCerradas(t *testing.T) {
	r1 := rate("r1", "2026-01-01", nil, true)
	r2 := rate("r2", "2026-02-01", dayPtr("2026-06-30"), true)

	changed := rates.Deactivate([]*entity.SalesRate{r1, r2}, day("2026-03-01"), testActor, day("2026-03-01"))

	require.Len(t, changed, 2)
	for _, r := range []*entity.SalesRate{r1, r2} {
		assert.False(t, r.IsActive)
		require.NotNil(t, r.EffectiveTo)
		assert.Equal(t, day("2026-03-01"), *r.EffectiveTo)
	}
}

func TestDeactivate_SinSolapadas_NoCambiaNada(t *testing.T) {
	changed := rates.Deactivate(nil, day("2026-03-01"), testActor, day("2026-03-01"))
	assert.Empty(t, changed)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Overlapping — predicado de la cascada
// ──────────────────────────────────────────────────────────────────────────────

func TestOverlapping_ActivaAbiertaSolapa(t *testing.T) {
	all := []*entity.SalesRate{rate("r1", "2026-01-01", nil, true)}
	got := rates.Overlapping(all, day("2026-03-01"))
	assert.Len(t, got, 1)
}

func TestOverlapping_TerminadaAntesDelCorte_NoSolapa(t *testing.T) {
	all := []*entity.SalesRate{rate("r1", "2026-01-01", dayPtr("2026-02-15"), true)}
	got := rates.Overlapping(all, day("2026-03-01"))
	assert.Empty(t, got, "una vigencia cerrada antes del corte no solapa")
}

func TestOverlapping_TerminaExactamenteEnElCorte_Solapa(t *testing.T) {
	// effective_to es inclusivo: terminar el mismo día del corte sí solapa.
	all := []*entity.SalesRate{rate("r1", "2026-01-01", dayPtr("2026-03-01"), true)}
	got := rates.Overlapping(all, day("2026-03-01"))
	assert.Len(t, got, 1)
}

func TestOverlapping_EmpiezaDespuesDelCorte_NoSolapa(t *testing.T) {
	all := []*entity.SalesRate{rate("r1", "2026-04-01", nil, true)}
	got := rates.Overlapping(all, day("2026-03-01"))
	assert.Empty(t, got)
}

func TestOverlapping_InactivasIgnoradas(t *testing.T) {
	all := []*entity.SalesRate{rate("r1", "2026-01-01", nil, false)}
	got := rates.Overlapping(all, day("2026-03-01"))
	assert.Empty(t, got, "las tarifas inactivas no participan en la cascada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Close / Reopen
// ──────────────────────────────────────────────────────────────────────────────

// Desactivar cierra la vigencia hoy, ignorando cualquier otro effective_to.
func TestClose_CierraVigenciaHoy(t *testing.T) {
	r := rate("r1", "2026-01-01", dayPtr("2026-12-31"), true)
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	rates.Close(r, testActor, now)

	assert.False(t, r.IsActive)
	require.NotNil(t, r.EffectiveTo)
	assert.Equal(t, day("2026-03-10"), *r.EffectiveTo,
		"effective_to debe ser la fecha de hoy sin componente horario")
}

func TestReopen_ReabreVigencia(t *testing.T) {
	r := rate("r1", "2026-01-01", dayPtr("2026-02-01"), false)

	rates.Reopen(r, testActor, day("2026-03-10"))

	assert.True(t, r.IsActive)
	assert.Nil(t, r.EffectiveTo, "la tarifa reactivada queda con vigencia abierta")
	assert.Equal(t, testActor, r.UpdatedBy)
}

// Close seguido de Reopen restaura la tarifa a activa con vigencia abierta
// independientemente del estado intermedio.
func TestCloseReopen_Idempotente(t *testing.T) {
	r := rate("r1", "2026-01-01", nil, true)
	now := day("2026-03-10")

	rates.Close(r, testActor, now)
	rates.Reopen(r, testActor, now)

	assert.True(t, r.IsActive)
	assert.Nil(t, r.EffectiveTo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests MostRecentInactive
// ──────────────────────────────────────────────────────────────────────────────

func TestMostRecentInactive_EligeLaMasReciente(t *testing.T) {
	all := []*entity.SalesRate{
		rate("r1", "2026-01-01", dayPtr("2026-02-01"), false),
		rate("r2", "2026-02-01", dayPtr("2026-03-01"), false),
		rate("r3", "2026-03-01", nil, true),
	}

	got := rates.MostRecentInactive(all, "r3")

	require.NotNil(t, got)
	assert.Equal(t, "r2", got.ID, "debe ganar la inactiva con effective_from más reciente")
}

func TestMostRecentInactive_ExcluyeLaIndicada(t *testing.T) {
	all := []*entity.SalesRate{
		rate("r1", "2026-01-01", dayPtr("2026-02-01"), false),
		rate("r2", "2026-02-01", dayPtr("2026-03-01"), false),
	}

	got := rates.MostRecentInactive(all, "r2")

	require.NotNil(t, got)
	assert.Equal(t, "r1", got.ID)
}

func TestMostRecentInactive_SinInactivas_Nil(t *testing.T) {
	all := []*entity.SalesRate{rate("r1", "2026-01-01", nil, true)}
	assert.Nil(t, rates.MostRecentInactive(all, ""))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ValidRange
// ──────────────────────────────────────────────────────────────────────────────

func TestValidRange(t *testing.T) {
	assert.True(t, rates.ValidRange(day("2026-03-01"), nil), "vigencia abierta siempre válida")
	assert.True(t, rates.ValidRange(day("2026-03-01"), dayPtr("2026-03-01")), "vigencia de un solo día válida")
	assert.True(t, rates.ValidRange(day("2026-03-01"), dayPtr("2026-04-01")))
	assert.False(t, rates.ValidRange(day("2026-03-01"), dayPtr("2026-02-28")), "effective_to anterior a effective_from inválido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Resolve — búsqueda de la tarifa vigente
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_UnaActivaCubriendo(t *testing.T) {
	all := []*entity.SalesRate{
		rate("r1", "2026-01-01", dayPtr("2026-02-28"), false),
		rate("r2", "2026-03-01", nil, true),
	}

	got, conflict := rates.Resolve(all, day("2026-03-15"))

	require.NotNil(t, got)
	assert.Equal(t, "r2", got.ID)
	assert.False(t, conflict)
}

func TestResolve_FronterasInclusivas(t *testing.T) {
	all := []*entity.SalesRate{rate("r1", "2026-03-01", dayPtr("2026-03-31"), true)}

	first, _ := rates.Resolve(all, day("2026-03-01"))
	last, _ := rates.Resolve(all, day("2026-03-31"))
	after, _ := rates.Resolve(all, day("2026-04-01"))

	assert.NotNil(t, first, "effective_from es inclusivo")
	assert.NotNil(t, last, "effective_to es inclusivo")
	assert.Nil(t, after)
}

func TestResolve_SinCobertura_Nil(t *testing.T) {
	all := []*entity.SalesRate{rate("r1", "2026-05-01", nil, true)}
	got, conflict := rates.Resolve(all, day("2026-03-01"))
	assert.Nil(t, got)
	assert.False(t, conflict)
}

// Con datos corruptos (dos activas cubriendo la misma fecha) gana la de
// effective_from más reciente y se señala el conflicto.
func TestResolve_ConflictoGanaLaMasReciente(t *testing.T) {
	all := []*entity.SalesRate{
		rate("r1", "2026-01-01", nil, true),
		rate("r2", "2026-02-01", nil, true),
	}

	got, conflict := rates.Resolve(all, day("2026-03-01"))

	require.NotNil(t, got)
	assert.Equal(t, "r2", got.ID)
	assert.True(t, conflict, "dos activas cubriendo la misma fecha deben señalar conflicto")
}
