package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRate representa la tarifa de venta de un artículo para un cliente,
// con vigencia [EffectiveFrom, EffectiveTo] inclusive. EffectiveTo nil = vigencia abierta.
// Invariante por par (cliente, artículo): como máximo una tarifa activa cubre
// cualquier fecha del calendario; el motor temporal la mantiene con cascadas.
type SalesRate struct {
	ID            string
	CustomerID    string
	ItemID        string
	Rate          decimal.Decimal
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
	IsActive      bool
	CreatedBy     string // UserID
	UpdatedBy     string // UserID de la última mutación (incluye cascadas)
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Nombres cargados por joins para respuestas (no persisten en sales_rates).
	CustomerName string
	ItemName     string
}

// Covers indica si la vigencia de la tarifa contiene la fecha dada (ambos extremos inclusive).
func (r *SalesRate) Covers(day time.Time) bool {
	d := DateOnly(day)
	if d.Before(DateOnly(r.EffectiveFrom)) {
		return false
	}
	if r.EffectiveTo == nil {
		return true
	}
	return !d.After(DateOnly(*r.EffectiveTo))
}

// DateOnly trunca un instante a su fecha calendario en UTC.
// Las comparaciones de vigencia se hacen sobre fechas, nunca sobre horas.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
