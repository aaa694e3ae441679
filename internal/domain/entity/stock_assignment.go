package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockAssignment representa stock asignado a un cliente en una fecha.
// Rate se congela al crear la asignación: mutaciones posteriores de tarifas
// nunca la alteran retroactivamente. SalesRateID es nil cuando la tarifa fue manual.
type StockAssignment struct {
	ID             string
	CustomerID     string
	ItemID         string
	Quantity       int
	AssignmentDate time.Time
	SalesRateID    *string
	Rate           decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Nombres cargados por joins para respuestas.
	CustomerName string
	ItemName     string
}
