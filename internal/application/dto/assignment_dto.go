package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockAssignmentRequest entrada para asignar stock a un cliente.
// La fuente de precio es exactamente una: manual_rate, sales_rate_id, o ninguna
// (el resolutor busca la tarifa activa en assignment_date).
type CreateStockAssignmentRequest struct {
	CustomerID     string           `json:"customer_id" validate:"required,uuid"`
	ItemID         string           `json:"item_id" validate:"required,uuid"`
	Quantity       int              `json:"quantity" validate:"required,gt=0"`
	AssignmentDate string           `json:"assignment_date" validate:"required,datetime=2006-01-02"`
	SalesRateID    *string          `json:"sales_rate_id" validate:"omitempty,uuid"`
	ManualRate     *decimal.Decimal `json:"manual_rate"`
}

// UpdateStockAssignmentRequest entrada para corregir una asignación existente.
type UpdateStockAssignmentRequest struct {
	Quantity *int             `json:"quantity" validate:"omitempty,gt=0"`
	Rate     *decimal.Decimal `json:"rate"`
}

// StockAssignmentResponse salida de una asignación de stock.
type StockAssignmentResponse struct {
	ID             string          `json:"id"`
	CustomerID     string          `json:"customer_id"`
	CustomerName   string          `json:"customer_name,omitempty"`
	ItemID         string          `json:"item_id"`
	ItemName       string          `json:"item_name,omitempty"`
	Quantity       int             `json:"quantity"`
	AssignmentDate string          `json:"assignment_date"`
	SalesRateID    *string         `json:"sales_rate_id"`
	Rate           decimal.Decimal `json:"rate"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// StockAssignmentListResponse lista de asignaciones.
type StockAssignmentListResponse struct {
	Items []StockAssignmentResponse `json:"items"`
}
